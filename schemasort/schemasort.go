// Package schemasort provides a programmatic API for reordering the CREATE
// TABLE statements of a SQL DDL schema into foreign key dependency order.
package schemasort

import (
	"fmt"
	"os"

	"github.com/schemasort/schemasort/internal/include"
	"github.com/schemasort/schemasort/internal/resolve"
)

// SortSchema reorders the CREATE TABLE statements of schema text so that
// referenced tables are defined before the tables that reference them.
// Non-table statements keep their original relative order after the table
// block. The result is deterministic and idempotent.
func SortSchema(text string) (string, error) {
	return resolve.Resolve(text)
}

// SortSchemaFile reads a schema file, expands any \i include directives and
// returns the sorted schema text.
func SortSchemaFile(path string) (string, error) {
	processor := include.NewProcessor(".")
	schema, err := processor.ProcessFile(path)
	if err != nil {
		return "", err
	}
	return resolve.Resolve(schema)
}

// SortSchemaToFile sorts the schema in path and writes the result to outPath.
func SortSchemaToFile(path, outPath string) error {
	sorted, err := SortSchemaFile(path)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, []byte(sorted), 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outPath, err)
	}
	return nil
}
