// Package resolve reorders the CREATE TABLE statements of a schema so that
// every table referenced by a foreign key is defined before the tables that
// reference it. Non-table statements (indexes, triggers) keep their original
// relative order and are emitted after the table block.
package resolve

import (
	"fmt"
	"strings"

	"github.com/schemasort/schemasort/internal/ddl"
	"github.com/schemasort/schemasort/internal/logger"
)

// Resolve rewrites schema text with its CREATE TABLE statements in dependency
// order. Statement bodies are reproduced verbatim; only their order changes.
//
// A CREATE TABLE statement whose name cannot be parsed is logged and passed
// through unchanged in the trailing non-table block rather than dropped.
// A duplicate CREATE TABLE for the same name is a fatal error, as is a
// circular dependency (*CycleError).
func Resolve(text string) (string, error) {
	statements := ddl.SplitStatements(text)

	var tables []*ddl.Table
	var others []ddl.Statement
	seen := make(map[string]bool)

	for _, stmt := range statements {
		if stmt.Kind != ddl.StatementTable {
			others = append(others, stmt)
			continue
		}
		table, err := ddl.ParseTable(stmt)
		if err != nil {
			// Pass the statement through instead of dropping it so no
			// input text is silently lost.
			logger.Get().Warn("passing through unparseable CREATE TABLE statement", "error", err)
			others = append(others, stmt)
			continue
		}
		if seen[table.Name] {
			return "", fmt.Errorf("duplicate CREATE TABLE statement for table %q", table.Name)
		}
		seen[table.Name] = true
		tables = append(tables, table)
		logger.Get().Debug("parsed table", "name", table.Name, "dependencies", table.Dependencies)
	}

	sorted, err := sortTables(tables)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for _, table := range sorted {
		out.WriteString(table.Statement)
		out.WriteString("\n")
	}
	for _, stmt := range others {
		out.WriteString(stmt.Text)
		out.WriteString("\n")
	}
	return out.String(), nil
}
