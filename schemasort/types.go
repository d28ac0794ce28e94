package schemasort

import (
	"github.com/schemasort/schemasort/internal/ddl"
	"github.com/schemasort/schemasort/internal/resolve"
)

// Re-export important types for external consumption

// Statement is an opaque span of schema text beginning at a DDL keyword.
type Statement = ddl.Statement

// StatementKind classifies a statement span as a CREATE TABLE or anything else.
type StatementKind = ddl.StatementKind

// Table represents a parsed CREATE TABLE statement with its foreign key
// dependencies.
type Table = ddl.Table

// CycleError reports a circular foreign key dependency between tables.
type CycleError = resolve.CycleError

const (
	// StatementTable marks CREATE TABLE statements.
	StatementTable = ddl.StatementTable
	// StatementOther marks index, trigger and other pass-through statements.
	StatementOther = ddl.StatementOther
)
