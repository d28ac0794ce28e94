// Package ddl splits raw schema text into DDL statements and extracts
// table names and foreign key references from CREATE TABLE statements.
//
// The package deliberately implements only as much SQL grammar as the
// statement boundaries require: CREATE TABLE / INDEX / UNIQUE INDEX /
// TRIGGER headers, quoted and bare identifiers, and FOREIGN KEY ...
// REFERENCES clauses. Everything else is treated as opaque text.
package ddl

import (
	"regexp"
	"strings"
)

// StatementKind classifies a statement span.
type StatementKind int

const (
	// StatementTable is a CREATE TABLE statement, the only kind that is
	// parsed structurally and reordered.
	StatementTable StatementKind = iota
	// StatementOther covers indexes, triggers and any other text; these
	// spans are passed through verbatim.
	StatementOther
)

// Statement is an opaque span of schema text beginning at a DDL keyword.
type Statement struct {
	Text string
	Kind StatementKind
}

// statementAnchorRegex marks the start of a new statement span. The
// alternation lists UNIQUE INDEX before INDEX so the longer keyword wins.
var statementAnchorRegex = regexp.MustCompile(`(?i)CREATE\s+(?:TABLE|UNIQUE\s+INDEX|INDEX|TRIGGER)\b`)

var createTableRegex = regexp.MustCompile(`(?i)^CREATE\s+TABLE\b`)

// SplitStatements splits schema text into statement spans anchored at
// CREATE TABLE/INDEX/UNIQUE INDEX/TRIGGER keywords. Each span extends up to
// the next anchor or end of input and is trimmed of surrounding whitespace;
// empty spans are dropped. Text before the first anchor (comments, pragmas)
// becomes a leading Other span. Input with no anchor at all yields a single
// Other span, or nothing if the input is blank. Splitting never fails.
func SplitStatements(text string) []Statement {
	locs := statementAnchorRegex.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		return []Statement{{Text: trimmed, Kind: StatementOther}}
	}

	var statements []Statement
	if leading := strings.TrimSpace(text[:locs[0][0]]); leading != "" {
		statements = append(statements, Statement{Text: leading, Kind: StatementOther})
	}

	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		span := strings.TrimSpace(text[loc[0]:end])
		if span == "" {
			continue
		}
		kind := StatementOther
		if createTableRegex.MatchString(span) {
			kind = StatementTable
		}
		statements = append(statements, Statement{Text: span, Kind: kind})
	}

	return statements
}
