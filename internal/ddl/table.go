package ddl

import (
	"fmt"
	"regexp"
	"strings"
)

// Table represents a parsed CREATE TABLE statement.
type Table struct {
	// Name is the table name taken verbatim from the source, with
	// surrounding double quotes stripped. Case-sensitive.
	Name string
	// Statement is the full CREATE TABLE text up to and including the
	// first terminating semicolon.
	Statement string
	// Dependencies lists the tables referenced by FOREIGN KEY clauses,
	// deduplicated, in order of first occurrence. May include Name itself
	// for self-referential foreign keys.
	Dependencies []string
}

// identifierPattern matches a double-quoted identifier (quotes stripped via
// the first capture group) or a bare word (second group). The same rule is
// used for table names and foreign key targets so the two call sites can
// never disagree on how a name is spelled.
const identifierPattern = `(?:"([^"]+)"|([A-Za-z0-9_]+))`

var (
	tableNameRegex  = regexp.MustCompile(`(?is)^CREATE\s+TABLE\s+(?:IF\s+NOT\s+EXISTS\s+)?` + identifierPattern)
	foreignKeyRegex = regexp.MustCompile(`(?is)FOREIGN\s+KEY\s*\([^)]*\)\s*REFERENCES\s+` + identifierPattern)
)

// ParseTable extracts the table name, statement body and foreign key targets
// from a Table-classified span. The body runs from the CREATE TABLE keyword
// through the first semicolon; column lists in the supported dialect never
// contain semicolons themselves, so no nesting-aware scan is needed.
func ParseTable(stmt Statement) (*Table, error) {
	if stmt.Kind != StatementTable {
		return nil, fmt.Errorf("not a CREATE TABLE statement: %.40q", stmt.Text)
	}

	match := tableNameRegex.FindStringSubmatch(stmt.Text)
	if match == nil {
		return nil, fmt.Errorf("no table name found in CREATE TABLE statement: %.40q", stmt.Text)
	}
	name := identifierFromMatch(match)

	body := stmt.Text
	if idx := strings.Index(body, ";"); idx != -1 {
		body = body[:idx+1]
	}

	table := &Table{
		Name:      name,
		Statement: body,
	}

	seen := make(map[string]bool)
	for _, fk := range foreignKeyRegex.FindAllStringSubmatch(body, -1) {
		target := identifierFromMatch(fk)
		if seen[target] {
			continue
		}
		seen[target] = true
		table.Dependencies = append(table.Dependencies, target)
	}

	return table, nil
}

// identifierFromMatch returns whichever identifier capture group matched:
// the quoted form with quotes stripped, or the bare word.
func identifierFromMatch(match []string) string {
	if match[1] != "" {
		return match[1]
	}
	return match[2]
}
