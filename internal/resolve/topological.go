package resolve

import (
	"fmt"
	"sort"
	"strings"

	"github.com/schemasort/schemasort/internal/ddl"
)

// CycleError reports a circular foreign key dependency. Tables lists every
// table left unresolved when the sort stalled, sorted by name.
type CycleError struct {
	Tables []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("circular dependency detected among tables: %s", strings.Join(e.Tables, ", "))
}

// sortTables sorts tables in dependency order: tables that are referenced by
// foreign keys come before the tables that reference them. Ties are broken
// lexicographically by table name so identical input always produces
// byte-identical output, independent of map iteration order.
//
// Unlike pg_dump-style tools that split table creation from constraint
// creation, the resolver reproduces each CREATE TABLE verbatim, so a
// dependency cycle cannot be broken by deferring constraints. Cycles are
// therefore fatal and reported via *CycleError.
func sortTables(tables []*ddl.Table) ([]*ddl.Table, error) {
	if len(tables) <= 1 {
		return tables, nil
	}

	tableMap := make(map[string]*ddl.Table, len(tables))
	for _, table := range tables {
		tableMap[table.Name] = table
	}

	// Build dependency graph
	inDegree := make(map[string]int, len(tableMap))
	adjList := make(map[string][]string, len(tableMap))
	for name := range tableMap {
		inDegree[name] = 0
		adjList[name] = []string{}
	}

	// Build edges: if tableA references tableB, add edge tableB -> tableA.
	// Self-references and references to tables outside this schema create
	// no edge.
	for _, table := range tables {
		for _, dep := range table.Dependencies {
			if dep == table.Name {
				continue
			}
			if _, exists := tableMap[dep]; !exists {
				continue
			}
			adjList[dep] = append(adjList[dep], table.Name)
			inDegree[table.Name]++
		}
	}

	// Kahn's algorithm; the queue is kept sorted so the lexicographically
	// smallest ready table is always emitted next.
	var queue []string
	var result []string

	for name, degree := range inDegree {
		if degree == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, dependent := range adjList[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
				sort.Strings(queue)
			}
		}
	}

	if len(result) < len(tableMap) {
		resolved := make(map[string]bool, len(result))
		for _, name := range result {
			resolved[name] = true
		}
		var unresolved []string
		for name := range tableMap {
			if !resolved[name] {
				unresolved = append(unresolved, name)
			}
		}
		sort.Strings(unresolved)
		return nil, &CycleError{Tables: unresolved}
	}

	sorted := make([]*ddl.Table, 0, len(result))
	for _, name := range result {
		sorted = append(sorted, tableMap[name])
	}
	return sorted, nil
}
