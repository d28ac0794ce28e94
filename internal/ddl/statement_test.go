package ddl

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitStatements(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Statement
	}{
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "whitespace only",
			input: "  \n\t\n",
			want:  nil,
		},
		{
			name:  "no ddl keyword",
			input: "-- just a comment\nSELECT 1;\n",
			want: []Statement{
				{Text: "-- just a comment\nSELECT 1;", Kind: StatementOther},
			},
		},
		{
			name:  "single table",
			input: "CREATE TABLE users (id integer);\n",
			want: []Statement{
				{Text: "CREATE TABLE users (id integer);", Kind: StatementTable},
			},
		},
		{
			name:  "if not exists is still a table",
			input: "CREATE TABLE IF NOT EXISTS users (id integer);",
			want: []Statement{
				{Text: "CREATE TABLE IF NOT EXISTS users (id integer);", Kind: StatementTable},
			},
		},
		{
			name:  "lowercase keywords",
			input: "create table users (id integer);",
			want: []Statement{
				{Text: "create table users (id integer);", Kind: StatementTable},
			},
		},
		{
			name:  "index trigger and unique index are other",
			input: "CREATE INDEX idx1 ON t (a);\nCREATE UNIQUE INDEX idx2 ON t (b);\nCREATE TRIGGER trg BEFORE INSERT ON t BEGIN SELECT 1; END;",
			want: []Statement{
				{Text: "CREATE INDEX idx1 ON t (a);", Kind: StatementOther},
				{Text: "CREATE UNIQUE INDEX idx2 ON t (b);", Kind: StatementOther},
				{Text: "CREATE TRIGGER trg BEFORE INSERT ON t BEGIN SELECT 1; END;", Kind: StatementOther},
			},
		},
		{
			name:  "leading text before first anchor",
			input: "-- schema header\nCREATE TABLE users (id integer);",
			want: []Statement{
				{Text: "-- schema header", Kind: StatementOther},
				{Text: "CREATE TABLE users (id integer);", Kind: StatementTable},
			},
		},
		{
			name:  "mixed statements keep their spans",
			input: "CREATE TABLE a (id integer);\n\nCREATE INDEX idx ON a (id);\n\nCREATE TABLE b (id integer);\n",
			want: []Statement{
				{Text: "CREATE TABLE a (id integer);", Kind: StatementTable},
				{Text: "CREATE INDEX idx ON a (id);", Kind: StatementOther},
				{Text: "CREATE TABLE b (id integer);", Kind: StatementTable},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitStatements(tt.input)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitStatements() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
