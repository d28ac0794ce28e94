package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	if RootCmd.Use != "schemasort <file>" {
		t.Errorf("Expected Use to be 'schemasort <file>', got '%s'", RootCmd.Use)
	}

	if RootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	flags := RootCmd.Flags()
	if flags.Lookup("file") == nil {
		t.Error("Expected --file flag to be defined")
	}
	if flags.Lookup("validate") == nil {
		t.Error("Expected --validate flag to be defined")
	}
	if RootCmd.PersistentFlags().Lookup("debug") == nil {
		t.Error("Expected --debug persistent flag to be defined")
	}
}

func TestRunSortWritesSortedSchema(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.sql")
	schema := "CREATE TABLE orders (customer_id integer, FOREIGN KEY (customer_id) REFERENCES customers (id));\nCREATE TABLE customers (id integer PRIMARY KEY);\n"
	if err := os.WriteFile(input, []byte(schema), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	defer RootCmd.SetOut(nil)

	if err := runSort(RootCmd, []string{input}); err != nil {
		t.Fatalf("runSort() error: %v", err)
	}

	got := out.String()
	customersIdx := strings.Index(got, "CREATE TABLE customers")
	ordersIdx := strings.Index(got, "CREATE TABLE orders")
	if customersIdx == -1 || ordersIdx == -1 {
		t.Fatalf("expected both tables in output:\n%s", got)
	}
	if customersIdx > ordersIdx {
		t.Errorf("expected customers before orders:\n%s", got)
	}
}

func TestRunSortOutputFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.sql")
	if err := os.WriteFile(input, []byte("CREATE TABLE a (id integer);\n"), 0644); err != nil {
		t.Fatal(err)
	}
	output := filepath.Join(dir, "sorted.sql")

	originalOutputFile := outputFile
	outputFile = output
	defer func() { outputFile = originalOutputFile }()

	if err := runSort(RootCmd, []string{input}); err != nil {
		t.Fatalf("runSort() error: %v", err)
	}

	content, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("failed to read output file: %v", err)
	}
	if string(content) != "CREATE TABLE a (id integer);\n" {
		t.Errorf("unexpected output file content: %q", content)
	}
}

func TestRunSortMissingFile(t *testing.T) {
	if err := runSort(RootCmd, []string{"/nonexistent/schema.sql"}); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestRunSortCycleReturnsError(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "schema.sql")
	schema := "CREATE TABLE x (y_id integer, FOREIGN KEY (y_id) REFERENCES y (id));\nCREATE TABLE y (x_id integer, FOREIGN KEY (x_id) REFERENCES x (id));\n"
	if err := os.WriteFile(input, []byte(schema), 0644); err != nil {
		t.Fatal(err)
	}

	err := runSort(RootCmd, []string{input})
	if err == nil {
		t.Fatal("expected error for circular dependency")
	}
	if !strings.Contains(err.Error(), "x") || !strings.Contains(err.Error(), "y") {
		t.Errorf("expected cycle error to name both tables, got: %v", err)
	}
}
