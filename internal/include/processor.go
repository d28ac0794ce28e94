// Package include expands psql-style \i directives in schema files before
// they are handed to the resolver, so a schema split across multiple files
// can be sorted as one unit.
package include

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Matches: \i filename (with optional trailing semicolon)
var includeDirectiveRegex = regexp.MustCompile(`^\s*\\i\s+([^\s;]+)\s*;?\s*$`)

// Processor expands \i include directives relative to a base directory.
// Includes outside the base directory are rejected, and a file including
// itself (directly or transitively) is an error.
type Processor struct {
	baseDir string
	visited map[string]bool
}

// NewProcessor creates a processor rooted at baseDir. The base directory is
// re-derived from the input file on each ProcessFile call.
func NewProcessor(baseDir string) *Processor {
	return &Processor{
		baseDir: baseDir,
		visited: make(map[string]bool),
	}
}

// ProcessFile reads filename and returns its content with every \i directive
// replaced by the (recursively expanded) content of the referenced file.
func (p *Processor) ProcessFile(filename string) (string, error) {
	p.visited = make(map[string]bool)

	absPath, err := filepath.Abs(filename)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path for %s: %w", filename, err)
	}
	p.baseDir = filepath.Dir(absPath)

	return p.expandFile(absPath)
}

func (p *Processor) expandFile(filename string) (string, error) {
	if p.visited[filename] {
		return "", fmt.Errorf("circular include detected: %s", filename)
	}
	p.visited[filename] = true
	defer delete(p.visited, filename)

	content, err := os.ReadFile(filename)
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	currentDir := filepath.Dir(filename)
	lines := strings.Split(string(content), "\n")

	var result strings.Builder
	for i, line := range lines {
		matches := includeDirectiveRegex.FindStringSubmatch(line)
		if matches == nil {
			result.WriteString(line)
			if i < len(lines)-1 {
				result.WriteString("\n")
			}
			continue
		}

		resolvedPath, err := p.resolvePath(matches[1], currentDir)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		included, err := p.expandFile(resolvedPath)
		if err != nil {
			return "", fmt.Errorf("line %d: %w", i+1, err)
		}
		result.WriteString(included)
		if !strings.HasSuffix(included, "\n") {
			result.WriteString("\n")
		}
	}

	return result.String(), nil
}

// resolvePath resolves an include path relative to currentDir and rejects
// anything that escapes the base directory.
func (p *Processor) resolvePath(includePath, currentDir string) (string, error) {
	cleanPath := filepath.Clean(includePath)
	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("directory traversal not allowed: %s", includePath)
	}

	absPath, err := filepath.Abs(filepath.Join(currentDir, cleanPath))
	if err != nil {
		return "", fmt.Errorf("failed to resolve include path %s: %w", includePath, err)
	}

	baseAbs, err := filepath.Abs(p.baseDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve base directory: %w", err)
	}
	relPath, err := filepath.Rel(baseAbs, absPath)
	if err != nil || strings.HasPrefix(relPath, "..") {
		return "", fmt.Errorf("include path %s is outside the base directory %s", includePath, p.baseDir)
	}

	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("included file does not exist: %s", absPath)
	}
	return absPath, nil
}
