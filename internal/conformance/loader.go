package conformance

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseCase parses a conformance case from YAML bytes.
func ParseCase(data []byte) (*Case, error) {
	var tc Case
	if err := yaml.Unmarshal(data, &tc); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	if tc.ID == "" {
		return nil, &LoadError{
			Message: "case ID is required",
		}
	}

	e := tc.Expect
	if e.Options == nil && e.Keywords == nil && e.PairCount == nil &&
		len(e.Pairs) == 0 && e.Error == nil {
		return nil, &LoadError{
			Message: "case must expect at least one outcome",
		}
	}

	return &tc, nil
}

// LoadCase loads a conformance case from a file.
func LoadCase(path string) (*Case, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			File:    path,
			Message: "failed to read file",
			Cause:   err,
		}
	}

	tc, err := ParseCase(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.File = path
			return nil, le
		}
		return nil, &LoadError{
			File:    path,
			Message: err.Error(),
		}
	}

	return tc, nil
}

// LoadDirectory loads all conformance cases from a directory, in file
// name order. Only files with .yaml or .yml extensions are loaded.
func LoadDirectory(dir string) ([]*Case, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &LoadError{
			File:    dir,
			Message: "failed to read directory",
			Cause:   err,
		}
	}

	var cases []*Case
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}

		tc, err := LoadCase(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		cases = append(cases, tc)
	}

	return cases, nil
}
