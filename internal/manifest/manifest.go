// Package manifest parses pattern definition files for batch generation.
//
// A manifest holds named patterns, one per definition:
//
//	Email = "(a|b)*abb";
//	Ident = "x(x|d)*";
//
// Names become the generated matcher type names, so they should be valid
// exported Go identifiers.
package manifest

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// File is a parsed pattern definitions file.
type File struct {
	Definitions []*Definition `parser:"@@*"`
}

// Definition binds a matcher name to a pattern.
type Definition struct {
	Name    string `parser:"@Ident '='"`
	Pattern string `parser:"@String ';'"`
}

var parser = participle.MustBuild[File](participle.Unquote("String"))

// Parse parses manifest data. Duplicate definition names are rejected.
func Parse(data string) (*File, error) {
	f, err := parser.ParseString("manifest", data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	seen := make(map[string]bool, len(f.Definitions))
	for _, def := range f.Definitions {
		if seen[def.Name] {
			return nil, fmt.Errorf("duplicate definition %q", def.Name)
		}
		seen[def.Name] = true
	}

	return f, nil
}
