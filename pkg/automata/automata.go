// Package automata provides pattern-to-matcher code generation functionality.
// It compiles a pattern into an NFA and DFA and emits a standalone Go matcher
// at build time.
package automata

import (
	"fmt"

	"github.com/AkshayR278/automata/internal/compiler"
	"github.com/AkshayR278/automata/pkg/machine"
)

// Options configures the pattern compilation process.
type Options struct {
	// Pattern is the regular expression to compile
	Pattern string

	// Name is the prefix for generated identifiers (e.g., "Email" generates "EmailMatchString")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// GenerateTestFile generates a test file exercising the matcher (default: true if TestFileInputs provided)
	GenerateTestFile bool

	// TestFileInputs is a list of test inputs for the generated test file. If empty and GenerateTestFile is true, defaults to []string{"example"}
	TestFileInputs []string

	// Verbose enables logging of construction decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Pattern == "" {
		return fmt.Errorf("pattern cannot be empty")
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Compile generates a Go matcher for the given pattern. It returns an error
// if the pattern is malformed or code generation fails.
func Compile(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	// Build the NFA via Thompson construction
	nfa, err := machine.CompilePattern(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}

	// Determinize via subset construction
	dfa := machine.Determinize(nfa)

	// Set default for GenerateTestFile
	generateTestFile := opts.GenerateTestFile
	if len(opts.TestFileInputs) > 0 {
		generateTestFile = true
	}

	config := compiler.Config{
		Pattern:          opts.Pattern,
		Name:             opts.Name,
		OutputFile:       opts.OutputFile,
		Package:          opts.Package,
		NFA:              nfa,
		DFA:              dfa,
		GenerateTestFile: generateTestFile,
		TestFileInputs:   opts.TestFileInputs,
		Verbose:          opts.Verbose,
	}

	c := compiler.New(config)

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}

	return nil
}
