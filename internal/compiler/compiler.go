// Package compiler generates standalone Go matcher code from compiled
// automata.
package compiler

import (
	"fmt"
	"go/format"
	"os"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/AkshayR278/automata/internal/codegen"
	"github.com/AkshayR278/automata/pkg/machine"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern          string
	Name             string
	OutputFile       string
	Package          string
	NFA              *machine.NFA // Source automaton, used for logging only
	DFA              *machine.DFA // Automaton the matcher tables are built from
	GenerateTestFile bool         // Generate a test file exercising the matcher
	TestFileInputs   []string     // Test inputs for the generated test file
	Verbose          bool         // Enable verbose logging of construction decisions
}

// Compiler generates Go matcher code from a determinized pattern.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	c := &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}

	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", config.Pattern)
	if config.NFA != nil {
		c.logger.Log("NFA states: %d", config.NFA.NumStates())
	}
	if config.DFA != nil {
		c.logger.Log("DFA states: %d", config.DFA.NumStates())
		c.logger.Log("Alphabet size: %d", len(config.DFA.Alphabet()))
	}

	return c
}

// SetOutputFile sets the output file path.
func (c *Compiler) SetOutputFile(path string) {
	c.config.OutputFile = path
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if c.config.DFA == nil {
		return fmt.Errorf("no automaton to generate from")
	}

	c.file.Comment(fmt.Sprintf("Code generated by automata for pattern: %s", c.config.Pattern))
	c.file.Comment("DO NOT EDIT.")
	c.file.Line()

	// Generate the main struct type
	c.file.Commentf("%s matches the pattern %s.", c.config.Name, c.config.Pattern)
	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	// Generate convenience variable for direct usage
	c.file.Var().Id(fmt.Sprintf("Compiled%s", c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.logger.Section("Code Generation")
	if err := c.generateTables(); err != nil {
		return fmt.Errorf("failed to generate lookup tables: %w", err)
	}

	matchStringCode := c.generateMatchFunction()
	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(matchStringCode...)

	matchBytesCode := c.generateMatchFunction()
	c.method("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(matchBytesCode...)

	// Save to file
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}

	// Format the generated file
	if err := formatFile(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to format file: %w", err)
	}

	// Generate test file if requested
	if c.config.GenerateTestFile {
		if err := c.generateTestFile(); err != nil {
			return fmt.Errorf("failed to generate test file: %w", err)
		}
	}

	return nil
}

// testFilePath derives the generated test file path from the output file.
func (c *Compiler) testFilePath() string {
	return strings.TrimSuffix(c.config.OutputFile, ".go") + "_test.go"
}

// formatFile reads a file, formats it with go/format, and writes it back.
func formatFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	formatted, err := format.Source(src)
	if err != nil {
		return err
	}

	return os.WriteFile(path, formatted, 0644)
}
