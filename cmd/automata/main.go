// Command automata compiles a pattern into finite automata. It can print the
// NFA and DFA transition tables, test strings for membership, generate a
// standalone Go matcher, or batch-generate matchers from a manifest file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/AkshayR278/automata/internal/codegen"
	"github.com/AkshayR278/automata/internal/manifest"
	"github.com/AkshayR278/automata/internal/render"
	"github.com/AkshayR278/automata/pkg/automata"
	"github.com/AkshayR278/automata/pkg/machine"
)

var (
	pattern      = flag.String("pattern", "", "Pattern to compile, e.g. (a|b)*abb")
	name         = flag.String("name", "", "Name prefix for the generated matcher (required with -output)")
	pkgName      = flag.String("package", "main", "Package name for generated code")
	output       = flag.String("output", "", "Output file for the generated matcher; omit to skip generation")
	manifestPath = flag.String("manifest", "", "Pattern definitions file for batch generation")
	outDir       = flag.String("out-dir", ".", "Output directory for batch generation")
	tables       = flag.Bool("tables", false, "Print the NFA and DFA transition tables")
	verbose      = flag.Bool("verbose", false, "Log construction decisions to stderr")
)

var (
	matchInputs arrayFlags
	testInputs  arrayFlags
)

func main() {
	flag.Var(&matchInputs, "match", "Test a string for membership (repeatable)")
	flag.Var(&testInputs, "test-input", "Input for the generated test file (repeatable)")
	flag.Parse()

	switch {
	case *manifestPath != "":
		if err := runManifest(*manifestPath, *outDir, *pkgName); err != nil {
			log.Fatal(err)
		}
	case *pattern != "":
		if err := runPattern(); err != nil {
			log.Fatal(err)
		}
	default:
		fmt.Fprintln(os.Stderr, "usage: automata -pattern <pattern> [-tables] [-match s]... [-output file -name Name]")
		fmt.Fprintln(os.Stderr, "       automata -manifest <file> [-out-dir dir] [-package name]")
		flag.PrintDefaults()
		os.Exit(2)
	}
}

// runPattern handles single-pattern mode: tables, membership tests, and
// optional code generation.
func runPattern() error {
	nfa, err := machine.CompilePattern(*pattern)
	if err != nil {
		return fmt.Errorf("failed to compile pattern: %w", err)
	}
	dfa := machine.Determinize(nfa)

	if *tables {
		fmt.Println("--- NFA ---")
		fmt.Print(render.NFATable(nfa))
		fmt.Println()
		fmt.Println("--- DFA ---")
		fmt.Print(render.DFATable(dfa))
	}

	for _, input := range matchInputs {
		fmt.Printf("%q: NFA=%v DFA=%v\n", input, nfa.Accepts(input), dfa.Accepts(input))
	}

	if *output == "" {
		return nil
	}
	if *name == "" {
		return fmt.Errorf("-name is required with -output")
	}

	return automata.Compile(automata.Options{
		Pattern:        *pattern,
		Name:           *name,
		OutputFile:     *output,
		Package:        *pkgName,
		TestFileInputs: testInputs,
		Verbose:        *verbose,
	})
}

// runManifest generates one matcher per definition in the manifest file.
func runManifest(path, dir, pkg string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	file, err := manifest.Parse(string(data))
	if err != nil {
		return err
	}

	for _, def := range file.Definitions {
		out := filepath.Join(dir, codegen.LowerFirst(def.Name)+".go")
		opts := automata.Options{
			Pattern:        def.Pattern,
			Name:           def.Name,
			OutputFile:     out,
			Package:        pkg,
			TestFileInputs: testInputs,
			Verbose:        *verbose,
		}
		if err := automata.Compile(opts); err != nil {
			return fmt.Errorf("failed to generate %s: %w", def.Name, err)
		}
		fmt.Printf("generated %s (pattern %s)\n", out, def.Pattern)
	}

	return nil
}
