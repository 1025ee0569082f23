package compiler

import (
	"fmt"

	"github.com/dave/jennifer/jen"

	"github.com/AkshayR278/automata/internal/codegen"
	"github.com/AkshayR278/automata/pkg/machine"
)

// generateTables emits the three per-matcher lookup tables: a byte-to-symbol
// map, the row-major DFA transition table, and the accept flags. The matcher
// walks these tables instead of re-running subset construction at runtime.
func (c *Compiler) generateTables() error {
	dfa := c.config.DFA
	alphabet := dfa.Alphabet()

	for _, sym := range alphabet {
		if sym > 127 {
			return fmt.Errorf("symbol %q is outside the single-byte range", sym)
		}
	}

	c.logger.Log("Generating DFA tables (states: %d, symbols: %d)", dfa.NumStates(), len(alphabet))

	// Symbol table: input byte -> alphabet index plus one; zero marks a byte
	// outside the alphabet.
	symbolEntries := make([]jen.Code, 0, len(alphabet))
	for i, sym := range alphabet {
		symbolEntries = append(symbolEntries,
			jen.LitRune(sym).Op(":").Lit(i+1),
		)
	}
	c.file.Comment("Input byte to alphabet index plus one; zero means no transition.")
	c.file.Var().Id(codegen.TableName(c.config.Name, codegen.SymbolTableSuffix)).
		Op("=").Index(jen.Lit(256)).Int().Values(symbolEntries...)
	c.file.Line()

	// Transition table, row-major: state*len(alphabet) + symbol index.
	// -1 is the dead state.
	transEntries := make([]jen.Code, 0, dfa.NumStates()*len(alphabet))
	for s := 0; s < dfa.NumStates(); s++ {
		for _, sym := range alphabet {
			transEntries = append(transEntries, jen.Lit(int(dfa.Step(machine.DFAState(s), sym))))
		}
	}
	c.file.Commentf("Row-major transition table: state*%d + symbol index; -1 is dead.", len(alphabet))
	c.file.Var().Id(codegen.TableName(c.config.Name, codegen.TransitionTableSuffix)).
		Op("=").Index().Int().Values(transEntries...)
	c.file.Line()

	acceptEntries := make([]jen.Code, 0, dfa.NumStates())
	for s := 0; s < dfa.NumStates(); s++ {
		acceptEntries = append(acceptEntries, jen.Lit(dfa.IsAccepting(machine.DFAState(s))))
	}
	c.file.Var().Id(codegen.TableName(c.config.Name, codegen.AcceptTableSuffix)).
		Op("=").Index().Bool().Values(acceptEntries...)
	c.file.Line()

	return nil
}

// generateMatchFunction generates the DFA walk shared by MatchString and
// MatchBytes; both index input byte-wise, so the body is identical.
func (c *Compiler) generateMatchFunction() []jen.Code {
	name := c.config.Name
	numSymbols := len(c.config.DFA.Alphabet())

	return []jen.Code{
		jen.Id(codegen.StateName).Op(":=").Lit(0),
		jen.For(
			jen.Id(codegen.IndexName).Op(":=").Lit(0),
			jen.Id(codegen.IndexName).Op("<").Len(jen.Id(codegen.InputName)),
			jen.Id(codegen.IndexName).Op("++"),
		).Block(
			jen.Id(codegen.SymbolName).Op(":=").Id(codegen.TableName(name, codegen.SymbolTableSuffix)).
				Index(jen.Id(codegen.InputName).Index(jen.Id(codegen.IndexName))),
			jen.If(jen.Id(codegen.SymbolName).Op("==").Lit(0)).Block(
				jen.Return(jen.False()),
			),
			jen.Id(codegen.StateName).Op("=").Id(codegen.TableName(name, codegen.TransitionTableSuffix)).
				Index(jen.Id(codegen.StateName).Op("*").Lit(numSymbols).Op("+").Id(codegen.SymbolName).Op("-").Lit(1)),
			jen.If(jen.Id(codegen.StateName).Op("<").Lit(0)).Block(
				jen.Return(jen.False()),
			),
		),
		jen.Return(jen.Id(codegen.TableName(name, codegen.AcceptTableSuffix)).Index(jen.Id(codegen.StateName))),
	}
}
