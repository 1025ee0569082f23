package compiler

import (
	"fmt"

	"github.com/dave/jennifer/jen"
)

// generateTestFile writes a _test.go file next to the generated matcher. The
// expected results are baked in at generation time by running the interpreted
// DFA over the configured inputs, so the generated test stands alone.
func (c *Compiler) generateTestFile() error {
	inputs := c.config.TestFileInputs
	if len(inputs) == 0 {
		inputs = []string{"example"}
	}

	c.logger.Log("Generating test file with %d inputs", len(inputs))

	f := jen.NewFile(c.config.Package)
	f.Comment(fmt.Sprintf("Code generated by automata for pattern: %s", c.config.Pattern))
	f.Comment("DO NOT EDIT.")
	f.Line()

	cases := make([]jen.Code, 0, len(inputs))
	for _, input := range inputs {
		cases = append(cases, jen.Values(jen.Lit(input), jen.Lit(c.config.DFA.Accepts(input))))
	}

	f.Func().Id(fmt.Sprintf("Test%sMatchString", c.config.Name)).
		Params(jen.Id("t").Op("*").Qual("testing", "T")).
		Block(
			jen.Id("tests").Op(":=").Index().Struct(
				jen.Id("input").String(),
				jen.Id("want").Bool(),
			).Values(cases...),
			jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
				jen.If(
					jen.Id("got").Op(":=").Id(fmt.Sprintf("Compiled%s", c.config.Name)).Dot("MatchString").Call(jen.Id("tt").Dot("input")),
					jen.Id("got").Op("!=").Id("tt").Dot("want"),
				).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit("MatchString(%q) = %v, want %v"),
						jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want"),
					),
				),
				jen.If(
					jen.Id("got").Op(":=").Id(fmt.Sprintf("Compiled%s", c.config.Name)).Dot("MatchBytes").Call(jen.Index().Byte().Call(jen.Id("tt").Dot("input"))),
					jen.Id("got").Op("!=").Id("tt").Dot("want"),
				).Block(
					jen.Id("t").Dot("Errorf").Call(
						jen.Lit("MatchBytes(%q) = %v, want %v"),
						jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want"),
					),
				),
			),
		)

	if err := f.Save(c.testFilePath()); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}

	return formatFile(c.testFilePath())
}
