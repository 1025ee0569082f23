package machine

import (
	"errors"
	"testing"
)

// postfixString renders a postfix token stream for assertions, using '.' for
// concatenation and '_' for the epsilon operand.
func postfixString(tokens []token) string {
	out := make([]rune, 0, len(tokens))
	for _, t := range tokens {
		switch t.kind {
		case tokenSymbol:
			out = append(out, t.sym)
		case tokenEpsilon:
			out = append(out, epsilonMarker)
		case tokenUnion:
			out = append(out, '|')
		case tokenConcat:
			out = append(out, '.')
		case tokenStar:
			out = append(out, '*')
		}
	}
	return string(out)
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"single symbol", "a", "a"},
		{"concatenation", "ab", "ab."},
		{"union", "a|b", "ab|"},
		{"star", "a*", "a*"},
		{"star binds tighter than union", "a|b*", "ab*|"},
		{"union binds weaker than concat", "ab|cd", "ab.cd.|"},
		{"grouping", "(a|b)c", "ab|c."},
		{"classic", "(a|b)*abb", "ab|*a.b.b."},
		{"whitespace ignored", "a b", "ab."},
		{"epsilon operand", "_a", "_a."},
		{"star then operand concatenates", "a*b", "a*b."},
		{"digits are symbols", "0|1", "01|"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePattern(tt.pattern)
			if err != nil {
				t.Fatalf("parsePattern(%q) returned error: %v", tt.pattern, err)
			}
			if s := postfixString(got); s != tt.want {
				t.Errorf("parsePattern(%q) = %q, want %q", tt.pattern, s, tt.want)
			}
		})
	}
}

func TestParsePatternErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"unmatched open paren", "(a"},
		{"unmatched close paren", "a)"},
		{"bare close paren", ")"},
		{"nested unmatched open", "((a)"},
		{"unsupported operator", "a+"},
		{"unsupported anchor", "^a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parsePattern(tt.pattern)
			if err == nil {
				t.Fatalf("parsePattern(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, ErrMalformedPattern) {
				t.Errorf("parsePattern(%q) error = %v, want ErrMalformedPattern", tt.pattern, err)
			}
		})
	}
}

func TestInsertConcatOnlyBetweenOperands(t *testing.T) {
	// "a|b" must not gain a concatenation around the union operator.
	tokens, err := tokenize("a|b")
	if err != nil {
		t.Fatal(err)
	}
	withConcat := insertConcat(tokens)
	if len(withConcat) != len(tokens) {
		t.Errorf("insertConcat changed token count for a|b: %d -> %d", len(tokens), len(withConcat))
	}
}
