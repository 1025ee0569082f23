// Package machine compiles a small regular-expression pattern language into
// finite automata: a Thompson-constructed NFA with epsilon transitions, and
// an equivalent DFA built by subset construction.
//
// The pattern language covers alphanumeric symbols, '|' (union), '*'
// (repetition), '(' ')' grouping, '_' as the epsilon operand, and implicit
// concatenation. Construction is pure and in-memory; each call owns its own
// state counter, so independent patterns may be compiled concurrently.
package machine

// CompilePattern parses pattern and builds its NFA via Thompson construction.
// It fails with an error matching ErrMalformedPattern when the pattern cannot
// be parsed or operator arity cannot be satisfied; no partial automaton is
// ever returned.
func CompilePattern(pattern string) (*NFA, error) {
	postfix, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	return buildPostfix(postfix)
}
