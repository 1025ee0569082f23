package machine

import (
	"fmt"
	"unicode"
)

// tokenKind identifies a pattern token.
type tokenKind int

const (
	tokenSymbol tokenKind = iota
	tokenEpsilon
	tokenUnion
	tokenConcat
	tokenStar
	tokenLParen
	tokenRParen
)

// token is a single pattern token. sym is set only for tokenSymbol.
type token struct {
	kind tokenKind
	sym  rune
}

// epsilonMarker is the pattern-level spelling of the epsilon operand.
const epsilonMarker = '_'

// tokenize splits a pattern into tokens. Whitespace is ignored; any rune
// outside the pattern language is rejected.
func tokenize(pattern string) ([]token, error) {
	var tokens []token
	for _, r := range pattern {
		switch {
		case unicode.IsSpace(r):
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			tokens = append(tokens, token{kind: tokenSymbol, sym: r})
		case r == epsilonMarker:
			tokens = append(tokens, token{kind: tokenEpsilon})
		case r == '|':
			tokens = append(tokens, token{kind: tokenUnion})
		case r == '*':
			tokens = append(tokens, token{kind: tokenStar})
		case r == '(':
			tokens = append(tokens, token{kind: tokenLParen})
		case r == ')':
			tokens = append(tokens, token{kind: tokenRParen})
		default:
			return nil, fmt.Errorf("unexpected character %q: %w", r, ErrMalformedPattern)
		}
	}
	return tokens, nil
}

// endsOperand reports whether a token can be the last token of an operand.
func endsOperand(t token) bool {
	switch t.kind {
	case tokenSymbol, tokenEpsilon, tokenRParen, tokenStar:
		return true
	}
	return false
}

// startsOperand reports whether a token can be the first token of an operand.
func startsOperand(t token) bool {
	switch t.kind {
	case tokenSymbol, tokenEpsilon, tokenLParen:
		return true
	}
	return false
}

// insertConcat inserts the explicit concatenation operator between adjacent
// tokens wherever the pattern language implies it.
func insertConcat(tokens []token) []token {
	if len(tokens) == 0 {
		return tokens
	}
	out := make([]token, 0, 2*len(tokens))
	for i, t := range tokens {
		out = append(out, t)
		if i+1 < len(tokens) && endsOperand(t) && startsOperand(tokens[i+1]) {
			out = append(out, token{kind: tokenConcat})
		}
	}
	return out
}

// precedence returns the binding strength of an operator token.
// Union binds weakest, then concatenation, then repetition.
func precedence(k tokenKind) int {
	switch k {
	case tokenUnion:
		return 1
	case tokenConcat:
		return 2
	case tokenStar:
		return 3
	}
	return 0
}

// toPostfix converts an infix token stream to postfix via shunting-yard.
// All operators are left-associative. Parentheses are grouping only and do
// not appear in the output; an unmatched parenthesis on either side fails
// with ErrMalformedPattern.
func toPostfix(tokens []token) ([]token, error) {
	var output []token
	var ops []token

	for _, t := range tokens {
		switch t.kind {
		case tokenSymbol, tokenEpsilon:
			output = append(output, t)
		case tokenLParen:
			ops = append(ops, t)
		case tokenRParen:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenLParen {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			if len(ops) == 0 {
				return nil, fmt.Errorf("unmatched ')': %w", ErrMalformedPattern)
			}
			ops = ops[:len(ops)-1]
		default:
			for len(ops) > 0 && ops[len(ops)-1].kind != tokenLParen &&
				precedence(ops[len(ops)-1].kind) >= precedence(t.kind) {
				output = append(output, ops[len(ops)-1])
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		}
	}

	for len(ops) > 0 {
		top := ops[len(ops)-1]
		if top.kind == tokenLParen {
			return nil, fmt.Errorf("unmatched '(': %w", ErrMalformedPattern)
		}
		output = append(output, top)
		ops = ops[:len(ops)-1]
	}

	return output, nil
}

// parsePattern runs the full tokenize / concat-insertion / postfix pipeline.
func parsePattern(pattern string) ([]token, error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}
	return toPostfix(insertConcat(tokens))
}
