package machine

import (
	"errors"
	"fmt"
	"sort"
)

// ErrMalformedPattern is returned when a pattern cannot be parsed or when the
// postfix stream cannot satisfy operator arity during construction. Callers
// match it with errors.Is; the wrapping message carries the detail.
var ErrMalformedPattern = errors.New("malformed pattern")

// Epsilon labels a transition that consumes no input.
const Epsilon rune = 0

// State identifies an automaton state. States are indexes into the arena of
// the construction that produced them and carry no payload.
type State int

// edge is a single labeled transition out of a state.
type edge struct {
	sym rune
	to  State
}

// NFA is a nondeterministic finite automaton with epsilon transitions.
// It has exactly one start and one accept state, and stores transitions as
// per-state adjacency lists so composing fragments only ever appends edges.
type NFA struct {
	start  State
	accept State
	edges  [][]edge
}

// fragment is an in-progress sub-automaton on the builder stack. Its states
// live in the builder's shared arena.
type fragment struct {
	start  State
	accept State
}

// builder owns the state arena and the fragment stack for one construction.
// The state counter is the arena length, so independent constructions never
// share identities.
type builder struct {
	edges [][]edge
	stack []fragment
}

func (b *builder) newState() State {
	b.edges = append(b.edges, nil)
	return State(len(b.edges) - 1)
}

func (b *builder) addEdge(from State, sym rune, to State) {
	b.edges[from] = append(b.edges[from], edge{sym: sym, to: to})
}

func (b *builder) push(f fragment) {
	b.stack = append(b.stack, f)
}

func (b *builder) pop() (fragment, bool) {
	if len(b.stack) == 0 {
		return fragment{}, false
	}
	f := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return f, true
}

// operand pushes the 2-state fragment for a single symbol (or epsilon).
func (b *builder) operand(sym rune) {
	start, accept := b.newState(), b.newState()
	b.addEdge(start, sym, accept)
	b.push(fragment{start: start, accept: accept})
}

// concat joins two fragments in sequence: A's accept reaches B's start by
// an epsilon edge.
func (b *builder) concat() error {
	second, ok := b.pop()
	if !ok {
		return fmt.Errorf("concatenation with no operands: %w", ErrMalformedPattern)
	}
	first, ok := b.pop()
	if !ok {
		return fmt.Errorf("concatenation with one operand: %w", ErrMalformedPattern)
	}
	b.addEdge(first.accept, Epsilon, second.start)
	b.push(fragment{start: first.start, accept: second.accept})
	return nil
}

// union joins two fragments in parallel behind a fresh start/accept pair.
func (b *builder) union() error {
	second, ok := b.pop()
	if !ok {
		return fmt.Errorf("union with no operands: %w", ErrMalformedPattern)
	}
	first, ok := b.pop()
	if !ok {
		return fmt.Errorf("union with one operand: %w", ErrMalformedPattern)
	}
	start, accept := b.newState(), b.newState()
	b.addEdge(start, Epsilon, first.start)
	b.addEdge(start, Epsilon, second.start)
	b.addEdge(first.accept, Epsilon, accept)
	b.addEdge(second.accept, Epsilon, accept)
	b.push(fragment{start: start, accept: accept})
	return nil
}

// star wraps the top fragment with the Kleene-star epsilon wiring: enter,
// skip (zero occurrences), repeat, exit.
func (b *builder) star() error {
	inner, ok := b.pop()
	if !ok {
		return fmt.Errorf("repetition with no operand: %w", ErrMalformedPattern)
	}
	start, accept := b.newState(), b.newState()
	b.addEdge(start, Epsilon, inner.start)
	b.addEdge(start, Epsilon, accept)
	b.addEdge(inner.accept, Epsilon, inner.start)
	b.addEdge(inner.accept, Epsilon, accept)
	b.push(fragment{start: start, accept: accept})
	return nil
}

// buildPostfix folds a postfix token stream into a single NFA. Construction
// is all-or-nothing: any arity failure returns ErrMalformedPattern and no
// partial automaton.
func buildPostfix(postfix []token) (*NFA, error) {
	b := &builder{}
	for _, t := range postfix {
		var err error
		switch t.kind {
		case tokenSymbol:
			b.operand(t.sym)
		case tokenEpsilon:
			b.operand(Epsilon)
		case tokenConcat:
			err = b.concat()
		case tokenUnion:
			err = b.union()
		case tokenStar:
			err = b.star()
		default:
			err = fmt.Errorf("unexpected token in postfix stream: %w", ErrMalformedPattern)
		}
		if err != nil {
			return nil, err
		}
	}

	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%d fragments remain after construction: %w", len(b.stack), ErrMalformedPattern)
	}
	final := b.stack[0]
	return &NFA{start: final.start, accept: final.accept, edges: b.edges}, nil
}

// NumStates returns the number of states in the automaton.
func (n *NFA) NumStates() int { return len(n.edges) }

// Start returns the start state.
func (n *NFA) Start() State { return n.start }

// Accept returns the accept state.
func (n *NFA) Accept() State { return n.accept }

// IsAccept reports whether s is the accept state.
func (n *NFA) IsAccept(s State) bool { return s == n.accept }

// Transitions returns the set of states reachable from s by one transition
// labeled sym. Use Epsilon to look up epsilon transitions. The result is a
// fresh sorted slice; nil means no such transition.
func (n *NFA) Transitions(s State, sym rune) []State {
	if s < 0 || int(s) >= len(n.edges) {
		return nil
	}
	var out []State
	for _, e := range n.edges[s] {
		if e.sym == sym {
			out = append(out, e.to)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Alphabet returns the sorted set of symbols appearing on transitions,
// excluding Epsilon.
func (n *NFA) Alphabet() []rune {
	seen := make(map[rune]bool)
	for _, edges := range n.edges {
		for _, e := range edges {
			if e.sym != Epsilon {
				seen[e.sym] = true
			}
		}
	}
	out := make([]rune, 0, len(seen))
	for r := range seen {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
