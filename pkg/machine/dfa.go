package machine

import (
	"strconv"
	"strings"
)

// DFAState identifies a state of a DFA produced by Determinize.
type DFAState int

// Dead is the absorbing, never-accepting DFA state. It represents the empty
// set of NFA states and is not materialized in the state table: Step returns
// it for any transition into the empty set and for every step out of it.
const Dead DFAState = -1

// DFA is a deterministic finite automaton produced by subset construction.
// Each state is an immutable set of NFA states; the transition function is
// total over states and the alphabet, with Dead closing the gaps.
type DFA struct {
	alphabet []rune
	sets     [][]State
	trans    []map[rune]DFAState
	accept   []bool
}

// epsilonClosure returns the sorted set of states reachable from set using
// only epsilon transitions, computed as a worklist fixpoint.
func epsilonClosure(n *NFA, set []State) []State {
	inClosure := make([]bool, n.NumStates())
	stack := make([]State, 0, len(set))
	for _, s := range set {
		if !inClosure[s] {
			inClosure[s] = true
			stack = append(stack, s)
		}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.edges[s] {
			if e.sym == Epsilon && !inClosure[e.to] {
				inClosure[e.to] = true
				stack = append(stack, e.to)
			}
		}
	}
	var out []State
	for s, in := range inClosure {
		if in {
			out = append(out, State(s))
		}
	}
	return out
}

// move returns the sorted set of states reachable from set by one transition
// labeled sym.
func move(n *NFA, set []State, sym rune) []State {
	seen := make([]bool, n.NumStates())
	for _, s := range set {
		for _, e := range n.edges[s] {
			if e.sym == sym {
				seen[e.to] = true
			}
		}
	}
	var out []State
	for s, in := range seen {
		if in {
			out = append(out, State(s))
		}
	}
	return out
}

// setKey renders a sorted state set as a canonical map key.
func setKey(set []State) string {
	var sb strings.Builder
	for i, s := range set {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(int(s)))
	}
	return sb.String()
}

// Determinize converts an NFA into an equivalent DFA via subset construction.
// It is total for any well-formed NFA and never fails. Termination is bounded
// by the number of distinct reachable subsets of NFA states.
func Determinize(n *NFA) *DFA {
	d := &DFA{alphabet: n.Alphabet()}
	stateMap := make(map[string]DFAState)

	add := func(set []State) DFAState {
		id := DFAState(len(d.sets))
		stateMap[setKey(set)] = id
		d.sets = append(d.sets, set)
		d.trans = append(d.trans, make(map[rune]DFAState, len(d.alphabet)))
		accepting := false
		for _, s := range set {
			if n.IsAccept(s) {
				accepting = true
				break
			}
		}
		d.accept = append(d.accept, accepting)
		return id
	}

	start := epsilonClosure(n, []State{n.Start()})
	worklist := []DFAState{add(start)}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		for _, sym := range d.alphabet {
			next := move(n, d.sets[cur], sym)
			if len(next) == 0 {
				d.trans[cur][sym] = Dead
				continue
			}
			next = epsilonClosure(n, next)
			target, ok := stateMap[setKey(next)]
			if !ok {
				target = add(next)
				worklist = append(worklist, target)
			}
			d.trans[cur][sym] = target
		}
	}

	return d
}

// NumStates returns the number of discovered DFA states, not counting Dead.
func (d *DFA) NumStates() int { return len(d.sets) }

// Start returns the start state.
func (d *DFA) Start() DFAState { return 0 }

// IsAccepting reports whether s is accepting. Dead never accepts.
func (d *DFA) IsAccepting(s DFAState) bool {
	if s < 0 || int(s) >= len(d.accept) {
		return false
	}
	return d.accept[s]
}

// Step returns the state reached from s on sym. The function is total: Dead
// absorbs every symbol, and any symbol outside the alphabet leads to Dead.
func (d *DFA) Step(s DFAState, sym rune) DFAState {
	if s < 0 || int(s) >= len(d.trans) {
		return Dead
	}
	target, ok := d.trans[s][sym]
	if !ok {
		return Dead
	}
	return target
}

// SetFor returns the NFA states underlying s, sorted. Dead maps to the empty
// set.
func (d *DFA) SetFor(s DFAState) []State {
	if s < 0 || int(s) >= len(d.sets) {
		return nil
	}
	out := make([]State, len(d.sets[s]))
	copy(out, d.sets[s])
	return out
}

// Alphabet returns the sorted input alphabet, excluding Epsilon.
func (d *DFA) Alphabet() []rune {
	out := make([]rune, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}
