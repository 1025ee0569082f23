// Package render formats automata as human-readable transition tables.
// The core packages never perform I/O; callers decide where the text goes.
package render

import (
	"fmt"
	"strings"

	"github.com/AkshayR278/automata/pkg/machine"
)

// EmptySet denotes the dead state and the empty target set.
const EmptySet = "∅"

// epsilonLabel denotes the epsilon transition label.
const epsilonLabel = "ε"

// symbolLabel renders a transition label, spelling out epsilon.
func symbolLabel(sym rune) string {
	if sym == machine.Epsilon {
		return epsilonLabel
	}
	return string(sym)
}

// stateSet renders a set of NFA states as {0,1,2}, or the empty-set symbol.
func stateSet(states []machine.State) string {
	if len(states) == 0 {
		return EmptySet
	}
	parts := make([]string, len(states))
	for i, s := range states {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// NFATable renders the states and transitions of an NFA. Transitions follow
// the δ(state, symbol) -> targets convention; epsilon edges are listed after
// the alphabet edges of each state.
func NFATable(n *machine.NFA) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "States: %d\n", n.NumStates())
	fmt.Fprintf(&sb, "Start: %d, Accept: %d\n", n.Start(), n.Accept())
	sb.WriteString("Transitions:\n")

	labels := append(n.Alphabet(), machine.Epsilon)
	for s := 0; s < n.NumStates(); s++ {
		for _, sym := range labels {
			targets := n.Transitions(machine.State(s), sym)
			if len(targets) == 0 {
				continue
			}
			fmt.Fprintf(&sb, "  δ(%d, %s) -> %s\n", s, symbolLabel(sym), stateSet(targets))
		}
	}

	return sb.String()
}

// DFATable renders the states and transitions of a DFA. States are shown as
// their underlying NFA state sets, with start and accept markers; the dead
// state appears as the empty-set symbol when any transition reaches it.
func DFATable(d *machine.DFA) string {
	var sb strings.Builder
	alphabet := d.Alphabet()

	fmt.Fprintf(&sb, "Alphabet: %s\n", alphabetLine(alphabet))
	sb.WriteString("States:\n")

	deadReachable := false
	for s := 0; s < d.NumStates(); s++ {
		for _, sym := range alphabet {
			if d.Step(machine.DFAState(s), sym) == machine.Dead {
				deadReachable = true
			}
		}
	}

	for s := 0; s < d.NumStates(); s++ {
		marker := ""
		if machine.DFAState(s) == d.Start() {
			marker += " (start)"
		}
		if d.IsAccepting(machine.DFAState(s)) {
			marker += " (accept)"
		}
		fmt.Fprintf(&sb, "  %s%s\n", stateSet(d.SetFor(machine.DFAState(s))), marker)
	}
	if deadReachable {
		fmt.Fprintf(&sb, "  %s\n", EmptySet)
	}

	sb.WriteString("\nTransitions (δ):\n")
	for s := 0; s < d.NumStates(); s++ {
		from := stateSet(d.SetFor(machine.DFAState(s)))
		for _, sym := range alphabet {
			target := d.Step(machine.DFAState(s), sym)
			fmt.Fprintf(&sb, "  δ(%s, %s) -> %s\n", from, string(sym), stateSet(d.SetFor(target)))
		}
	}
	if deadReachable {
		for _, sym := range alphabet {
			fmt.Fprintf(&sb, "  δ(%s, %s) -> %s\n", EmptySet, string(sym), EmptySet)
		}
	}

	return sb.String()
}

// alphabetLine renders the alphabet as a comma-separated list.
func alphabetLine(alphabet []rune) string {
	if len(alphabet) == 0 {
		return "(empty)"
	}
	parts := make([]string, len(alphabet))
	for i, sym := range alphabet {
		parts[i] = string(sym)
	}
	return strings.Join(parts, ", ")
}
