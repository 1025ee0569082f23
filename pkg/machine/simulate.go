package machine

// Accepts reports whether the NFA accepts input, by simulating all live
// states simultaneously: epsilon-close the start state, then alternate move
// and closure per input symbol.
func (n *NFA) Accepts(input string) bool {
	current := epsilonClosure(n, []State{n.start})
	for _, r := range input {
		current = move(n, current, r)
		if len(current) == 0 {
			return false
		}
		current = epsilonClosure(n, current)
	}
	for _, s := range current {
		if n.IsAccept(s) {
			return true
		}
	}
	return false
}

// Accepts reports whether the DFA accepts input. A symbol outside the
// alphabet drives the run into Dead, where it stays.
func (d *DFA) Accepts(input string) bool {
	s := d.Start()
	for _, r := range input {
		s = d.Step(s, r)
		if s == Dead {
			return false
		}
	}
	return d.IsAccepting(s)
}
