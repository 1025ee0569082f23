package machine

import (
	"errors"
	"testing"
)

func TestCompileSingleSymbol(t *testing.T) {
	nfa, err := CompilePattern("x")
	if err != nil {
		t.Fatalf("CompilePattern failed: %v", err)
	}

	if nfa.NumStates() != 2 {
		t.Errorf("NumStates() = %d, want 2", nfa.NumStates())
	}
	targets := nfa.Transitions(nfa.Start(), 'x')
	if len(targets) != 1 || targets[0] != nfa.Accept() {
		t.Errorf("Transitions(start, 'x') = %v, want [%d]", targets, nfa.Accept())
	}

	tests := []struct {
		input string
		want  bool
	}{
		{"x", true},
		{"", false},
		{"y", false},
		{"xx", false},
	}
	for _, tt := range tests {
		if got := nfa.Accepts(tt.input); got != tt.want {
			t.Errorf("Accepts(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestCompileConcatenation(t *testing.T) {
	nfa, err := CompilePattern("ab")
	if err != nil {
		t.Fatalf("CompilePattern failed: %v", err)
	}
	for input, want := range map[string]bool{
		"ab": true, "": false, "a": false, "b": false, "ba": false, "abb": false,
	} {
		if got := nfa.Accepts(input); got != want {
			t.Errorf("Accepts(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCompileUnion(t *testing.T) {
	nfa, err := CompilePattern("a|b")
	if err != nil {
		t.Fatalf("CompilePattern failed: %v", err)
	}
	for input, want := range map[string]bool{
		"a": true, "b": true, "": false, "ab": false, "c": false,
	} {
		if got := nfa.Accepts(input); got != want {
			t.Errorf("Accepts(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestCompileStar(t *testing.T) {
	nfa, err := CompilePattern("a*")
	if err != nil {
		t.Fatalf("CompilePattern failed: %v", err)
	}
	for _, input := range []string{"", "a", "aa", "aaa", "aaaa", "aaaaa"} {
		if !nfa.Accepts(input) {
			t.Errorf("Accepts(%q) = false, want true", input)
		}
	}
	for _, input := range []string{"b", "ab", "aab", "ba"} {
		if nfa.Accepts(input) {
			t.Errorf("Accepts(%q) = true, want false", input)
		}
	}
}

func TestCompileEpsilonMarker(t *testing.T) {
	nfa, err := CompilePattern("_")
	if err != nil {
		t.Fatalf("CompilePattern(_) failed: %v", err)
	}
	if !nfa.Accepts("") {
		t.Error("epsilon NFA rejects the empty string")
	}
	if nfa.Accepts("a") {
		t.Error("epsilon NFA accepts a nonempty string")
	}
	if alpha := nfa.Alphabet(); len(alpha) != 0 {
		t.Errorf("Alphabet() = %v, want empty", alpha)
	}
}

func TestCompileMalformed(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
	}{
		{"operator with no operand", "*a"},
		{"dangling union", "a|"},
		{"leading union", "|a"},
		{"empty pattern", ""},
		{"only operators", "|*"},
		{"double union", "a||b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nfa, err := CompilePattern(tt.pattern)
			if err == nil {
				t.Fatalf("CompilePattern(%q) succeeded, want error", tt.pattern)
			}
			if !errors.Is(err, ErrMalformedPattern) {
				t.Errorf("CompilePattern(%q) error = %v, want ErrMalformedPattern", tt.pattern, err)
			}
			if nfa != nil {
				t.Errorf("CompilePattern(%q) returned a partial automaton", tt.pattern)
			}
		})
	}
}

func TestAlphabetExcludesEpsilon(t *testing.T) {
	nfa, err := CompilePattern("(a|b)*c")
	if err != nil {
		t.Fatalf("CompilePattern failed: %v", err)
	}
	got := nfa.Alphabet()
	want := []rune{'a', 'b', 'c'}
	if len(got) != len(want) {
		t.Fatalf("Alphabet() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Alphabet()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestIndependentConstructions(t *testing.T) {
	// State identities are per construction; a second compile starts fresh.
	first, err := CompilePattern("a")
	if err != nil {
		t.Fatal(err)
	}
	second, err := CompilePattern("b")
	if err != nil {
		t.Fatal(err)
	}
	if first.Start() != second.Start() {
		t.Errorf("fresh constructions should reuse identities: %d vs %d", first.Start(), second.Start())
	}
}
