/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: ends_with_ab.go
Description: Target language ends_with_ab. L = { w in {a,b}* : w ends with 'ab' }.
*/

package languages

import "github.com/kleascm/akaylee-reglearn/pkg/automaton"

func newEndsWithAB() *language {
	return &language{
		name:          "ends_with_ab",
		description:   "Words over {a,b} ending with the suffix 'ab'.",
		alphabet:      []string{"a", "b"},
		defaultMaxLen: 10,
		build:         endsWithABDFA,
	}
}

// endsWithABDFA builds the reference DFA for the suffix pattern 'ab'.
func endsWithABDFA() (*automaton.DFA, error) {
	d, err := automaton.New([]string{"a", "b"})
	if err != nil {
		return nil, err
	}

	// q0: no partial match
	// q1: last symbol was 'a'
	// q2: last two symbols were 'ab' (accepting)
	d.AddState(0, false)
	d.AddState(1, false)
	d.AddState(2, true)
	d.SetStart(0)

	for _, t := range []struct {
		from int
		sym  string
		to   int
	}{
		{0, "a", 1},
		{0, "b", 0},
		{1, "a", 1},
		{1, "b", 2},
		{2, "a", 1},
		{2, "b", 0},
	} {
		if err := d.AddTransition(t.from, t.sym, t.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}
