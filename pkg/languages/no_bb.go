/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: no_bb.go
Description: Target language no_bb. L = { w in {a,b}* : 'bb' is not a substring of w }.
*/

package languages

import "github.com/kleascm/akaylee-reglearn/pkg/automaton"

func newNoBB() *language {
	return &language{
		name:          "no_bb",
		description:   "Words over {a,b} that do not contain the substring 'bb'.",
		alphabet:      []string{"a", "b"},
		defaultMaxLen: 10,
		build:         noBBDFA,
	}
}

// noBBDFA builds the reference DFA for forbidding 'bb'.
func noBBDFA() (*automaton.DFA, error) {
	d, err := automaton.New([]string{"a", "b"})
	if err != nil {
		return nil, err
	}

	// q0: last symbol is not 'b' (or empty)
	// q1: last symbol is 'b'
	// q2: already saw 'bb' (rejecting sink)
	d.AddState(0, true)
	d.AddState(1, true)
	d.AddState(2, false)
	d.SetStart(0)

	for _, t := range []struct {
		from int
		sym  string
		to   int
	}{
		{0, "a", 0},
		{0, "b", 1},
		{1, "a", 0},
		{1, "b", 2},
		{2, "a", 2},
		{2, "b", 2},
	} {
		if err := d.AddTransition(t.from, t.sym, t.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}
