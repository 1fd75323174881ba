/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: contains_aa.go
Description: Target language contains_aa. L = { w in {a,b}* : 'aa' is a substring of w }.
*/

package languages

import "github.com/kleascm/akaylee-reglearn/pkg/automaton"

func newContainsAA() *language {
	return &language{
		name:          "contains_aa",
		description:   "Words over {a,b} containing the substring 'aa'.",
		alphabet:      []string{"a", "b"},
		defaultMaxLen: 10,
		build:         containsAADFA,
	}
}

// containsAADFA builds the reference DFA for containing 'aa'.
func containsAADFA() (*automaton.DFA, error) {
	d, err := automaton.New([]string{"a", "b"})
	if err != nil {
		return nil, err
	}

	// q0: no trailing 'a'
	// q1: last symbol was 'a'
	// q2: found 'aa' somewhere (accepting sink)
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
		{1, "a", 2},
		{1, "b", 0},
		{2, "a", 2},
		{2, "b", 2},
	} {
		if err := d.AddTransition(t.from, t.sym, t.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}
