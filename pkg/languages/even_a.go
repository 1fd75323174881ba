/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: even_a.go
Description: Target language even_a. L = { w in {a,b}* : count_a(w) is even }.
*/

package languages

import "github.com/kleascm/akaylee-reglearn/pkg/automaton"

func newEvenA() *language {
	return &language{
		name:          "even_a",
		description:   "Words over {a,b} with an even number of 'a'.",
		alphabet:      []string{"a", "b"},
		defaultMaxLen: 10,
		build:         evenADFA,
	}
}

// evenADFA builds the reference DFA for an even number of 'a'.
func evenADFA() (*automaton.DFA, error) {
	d, err := automaton.New([]string{"a", "b"})
	if err != nil {
		return nil, err
	}

	// q0 = even a-count (accepting), q1 = odd a-count
	d.AddState(0, true)
	d.AddState(1, false)
	d.SetStart(0)

	// flip on 'a', stay on 'b'
	for _, t := range []struct {
		from int
		sym  string
		to   int
	}{
		{0, "a", 1},
		{1, "a", 0},
		{0, "b", 0},
		{1, "b", 1},
	} {
		if err := d.AddTransition(t.from, t.sym, t.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}
