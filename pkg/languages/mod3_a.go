/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: mod3_a.go
Description: Target language mod3_a. L = { w in {a,b}* : count_a(w) % 3 == 0 }.
*/

package languages

import "github.com/kleascm/akaylee-reglearn/pkg/automaton"

func newMod3A() *language {
	return &language{
		name:          "mod3_a",
		description:   "Words over {a,b} with the number of 'a' divisible by 3.",
		alphabet:      []string{"a", "b"},
		defaultMaxLen: 10,
		build:         mod3ADFA,
	}
}

// mod3ADFA builds the reference DFA for count_a % 3 == 0.
func mod3ADFA() (*automaton.DFA, error) {
	d, err := automaton.New([]string{"a", "b"})
	if err != nil {
		return nil, err
	}

	// states represent a_count mod 3
	d.AddState(0, true)
	d.AddState(1, false)
	d.AddState(2, false)
	d.SetStart(0)

	// rotate on 'a', stay on 'b'
	for _, t := range []struct {
		from int
		sym  string
		to   int
	}{
		{0, "a", 1},
		{1, "a", 2},
		{2, "a", 0},
		{0, "b", 0},
		{1, "b", 1},
		{2, "b", 2},
	} {
		if err := d.AddTransition(t.from, t.sym, t.to); err != nil {
			return nil, err
		}
	}
	return d, nil
}
