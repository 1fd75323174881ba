/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: automaton.go
Description: Core deterministic finite automaton implementation. Provides incremental
construction (states, start state, accepting set, transitions), stepping, and word
acceptance over an arbitrary finite alphabet. Immutable by convention once handed
outside a builder; derived automata (minimize, product) are always new instances.
*/

package automaton

import (
	"fmt"
	"sort"
	"strings"
)

// DFA represents a deterministic finite automaton.
// States are small integer identifiers. Transitions form a partial function:
// a missing entry means "undefined", which Accepts treats as rejection, not
// as a structural fault. Determinism is enforced by construction — adding a
// transition for an existing (state, symbol) pair overwrites the old target.
type DFA struct {
	alphabet    []string
	symbols     map[string]int // symbol -> alphabet index
	states      map[int]struct{}
	accepting   map[int]struct{}
	transitions map[int]map[string]int
	start       int
	hasStart    bool
}

// New creates an empty DFA over the given ordered alphabet.
func New(alphabet []string) (*DFA, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	symbols := make(map[string]int, len(alphabet))
	ordered := make([]string, len(alphabet))
	for i, sym := range alphabet {
		if _, dup := symbols[sym]; dup {
			return nil, fmt.Errorf("%w: duplicate symbol %q", ErrInvalidSymbol, sym)
		}
		symbols[sym] = i
		ordered[i] = sym
	}
	return &DFA{
		alphabet:    ordered,
		symbols:     symbols,
		states:      make(map[int]struct{}),
		accepting:   make(map[int]struct{}),
		transitions: make(map[int]map[string]int),
	}, nil
}

// Alphabet returns a copy of the ordered alphabet.
func (d *DFA) Alphabet() []string {
	out := make([]string, len(d.alphabet))
	copy(out, d.alphabet)
	return out
}

// HasSymbol reports whether sym belongs to the alphabet.
func (d *DFA) HasSymbol(sym string) bool {
	_, ok := d.symbols[sym]
	return ok
}

// AddState adds a state, optionally marking it accepting. Idempotent.
func (d *DFA) AddState(id int, accepting bool) {
	d.states[id] = struct{}{}
	if accepting {
		d.accepting[id] = struct{}{}
	}
}

// SetStart records id as the start state, adding it if absent.
func (d *DFA) SetStart(id int) {
	d.states[id] = struct{}{}
	d.start = id
	d.hasStart = true
}

// Start returns the start state and whether one has been set.
func (d *DFA) Start() (int, bool) {
	return d.start, d.hasStart
}

// SetAccepting marks or unmarks a state as accepting, adding it if absent.
func (d *DFA) SetAccepting(id int, accepting bool) {
	d.states[id] = struct{}{}
	if accepting {
		d.accepting[id] = struct{}{}
	} else {
		delete(d.accepting, id)
	}
}

// IsAccepting reports whether id is an accepting state.
func (d *DFA) IsAccepting(id int) bool {
	_, ok := d.accepting[id]
	return ok
}

// AddTransition records from --sym--> to, inserting both endpoints into the
// state set. The symbol must belong to the alphabet. A prior target for the
// same (from, sym) pair is overwritten — last write wins.
func (d *DFA) AddTransition(from int, sym string, to int) error {
	if _, ok := d.symbols[sym]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidSymbol, sym)
	}
	d.states[from] = struct{}{}
	d.states[to] = struct{}{}
	row, ok := d.transitions[from]
	if !ok {
		row = make(map[string]int, len(d.alphabet))
		d.transitions[from] = row
	}
	row[sym] = to
	return nil
}

// Step applies the transition function once. The second return value is
// false when the transition is undefined.
func (d *DFA) Step(state int, sym string) (int, bool) {
	next, ok := d.transitions[state][sym]
	return next, ok
}

// Accepts reports whether the automaton accepts word. The whole word is
// consumed before membership of the final state is tested; a missing
// transition anywhere rejects the word immediately. The empty word is
// accepted iff the start state is accepting. Returns ErrNoStart before
// SetStart, and ErrInvalidSymbol if the word uses a foreign symbol.
func (d *DFA) Accepts(word string) (bool, error) {
	if !d.hasStart {
		return false, ErrNoStart
	}
	state := d.start
	for _, r := range word {
		sym := string(r)
		if _, ok := d.symbols[sym]; !ok {
			return false, fmt.Errorf("%w: %q in word %q", ErrInvalidSymbol, sym, word)
		}
		next, ok := d.Step(state, sym)
		if !ok {
			return false, nil
		}
		state = next
	}
	return d.IsAccepting(state), nil
}

// NumStates returns the number of states.
func (d *DFA) NumStates() int {
	return len(d.states)
}

// States returns all state identifiers in ascending order.
func (d *DFA) States() []int {
	out := make([]int, 0, len(d.states))
	for id := range d.states {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// AcceptingStates returns all accepting state identifiers in ascending order.
func (d *DFA) AcceptingStates() []int {
	out := make([]int, 0, len(d.accepting))
	for id := range d.accepting {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// TransitionCount returns the number of defined transitions.
func (d *DFA) TransitionCount() int {
	n := 0
	for _, row := range d.transitions {
		n += len(row)
	}
	return n
}

// String returns a text rendering of the automaton: states, start state,
// accepting states, and every defined transition in deterministic order.
func (d *DFA) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("States: %v\n", d.States()))
	if d.hasStart {
		sb.WriteString(fmt.Sprintf("Start: %d\n", d.start))
	} else {
		sb.WriteString("Start: <unset>\n")
	}
	sb.WriteString(fmt.Sprintf("Accepting: %v\n", d.AcceptingStates()))
	sb.WriteString("Transitions:\n")
	for _, state := range d.States() {
		for _, sym := range d.alphabet {
			if next, ok := d.Step(state, sym); ok {
				sb.WriteString(fmt.Sprintf("  %d -%s-> %d\n", state, sym, next))
			}
		}
	}
	return sb.String()
}

// sameAlphabet reports whether other is built over an identical ordered
// alphabet.
func (d *DFA) sameAlphabet(other *DFA) bool {
	if len(d.alphabet) != len(other.alphabet) {
		return false
	}
	for i, sym := range d.alphabet {
		if other.alphabet[i] != sym {
			return false
		}
	}
	return true
}
