/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: product.go
Description: Synchronized product construction and language-equivalence checking for
the DFA type. The product encodes symmetric difference: a product state accepts iff
exactly one of its component states accepts, so any reachable accepting state is a
witness that the two languages differ.
*/

package automaton

// statePair identifies a product state by its two component states.
type statePair struct {
	left  int
	right int
}

// Product builds the synchronized cross-product of d and other over their
// shared alphabet, explored breadth-first from the pair of start states.
// A product transition exists only where both components define one, so the
// product is implicitly partial. A product state is accepting iff the two
// component states disagree on membership (symmetric difference).
// Product states are numbered densely in discovery order.
func (d *DFA) Product(other *DFA) (*DFA, error) {
	if other == nil || !d.sameAlphabet(other) {
		return nil, ErrAlphabetMismatch
	}
	if !d.hasStart || !other.hasStart {
		return nil, ErrNoStart
	}

	out, err := New(d.alphabet)
	if err != nil {
		return nil, err
	}

	ids := make(map[statePair]int)
	var queue []statePair
	ensure := func(p statePair) int {
		if id, seen := ids[p]; seen {
			return id
		}
		id := len(ids)
		ids[p] = id
		out.AddState(id, d.IsAccepting(p.left) != other.IsAccepting(p.right))
		queue = append(queue, p)
		return id
	}

	startPair := statePair{left: d.start, right: other.start}
	out.SetStart(ensure(startPair))

	for len(queue) > 0 {
		pair := queue[0]
		queue = queue[1:]
		from := ids[pair]
		for _, sym := range d.alphabet {
			nextLeft, okLeft := d.Step(pair.left, sym)
			nextRight, okRight := other.Step(pair.right, sym)
			if !okLeft || !okRight {
				continue
			}
			to := ensure(statePair{left: nextLeft, right: nextRight})
			if err := out.AddTransition(from, sym, to); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

// Equivalent reports whether d and other accept the same language, by
// searching the symmetric-difference product breadth-first for a reachable
// accepting state. The first one found proves the languages differ.
//
// Precondition for a true language-equivalence test: both automata SHOULD
// be total over the shared alphabet. For partial automata the check only
// covers words for which both operands define every needed transition.
func (d *DFA) Equivalent(other *DFA) (bool, error) {
	prod, err := d.Product(other)
	if err != nil {
		return false, err
	}

	start, _ := prod.Start()
	visited := map[int]bool{start: true}
	queue := []int{start}
	for len(queue) > 0 {
		state := queue[0]
		queue = queue[1:]
		if prod.IsAccepting(state) {
			return false, nil
		}
		for _, sym := range prod.alphabet {
			if next, ok := prod.Step(state, sym); ok && !visited[next] {
				visited[next] = true
				queue = append(queue, next)
			}
		}
	}
	return true, nil
}
