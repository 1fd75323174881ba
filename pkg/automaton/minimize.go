/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: minimize.go
Description: Moore-style partition-refinement minimization for the DFA type. Splits
the state set into behaviorally indistinguishable blocks via a smaller-half worklist
until fixpoint, then rebuilds a fresh automaton with one state per block.
*/

package automaton

// Minimize returns a new automaton accepting the same language with the
// minimum number of states, leaving the receiver untouched.
//
// The partition starts as {accepting, non-accepting} and is refined against
// the preimage of each worklist block per symbol; when a block splits, the
// smaller half is enqueued (the intersection half on a tie). Surviving
// blocks become states numbered in block creation order, which makes the
// result deterministic across runs.
//
// Minimality is guaranteed when the receiver is total over its alphabet.
// Undefined transitions are tolerated. States unreachable from the start
// state are NOT pruned: minimization here is a pure refinement, so
// unreachable states of the source survive into the result by design.
func (d *DFA) Minimize() (*DFA, error) {
	if !d.hasStart {
		return nil, ErrNoStart
	}

	all := d.States()

	// Initial partition: accepting vs non-accepting, empty halves dropped.
	var acc, rej []int
	for _, s := range all {
		if d.IsAccepting(s) {
			acc = append(acc, s)
		} else {
			rej = append(rej, s)
		}
	}
	var blocks [][]int
	blockOf := make(map[int]int, len(all))
	addBlock := func(members []int) int {
		idx := len(blocks)
		blocks = append(blocks, members)
		for _, s := range members {
			blockOf[s] = idx
		}
		return idx
	}

	var worklist []int
	pending := make(map[int]bool)
	if len(acc) > 0 {
		ai := addBlock(acc)
		worklist = append(worklist, ai)
		pending[ai] = true
	}
	if len(rej) > 0 {
		addBlock(rej)
	}

	for len(worklist) > 0 {
		ai := worklist[0]
		worklist = worklist[1:]
		pending[ai] = false

		// Snapshot the splitter's members: the block slot may be refined
		// while this splitter is being processed.
		splitter := make(map[int]struct{}, len(blocks[ai]))
		for _, s := range blocks[ai] {
			splitter[s] = struct{}{}
		}

		for _, sym := range d.alphabet {
			// X = states whose sym-transition lands in the splitter.
			preimage := make(map[int]struct{})
			for _, s := range all {
				if next, ok := d.Step(s, sym); ok {
					if _, in := splitter[next]; in {
						preimage[s] = struct{}{}
					}
				}
			}
			if len(preimage) == 0 {
				continue
			}

			// Newly appended blocks are disjoint from X, so only the
			// blocks existing before this pass can split.
			limit := len(blocks)
			for yi := 0; yi < limit; yi++ {
				var inter, diff []int
				for _, s := range blocks[yi] {
					if _, in := preimage[s]; in {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				blocks[yi] = inter
				di := addBlock(diff)
				if pending[yi] {
					worklist = append(worklist, di)
					pending[di] = true
				} else if len(inter) <= len(diff) {
					worklist = append(worklist, yi)
					pending[yi] = true
				} else {
					worklist = append(worklist, di)
					pending[di] = true
				}
			}
		}
	}

	// Rebuild: one state per block, numbered in creation order.
	out, err := New(d.alphabet)
	if err != nil {
		return nil, err
	}
	for idx, members := range blocks {
		out.AddState(idx, d.IsAccepting(members[0]))
	}
	for _, s := range all {
		for _, sym := range d.alphabet {
			if next, ok := d.Step(s, sym); ok {
				if err := out.AddTransition(blockOf[s], sym, blockOf[next]); err != nil {
					return nil, err
				}
			}
		}
	}
	out.SetStart(blockOf[d.start])
	return out, nil
}
