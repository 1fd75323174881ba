/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: key.go
Description: Canonical prefix key for the induction builder. Summarizes a string
prefix into a bounded tuple (length, per-symbol counts, boundary symbols, adjacent
pair flags) that both deduplicates automaton states and reconstructs the feature
vector the classifier expects.
*/

package induction

import (
	"fmt"
	"strconv"
	"strings"
)

// PrefixKey is the finite summary of a string prefix. Two prefixes with
// identical keys are the same automaton state — this is the central
// correctness invariant of the construction: it states exactly which
// prefix information a classifier is allowed to depend on.
//
// Counts is aligned with the builder's alphabet order. First, Prev and
// Last hold alphabet symbols, or "" for "none" (Prev is the symbol
// immediately preceding the last one, "" while the prefix is shorter than
// two symbols). Pairs has one flag per ordered symbol pair, indexed
// i*len(alphabet)+j, set once the pair has been seen adjacently.
type PrefixKey struct {
	Length int
	Counts []int
	First  string
	Prev   string
	Last   string
	Pairs  []bool
}

// emptyKey returns the key of the empty prefix over an n-symbol alphabet.
func emptyKey(n int) *PrefixKey {
	return &PrefixKey{
		Counts: make([]int, n),
		Pairs:  make([]bool, n*n),
	}
}

// advance derives the successor key after reading the symbol at alphabet
// index sym. The receiver is not modified.
func (k *PrefixKey) advance(sym int, alphabet []string) *PrefixKey {
	n := len(alphabet)
	next := &PrefixKey{
		Length: k.Length + 1,
		Counts: make([]int, n),
		First:  k.First,
		Prev:   k.Last,
		Last:   alphabet[sym],
		Pairs:  make([]bool, n*n),
	}
	copy(next.Counts, k.Counts)
	copy(next.Pairs, k.Pairs)
	next.Counts[sym]++
	if k.Length == 0 {
		next.First = alphabet[sym]
	}
	if k.Last != "" {
		next.Pairs[indexOf(k.Last, alphabet)*n+sym] = true
	}
	return next
}

// PairSeen reports whether the ordered pair (left, right) has occurred
// adjacently in the prefix. Unknown symbols report false.
func (k *PrefixKey) PairSeen(left, right string, alphabet []string) bool {
	i := indexOf(left, alphabet)
	j := indexOf(right, alphabet)
	if i < 0 || j < 0 {
		return false
	}
	return k.Pairs[i*len(alphabet)+j]
}

// id renders the key into a canonical string used for state deduplication.
func (k *PrefixKey) id() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(k.Length))
	sb.WriteByte('|')
	for i, c := range k.Counts {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(c))
	}
	sb.WriteByte('|')
	sb.WriteString(k.First)
	sb.WriteByte('|')
	sb.WriteString(k.Prev)
	sb.WriteByte('|')
	sb.WriteString(k.Last)
	sb.WriteByte('|')
	for _, seen := range k.Pairs {
		if seen {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// KeyForPrefix computes the canonical key of a whole prefix by advancing
// symbol by symbol from the empty key.
func KeyForPrefix(prefix string, alphabet []string) (*PrefixKey, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	key := emptyKey(len(alphabet))
	for _, r := range prefix {
		idx := indexOf(string(r), alphabet)
		if idx < 0 {
			return nil, fmt.Errorf("induction: symbol %q not in alphabet", string(r))
		}
		key = key.advance(idx, alphabet)
	}
	return key, nil
}

// indexOf returns the alphabet index of sym, or -1 if absent.
func indexOf(sym string, alphabet []string) int {
	for i, s := range alphabet {
		if s == sym {
			return i
		}
	}
	return -1
}
