/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: features.go
Description: Prefix-safe feature extraction for the Akaylee RegLearn engine. Extracts
the named feature vector from a whole word, and reconstructs the identical vector
from a canonical prefix key. Agreement between the two paths is the exactness
precondition of the prefix-abstraction construction.
*/

package features

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/kleascm/akaylee-reglearn/pkg/induction"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrEmptyAlphabet is returned when an extractor is created over zero symbols.
var ErrEmptyAlphabet = errors.New("features: alphabet must not be empty")

// ErrInvalidSymbol is returned when a word uses a symbol outside the alphabet.
var ErrInvalidSymbol = errors.New("features: symbol not in alphabet")

// Extractor derives feature vectors over a fixed, ordered alphabet.
//
// Every feature is reconstructible from the canonical prefix key: length
// (plus small moduli), per-symbol counts (plus parities and mod 3),
// first/last symbol flags, adjacent-pair flags, trailing-pair flags, and
// pairwise count comparisons. Adding a feature outside this set breaks the
// induction exactness contract.
type Extractor struct {
	alphabet []string
	index    map[string]int
}

// NewExtractor creates an extractor for the given ordered alphabet.
func NewExtractor(alphabet []string) (*Extractor, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	index := make(map[string]int, len(alphabet))
	ordered := make([]string, len(alphabet))
	for i, sym := range alphabet {
		index[sym] = i
		ordered[i] = sym
	}
	return &Extractor{alphabet: ordered, index: index}, nil
}

// Alphabet returns a copy of the extractor's ordered alphabet.
func (e *Extractor) Alphabet() []string {
	out := make([]string, len(e.alphabet))
	copy(out, e.alphabet)
	return out
}

// Extract computes the feature vector of a whole word.
func (e *Extractor) Extract(word string) (interfaces.FeatureVector, error) {
	n := len(e.alphabet)
	counts := make([]int, n)
	pairs := make([]bool, n*n)
	length := 0
	first, prev, last := "", "", ""

	for _, r := range word {
		sym := string(r)
		idx, ok := e.index[sym]
		if !ok {
			return nil, fmt.Errorf("%w: %q in word %q", ErrInvalidSymbol, sym, word)
		}
		length++
		if length == 1 {
			first = sym
		}
		counts[idx]++
		prev = last
		if last != "" {
			pairs[e.index[last]*n+idx] = true
		}
		last = sym
	}
	return e.assemble(length, counts, first, prev, last, pairs), nil
}

// Reconstruct computes the feature vector of the prefix summarized by key.
// For any word w, Reconstruct(keyOf(w)) equals Extract(w).
func (e *Extractor) Reconstruct(key *induction.PrefixKey) interfaces.FeatureVector {
	return e.assemble(key.Length, key.Counts, key.First, key.Prev, key.Last, key.Pairs)
}

// Names returns every feature name produced by this extractor, sorted.
func (e *Extractor) Names() []string {
	fv := e.assemble(0, make([]int, len(e.alphabet)), "", "", "", make([]bool, len(e.alphabet)*len(e.alphabet)))
	names := make([]string, 0, len(fv))
	for name := range fv {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// assemble builds the feature vector from the canonical prefix summary.
// Both Extract and Reconstruct funnel through here so the two paths cannot
// drift apart.
func (e *Extractor) assemble(length int, counts []int, first, prev, last string, pairs []bool) interfaces.FeatureVector {
	n := len(e.alphabet)
	fv := make(interfaces.FeatureVector, 3+5*n+2*n*n+n*(n-1))

	fv["length"] = length
	fv["length_mod2"] = length % 2
	fv["length_mod3"] = length % 3

	for i, sym := range e.alphabet {
		fv["count_"+sym] = counts[i]
		fv["parity_"+sym] = counts[i] % 2
		fv["mod3_"+sym] = counts[i] % 3
		fv["starts_with_"+sym] = boolToInt(first == sym)
		fv["ends_with_"+sym] = boolToInt(last == sym)
	}

	for i, s := range e.alphabet {
		for j, t := range e.alphabet {
			fv["has_"+s+t] = boolToInt(pairs[i*n+j])
			fv["ends_with_"+s+t] = boolToInt(prev == s && last == t)
		}
	}

	for i, s := range e.alphabet {
		for j, t := range e.alphabet {
			if i == j {
				continue
			}
			fv["more_"+s+"_than_"+t] = boolToInt(counts[i] > counts[j])
			if i < j {
				fv["equal_"+s+"_"+t] = boolToInt(counts[i] == counts[j])
			}
		}
	}
	return fv
}

func boolToInt(v bool) int {
	if v {
		return 1
	}
	return 0
}

// Describe renders a feature vector as sorted name=value pairs, mostly for
// debug logging.
func Describe(fv interfaces.FeatureVector) string {
	names := make([]string, 0, len(fv))
	for name := range fv {
		names = append(names, name)
	}
	sort.Strings(names)
	out := ""
	for i, name := range names {
		if i > 0 {
			out += " "
		}
		out += name + "=" + strconv.Itoa(fv[name])
	}
	return out
}
