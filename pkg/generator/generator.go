/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generator.go
Description: Word sampling utilities for the Akaylee RegLearn engine. Provides a
seeded random word generator over an arbitrary alphabet, exhaustive enumeration up
to a length bound, and labeling of words against a reference DFA.
*/

package generator

import (
	"errors"
	"math/rand"
	"strings"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrEmptyAlphabet is returned when a generator is created over zero symbols.
var ErrEmptyAlphabet = errors.New("generator: alphabet must not be empty")

// ErrBadLengthRange is returned for an invalid min/max word length range.
var ErrBadLengthRange = errors.New("generator: invalid word length range")

// Generator produces random words over a fixed alphabet. It owns its
// random source, so identical seeds yield identical samples and separate
// generators are independent.
type Generator struct {
	alphabet []string
	rng      *rand.Rand
}

// New creates a generator over the given alphabet seeded with seed.
func New(alphabet []string, seed int64) (*Generator, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	ordered := make([]string, len(alphabet))
	copy(ordered, alphabet)
	return &Generator{
		alphabet: ordered,
		rng:      rand.New(rand.NewSource(seed)),
	}, nil
}

// Word returns one random word with length in [minLen, maxLen].
func (g *Generator) Word(minLen, maxLen int) (string, error) {
	if minLen < 0 || maxLen < minLen {
		return "", ErrBadLengthRange
	}
	length := minLen + g.rng.Intn(maxLen-minLen+1)
	var sb strings.Builder
	for i := 0; i < length; i++ {
		sb.WriteString(g.alphabet[g.rng.Intn(len(g.alphabet))])
	}
	return sb.String(), nil
}

// Words returns n random words with lengths in [minLen, maxLen].
func (g *Generator) Words(n, minLen, maxLen int) ([]string, error) {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		word, err := g.Word(minLen, maxLen)
		if err != nil {
			return nil, err
		}
		words = append(words, word)
	}
	return words, nil
}

// Enumerate returns every word of length <= maxLen over the alphabet in
// breadth-first order, starting with the empty word. Useful for exhaustive
// equivalence testing at small bounds.
func Enumerate(alphabet []string, maxLen int) ([]string, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	words := []string{""}
	for start, end := 0, 1; maxLen > 0; maxLen-- {
		for i := start; i < end; i++ {
			for _, sym := range alphabet {
				words = append(words, words[i]+sym)
			}
		}
		start, end = end, len(words)
	}
	return words, nil
}

// Label evaluates every word against the reference DFA and pairs it with
// its membership label.
func Label(ref *automaton.DFA, words []string) ([]interfaces.LabeledWord, error) {
	labeled := make([]interfaces.LabeledWord, 0, len(words))
	for _, word := range words {
		accepted, err := ref.Accepts(word)
		if err != nil {
			return nil, err
		}
		labeled = append(labeled, interfaces.LabeledWord{Word: word, Label: accepted})
	}
	return labeled, nil
}
