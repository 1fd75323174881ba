/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder_test.go
Description: Unit tests for the prefix-abstraction builder. Covers the concrete
induction scenarios, exact agreement with the classifier within the bound,
determinism across runs, the zero-bound edge case, and constructor validation.
*/

package induction_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
	"github.com/kleascm/akaylee-reglearn/pkg/features"
	"github.com/kleascm/akaylee-reglearn/pkg/induction"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

var alphabetAB = []string{"a", "b"}

// buildWith runs the builder for a classifier over the {a,b} extractor.
func buildWith(t *testing.T, classify interfaces.Classifier, maxLen int) *automaton.DFA {
	t.Helper()
	extractor, err := features.NewExtractor(alphabetAB)
	require.NoError(t, err)
	builder, err := induction.NewBuilder(alphabetAB, maxLen, classify, extractor.Reconstruct)
	require.NoError(t, err)
	dfa, err := builder.Build()
	require.NoError(t, err)
	return dfa
}

// allWords returns every word over alphabet with length <= maxLen.
func allWords(alphabet []string, maxLen int) []string {
	words := []string{""}
	for start, end := 0, 1; maxLen > 0; maxLen-- {
		for i := start; i < end; i++ {
			for _, sym := range alphabet {
				words = append(words, words[i]+sym)
			}
		}
		start, end = end, len(words)
	}
	return words
}

// TestBuilderEvenA tests induction of "count of a is even"
func TestBuilderEvenA(t *testing.T) {
	dfa := buildWith(t, func(fv interfaces.FeatureVector) bool {
		return fv["parity_a"] == 0
	}, 5)

	for _, word := range []string{"", "aa", "bb", "abab"} {
		accepted, err := dfa.Accepts(word)
		require.NoError(t, err)
		assert.True(t, accepted, "expected %q to be accepted", word)
	}
	for _, word := range []string{"a", "aab"} {
		accepted, err := dfa.Accepts(word)
		require.NoError(t, err)
		assert.False(t, accepted, "expected %q to be rejected", word)
	}
}

// TestBuilderContainsAA tests induction of "contains substring aa"
func TestBuilderContainsAA(t *testing.T) {
	dfa := buildWith(t, func(fv interfaces.FeatureVector) bool {
		return fv["has_aa"] == 1
	}, 5)

	for _, word := range []string{"aa", "baa", "aab"} {
		accepted, err := dfa.Accepts(word)
		require.NoError(t, err)
		assert.True(t, accepted, "expected %q to be accepted", word)
	}
	for _, word := range []string{"", "a", "ab", "ba", "b"} {
		accepted, err := dfa.Accepts(word)
		require.NoError(t, err)
		assert.False(t, accepted, "expected %q to be rejected", word)
	}
}

// TestBuilderAgreesWithClassifier tests exact agreement on every word
// within the exploration bound
func TestBuilderAgreesWithClassifier(t *testing.T) {
	extractor, err := features.NewExtractor(alphabetAB)
	require.NoError(t, err)

	classifiers := map[string]interfaces.Classifier{
		"even_a":       func(fv interfaces.FeatureVector) bool { return fv["parity_a"] == 0 },
		"contains_aa":  func(fv interfaces.FeatureVector) bool { return fv["has_aa"] == 1 },
		"ends_with_ab": func(fv interfaces.FeatureVector) bool { return fv["ends_with_ab"] == 1 },
		"mod3_a":       func(fv interfaces.FeatureVector) bool { return fv["mod3_a"] == 0 },
		"no_bb":        func(fv interfaces.FeatureVector) bool { return fv["has_bb"] == 0 },
	}

	const maxLen = 6
	for name, classify := range classifiers {
		t.Run(name, func(t *testing.T) {
			dfa := buildWith(t, classify, maxLen)
			for _, word := range allWords(alphabetAB, maxLen) {
				fv, err := extractor.Extract(word)
				require.NoError(t, err)
				accepted, err := dfa.Accepts(word)
				require.NoError(t, err)
				assert.Equal(t, classify(fv), accepted, "disagreement on %q", word)
			}
		})
	}
}

// TestBuilderDeterminism tests that two runs with identical inputs produce
// identical transition tables and state numbering
func TestBuilderDeterminism(t *testing.T) {
	classify := func(fv interfaces.FeatureVector) bool { return fv["parity_a"] == 0 }
	first := buildWith(t, classify, 6)
	second := buildWith(t, classify, 6)

	assert.Equal(t, first.String(), second.String())
}

// TestBuilderTotalBelowBound tests that every explored state is either
// fully defined or a dead end at the bound
func TestBuilderTotalBelowBound(t *testing.T) {
	dfa := buildWith(t, func(fv interfaces.FeatureVector) bool {
		return fv["has_aa"] == 1
	}, 4)

	for _, state := range dfa.States() {
		defined := 0
		for _, sym := range dfa.Alphabet() {
			if _, ok := dfa.Step(state, sym); ok {
				defined++
			}
		}
		assert.Contains(t, []int{0, len(dfa.Alphabet())}, defined,
			"state %d has a partially defined row", state)
	}
}

// TestBuilderMaxLenZero tests the one-state edge case
func TestBuilderMaxLenZero(t *testing.T) {
	dfa := buildWith(t, func(fv interfaces.FeatureVector) bool {
		return fv["length"] == 0
	}, 0)

	assert.Equal(t, 1, dfa.NumStates())
	assert.Equal(t, 0, dfa.TransitionCount())

	accepted, err := dfa.Accepts("")
	require.NoError(t, err)
	assert.True(t, accepted)

	accepted, err = dfa.Accepts("a")
	require.NoError(t, err)
	assert.False(t, accepted)
}

// TestBuilderClassifierCalledOncePerState tests the dedup contract
func TestBuilderClassifierCalledOncePerState(t *testing.T) {
	extractor, err := features.NewExtractor(alphabetAB)
	require.NoError(t, err)

	calls := 0
	classify := func(fv interfaces.FeatureVector) bool {
		calls++
		return false
	}
	builder, err := induction.NewBuilder(alphabetAB, 3, classify, extractor.Reconstruct)
	require.NoError(t, err)
	dfa, err := builder.Build()
	require.NoError(t, err)

	assert.Equal(t, dfa.NumStates(), calls)
}

// TestNewBuilderValidation tests constructor error conditions
func TestNewBuilderValidation(t *testing.T) {
	extractor, err := features.NewExtractor(alphabetAB)
	require.NoError(t, err)
	classify := func(fv interfaces.FeatureVector) bool { return false }

	_, err = induction.NewBuilder(nil, 3, classify, extractor.Reconstruct)
	assert.ErrorIs(t, err, induction.ErrEmptyAlphabet)

	_, err = induction.NewBuilder(alphabetAB, -1, classify, extractor.Reconstruct)
	assert.ErrorIs(t, err, induction.ErrNegativeMaxLen)

	_, err = induction.NewBuilder(alphabetAB, 3, nil, extractor.Reconstruct)
	assert.ErrorIs(t, err, induction.ErrNilClassifier)

	_, err = induction.NewBuilder(alphabetAB, 3, classify, nil)
	assert.ErrorIs(t, err, induction.ErrNilReconstructor)
}
