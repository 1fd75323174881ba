/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: product_test.go
Description: Unit tests for the symmetric-difference product and the language
equivalence check built on top of it.
*/

package automaton_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
)

// oddA builds the two-state automaton for "odd number of 'a'".
func oddA(t *testing.T) *automaton.DFA {
	t.Helper()
	d, err := automaton.New([]string{"a", "b"})
	require.NoError(t, err)

	d.AddState(0, false)
	d.AddState(1, true)
	d.SetStart(0)
	require.NoError(t, d.AddTransition(0, "a", 1))
	require.NoError(t, d.AddTransition(1, "a", 0))
	require.NoError(t, d.AddTransition(0, "b", 0))
	require.NoError(t, d.AddTransition(1, "b", 1))
	return d
}

// TestEquivalentComplementLanguages tests that even-a and odd-a disagree
func TestEquivalentComplementLanguages(t *testing.T) {
	x := evenA(t)
	y := oddA(t)

	equivalent, err := x.Equivalent(y)
	require.NoError(t, err)
	assert.False(t, equivalent)
}

// TestEquivalentWithOwnMinimization tests that an automaton is equivalent
// to its minimized form
func TestEquivalentWithOwnMinimization(t *testing.T) {
	x := redundantEvenA(t)
	m, err := x.Minimize()
	require.NoError(t, err)

	equivalent, err := x.Equivalent(m)
	require.NoError(t, err)
	assert.True(t, equivalent)
}

// TestEquivalentMatchesExhaustiveCheck cross-validates the product-based
// check against word-by-word agreement up to a bound
func TestEquivalentMatchesExhaustiveCheck(t *testing.T) {
	cases := []struct {
		name string
		x    *automaton.DFA
		y    *automaton.DFA
	}{
		{name: "even_vs_redundant", x: evenA(t), y: redundantEvenA(t)},
		{name: "even_vs_odd", x: evenA(t), y: oddA(t)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			equivalent, err := tc.x.Equivalent(tc.y)
			require.NoError(t, err)

			agree := true
			for _, word := range allWords([]string{"a", "b"}, 8) {
				ax, err := tc.x.Accepts(word)
				require.NoError(t, err)
				ay, err := tc.y.Accepts(word)
				require.NoError(t, err)
				if ax != ay {
					agree = false
					break
				}
			}
			assert.Equal(t, agree, equivalent)
		})
	}
}

// TestProductSymmetricDifference tests the acceptance condition of the
// product construction
func TestProductSymmetricDifference(t *testing.T) {
	x := evenA(t)
	y := oddA(t)

	// even-a and odd-a disagree on every word, so every product state
	// is accepting.
	p, err := x.Product(y)
	require.NoError(t, err)
	assert.Equal(t, p.NumStates(), len(p.AcceptingStates()))

	accepted, err := p.Accepts("")
	require.NoError(t, err)
	assert.True(t, accepted)

	// An automaton never disagrees with itself.
	p, err = x.Product(x)
	require.NoError(t, err)
	assert.Empty(t, p.AcceptingStates())
}

// TestProductOmitsUndefined tests that the product is partial wherever
// either operand is
func TestProductOmitsUndefined(t *testing.T) {
	x := evenA(t)

	partial, err := automaton.New([]string{"a", "b"})
	require.NoError(t, err)
	partial.AddState(0, true)
	partial.SetStart(0)
	require.NoError(t, partial.AddTransition(0, "a", 0))

	p, err := x.Product(partial)
	require.NoError(t, err)
	for _, state := range p.States() {
		_, ok := p.Step(state, "b")
		assert.False(t, ok, "product must omit transitions undefined in an operand")
	}
}

// TestProductErrors tests alphabet and start-state validation
func TestProductErrors(t *testing.T) {
	x := evenA(t)

	other, err := automaton.New([]string{"x", "y"})
	require.NoError(t, err)
	other.SetStart(0)
	_, err = x.Product(other)
	assert.ErrorIs(t, err, automaton.ErrAlphabetMismatch)

	unstarted, err := automaton.New([]string{"a", "b"})
	require.NoError(t, err)
	unstarted.AddState(0, false)
	_, err = x.Product(unstarted)
	assert.ErrorIs(t, err, automaton.ErrNoStart)
}
