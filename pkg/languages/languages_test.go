/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: languages_test.go
Description: Unit tests for the built-in language registry. Covers lookup,
registration order, and acceptance tables for every reference DFA.
*/

package languages_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-reglearn/pkg/languages"
)

// TestNames tests registration order
func TestNames(t *testing.T) {
	assert.Equal(t, []string{"even_a", "ends_with_ab", "contains_aa", "no_bb", "mod3_a"}, languages.Names())
}

// TestAll tests that All matches Names
func TestAll(t *testing.T) {
	all := languages.All()
	names := languages.Names()
	require.Len(t, all, len(names))
	for i, lang := range all {
		assert.Equal(t, names[i], lang.Name())
		assert.NotEmpty(t, lang.Description())
		assert.Equal(t, []string{"a", "b"}, lang.Alphabet())
		assert.Positive(t, lang.DefaultMaxLen())
	}
}

// TestGet tests lookup, including surrounding whitespace
func TestGet(t *testing.T) {
	lang, err := languages.Get("even_a")
	require.NoError(t, err)
	assert.Equal(t, "even_a", lang.Name())

	lang, err = languages.Get("  no_bb ")
	require.NoError(t, err)
	assert.Equal(t, "no_bb", lang.Name())
}

// TestGetUnknown tests the unknown language error
func TestGetUnknown(t *testing.T) {
	_, err := languages.Get("palindromes")
	assert.ErrorIs(t, err, languages.ErrUnknownLanguage)
	assert.Contains(t, err.Error(), "even_a")
}

// TestReferenceDFAs tests every built-in language against a word table
func TestReferenceDFAs(t *testing.T) {
	cases := map[string]map[string]bool{
		"even_a": {
			"": true, "a": false, "b": true, "aa": true,
			"ab": false, "bab": false, "abab": true, "bbb": true,
		},
		"ends_with_ab": {
			"": false, "a": false, "ab": true, "b": false,
			"aab": true, "abb": false, "bab": true, "abab": true,
		},
		"contains_aa": {
			"": false, "a": false, "aa": true, "ab": false,
			"baa": true, "aab": true, "abab": false, "abaab": true,
		},
		"no_bb": {
			"": true, "b": true, "bb": false, "bab": true,
			"abba": false, "ababa": true, "babb": false,
		},
		"mod3_a": {
			"": true, "a": false, "aa": false, "aaa": true,
			"b": true, "ababab": true, "abab": false, "baaab": true,
		},
	}

	for name, table := range cases {
		t.Run(name, func(t *testing.T) {
			lang, err := languages.Get(name)
			require.NoError(t, err)
			dfa, err := lang.ReferenceDFA()
			require.NoError(t, err)

			for word, want := range table {
				got, err := dfa.Accepts(word)
				require.NoError(t, err)
				assert.Equal(t, want, got, "word %q", word)
			}
		})
	}
}

// TestReferenceDFAsAreFresh tests that each call builds an independent DFA
func TestReferenceDFAsAreFresh(t *testing.T) {
	lang, err := languages.Get("even_a")
	require.NoError(t, err)

	first, err := lang.ReferenceDFA()
	require.NoError(t, err)
	second, err := lang.ReferenceDFA()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, first.String(), second.String())
}
