/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: errors.go
Description: Sentinel errors for the automaton package. Structural errors indicate
a programming mistake by the caller and are never retried or recovered locally.
*/

package automaton

import "errors"

// ErrEmptyAlphabet is returned when a DFA is constructed over zero symbols.
var ErrEmptyAlphabet = errors.New("automaton: alphabet must not be empty")

// ErrInvalidSymbol is returned when a transition or word uses a symbol
// outside the configured alphabet.
var ErrInvalidSymbol = errors.New("automaton: symbol not in alphabet")

// ErrNoStart is returned when acceptance or stepping is attempted before
// a start state has been set.
var ErrNoStart = errors.New("automaton: start state not set")

// ErrAlphabetMismatch is returned when two automata built over different
// alphabets are combined.
var ErrAlphabetMismatch = errors.New("automaton: alphabets differ")
