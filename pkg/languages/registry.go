/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: registry.go
Description: Registry of built-in target languages for the Akaylee RegLearn engine.
Each language supplies its alphabet, a default exploration bound, and a factory for
its reference DFA. Languages are selected by name.
*/

package languages

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrUnknownLanguage is returned when a requested language is not registered.
var ErrUnknownLanguage = errors.New("languages: unknown language")

// language is the common implementation behind every registered language.
type language struct {
	name          string
	description   string
	alphabet      []string
	defaultMaxLen int
	build         func() (*automaton.DFA, error)
}

func (l *language) Name() string        { return l.name }
func (l *language) Description() string { return l.description }
func (l *language) DefaultMaxLen() int  { return l.defaultMaxLen }

func (l *language) Alphabet() []string {
	out := make([]string, len(l.alphabet))
	copy(out, l.alphabet)
	return out
}

func (l *language) ReferenceDFA() (*automaton.DFA, error) {
	return l.build()
}

// registry holds all built-in languages in registration order.
var registry = []*language{
	newEvenA(),
	newEndsWithAB(),
	newContainsAA(),
	newNoBB(),
	newMod3A(),
}

// All returns every registered language in registration order.
func All() []interfaces.Language {
	out := make([]interfaces.Language, len(registry))
	for i, l := range registry {
		out[i] = l
	}
	return out
}

// Names returns the names of all registered languages in registration order.
func Names() []string {
	out := make([]string, len(registry))
	for i, l := range registry {
		out[i] = l.name
	}
	return out
}

// Get returns the language registered under name.
func Get(name string) (interfaces.Language, error) {
	name = strings.TrimSpace(name)
	for _, l := range registry {
		if l.name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownLanguage, name, strings.Join(Names(), ", "))
}
