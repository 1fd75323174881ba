/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: builder.go
Description: Prefix-abstraction builder for the Akaylee RegLearn engine. Explores
canonical prefix states breadth-first up to a length bound, consults an external
classifier once per newly discovered state, and emits a deterministic finite
automaton agreeing with the classifier on every prefix within the bound.
*/

package induction

import (
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrEmptyAlphabet is returned when a builder is created over zero symbols.
var ErrEmptyAlphabet = errors.New("induction: alphabet must not be empty")

// ErrNilClassifier is returned when no classifier predicate is supplied.
var ErrNilClassifier = errors.New("induction: classifier must not be nil")

// ErrNilReconstructor is returned when no feature reconstructor is supplied.
var ErrNilReconstructor = errors.New("induction: reconstructor must not be nil")

// ErrNegativeMaxLen is returned for a negative exploration bound.
var ErrNegativeMaxLen = errors.New("induction: max length must not be negative")

// Reconstructor maps a canonical prefix key to the feature vector the
// classifier expects. It MUST agree with the feature extraction used to
// train the classifier for every prefix length up to the builder's bound.
type Reconstructor func(key *PrefixKey) interfaces.FeatureVector

// Builder performs the prefix-abstraction construction: canonical prefix
// keys become automaton states, the classifier is the acceptance oracle.
// Each Build call operates on fresh state, so independent builders are
// safe to use from multiple goroutines by non-sharing.
type Builder struct {
	alphabet    []string
	maxLen      int
	classify    interfaces.Classifier
	reconstruct Reconstructor
	logger      *logrus.Logger
}

// NewBuilder creates a builder over the given ordered alphabet with the
// given exploration bound. MaxLen 0 is valid and yields a one-state
// automaton for the empty prefix.
func NewBuilder(alphabet []string, maxLen int, classify interfaces.Classifier, reconstruct Reconstructor) (*Builder, error) {
	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}
	if maxLen < 0 {
		return nil, ErrNegativeMaxLen
	}
	if classify == nil {
		return nil, ErrNilClassifier
	}
	if reconstruct == nil {
		return nil, ErrNilReconstructor
	}
	ordered := make([]string, len(alphabet))
	copy(ordered, alphabet)
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return &Builder{
		alphabet:    ordered,
		maxLen:      maxLen,
		classify:    classify,
		reconstruct: reconstruct,
		logger:      logger,
	}, nil
}

// SetLogger replaces the builder's logger.
func (b *Builder) SetLogger(logger *logrus.Logger) {
	if logger != nil {
		b.logger = logger
	}
}

// Build explores all canonical prefix states reachable within the length
// bound and returns the induced automaton. States are numbered densely in
// discovery order and symbols are expanded in alphabet order, so two runs
// with identical inputs produce identical transition tables. Every state
// below the bound is fully defined; states at the bound keep no outgoing
// transitions and act as dead ends for this round.
func (b *Builder) Build() (*automaton.DFA, error) {
	dfa, err := automaton.New(b.alphabet)
	if err != nil {
		return nil, err
	}

	stateOf := make(map[string]int)
	var queue []*PrefixKey

	// ensure registers a key as an automaton state on first sight,
	// invoking the classifier exactly once to fix its acceptance.
	ensure := func(key *PrefixKey) int {
		keyID := key.id()
		if id, seen := stateOf[keyID]; seen {
			return id
		}
		id := len(stateOf)
		stateOf[keyID] = id
		accepting := b.classify(b.reconstruct(key))
		dfa.AddState(id, accepting)
		queue = append(queue, key)
		b.logger.WithFields(logrus.Fields{
			"state":     id,
			"length":    key.Length,
			"accepting": accepting,
		}).Debug("Discovered prefix state")
		return id
	}

	start := ensure(emptyKey(len(b.alphabet)))
	dfa.SetStart(start)

	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if key.Length >= b.maxLen {
			continue
		}
		from := stateOf[key.id()]
		for sym := range b.alphabet {
			next := key.advance(sym, b.alphabet)
			to := ensure(next)
			if err := dfa.AddTransition(from, b.alphabet[sym], to); err != nil {
				return nil, err
			}
		}
	}

	b.logger.WithFields(logrus.Fields{
		"states":      dfa.NumStates(),
		"transitions": dfa.TransitionCount(),
		"max_len":     b.maxLen,
	}).Debug("Prefix abstraction complete")
	return dfa, nil
}
