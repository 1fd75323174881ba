/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: interfaces.go
Description: Shared interfaces and types for the Akaylee RegLearn engine. Defines the
feature vector, classifier, and target language contracts used across all packages
to break import cycles and enable proper modular design.
*/

package interfaces

import (
	"time"

	"github.com/kleascm/akaylee-reglearn/pkg/automaton"
)

// FeatureVector holds the named, integer-valued features extracted from a
// word (or reconstructed from a prefix key). Boolean features are encoded
// as 0/1.
type FeatureVector map[string]int

// Classifier is a pure predicate over a feature vector. It must be total
// over every feature vector the induction builder can produce.
//
// Correctness contract: the classifier's decision may depend ONLY on
// information reconstructible from the canonical prefix key (length,
// per-symbol counts, first/previous/last symbol, adjacent-pair flags).
// A classifier that reads anything beyond that silently diverges from the
// induced automaton on longer inputs; the engine cannot detect this.
type Classifier func(features FeatureVector) bool

// LabeledWord pairs a sample word with its membership label.
type LabeledWord struct {
	Word  string `json:"word"`
	Label bool   `json:"label"`
}

// Language describes a target regular language the trainer can learn.
// Each language supplies a reference DFA used for labeling and evaluation.
type Language interface {
	// Name returns the registry name of the language
	Name() string

	// Description returns a human-readable description of the language
	Description() string

	// Alphabet returns the ordered, finite symbol set of the language
	Alphabet() []string

	// DefaultMaxLen returns the default prefix exploration bound
	DefaultMaxLen() int

	// ReferenceDFA builds the ground-truth automaton for the language
	ReferenceDFA() (*automaton.DFA, error)
}

// TrainConfig holds the configuration for a training run
type TrainConfig struct {
	TrainWords int    `json:"train_words"`  // Number of training samples
	EvalWords  int    `json:"eval_words"`   // Number of evaluation samples
	MinLen     int    `json:"min_len"`      // Minimum sample word length
	MaxWordLen int    `json:"max_word_len"` // Maximum sample word length
	MaxLen     int    `json:"max_len"`      // Prefix exploration bound (0 = language default)
	Seed       int64  `json:"seed"`         // Seed for the word generator
	OutputDir  string `json:"output_dir"`   // Directory for report output
}

// LanguageResult holds the outcome of training one language
type LanguageResult struct {
	Language      string        `json:"language"`
	Alphabet      []string      `json:"alphabet"`
	TrainWords    int           `json:"train_words"`
	EvalWords     int           `json:"eval_words"`
	TreeNodes     int           `json:"tree_nodes"`
	RawStates     int           `json:"raw_states"`     // States before minimization
	MinimalStates int           `json:"minimal_states"` // States after minimization
	Accuracy      float64       `json:"accuracy"`       // Agreement with the reference DFA
	Equivalent    bool          `json:"equivalent"`     // Language equivalence with the reference
	Duration      time.Duration `json:"duration"`
}

// TrainReport aggregates the results of a training session
type TrainReport struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Config    *TrainConfig     `json:"config"`
	Results   []LanguageResult `json:"results"`
}
