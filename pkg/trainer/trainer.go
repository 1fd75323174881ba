/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trainer.go
Description: End-to-end training pipeline for the Akaylee RegLearn engine. Samples
and labels words against a reference DFA, trains a decision tree over prefix-safe
features, compiles the tree into a DFA via prefix abstraction, minimizes it, and
evaluates accuracy and language equivalence against the reference.
*/

package trainer

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kleascm/akaylee-reglearn/pkg/dtree"
	"github.com/kleascm/akaylee-reglearn/pkg/features"
	"github.com/kleascm/akaylee-reglearn/pkg/generator"
	"github.com/kleascm/akaylee-reglearn/pkg/induction"
	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
)

// ErrNilConfig is returned when a trainer is created without configuration.
var ErrNilConfig = errors.New("trainer: config must not be nil")

// ErrNilLanguage is returned when Run is called without a language.
var ErrNilLanguage = errors.New("trainer: language must not be nil")

// ErrBadConfig is returned for out-of-range configuration values.
var ErrBadConfig = errors.New("trainer: invalid config")

// Trainer orchestrates one training run per language. Each run owns its
// own generator, tree, and automata, so concurrent runs are independent.
type Trainer struct {
	config *interfaces.TrainConfig
	logger *logrus.Logger
}

// New creates a trainer for the given configuration. A nil logger falls
// back to a default logrus instance.
func New(config *interfaces.TrainConfig, logger *logrus.Logger) (*Trainer, error) {
	if config == nil {
		return nil, ErrNilConfig
	}
	if config.TrainWords <= 0 || config.EvalWords <= 0 {
		return nil, fmt.Errorf("%w: sample counts must be positive", ErrBadConfig)
	}
	if config.MinLen < 0 || config.MaxWordLen < config.MinLen {
		return nil, fmt.Errorf("%w: word length range [%d, %d]", ErrBadConfig, config.MinLen, config.MaxWordLen)
	}
	if config.MaxLen < 0 {
		return nil, fmt.Errorf("%w: max_len must not be negative", ErrBadConfig)
	}
	if logger == nil {
		logger = logrus.New()
	}
	return &Trainer{config: config, logger: logger}, nil
}

// Run learns the given language and reports the outcome.
func (t *Trainer) Run(lang interfaces.Language) (*interfaces.LanguageResult, error) {
	if lang == nil {
		return nil, ErrNilLanguage
	}
	start := time.Now()
	alphabet := lang.Alphabet()

	ref, err := lang.ReferenceDFA()
	if err != nil {
		return nil, fmt.Errorf("reference DFA for %s: %w", lang.Name(), err)
	}

	gen, err := generator.New(alphabet, t.config.Seed)
	if err != nil {
		return nil, err
	}
	trainWords, err := gen.Words(t.config.TrainWords, t.config.MinLen, t.config.MaxWordLen)
	if err != nil {
		return nil, err
	}
	evalWords, err := gen.Words(t.config.EvalWords, t.config.MinLen, t.config.MaxWordLen)
	if err != nil {
		return nil, err
	}

	labeled, err := generator.Label(ref, trainWords)
	if err != nil {
		return nil, err
	}

	extractor, err := features.NewExtractor(alphabet)
	if err != nil {
		return nil, err
	}
	samples := make([]dtree.Sample, 0, len(labeled))
	for _, lw := range labeled {
		fv, err := extractor.Extract(lw.Word)
		if err != nil {
			return nil, err
		}
		samples = append(samples, dtree.Sample{Features: fv, Label: lw.Label})
	}

	tree, err := dtree.Train(samples)
	if err != nil {
		return nil, err
	}
	t.logger.WithFields(logrus.Fields{
		"language":   lang.Name(),
		"tree_nodes": tree.Size(),
		"samples":    len(samples),
	}).Info("Decision tree trained")

	maxLen := t.config.MaxLen
	if maxLen == 0 {
		maxLen = lang.DefaultMaxLen()
	}
	builder, err := induction.NewBuilder(alphabet, maxLen, tree.Classifier(), extractor.Reconstruct)
	if err != nil {
		return nil, err
	}
	builder.SetLogger(t.logger)

	raw, err := builder.Build()
	if err != nil {
		return nil, err
	}
	minimal, err := raw.Minimize()
	if err != nil {
		return nil, err
	}
	t.logger.WithFields(logrus.Fields{
		"language":       lang.Name(),
		"raw_states":     raw.NumStates(),
		"minimal_states": minimal.NumStates(),
	}).Info("Automaton induced")

	correct := 0
	for _, word := range evalWords {
		want, err := ref.Accepts(word)
		if err != nil {
			return nil, err
		}
		got, err := minimal.Accepts(word)
		if err != nil {
			return nil, err
		}
		if got == want {
			correct++
		}
	}

	equivalent, err := minimal.Equivalent(ref)
	if err != nil {
		return nil, err
	}

	result := &interfaces.LanguageResult{
		Language:      lang.Name(),
		Alphabet:      alphabet,
		TrainWords:    len(trainWords),
		EvalWords:     len(evalWords),
		TreeNodes:     tree.Size(),
		RawStates:     raw.NumStates(),
		MinimalStates: minimal.NumStates(),
		Accuracy:      float64(correct) / float64(len(evalWords)),
		Equivalent:    equivalent,
		Duration:      time.Since(start),
	}
	t.logger.WithFields(logrus.Fields{
		"language":   result.Language,
		"accuracy":   result.Accuracy,
		"equivalent": result.Equivalent,
		"duration":   result.Duration,
	}).Info("Training run complete")
	return result, nil
}
