/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: trainer_test.go
Description: Integration tests for the training pipeline. Runs the full
sample-train-induce-minimize-evaluate loop against built-in languages and checks
configuration validation.
*/

package trainer_test

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
	"github.com/kleascm/akaylee-reglearn/pkg/languages"
	"github.com/kleascm/akaylee-reglearn/pkg/trainer"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func baseConfig() *interfaces.TrainConfig {
	return &interfaces.TrainConfig{
		TrainWords: 300,
		EvalWords:  200,
		MinLen:     1,
		MaxWordLen: 10,
		Seed:       7,
	}
}

// TestNewValidation tests configuration validation
func TestNewValidation(t *testing.T) {
	_, err := trainer.New(nil, quietLogger())
	assert.ErrorIs(t, err, trainer.ErrNilConfig)

	bad := baseConfig()
	bad.TrainWords = 0
	_, err = trainer.New(bad, quietLogger())
	assert.ErrorIs(t, err, trainer.ErrBadConfig)

	bad = baseConfig()
	bad.EvalWords = -1
	_, err = trainer.New(bad, quietLogger())
	assert.ErrorIs(t, err, trainer.ErrBadConfig)

	bad = baseConfig()
	bad.MinLen = 8
	bad.MaxWordLen = 4
	_, err = trainer.New(bad, quietLogger())
	assert.ErrorIs(t, err, trainer.ErrBadConfig)

	bad = baseConfig()
	bad.MaxLen = -1
	_, err = trainer.New(bad, quietLogger())
	assert.ErrorIs(t, err, trainer.ErrBadConfig)
}

// TestRunNilLanguage tests the nil language error
func TestRunNilLanguage(t *testing.T) {
	tr, err := trainer.New(baseConfig(), quietLogger())
	require.NoError(t, err)
	_, err = tr.Run(nil)
	assert.ErrorIs(t, err, trainer.ErrNilLanguage)
}

// TestRunEvenA tests the full pipeline on a cleanly separable language
func TestRunEvenA(t *testing.T) {
	lang, err := languages.Get("even_a")
	require.NoError(t, err)

	tr, err := trainer.New(baseConfig(), quietLogger())
	require.NoError(t, err)
	result, err := tr.Run(lang)
	require.NoError(t, err)

	assert.Equal(t, "even_a", result.Language)
	assert.Equal(t, []string{"a", "b"}, result.Alphabet)
	assert.Equal(t, 300, result.TrainWords)
	assert.Equal(t, 200, result.EvalWords)
	assert.Positive(t, result.TreeNodes)
	assert.GreaterOrEqual(t, result.RawStates, result.MinimalStates)
	assert.Positive(t, result.MinimalStates)
	assert.Positive(t, result.Duration)

	// The parity feature splits the samples perfectly, so the learned
	// automaton should match the reference exactly.
	assert.Equal(t, 1.0, result.Accuracy)
	assert.True(t, result.Equivalent)
}

// TestRunAllLanguages tests that every built-in language trains end to end
func TestRunAllLanguages(t *testing.T) {
	tr, err := trainer.New(baseConfig(), quietLogger())
	require.NoError(t, err)

	for _, lang := range languages.All() {
		t.Run(lang.Name(), func(t *testing.T) {
			result, err := tr.Run(lang)
			require.NoError(t, err)
			assert.Equal(t, lang.Name(), result.Language)
			assert.GreaterOrEqual(t, result.Accuracy, 0.0)
			assert.LessOrEqual(t, result.Accuracy, 1.0)
			assert.GreaterOrEqual(t, result.RawStates, result.MinimalStates)
		})
	}
}

// TestRunDeterministic tests that identical configs reproduce results
func TestRunDeterministic(t *testing.T) {
	lang, err := languages.Get("contains_aa")
	require.NoError(t, err)

	tr, err := trainer.New(baseConfig(), quietLogger())
	require.NoError(t, err)

	first, err := tr.Run(lang)
	require.NoError(t, err)
	second, err := tr.Run(lang)
	require.NoError(t, err)

	assert.Equal(t, first.TreeNodes, second.TreeNodes)
	assert.Equal(t, first.RawStates, second.RawStates)
	assert.Equal(t, first.MinimalStates, second.MinimalStates)
	assert.Equal(t, first.Accuracy, second.Accuracy)
	assert.Equal(t, first.Equivalent, second.Equivalent)
}
