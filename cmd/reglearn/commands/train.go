/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: train.go
Description: Train command implementation for the Akaylee RegLearn engine. Runs the
full learning pipeline for one or all registered languages and writes a UUID-stamped
JSON report plus a console summary.
*/

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-reglearn/pkg/interfaces"
	"github.com/kleascm/akaylee-reglearn/pkg/languages"
	"github.com/kleascm/akaylee-reglearn/pkg/reporting"
	"github.com/kleascm/akaylee-reglearn/pkg/trainer"
)

// RunTrain executes the training pipeline for the selected languages
func RunTrain(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger, err := SetupLogging()
	if err != nil {
		return err
	}

	config := &interfaces.TrainConfig{
		TrainWords: viper.GetInt("train_words"),
		EvalWords:  viper.GetInt("eval_words"),
		MinLen:     viper.GetInt("min_len"),
		MaxWordLen: viper.GetInt("max_word_len"),
		MaxLen:     viper.GetInt("max_len"),
		Seed:       viper.GetInt64("seed"),
		OutputDir:  viper.GetString("output_dir"),
	}

	var targets []interfaces.Language
	if name := viper.GetString("language"); name != "" {
		lang, err := languages.Get(name)
		if err != nil {
			return err
		}
		targets = append(targets, lang)
	} else {
		targets = languages.All()
	}

	t, err := trainer.New(config, logger)
	if err != nil {
		return err
	}

	report := reporting.NewReport(config)
	for _, lang := range targets {
		logger.WithField("language", lang.Name()).Info("Starting training run")
		result, err := t.Run(lang)
		if err != nil {
			return fmt.Errorf("training %s: %w", lang.Name(), err)
		}
		report.Results = append(report.Results, *result)
	}

	path, err := reporting.WriteReport(config.OutputDir, report)
	if err != nil {
		return err
	}
	logger.WithField("path", path).Info("Report written")

	reporting.PrintSummary(os.Stdout, report)
	return nil
}
