/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: main.go
Description: Main command-line interface for the Akaylee RegLearn engine. Provides
the train, languages, and show commands with comprehensive configuration management
via flags, config files, and environment variables.
*/

package main

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-reglearn/cmd/reglearn/commands"
)

var (
	// Configuration
	configFile string
	logLevel   string
	logFormat  string
	logDir     string

	// Training configuration
	languageName string
	trainWords   int
	evalWords    int
	minLen       int
	maxWordLen   int
	maxLen       int
	seed         int64
	outputDir    string

	// Show configuration
	showMinimized bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reglearn",
		Short: "Akaylee RegLearn - learn DFAs for regular languages from labeled samples",
		Long: `Akaylee RegLearn trains a decision tree over prefix-safe word features,
compiles the tree into a deterministic finite automaton via prefix-abstraction
construction, and evaluates the result against the reference language.`,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Logging level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Logging format (text, json)")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Directory for log files (empty = console only)")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("log_dir", rootCmd.PersistentFlags().Lookup("log-dir"))

	// Train command
	trainCmd := &cobra.Command{
		Use:   "train",
		Short: "Train a DFA for one or all registered languages",
		Long: `Train generates labeled sample words from the reference DFA of each selected
language, fits a decision tree, induces a DFA from the tree, minimizes it, and
reports accuracy and language equivalence.`,
		RunE: commands.RunTrain,
	}

	trainCmd.Flags().StringVar(&languageName, "language", "", "Language to learn (empty = all registered languages)")
	trainCmd.Flags().IntVar(&trainWords, "train-words", 200, "Number of training sample words")
	trainCmd.Flags().IntVar(&evalWords, "eval-words", 200, "Number of evaluation sample words")
	trainCmd.Flags().IntVar(&minLen, "min-len", 1, "Minimum sample word length")
	trainCmd.Flags().IntVar(&maxWordLen, "max-word-len", 10, "Maximum sample word length")
	trainCmd.Flags().IntVar(&maxLen, "max-len", 0, "Prefix exploration bound (0 = language default)")
	trainCmd.Flags().Int64Var(&seed, "seed", 1, "Seed for the word generator")
	trainCmd.Flags().StringVar(&outputDir, "output", "./reglearn_output", "Directory for report output")

	viper.BindPFlag("language", trainCmd.Flags().Lookup("language"))
	viper.BindPFlag("train_words", trainCmd.Flags().Lookup("train-words"))
	viper.BindPFlag("eval_words", trainCmd.Flags().Lookup("eval-words"))
	viper.BindPFlag("min_len", trainCmd.Flags().Lookup("min-len"))
	viper.BindPFlag("max_word_len", trainCmd.Flags().Lookup("max-word-len"))
	viper.BindPFlag("max_len", trainCmd.Flags().Lookup("max-len"))
	viper.BindPFlag("seed", trainCmd.Flags().Lookup("seed"))
	viper.BindPFlag("output_dir", trainCmd.Flags().Lookup("output"))

	// Languages command
	languagesCmd := &cobra.Command{
		Use:   "languages",
		Short: "List all registered target languages",
		RunE:  commands.RunLanguages,
	}

	// Show command
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the reference DFA of a registered language",
		RunE:  commands.RunShow,
	}
	showCmd.Flags().StringVar(&languageName, "language", "", "Language to show (required)")
	showCmd.Flags().BoolVar(&showMinimized, "minimized", false, "Minimize the reference DFA before printing")
	showCmd.MarkFlagRequired("language")

	viper.BindPFlag("show_language", showCmd.Flags().Lookup("language"))
	viper.BindPFlag("show_minimized", showCmd.Flags().Lookup("minimized"))

	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(showCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
