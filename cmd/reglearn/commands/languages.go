/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: languages.go
Description: Languages command implementation for the Akaylee RegLearn engine.
Lists every registered target language with its alphabet and defaults.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kleascm/akaylee-reglearn/pkg/languages"
)

// RunLanguages lists all registered target languages
func RunLanguages(cmd *cobra.Command, args []string) error {
	fmt.Printf("%-14s %-10s %-8s %s\n", "NAME", "ALPHABET", "MAX_LEN", "DESCRIPTION")
	for _, lang := range languages.All() {
		fmt.Printf("%-14s %-10s %-8d %s\n",
			lang.Name(),
			"{"+strings.Join(lang.Alphabet(), ",")+"}",
			lang.DefaultMaxLen(),
			lang.Description())
	}
	return nil
}
