/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: show.go
Description: Show command implementation for the Akaylee RegLearn engine. Prints
the reference DFA of a registered language, optionally minimized first.
*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kleascm/akaylee-reglearn/pkg/languages"
)

// RunShow prints the reference DFA of the requested language
func RunShow(cmd *cobra.Command, args []string) error {
	if err := LoadConfig(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	lang, err := languages.Get(viper.GetString("show_language"))
	if err != nil {
		return err
	}
	dfa, err := lang.ReferenceDFA()
	if err != nil {
		return err
	}
	if viper.GetBool("show_minimized") {
		if dfa, err = dfa.Minimize(); err != nil {
			return err
		}
	}

	fmt.Printf("Language: %s\n%s\n", lang.Name(), lang.Description())
	fmt.Print(dfa.String())
	return nil
}
