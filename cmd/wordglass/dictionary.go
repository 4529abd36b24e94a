package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ymatsuda/wordglass/internal/dictionary"
)

func newDictionaryCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use: "dictionary",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "lookup <word>",
		Short: "Look up phonetics for a word",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word := args[0]

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			reader := dictionary.NewReader(dictionary.Config{
				BaseURL: cfg.Dictionary.BaseURL,
			})
			entry, err := reader.Define(cmd.Context(), word)
			if err != nil {
				return fmt.Errorf("reader.Define() > %w", err)
			}
			if entry == nil {
				color.Yellow("No dictionary entry for %q", word)
				return nil
			}

			if entry.IPA != "" {
				fmt.Printf("IPA: %s\n", entry.IPA)
			}
			if entry.AudioURL != "" {
				fmt.Printf("Audio: %s\n", entry.AudioURL)
			}
			return nil
		},
	})
	return &rootCommand
}
