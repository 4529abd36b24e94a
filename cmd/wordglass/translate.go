package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ymatsuda/wordglass/internal/config"
	"github.com/ymatsuda/wordglass/internal/detect"
	"github.com/ymatsuda/wordglass/internal/translate"
)

type preferenceFlag config.Preference

func (p *preferenceFlag) Set(val string) error {
	for _, preference := range allPreferences {
		if val == string(preference) {
			*p = preferenceFlag(preference)
			return nil
		}
	}
	return fmt.Errorf("invalid preference: %s", val)
}

func (p preferenceFlag) String() string {
	return string(p)
}

func (p *preferenceFlag) Type() string {
	return "preference"
}

var (
	_              pflag.Value = (*preferenceFlag)(nil)
	allPreferences             = []config.Preference{
		config.PreferenceAuto,
		config.PreferenceLibreTranslate,
		config.PreferenceMyMemory,
	}
)

func newTranslateCommand() *cobra.Command {
	var isWord bool
	preference := preferenceFlag(config.PreferenceAuto)
	command := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text, with phonetics when it is a single word",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			orchestrator, err := newOrchestrator(cfg)
			if err != nil {
				return fmt.Errorf("newOrchestrator() > %w", err)
			}

			settings := resolveSettings()
			if cmd.Flags().Changed("preference") {
				settings.ProviderPreference = config.Preference(preference)
			}
			if !cmd.Flags().Changed("word") {
				isWord = detect.IsWord(text)
			}
			if !detect.IsEnglish(text) {
				color.Yellow("The input does not look like English. Trying anyway.")
			}

			result := orchestrator.TranslateAndDefine(cmd.Context(), settings, translate.TranslateRequest{
				Text:   text,
				IsWord: isWord,
			})
			if !result.Success {
				return fmt.Errorf("%s", result.ErrorMessage)
			}

			color.Green("%s", result.Translation)
			fmt.Printf("Provider: %s\n", result.ProviderName)
			if result.Dict != nil {
				if result.Dict.IPA != "" {
					fmt.Printf("IPA: %s\n", result.Dict.IPA)
				}
				if result.Dict.AudioURL != "" {
					fmt.Printf("Audio: %s\n", result.Dict.AudioURL)
				}
			}
			return nil
		},
	}
	command.Flags().BoolVar(&isWord, "word", false, "Treat the input as a single word and look up phonetics")
	command.Flags().Var(&preference, "preference", fmt.Sprintf("Provider preference. Possible values are %v", allPreferences))

	return command
}
