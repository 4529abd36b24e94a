package main

import (
	"fmt"
	"time"

	"github.com/avast/retry-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const statusProbeAttempts = 3

func newProvidersCommand() *cobra.Command {
	rootCommand := cobra.Command{
		Use:   "providers",
		Short: "Translation provider commands",
	}

	rootCommand.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Check whether each translation provider currently responds",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ctx := cmd.Context()
			unavailable := 0
			for _, provider := range newProviders(cfg) {
				err := retry.Do(
					func() error {
						_, err := provider.Translate(ctx, "hello")
						return err
					},
					retry.Context(ctx),
					retry.Attempts(statusProbeAttempts),
					retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
						return retry.BackOffDelay(n, err, config)
					}),
				)
				if err != nil {
					unavailable++
					color.Red("%s: unavailable: %v", provider.Name(), err)
					continue
				}
				color.Green("%s: available", provider.Name())
			}

			if unavailable > 0 {
				return fmt.Errorf("%d provider(s) unavailable", unavailable)
			}
			return nil
		},
	})
	return &rootCommand
}
