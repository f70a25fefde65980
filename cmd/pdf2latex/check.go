package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jackzampolin/pdf2latex/internal/config"
	"github.com/jackzampolin/pdf2latex/internal/providers"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the API credential and model are usable",
	Long: `Check sends a minimal request to the configured model to verify the
credential and model identifier before starting a long translation run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		client := providers.NewClaude(providers.ClaudeConfig{
			APIKey: cfg.APIKey,
			Model:  cfg.Model,
		})

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := client.Probe(ctx); err != nil {
			return err
		}

		fmt.Printf("ok: model %s is reachable\n", client.Model())
		return nil
	},
}
