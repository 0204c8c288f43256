package main

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/score"
)

var analyzeName string

var analyzeCmd = &cobra.Command{
	Use:   "analyze <url>",
	Short: "Deep-scan a single website and print the lead as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		env, err := initScanEnv(ctx, score.DeepScanProfile())
		if err != nil {
			return err
		}
		defer env.Close()

		lead := env.Pipeline.ScanOne(ctx, model.Candidate{
			Name: analyzeName,
			URL:  args[0],
		})
		if lead.FetchError != "" {
			zap.L().Warn("analysis failed", zap.String("url", args[0]), zap.String("error", lead.FetchError))
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(lead); err != nil {
			return eris.Wrap(err, "encode lead")
		}
		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeName, "name", "", "business name (defaults to the page title)")
	rootCmd.AddCommand(analyzeCmd)
}
