package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/leadforge/leadscan-cli/internal/export"
	"github.com/leadforge/leadscan-cli/internal/industry"
	"github.com/leadforge/leadscan-cli/internal/model"
	"github.com/leadforge/leadscan-cli/internal/score"
)

var (
	scanIndustry  string
	scanLocation  string
	scanLimit     int
	scanDemoCount int
	scanOut       string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan an industry's known websites and rank the leads",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		indCfg, ok := industry.Lookup(scanIndustry)
		if !ok {
			return eris.Errorf("unknown industry %q (supported: %s)", scanIndustry, strings.Join(industry.Keys(), ", "))
		}

		env, err := initScanEnv(ctx, score.ByName(cfg.Score.Profile))
		if err != nil {
			return err
		}
		defer env.Close()

		candidates := make([]model.Candidate, 0, len(indCfg.RealWebsites))
		for _, site := range indCfg.RealWebsites {
			candidates = append(candidates, model.Candidate{
				Name:     site.Name,
				URL:      site.URL,
				Location: scanLocation,
				Industry: scanIndustry,
			})
		}

		zap.L().Info("scanning industry",
			zap.String("industry", scanIndustry),
			zap.String("location", scanLocation),
			zap.Int("candidates", len(candidates)))

		demoCount := scanDemoCount
		if demoCount < 0 {
			demoCount = cfg.Scan.DemoCount
		}

		leads := env.Pipeline.Scan(ctx, candidates)
		leads = append(leads, env.Generator.Generate(scanIndustry, scanLocation, demoCount)...)
		leads = env.Pipeline.Finalize(leads, scanLimit)

		stats := model.ComputeStats(leads)
		zap.L().Info("scan complete",
			zap.Int("leads", stats.Total),
			zap.Int("withChat", stats.WithChat),
			zap.Int("withForm", stats.WithForm),
			zap.Int("withContact", stats.WithContact))

		if scanOut != "" {
			f, err := os.Create(scanOut)
			if err != nil {
				return eris.Wrap(err, "create output file")
			}
			defer f.Close()
			if err := export.WriteCSV(f, leads); err != nil {
				return err
			}
			fmt.Printf("Wrote %d leads to %s\n", len(leads), scanOut)
			return nil
		}

		for _, l := range leads {
			pos := 0
			badge := ""
			if l.Ranking != nil {
				pos = l.Ranking.GooglePosition
				badge = l.Ranking.RankingBadge
			}
			fmt.Printf("%2d. [%2d] %-45s %s\n", pos, l.Score, l.Name, badge)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanIndustry, "industry", "", "industry key (required)")
	scanCmd.Flags().StringVar(&scanLocation, "location", "", "location, e.g. \"Austin, TX\" (required)")
	scanCmd.Flags().IntVar(&scanLimit, "limit", 0, "max leads in output (default from config)")
	scanCmd.Flags().IntVar(&scanDemoCount, "demo-count", -1, "demo leads to pad the batch with (default from config)")
	scanCmd.Flags().StringVar(&scanOut, "out", "", "write CSV to this path instead of printing")
	_ = scanCmd.MarkFlagRequired("industry")
	_ = scanCmd.MarkFlagRequired("location")
	rootCmd.AddCommand(scanCmd)
}
