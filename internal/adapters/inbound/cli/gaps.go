package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/docsgov/docsgov/internal/adapters/outbound/collectors"
	"github.com/docsgov/docsgov/internal/adapters/outbound/gitdiff"
	"github.com/docsgov/docsgov/internal/adapters/outbound/report"
	"github.com/docsgov/docsgov/internal/adapters/outbound/tui"
	"github.com/docsgov/docsgov/internal/application"
	"github.com/docsgov/docsgov/internal/domain"
)

const gapReportBase = "gap-report"

func newGapsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gaps",
		Short: "Documentation gap analysis",
	}
	cmd.AddCommand(newGapsAnalyzeCmd())
	return cmd
}

func newGapsAnalyzeCmd() *cobra.Command {
	var (
		sinceDays   int
		algoliaJSON string
		docsDir     string
		repoPath    string
		packPath    string
		outputDir   string
		topN        int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Aggregate documentation gaps from all signal sources",
		Long:  "Collect gap candidates from recent code changes, search analytics, community feeds and stale docs, merge them into one scored backlog, and write JSON/Markdown/CSV/XLSX reports.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(packPath)
			if err != nil {
				return err
			}

			now := time.Now()
			logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "docsgov"})

			gapCollectors := []domain.GapCollector{
				collectors.NewCodeChange(gitdiff.New(), repoPath, pack,
					time.Duration(sinceDays)*24*time.Hour, now),
				collectors.NewStaleness(docsDir, pack.Gaps.StaleAfterDays, now),
			}
			if algoliaJSON != "" {
				gapCollectors = append(gapCollectors,
					collectors.NewSearchAnalytics(algoliaJSON, pack.Gaps.MinSearchCount, now))
			}
			if len(pack.Gaps.CommunityFeeds) > 0 {
				gapCollectors = append(gapCollectors,
					collectors.NewCommunity(pack.Gaps.CommunityFeeds, pack.Gaps.MinClusterSize, now))
			}

			svc := application.NewGapsService(gapCollectors, logger)
			gapReport, err := svc.Analyze(cmd.Context(), now)
			if err != nil {
				return err
			}

			if err := writeGapReports(outputDir, gapReport); err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderGapReport(gapReport, topN))
			fmt.Fprintf(cmd.OutOrStdout(), "\nReports written to %s.\n", outputDir)
			return nil
		},
	}

	cmd.Flags().IntVar(&sinceDays, "since", 30, "Look back this many days for code changes")
	cmd.Flags().StringVar(&algoliaJSON, "algolia-json", "", "Search analytics export file (Algolia JSON)")
	cmd.Flags().StringVar(&docsDir, "docs-dir", "docs", "Docs tree to scan for staleness")
	cmd.Flags().StringVar(&repoPath, "path", ".", "Repository path")
	cmd.Flags().StringVar(&packPath, "policy-pack", "", "Policy pack file (defaults to built-in profile)")
	cmd.Flags().StringVar(&outputDir, "output-dir", "reports", "Directory for the generated reports")
	cmd.Flags().IntVar(&topN, "top", 10, "How many gaps to show in the terminal")

	return cmd
}

func writeGapReports(outputDir string, r domain.GapReport) error {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", outputDir, err)
	}

	jsonOut, err := report.GapJSON(r)
	if err != nil {
		return err
	}
	csvOut, err := report.GapCSV(r)
	if err != nil {
		return err
	}
	xlsxOut, err := report.GapXLSX(r)
	if err != nil {
		return err
	}

	files := map[string][]byte{
		gapReportBase + ".json": []byte(jsonOut),
		gapReportBase + ".md":   []byte(report.GapMarkdown(r)),
		gapReportBase + ".csv":  []byte(csvOut),
		gapReportBase + ".xlsx": xlsxOut,
	}
	for name, data := range files {
		path := filepath.Join(outputDir, name)
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}
