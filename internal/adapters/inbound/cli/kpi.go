package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/docsgov/docsgov/internal/adapters/outbound/docscan"
	"github.com/docsgov/docsgov/internal/adapters/outbound/report"
	"github.com/docsgov/docsgov/internal/adapters/outbound/snapshot"
	"github.com/docsgov/docsgov/internal/adapters/outbound/tui"
	"github.com/docsgov/docsgov/internal/application"
	"github.com/docsgov/docsgov/internal/domain"
)

func newKPISLACmd() *cobra.Command {
	var (
		currentPath  string
		previousPath string
		packPath     string
		jsonOutput   string
		mdOutput     string
	)

	cmd := &cobra.Command{
		Use:   "kpi-sla-evaluate",
		Short: "Evaluate a KPI snapshot against SLA thresholds",
		Long:  "Compare a KPI snapshot (and optionally the previous one, for trend checks) against the policy pack's SLA thresholds.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(packPath)
			if err != nil {
				return err
			}

			svc := newKPIService(pack)
			verdict, err := svc.Evaluate(currentPath, previousPath, pack.KPISLA)
			if err != nil {
				return err
			}

			if jsonOutput != "" {
				rendered, err := report.SLAJSON(verdict)
				if err != nil {
					return err
				}
				if err := writeOutput(jsonOutput, rendered); err != nil {
					return fmt.Errorf("writing %s: %w", jsonOutput, err)
				}
			}
			if mdOutput != "" {
				if err := writeOutput(mdOutput, report.SLAMarkdown(verdict, pack.KPISLA)); err != nil {
					return fmt.Errorf("writing %s: %w", mdOutput, err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderSLA(verdict))

			if verdict.Status == domain.SLABreach {
				return ErrPolicyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&currentPath, "current", "", "Current KPI snapshot file (required)")
	cmd.Flags().StringVar(&previousPath, "previous", "", "Previous KPI snapshot file, for trend checks")
	cmd.Flags().StringVar(&packPath, "policy-pack", "", "Policy pack file (defaults to built-in profile)")
	cmd.Flags().StringVar(&jsonOutput, "json-output", "", "Write the JSON verdict to this file")
	cmd.Flags().StringVar(&mdOutput, "md-output", "", "Write the Markdown verdict to this file")
	_ = cmd.MarkFlagRequired("current")

	return cmd
}

func newKPICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kpi",
		Short: "KPI snapshot commands",
	}
	cmd.AddCommand(newKPISnapshotCmd())
	return cmd
}

func newKPISnapshotCmd() *cobra.Command {
	var (
		docsDir     string
		gapsReport  string
		notes       string
		packPath    string
		outputPath  string
	)

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Build a KPI snapshot from a docs tree",
		Long:  "Scan a docs tree for document counts, frontmatter coverage and staleness, fold in gap counts from a gap report, and write the snapshot consumed by kpi-sla-evaluate.",
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(packPath)
			if err != nil {
				return err
			}

			svc := newKPIService(pack)
			snap, err := svc.BuildAndSaveSnapshot(docsDir, gapsReport, notes, outputPath, time.Now())
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Snapshot written to %s (quality score %d, %d docs, %d stale).\n",
				outputPath, snap.QualityScore, snap.TotalDocs, snap.StaleDocs)
			return nil
		},
	}

	cmd.Flags().StringVar(&docsDir, "docs-dir", "docs", "Docs tree to scan")
	cmd.Flags().StringVar(&gapsReport, "gaps-report", "", "Gap report JSON to take gap counts from")
	cmd.Flags().StringVar(&notes, "notes", "", "Free-text executive notes stored on the snapshot")
	cmd.Flags().StringVar(&packPath, "policy-pack", "", "Policy pack file (defaults to built-in profile)")
	cmd.Flags().StringVar(&outputPath, "output", "kpi-snapshot.json", "Snapshot output file")

	return cmd
}

func newKPIService(pack domain.PolicyPack) *application.KPIService {
	scanner := docscan.New(pack.Gaps.StaleAfterDays, time.Now())
	return application.NewKPIService(scanner, snapshot.New())
}
