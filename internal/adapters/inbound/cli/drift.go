package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsgov/docsgov/internal/adapters/outbound/gitdiff"
	"github.com/docsgov/docsgov/internal/adapters/outbound/report"
	"github.com/docsgov/docsgov/internal/adapters/outbound/tui"
	"github.com/docsgov/docsgov/internal/application"
	"github.com/docsgov/docsgov/internal/domain"
)

func newDriftCheckCmd() *cobra.Command {
	var (
		baseRef    string
		headRef    string
		packPath   string
		repoPath   string
		jsonOutput string
		mdOutput   string
	)

	cmd := &cobra.Command{
		Use:   "drift-check",
		Short: "Detect API/SDK changes without reference docs updates",
		RunE: func(cmd *cobra.Command, args []string) error {
			pack, err := loadPack(packPath)
			if err != nil {
				return err
			}

			svc := application.NewGateService(gitdiff.New())
			result, err := svc.Check(pack, repoPath, baseRef, headRef)
			if err != nil {
				return err
			}
			drift := result.Drift

			if jsonOutput != "" {
				rendered, err := report.DriftJSON(drift)
				if err != nil {
					return err
				}
				if err := writeOutput(jsonOutput, rendered); err != nil {
					return fmt.Errorf("writing %s: %w", jsonOutput, err)
				}
			}
			if mdOutput != "" {
				if err := writeOutput(mdOutput, report.DriftMarkdown(drift)); err != nil {
					return fmt.Errorf("writing %s: %w", mdOutput, err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderDrift(drift))

			if drift.Status == domain.DriftDetected {
				return ErrPolicyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseRef, "base", "main", "Base revision of the change set")
	cmd.Flags().StringVar(&headRef, "head", "HEAD", "Head revision of the change set")
	cmd.Flags().StringVar(&packPath, "policy-pack", "", "Policy pack file (defaults to built-in profile)")
	cmd.Flags().StringVar(&repoPath, "path", ".", "Repository path")
	cmd.Flags().StringVar(&jsonOutput, "json-output", "", "Write the JSON report to this file")
	cmd.Flags().StringVar(&mdOutput, "md-output", "", "Write the Markdown report to this file")

	return cmd
}
