package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docsgov/docsgov/internal/adapters/outbound/gitdiff"
	"github.com/docsgov/docsgov/internal/adapters/outbound/report"
	"github.com/docsgov/docsgov/internal/adapters/outbound/tui"
	"github.com/docsgov/docsgov/internal/application"
)

func newContractCheckCmd() *cobra.Command {
	var (
		baseRef    string
		headRef    string
		packPath   string
		repoPath   string
		jsonOutput string
	)

	cmd := &cobra.Command{
		Use:   "contract-check",
		Short: "Gate a change set on the docs contract",
		Long:  "Check that a change set touching public interface files also updates documentation. Intended as a CI merge gate.",
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

			if jsonOutput != "" {
				rendered, err := report.ContractJSON(result.Contract)
				if err != nil {
					return err
				}
				if err := writeOutput(jsonOutput, rendered); err != nil {
					return fmt.Errorf("writing %s: %w", jsonOutput, err)
				}
			}

			fmt.Fprint(cmd.OutOrStdout(), tui.RenderContract(result.Contract))

			if !result.Contract.Satisfied {
				return ErrPolicyFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseRef, "base", "main", "Base revision of the change set")
	cmd.Flags().StringVar(&headRef, "head", "HEAD", "Head revision of the change set")
	cmd.Flags().StringVar(&packPath, "policy-pack", "", "Policy pack file (defaults to built-in profile)")
	cmd.Flags().StringVar(&repoPath, "path", ".", "Repository path")
	cmd.Flags().StringVar(&jsonOutput, "json-output", "", "Write the JSON result to this file")

	return cmd
}
