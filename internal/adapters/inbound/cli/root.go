package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

// ErrPolicyFailed marks a run whose governance checks did not pass: a blocked
// contract, detected drift, or a breached SLA. main maps it to exit code 1 so
// CI can distinguish a failed check from a broken invocation.
var ErrPolicyFailed = errors.New("governance checks failed")

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docsgov",
		Short: "Documentation governance for API-first teams",
		Long: "DocsGov gates code changes on documentation updates, detects API/SDK drift,\n" +
			"aggregates documentation gaps from multiple signal sources, and enforces\n" +
			"docs-quality SLAs in CI.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newContractCheckCmd())
	cmd.AddCommand(newDriftCheckCmd())
	cmd.AddCommand(newKPISLACmd())
	cmd.AddCommand(newKPICmd())
	cmd.AddCommand(newGapsCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

func Execute() error {
	return newRootCmd().Execute()
}
