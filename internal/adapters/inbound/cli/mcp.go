package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/docsgov/docsgov/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	var repoPath string

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start the DocsGov MCP server (stdio)",
		Long:  "Start the DocsGov MCP (Model Context Protocol) server using stdio transport. This lets AI coding assistants run governance checks and query the gap backlog.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if repoPath == "" {
				repoPath = "."
			}
			s := mcpadapter.NewDocsGovMCPServer(repoPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&repoPath, "path", "", "Repository path (defaults to current working directory)")

	return cmd
}
