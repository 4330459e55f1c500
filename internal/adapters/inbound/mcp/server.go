package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewDocsGovMCPServer creates a new MCP server with all DocsGov tools and
// resources registered. The repoPath is the root of the repository to govern.
func NewDocsGovMCPServer(repoPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"docsgov",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, repoPath)
	registerResources(s, repoPath)

	return s
}
