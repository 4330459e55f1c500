package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsgov/docsgov/internal/domain"
)

// registerResources registers all DocsGov MCP resources on the given server.
func registerResources(s *server.MCPServer, repoPath string) {
	// 1. docsgov://policy-pack - the effective built-in policy profile
	s.AddResource(
		mcplib.NewResource(
			"docsgov://policy-pack",
			"Policy Pack",
			mcplib.WithResourceDescription("Built-in governance profile: contract patterns, drift patterns, SLA thresholds and collector settings"),
			mcplib.WithMIMEType("application/json"),
		),
		handlePolicyPackResource(),
	)

	// 2. docsgov://gap-report - the most recently written gap report
	s.AddResource(
		mcplib.NewResource(
			"docsgov://gap-report",
			"Gap Report",
			mcplib.WithResourceDescription("Latest gap analysis report written by `docsgov gaps analyze`"),
			mcplib.WithMIMEType("application/json"),
		),
		handleGapReportResource(repoPath),
	)
}

func handlePolicyPackResource() server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		data, err := json.MarshalIndent(domain.DefaultPolicyPack(), "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling policy pack: %w", err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "docsgov://policy-pack",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleGapReportResource(repoPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		path := filepath.Join(repoPath, "reports", "gap-report.json")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("no gap report at %s, run `docsgov gaps analyze` first: %w", path, err)
		}
		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "docsgov://gap-report",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
