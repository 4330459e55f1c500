package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/docsgov/docsgov/internal/adapters/outbound/collectors"
	"github.com/docsgov/docsgov/internal/adapters/outbound/docscan"
	"github.com/docsgov/docsgov/internal/adapters/outbound/gitdiff"
	"github.com/docsgov/docsgov/internal/adapters/outbound/policy"
	"github.com/docsgov/docsgov/internal/adapters/outbound/snapshot"
	"github.com/docsgov/docsgov/internal/application"
	"github.com/docsgov/docsgov/internal/domain"
)

// registerTools registers all DocsGov MCP tools on the given server.
func registerTools(s *server.MCPServer, repoPath string) {
	// 1. docsgov_contract_check
	s.AddTool(
		mcplib.NewTool("docsgov_contract_check",
			mcplib.WithDescription("Check that a change set touching public interface files also updates documentation. Returns the gate result as JSON."),
			mcplib.WithString("base", mcplib.Description("Base revision (default: main)")),
			mcplib.WithString("head", mcplib.Description("Head revision (default: HEAD)")),
			mcplib.WithString("policy_pack", mcplib.Description("Policy pack file (default: built-in profile)")),
		),
		handleContractCheck(repoPath),
	)

	// 2. docsgov_drift_check
	s.AddTool(
		mcplib.NewTool("docsgov_drift_check",
			mcplib.WithDescription("Detect API/SDK changes that are not accompanied by reference docs updates. Returns the drift report as JSON."),
			mcplib.WithString("base", mcplib.Description("Base revision (default: main)")),
			mcplib.WithString("head", mcplib.Description("Head revision (default: HEAD)")),
			mcplib.WithString("policy_pack", mcplib.Description("Policy pack file (default: built-in profile)")),
		),
		handleDriftCheck(repoPath),
	)

	// 3. docsgov_kpi_sla
	s.AddTool(
		mcplib.NewTool("docsgov_kpi_sla",
			mcplib.WithDescription("Evaluate a KPI snapshot against the policy pack's SLA thresholds. Returns the verdict with every firing breach."),
			mcplib.WithString("current", mcplib.Required(), mcplib.Description("Current KPI snapshot file")),
			mcplib.WithString("previous", mcplib.Description("Previous KPI snapshot file, enables trend checks")),
			mcplib.WithString("policy_pack", mcplib.Description("Policy pack file (default: built-in profile)")),
		),
		handleKPISLA(),
	)

	// 4. docsgov_gap_report
	s.AddTool(
		mcplib.NewTool("docsgov_gap_report",
			mcplib.WithDescription("Aggregate documentation gaps from code changes, search analytics, community feeds and stale docs into one scored backlog."),
			mcplib.WithNumber("since_days", mcplib.Description("Look back this many days for code changes (default: 30)")),
			mcplib.WithString("docs_dir", mcplib.Description("Docs tree to scan for staleness (default: docs)")),
			mcplib.WithString("algolia_json", mcplib.Description("Search analytics export file")),
			mcplib.WithString("policy_pack", mcplib.Description("Policy pack file (default: built-in profile)")),
		),
		handleGapReport(repoPath),
	)
}

func stringArg(request mcplib.CallToolRequest, key, fallback string) string {
	if v, ok := request.GetArguments()[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func resolvePack(request mcplib.CallToolRequest) (domain.PolicyPack, error) {
	path := stringArg(request, "policy_pack", "")
	if path == "" {
		return domain.DefaultPolicyPack(), nil
	}
	return policy.New().Load(path)
}

func runGates(repoPath string, request mcplib.CallToolRequest) (application.GateResult, error) {
	pack, err := resolvePack(request)
	if err != nil {
		return application.GateResult{}, err
	}

	base := stringArg(request, "base", "main")
	head := stringArg(request, "head", "HEAD")

	svc := application.NewGateService(gitdiff.New())
	return svc.Check(pack, repoPath, base, head)
}

func handleContractCheck(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := runGates(repoPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("contract check failed: %v", err)), nil
		}
		return jsonResult(result.Contract)
	}
}

func handleDriftCheck(repoPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		result, err := runGates(repoPath, request)
		if err != nil {
			return errorResult(fmt.Sprintf("drift check failed: %v", err)), nil
		}
		return jsonResult(result.Drift)
	}
}

func handleKPISLA() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		currentPath, err := request.RequireString("current")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		pack, err := resolvePack(request)
		if err != nil {
			return errorResult(fmt.Sprintf("loading policy pack: %v", err)), nil
		}

		scanner := docscan.New(pack.Gaps.StaleAfterDays, time.Now())
		svc := application.NewKPIService(scanner, snapshot.New())

		verdict, err := svc.Evaluate(currentPath, stringArg(request, "previous", ""), pack.KPISLA)
		if err != nil {
			return errorResult(fmt.Sprintf("evaluation failed: %v", err)), nil
		}
		return jsonResult(verdict)
	}
}

func handleGapReport(repoPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pack, err := resolvePack(request)
		if err != nil {
			return errorResult(fmt.Sprintf("loading policy pack: %v", err)), nil
		}

		now := time.Now()
		sinceDays := 30
		if v, ok := request.GetArguments()["since_days"].(float64); ok && v > 0 {
			sinceDays = int(v)
		}
		docsDir := stringArg(request, "docs_dir", "docs")
		algoliaJSON := stringArg(request, "algolia_json", "")

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

		svc := application.NewGapsService(gapCollectors, log.New(io.Discard))
		gapReport, err := svc.Analyze(ctx, now)
		if err != nil {
			return errorResult(fmt.Sprintf("gap analysis failed: %v", err)), nil
		}
		return jsonResult(gapReport)
	}
}

// jsonResult returns the value rendered as indented JSON text content.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
