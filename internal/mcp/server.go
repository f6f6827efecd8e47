// Package mcp exposes the boardroom engine over the Model Context Protocol.
// Five tools map one-to-one onto the engine operations; handlers hold no
// state of their own.
package mcp

import (
	"context"
	"fmt"

	"boardroom/internal/engine"
	"boardroom/internal/logging"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server wraps the MCP SDK server around an engine.
type Server struct {
	MCPServer *sdkmcp.Server
	engine    *engine.Engine
}

// NewServer creates an MCP server exposing the five boardroom tools.
func NewServer(e *engine.Engine) *Server {
	s := &Server{engine: e}
	s.MCPServer = sdkmcp.NewServer(
		&sdkmcp.Implementation{Name: "boardroom", Version: "dev"},
		nil,
	)
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "analyze",
		Description: "Run a full boardroom consultation: routes the task to the relevant councils, loads their advisors, searches institutional memory for precedents and wisdom, and returns a structured analysis with a mandatory tension pair.",
	}, s.handleAnalyze)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "check_governance",
		Description: "Classify a task and determine which councils should review it. Returns the category, matched keywords, severity tier, council routing and a recommendation. Fast path — no document loads.",
	}, s.handleCheckGovernance)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "query_intelligence",
		Description: "Search the session ledger and wisdom list for precedents and distilled principles. Returns keyword-ranked ledger matches and wisdom entries. The ledger grows with every report_outcome call.",
	}, s.handleQueryIntelligence)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "trust_lookup",
		Description: "Look up the trust profile for an entity (agent, tool, vendor, platform): six-dimension trust vector, composite score and a trust/verify/caution/avoid recommendation. Unknown entities get a default profile.",
	}, s.handleTrustLookup)

	sdkmcp.AddTool(s.MCPServer, &sdkmcp.Tool{
		Name:        "report_outcome",
		Description: "Report the outcome of a decision. Appends a section to the session ledger and, if an entity is named, updates its trust profile. Flags the response when the outcome could not be persisted.",
	}, s.handleReportOutcome)
}

// --- Tool input/output types ---

type analyzeInput struct {
	Task string `json:"task" jsonschema:"the decision, question, or task to analyze"`
}

type checkGovernanceInput struct {
	Task string `json:"task" jsonschema:"the task or decision to classify"`
}

type queryIntelligenceInput struct {
	Query string `json:"query" jsonschema:"search query: topic, keyword, or question"`
	Limit int    `json:"limit,omitempty" jsonschema:"max results per source (default 10)"`
}

type trustLookupInput struct {
	Entity  string `json:"entity" jsonschema:"the entity to look up: an agent name, tool, vendor, or platform"`
	Context string `json:"context,omitempty" jsonschema:"optional context about how the entity is being used"`
}

type reportOutcomeInput struct {
	Task                   string `json:"task" jsonschema:"the original task or decision"`
	Outcome                string `json:"outcome" jsonschema:"what actually happened"`
	FollowedRecommendation *bool  `json:"followed_recommendation,omitempty" jsonschema:"whether the boardroom recommendation was followed (default true)"`
	Entity                 string `json:"entity,omitempty" jsonschema:"optional entity whose trust profile this outcome updates"`
}

type reportOutput struct {
	Report string `json:"report"`
}

// --- Tool handlers ---

func (s *Server) handleAnalyze(ctx context.Context, _ *sdkmcp.CallToolRequest, input analyzeInput) (*sdkmcp.CallToolResult, reportOutput, error) {
	report, err := s.engine.Analyze(ctx, input.Task)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("analyze: %w", err)
	}
	return textResult(report), reportOutput{Report: report}, nil
}

func (s *Server) handleCheckGovernance(_ context.Context, _ *sdkmcp.CallToolRequest, input checkGovernanceInput) (*sdkmcp.CallToolResult, reportOutput, error) {
	report, err := s.engine.CheckGovernance(input.Task)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("check_governance: %w", err)
	}
	return textResult(report), reportOutput{Report: report}, nil
}

func (s *Server) handleQueryIntelligence(_ context.Context, _ *sdkmcp.CallToolRequest, input queryIntelligenceInput) (*sdkmcp.CallToolResult, reportOutput, error) {
	report, err := s.engine.QueryIntelligence(input.Query, input.Limit)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("query_intelligence: %w", err)
	}
	return textResult(report), reportOutput{Report: report}, nil
}

func (s *Server) handleTrustLookup(_ context.Context, _ *sdkmcp.CallToolRequest, input trustLookupInput) (*sdkmcp.CallToolResult, reportOutput, error) {
	report, err := s.engine.TrustLookup(input.Entity, input.Context)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("trust_lookup: %w", err)
	}
	return textResult(report), reportOutput{Report: report}, nil
}

func (s *Server) handleReportOutcome(ctx context.Context, _ *sdkmcp.CallToolRequest, input reportOutcomeInput) (*sdkmcp.CallToolResult, reportOutput, error) {
	followed := true
	if input.FollowedRecommendation != nil {
		followed = *input.FollowedRecommendation
	}
	report, err := s.engine.ReportOutcome(ctx, input.Task, input.Outcome, followed, input.Entity)
	if err != nil {
		return nil, reportOutput{}, fmt.Errorf("report_outcome: %w", err)
	}
	logging.New("mcp").Info("outcome reported", "entity", input.Entity, "followed", followed)
	return textResult(report), reportOutput{Report: report}, nil
}

func textResult(report string) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{&sdkmcp.TextContent{Text: report}},
	}
}
