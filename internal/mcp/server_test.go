package mcp_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"boardroom/internal/advisor"
	"boardroom/internal/engine"
	mcpserver "boardroom/internal/mcp"
	"boardroom/internal/store"
	"boardroom/internal/trust"
	"boardroom/internal/workspace"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	})))
	os.Exit(m.Run())
}

func newTestServer(t *testing.T) *mcpserver.Server {
	t.Helper()
	root := t.TempDir()
	ws := &workspace.Workspace{
		Root:           root,
		MastermindRoot: filepath.Join(root, "mastermind"),
		LedgerPath:     filepath.Join(root, "LEDGER.md"),
		WisdomPath:     filepath.Join(root, "mastermind", "BOARD_WISDOM.md"),
		TrustPath:      filepath.Join(root, "trust-oracle.json"),
	}
	e := engine.New(engine.Config{
		Workspace: ws,
		Advisors:  advisor.EmbeddedProvider{},
		Ledger:    trust.NewLedger(&trust.FileStore{Path: ws.TrustPath}),
		Index:     store.NewMemStore(),
	})
	return mcpserver.NewServer(e)
}

func connectInMemory(t *testing.T, ctx context.Context, srv *mcpserver.Server) *sdkmcp.ClientSession {
	t.Helper()
	t1, t2 := sdkmcp.NewInMemoryTransports()
	serverSession, err := srv.MCPServer.Connect(ctx, t1, nil)
	if err != nil {
		t.Fatalf("server.Connect: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, t2, nil)
	if err != nil {
		t.Fatalf("client.Connect: %v", err)
	}
	return session
}

func callTool(t *testing.T, ctx context.Context, session *sdkmcp.ClientSession, name string, args map[string]any) string {
	t.Helper()
	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("CallTool(%s): %v", name, err)
	}
	if res.IsError {
		t.Fatalf("CallTool(%s) returned tool error: %+v", name, res.Content)
	}
	for _, c := range res.Content {
		if tc, ok := c.(*sdkmcp.TextContent); ok {
			return tc.Text
		}
	}
	t.Fatalf("CallTool(%s): no text content", name)
	return ""
}

func TestServer_ListsFiveTools(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	res, err := session.ListTools(ctx, nil)
	if err != nil {
		t.Fatalf("ListTools: %v", err)
	}
	want := map[string]bool{
		"analyze": false, "check_governance": false, "query_intelligence": false,
		"trust_lookup": false, "report_outcome": false,
	}
	for _, tool := range res.Tools {
		if _, ok := want[tool.Name]; ok {
			want[tool.Name] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q not registered", name)
		}
	}
}

func TestServer_CheckGovernance(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	text := callTool(t, ctx, session, "check_governance", map[string]any{
		"task": "deploy the payment service",
	})
	if !strings.Contains(text, "Governance Check") {
		t.Errorf("unexpected report:\n%s", text)
	}
	if !strings.Contains(text, "CRITICAL") {
		t.Errorf("'payment' should escalate to critical:\n%s", text)
	}
}

func TestServer_OutcomeThenTrustLookup(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	text := callTool(t, ctx, session, "report_outcome", map[string]any{
		"task":    "migrate the database",
		"outcome": "it broke in production",
		"entity":  "VendorA",
	})
	if !strings.Contains(text, "Outcome Recorded") {
		t.Errorf("unexpected report:\n%s", text)
	}
	if !strings.Contains(text, "VendorA") {
		t.Errorf("entity missing from report:\n%s", text)
	}

	text = callTool(t, ctx, session, "trust_lookup", map[string]any{"entity": "VendorA"})
	if !strings.Contains(text, "Trust Lookup: VendorA") {
		t.Errorf("unexpected lookup:\n%s", text)
	}
	if !strings.Contains(text, "**Interactions:** 1") {
		t.Errorf("expected one recorded interaction:\n%s", text)
	}
}

func TestServer_QueryIntelligence(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	// Seed the ledger through the tool surface, then query it back.
	callTool(t, ctx, session, "report_outcome", map[string]any{
		"task":    "pricing experiment",
		"outcome": "conversion improved",
	})
	text := callTool(t, ctx, session, "query_intelligence", map[string]any{
		"query": "pricing",
	})
	if !strings.Contains(text, "Intelligence Query Results") {
		t.Errorf("unexpected report:\n%s", text)
	}
	if !strings.Contains(text, "Ledger Matches (1)") {
		t.Errorf("reported outcome should be searchable:\n%s", text)
	}
}

func TestServer_AnalyzeSmoke(t *testing.T) {
	ctx := context.Background()
	session := connectInMemory(t, ctx, newTestServer(t))

	text := callTool(t, ctx, session, "analyze", map[string]any{
		"task": "should we refactor the api server",
	})
	if !strings.Contains(text, "Boardroom Analysis") {
		t.Errorf("unexpected report:\n%s", text)
	}
	if !strings.Contains(text, "The Architect") {
		t.Errorf("demo advisors should be listed:\n%s", text)
	}
}
