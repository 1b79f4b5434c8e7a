package cmd

import (
	"context"
	"fmt"

	"github.com/fieldsense/fieldsense/internal/browser"
	"github.com/fieldsense/fieldsense/internal/model"
	"github.com/fieldsense/fieldsense/internal/output"
	"github.com/fieldsense/fieldsense/internal/policy"
	"github.com/fieldsense/fieldsense/internal/session"
	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"gopkg.in/yaml.v3"
)

// mcpServer wraps the MCP server with the session store and browser list.
// The store lives as long as the server, so multi-step flows span tool calls.
type mcpServer struct {
	store    *session.Store
	browsers *browser.List
	mcp      *mcpserver.MCPServer
}

// MCPConfig holds MCP server configuration.
type MCPConfig struct {
	Transport   string
	Port        int
	BrowserList string
}

// newMCPServer creates and configures an MCP server with all fieldsense tools.
func newMCPServer(cfg MCPConfig) (*mcpServer, error) {
	browsers := browser.Default()
	if cfg.BrowserList != "" {
		if err := browsers.Load(cfg.BrowserList); err != nil {
			return nil, err
		}
	}

	s := &mcpServer{
		store:    session.NewStore(),
		browsers: browsers,
	}

	s.mcp = mcpserver.NewMCPServer(
		"fieldsense",
		"1.0.0",
	)

	s.registerTools()
	return s, nil
}

// serve starts the MCP server with the configured transport.
func (s *mcpServer) serve(cfg MCPConfig) error {
	switch cfg.Transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", cfg.Port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", cfg.Transport)
	}
}

func (s *mcpServer) registerTools() {
	// cluster
	s.mcp.AddTool(
		mcp.NewTool("cluster",
			mcp.WithDescription("Group the fillable fields of a screen snapshot into login, sign-up, and credit-card clusters, and report the cluster the user is interacting with."),
			mcp.WithString("snapshot", mcp.Description("Screen snapshot as YAML or JSON"), mcp.Required()),
			mcp.WithBoolean("selected-only", mcp.Description("Return only the selected cluster")),
		),
		s.handleCluster,
	)

	// decide
	s.mcp.AddTool(
		mcp.NewTool("decide",
			mcp.WithDescription("Run the credential-save policy for a submitted snapshot. Returns the save directive and the session id; pass the session id back on later steps of the same flow."),
			mcp.WithString("snapshot", mcp.Description("Screen snapshot as YAML or JSON"), mcp.Required()),
			mcp.WithString("session", mcp.Description("Session id from an earlier step (generated when omitted)")),
			mcp.WithString("package", mcp.Description("Host application package, checked against the browser list")),
			mcp.WithBoolean("browser", mcp.Description("Treat the host as a browser regardless of package")),
		),
		s.handleDecide,
	)

	// session_clear
	s.mcp.AddTool(
		mcp.NewTool("session_clear",
			mcp.WithDescription("Drop the accumulated state of a session when its flow concludes"),
			mcp.WithString("session", mcp.Description("Session id to clear"), mcp.Required()),
		),
		s.handleSessionClear,
	)
}

func resultToText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("error: %s", err)
	}
	return string(b)
}

func (s *mcpServer) handleCluster(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	snapshot := StringParam(params, "snapshot", "")
	selectedOnly := BoolParam(params, "selected-only", false)

	snap, err := model.ParseSnapshot([]byte(snapshot))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	clusters := model.ClusterFields(snap.Fields)
	selected := model.SelectCluster(clusters)

	if selectedOnly {
		return mcp.NewToolResultText(resultToText(output.NewClusterView(selected))), nil
	}

	result := output.ClusterResult{
		App:      snap.App,
		TS:       snap.TS,
		Selected: output.NewClusterView(selected),
	}
	for _, c := range clusters {
		result.Clusters = append(result.Clusters, output.NewClusterView(c))
	}
	return mcp.NewToolResultText(resultToText(result)), nil
}

func (s *mcpServer) handleDecide(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	snapshot := StringParam(params, "snapshot", "")
	sessionID := StringParam(params, "session", "")
	pkg := StringParam(params, "package", "")
	browserFlag := BoolParam(params, "browser", false)

	snap, err := model.ParseSnapshot([]byte(snapshot))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if pkg == "" {
		pkg = snap.Package
	}
	isBrowser := browserFlag || (pkg != "" && s.browsers.IsBrowser(pkg))

	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	clusters := model.ClusterFields(snap.Fields)
	selected := model.SelectCluster(clusters)
	directive := policy.Decide(s.store, sessionID, selected, isBrowser)

	return mcp.NewToolResultText(resultToText(output.DecideResult{
		SessionID: sessionID,
		Browser:   isBrowser,
		Selected:  output.NewClusterView(selected),
		Directive: output.NewDirectiveView(directive),
	})), nil
}

func (s *mcpServer) handleSessionClear(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	sessionID := StringParam(params, "session", "")
	if sessionID == "" {
		return mcp.NewToolResultError("session is required"), nil
	}
	s.store.Clear(sessionID)
	return mcp.NewToolResultText("cleared: " + sessionID), nil
}
