package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"
)

// Server wraps the mark3labs/mcp-go MCPServer and its StreamableHTTPServer.
// Tools are registered in tools.go, prompts in prompts.go.
type Server struct {
	httpSrv *mcpserver.StreamableHTTPServer
}

func New(promptSvc *promptsvc.Service, contextSvc *contextsvc.Service) *Server {
	mcpSrv := mcpserver.NewMCPServer(
		"promptvault",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithPromptCapabilities(true),
	)

	RegisterTools(mcpSrv, promptSvc, contextSvc)
	RegisterPrompts(mcpSrv, promptSvc)

	return &Server{httpSrv: mcpserver.NewStreamableHTTPServer(mcpSrv)}
}

// Handler returns an http.Handler that serves the MCP endpoint.
func (s *Server) Handler() http.Handler {
	return s.httpSrv
}
