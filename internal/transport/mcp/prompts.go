package mcp

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"
)

// RegisterPrompts exposes the vault through the MCP prompt capability:
// clients resolve any stored prompt by id. Fetching marks the prompt used.
func RegisterPrompts(s *mcpserver.MCPServer, promptSvc *promptsvc.Service) {
	s.AddPrompt(
		mcpmcp.NewPrompt("stored_prompt",
			mcpmcp.WithPromptDescription("A prompt from the vault. Use the search_prompts tool to discover ids."),
			mcpmcp.WithArgument("prompt_id",
				mcpmcp.ArgumentDescription("UUID of the stored prompt"),
				mcpmcp.RequiredArgument(),
			),
		),
		storedPromptHandler(promptSvc),
	)
}

func storedPromptHandler(promptSvc *promptsvc.Service) mcpserver.PromptHandlerFunc {
	return func(ctx context.Context, req mcpmcp.GetPromptRequest) (*mcpmcp.GetPromptResult, error) {
		id, err := uuid.Parse(req.Params.Arguments["prompt_id"])
		if err != nil {
			return nil, fmt.Errorf("invalid prompt_id: %w", err)
		}

		p, err := promptSvc.MarkUsed(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get stored prompt: %w", err)
		}

		return mcpmcp.NewGetPromptResult(
			p.Title,
			[]mcpmcp.PromptMessage{
				mcpmcp.NewPromptMessage(
					mcpmcp.RoleUser,
					mcpmcp.TextContent{
						Type: "text",
						Text: p.Content,
					},
				),
			},
		), nil
	}
}
