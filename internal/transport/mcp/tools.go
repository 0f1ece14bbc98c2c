package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	mcpmcp "github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"
)

// RegisterTools registers the prompt-library tools on the MCP server, so
// agents can browse the vault and pull prompt/context content directly.
func RegisterTools(s *mcpserver.MCPServer, promptSvc *promptsvc.Service, contextSvc *contextsvc.Service) {
	s.AddTool(mcpmcp.NewTool("search_prompts",
		mcpmcp.WithDescription("Search stored prompts by substring and/or category. Returns id, title, description, and category for each match."),
		mcpmcp.WithString("search", mcpmcp.Description("Substring matched against title, description, and content")),
		mcpmcp.WithString("category", mcpmcp.Description("Exact category filter; omit or pass 'All' for no filter")),
	), searchPromptsHandler(promptSvc))

	s.AddTool(mcpmcp.NewTool("get_prompt",
		mcpmcp.WithDescription("Fetch a stored prompt's full content and linked context profiles. Marks the prompt as used."),
		mcpmcp.WithString("prompt_id", mcpmcp.Required(), mcpmcp.Description("Prompt UUID")),
	), getPromptHandler(promptSvc))

	s.AddTool(mcpmcp.NewTool("list_context_profiles",
		mcpmcp.WithDescription("List stored context profiles with their link counts."),
		mcpmcp.WithString("search", mcpmcp.Description("Substring matched against name and description")),
	), listContextProfilesHandler(contextSvc))

	s.AddTool(mcpmcp.NewTool("get_context_profile",
		mcpmcp.WithDescription("Fetch a context profile's JSON data."),
		mcpmcp.WithString("context_profile_id", mcpmcp.Required(), mcpmcp.Description("Context profile UUID")),
	), getContextProfileHandler(contextSvc))
}

type promptSummary struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
}

func searchPromptsHandler(promptSvc *promptsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		filters := domainprompt.ListFilters{
			Search:   mcpmcp.ParseString(req, "search", ""),
			Category: mcpmcp.ParseString(req, "category", ""),
		}

		prompts, err := promptSvc.List(ctx, filters)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		summaries := make([]promptSummary, 0, len(prompts))
		for _, p := range prompts {
			summaries = append(summaries, promptSummary{
				ID:          p.ID,
				Title:       p.Title,
				Description: p.Description,
				Category:    p.Category,
			})
		}
		data, _ := json.Marshal(summaries)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func getPromptHandler(promptSvc *promptsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id, err := uuid.Parse(mcpmcp.ParseString(req, "prompt_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid prompt_id"), nil
		}

		// Pulling a prompt through MCP counts as using it.
		p, err := promptSvc.MarkUsed(ctx, id)
		if err != nil {
			return mcpmcp.NewToolResultText("error: prompt not found"), nil
		}

		data, _ := json.Marshal(p)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func listContextProfilesHandler(contextSvc *contextsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		filters := domaincontext.ListFilters{
			Search: mcpmcp.ParseString(req, "search", ""),
		}

		profiles, err := contextSvc.List(ctx, filters)
		if err != nil {
			return mcpmcp.NewToolResultText(fmt.Sprintf("error: %s", err)), nil
		}

		data, _ := json.Marshal(profiles)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}

func getContextProfileHandler(contextSvc *contextsvc.Service) mcpserver.ToolHandlerFunc {
	return func(ctx context.Context, req mcpmcp.CallToolRequest) (*mcpmcp.CallToolResult, error) {
		id, err := uuid.Parse(mcpmcp.ParseString(req, "context_profile_id", ""))
		if err != nil {
			return mcpmcp.NewToolResultText("error: invalid context_profile_id"), nil
		}

		cp, err := contextSvc.GetByID(ctx, id)
		if err != nil {
			return mcpmcp.NewToolResultText("error: context profile not found"), nil
		}

		data, _ := json.Marshal(cp)
		return mcpmcp.NewToolResultText(string(data)), nil
	}
}
