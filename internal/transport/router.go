package transport

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/promptvault/promptvault/internal/adapter/memory"
	"github.com/promptvault/promptvault/internal/domain/event"
	porteventbus "github.com/promptvault/promptvault/internal/port/eventbus"
	adminsvc "github.com/promptvault/promptvault/internal/service/admin"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
	knowledgesvc "github.com/promptvault/promptvault/internal/service/knowledge"
	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"

	contexthandler "github.com/promptvault/promptvault/internal/transport/contextprofile"
	datahandler "github.com/promptvault/promptvault/internal/transport/data"
	knowledgehandler "github.com/promptvault/promptvault/internal/transport/knowledge"
	mcptransport "github.com/promptvault/promptvault/internal/transport/mcp"
	prompthandler "github.com/promptvault/promptvault/internal/transport/prompt"
	wshandler "github.com/promptvault/promptvault/internal/transport/ws"
)

func NewRouter(
	ctx context.Context,
	promptSvc *promptsvc.Service,
	knowledgeSvc *knowledgesvc.Service,
	contextSvc *contextsvc.Service,
	adminSvc *adminsvc.Service,
	mcpServer *mcptransport.Server,
	eventBus porteventbus.EventBus,
	cache *memory.Cache,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORSMiddleware())
	r.Use(IdempotencyMiddleware(cache))

	api := r.Group("/api")

	prompthandler.Register(api.Group("/prompts"), promptSvc)
	knowledgehandler.Register(api.Group("/knowledge-bases"), knowledgeSvc)
	contexthandler.Register(api.Group("/context-profiles"), contextSvc)
	datahandler.Register(api.Group("/data"), adminSvc)

	r.Any("/mcp", gin.WrapH(mcpServer.Handler()))

	hub := wshandler.NewHub()
	hub.Register(api.Group("/ws"))

	// Bridge: one subscription per domain channel. Clients filter on the
	// event type in the payload.
	for _, ch := range []event.Channel{
		event.ChannelPrompt,
		event.ChannelKnowledge,
		event.ChannelContext,
		event.ChannelAdmin,
	} {
		c := ch
		if _, err := eventBus.Subscribe(ctx, c, func(_ context.Context, e event.Event) {
			hub.Broadcast(e)
		}); err != nil {
			slog.Error("failed to subscribe channel to WS hub", "channel", c, "error", err)
		}
	}

	return r
}
