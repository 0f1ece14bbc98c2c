package wire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptvault/promptvault/internal/adapter/memory"
	pgdb "github.com/promptvault/promptvault/internal/adapter/postgres"
	pgadmin "github.com/promptvault/promptvault/internal/adapter/postgres/admin"
	pgcontext "github.com/promptvault/promptvault/internal/adapter/postgres/contextprofile"
	pgeventbus "github.com/promptvault/promptvault/internal/adapter/postgres/eventbus"
	pgknowledge "github.com/promptvault/promptvault/internal/adapter/postgres/knowledge"
	pglocker "github.com/promptvault/promptvault/internal/adapter/postgres/locker"
	pgprompt "github.com/promptvault/promptvault/internal/adapter/postgres/prompt"

	adminsvc "github.com/promptvault/promptvault/internal/service/admin"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
	knowledgesvc "github.com/promptvault/promptvault/internal/service/knowledge"
	promptsvc "github.com/promptvault/promptvault/internal/service/prompt"

	"github.com/promptvault/promptvault/internal/transport"
	mcptransport "github.com/promptvault/promptvault/internal/transport/mcp"
)

// App holds the top-level resources needed to run and gracefully stop the
// server.
type App struct {
	Pool   *pgxpool.Pool
	Server *http.Server
}

// Build is the composition root: the only place concrete types are wired to
// their interface dependencies.
func Build(ctx context.Context) (*App, error) {
	// ── Database ─────────────────────────────────────────────────────────────
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}
	pool, err := pgdb.Connect(ctx, dbURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	if err := pgdb.Migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}

	// ── Adapters ─────────────────────────────────────────────────────────────
	promptRepo := pgprompt.New(pool)
	knowledgeRepo := pgknowledge.New(pool)
	contextRepo := pgcontext.New(pool)
	adminRepo := pgadmin.New(pool)
	eventBus := pgeventbus.New(pool)
	locker := pglocker.New(pool)
	cache := memory.NewCache()

	// ── Services ─────────────────────────────────────────────────────────────
	promptSvcInstance := promptsvc.NewService(promptRepo, eventBus)
	knowledgeSvcInstance := knowledgesvc.NewService(knowledgeRepo, eventBus)
	contextSvcInstance := contextsvc.NewService(contextRepo, eventBus)
	adminSvcInstance := adminsvc.NewService(adminRepo, locker, eventBus)

	mcpServer := mcptransport.New(promptSvcInstance, contextSvcInstance)

	// ── Transport ────────────────────────────────────────────────────────────
	router := transport.NewRouter(
		ctx,
		promptSvcInstance,
		knowledgeSvcInstance,
		contextSvcInstance,
		adminSvcInstance,
		mcpServer,
		eventBus,
		cache,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	slog.Info("application wired", "port", port)

	return &App{
		Pool:   pool,
		Server: server,
	}, nil
}
