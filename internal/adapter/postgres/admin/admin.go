package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptvault/promptvault/internal/adapter/postgres"
	"github.com/promptvault/promptvault/internal/domain/contextprofile"
	"github.com/promptvault/promptvault/internal/domain/export"
	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
)

// Repository implements port/admin.Repository: bulk snapshot reads and the
// all-tables reset.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Export reads every in-scope entity type inside one read-only transaction,
// ordered by creation time.
func (r *Repository) Export(ctx context.Context, scope export.Scope) (export.Snapshot, error) {
	snap := export.Snapshot{
		ExportedAt: time.Now().UTC(),
		Version:    export.Version,
		Type:       scope,
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly})
	if err != nil {
		return export.Snapshot{}, fmt.Errorf("beginning export transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if scope.Includes(export.ScopePrompts) {
		snap.Prompts, err = exportPrompts(ctx, tx)
		if err != nil {
			return export.Snapshot{}, err
		}
	}
	if scope.Includes(export.ScopeKnowledge) {
		snap.KnowledgeBases, err = exportKnowledgeBases(ctx, tx)
		if err != nil {
			return export.Snapshot{}, err
		}
	}
	if scope.Includes(export.ScopeContexts) {
		snap.ContextProfiles, err = exportContextProfiles(ctx, tx)
		if err != nil {
			return export.Snapshot{}, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return export.Snapshot{}, fmt.Errorf("committing export transaction: %w", err)
	}
	return snap, nil
}

// Reset empties every table in one transaction. Link tables go first to
// satisfy foreign keys.
func (r *Repository) Reset(ctx context.Context) error {
	tables := []string{
		"prompt_context_links",
		"knowledge_context_links",
		"prompts",
		"knowledge_bases",
		"context_profiles",
	}
	return postgres.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		for _, table := range tables {
			if _, err := tx.Exec(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("clearing %s: %w", table, err)
			}
		}
		return nil
	})
}

func exportPrompts(ctx context.Context, tx pgx.Tx) ([]domainprompt.Prompt, error) {
	rows, err := tx.Query(ctx, `
		SELECT p.id, p.title, p.description, p.content, p.category, p.is_favorited,
			p.created_at, p.updated_at, p.last_used,
			COALESCE(
				JSON_AGG(JSON_BUILD_OBJECT('id', cp.id, 'name', cp.name))
					FILTER (WHERE cp.id IS NOT NULL),
				'[]'::json
			) AS linked_contexts
		FROM prompts p
		LEFT JOIN prompt_context_links pcl ON pcl.prompt_id = p.id
		LEFT JOIN context_profiles cp ON cp.id = pcl.context_profile_id
		GROUP BY p.id
		ORDER BY p.created_at`)
	if err != nil {
		return nil, fmt.Errorf("exporting prompts: %w", err)
	}
	defer rows.Close()

	prompts := []domainprompt.Prompt{}
	for rows.Next() {
		var p domainprompt.Prompt
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.Content, &p.Category, &p.IsFavorited,
			&p.CreatedAt, &p.UpdatedAt, &p.LastUsed, &p.LinkedContexts,
		); err != nil {
			return nil, fmt.Errorf("scanning exported prompt: %w", err)
		}
		if p.LinkedContexts == nil {
			p.LinkedContexts = []contextprofile.Link{}
		}
		prompts = append(prompts, p)
	}
	return prompts, rows.Err()
}

func exportKnowledgeBases(ctx context.Context, tx pgx.Tx) ([]domainknowledge.KnowledgeBase, error) {
	rows, err := tx.Query(ctx, `
		SELECT kb.id, kb.title, kb.description, kb.content, kb.category,
			kb.created_at, kb.updated_at,
			COALESCE(
				JSON_AGG(JSON_BUILD_OBJECT('id', cp.id, 'name', cp.name))
					FILTER (WHERE cp.id IS NOT NULL),
				'[]'::json
			) AS linked_contexts
		FROM knowledge_bases kb
		LEFT JOIN knowledge_context_links kcl ON kcl.knowledge_base_id = kb.id
		LEFT JOIN context_profiles cp ON cp.id = kcl.context_profile_id
		GROUP BY kb.id
		ORDER BY kb.created_at`)
	if err != nil {
		return nil, fmt.Errorf("exporting knowledge bases: %w", err)
	}
	defer rows.Close()

	kbs := []domainknowledge.KnowledgeBase{}
	for rows.Next() {
		var kb domainknowledge.KnowledgeBase
		if err := rows.Scan(
			&kb.ID, &kb.Title, &kb.Description, &kb.Content, &kb.Category,
			&kb.CreatedAt, &kb.UpdatedAt, &kb.LinkedContexts,
		); err != nil {
			return nil, fmt.Errorf("scanning exported knowledge base: %w", err)
		}
		if kb.LinkedContexts == nil {
			kb.LinkedContexts = []contextprofile.Link{}
		}
		kbs = append(kbs, kb)
	}
	return kbs, rows.Err()
}

func exportContextProfiles(ctx context.Context, tx pgx.Tx) ([]contextprofile.ContextProfile, error) {
	rows, err := tx.Query(ctx, `
		SELECT id, name, description, json_data, created_at, updated_at
		FROM context_profiles
		ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("exporting context profiles: %w", err)
	}
	defer rows.Close()

	profiles := []contextprofile.ContextProfile{}
	for rows.Next() {
		var cp contextprofile.ContextProfile
		if err := rows.Scan(
			&cp.ID, &cp.Name, &cp.Description, &cp.JSONData, &cp.CreatedAt, &cp.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning exported context profile: %w", err)
		}
		profiles = append(profiles, cp)
	}
	return profiles, rows.Err()
}
