package knowledge

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptvault/promptvault/internal/adapter/postgres"
	"github.com/promptvault/promptvault/internal/domain/contextprofile"
	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
)

// Repository implements port/knowledge.Repository using Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, kb domainknowledge.KnowledgeBase, contextProfileIDs []uuid.UUID) (domainknowledge.KnowledgeBase, error) {
	err := postgres.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO knowledge_bases (id, title, description, content, category, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			kb.ID, kb.Title, kb.Description, kb.Content, kb.Category, kb.CreatedAt, kb.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("inserting knowledge base: %w", err)
		}
		return insertLinks(ctx, tx, kb.ID, contextProfileIDs)
	})
	if err != nil {
		return domainknowledge.KnowledgeBase{}, err
	}
	return r.GetByID(ctx, kb.ID)
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainknowledge.KnowledgeBase, error) {
	query := `
		SELECT kb.id, kb.title, kb.description, kb.content, kb.category,
			kb.created_at, kb.updated_at,
			COALESCE(
				JSON_AGG(JSON_BUILD_OBJECT('id', cp.id, 'name', cp.name, 'description', cp.description))
					FILTER (WHERE cp.id IS NOT NULL),
				'[]'::json
			) AS linked_contexts
		FROM knowledge_bases kb
		LEFT JOIN knowledge_context_links kcl ON kcl.knowledge_base_id = kb.id
		LEFT JOIN context_profiles cp ON cp.id = kcl.context_profile_id
		WHERE kb.id = $1
		GROUP BY kb.id`

	kb, err := scanKnowledgeBase(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainknowledge.KnowledgeBase{}, domainknowledge.ErrNotFound
		}
		return domainknowledge.KnowledgeBase{}, fmt.Errorf("querying knowledge base: %w", err)
	}
	return kb, nil
}

func (r *Repository) List(ctx context.Context, filters domainknowledge.ListFilters) ([]domainknowledge.KnowledgeBase, error) {
	query, args := buildListQuery(filters)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing knowledge bases: %w", err)
	}
	defer rows.Close()

	var kbs []domainknowledge.KnowledgeBase
	for rows.Next() {
		kb, err := scanKnowledgeBase(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning knowledge base row: %w", err)
		}
		kbs = append(kbs, kb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating knowledge base rows: %w", err)
	}
	return kbs, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch domainknowledge.Patch) (domainknowledge.KnowledgeBase, error) {
	err := postgres.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		query, args := buildUpdateQuery(id, patch)
		var updatedID uuid.UUID
		if err := tx.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainknowledge.ErrNotFound
			}
			return fmt.Errorf("updating knowledge base: %w", err)
		}
		if patch.ContextProfileIDs != nil {
			return replaceLinks(ctx, tx, id, *patch.ContextProfileIDs)
		}
		return nil
	})
	if err != nil {
		return domainknowledge.KnowledgeBase{}, err
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM knowledge_bases WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting knowledge base: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainknowledge.ErrNotFound
	}
	return nil
}

func replaceLinks(ctx context.Context, tx pgx.Tx, kbID uuid.UUID, contextProfileIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM knowledge_context_links WHERE knowledge_base_id = $1`, kbID); err != nil {
		return fmt.Errorf("clearing knowledge links: %w", err)
	}
	return insertLinks(ctx, tx, kbID, contextProfileIDs)
}

func insertLinks(ctx context.Context, tx pgx.Tx, kbID uuid.UUID, contextProfileIDs []uuid.UUID) error {
	for _, cid := range contextProfileIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO knowledge_context_links (knowledge_base_id, context_profile_id)
			VALUES ($1, $2)
			ON CONFLICT (knowledge_base_id, context_profile_id) DO NOTHING`,
			kbID, cid,
		)
		if err != nil {
			return fmt.Errorf("linking context profile %s: %w", cid, err)
		}
	}
	return nil
}

func scanKnowledgeBase(row pgx.Row) (domainknowledge.KnowledgeBase, error) {
	var kb domainknowledge.KnowledgeBase
	err := row.Scan(
		&kb.ID, &kb.Title, &kb.Description, &kb.Content, &kb.Category,
		&kb.CreatedAt, &kb.UpdatedAt, &kb.LinkedContexts,
	)
	if err != nil {
		return domainknowledge.KnowledgeBase{}, err
	}
	if kb.LinkedContexts == nil {
		kb.LinkedContexts = []contextprofile.Link{}
	}
	return kb, nil
}
