package prompt

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/promptvault/promptvault/internal/adapter/postgres"
	"github.com/promptvault/promptvault/internal/domain/contextprofile"
	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
)

// Repository implements port/prompt.Repository using Postgres.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts the prompt row and its link rows in one transaction.
// The entity insert comes first: link rows reference the fresh id.
func (r *Repository) Create(ctx context.Context, p domainprompt.Prompt, contextProfileIDs []uuid.UUID) (domainprompt.Prompt, error) {
	err := postgres.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO prompts (id, title, description, content, category, is_favorited, created_at, updated_at, last_used)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			p.ID, p.Title, p.Description, p.Content, p.Category, p.IsFavorited,
			p.CreatedAt, p.UpdatedAt, p.LastUsed,
		)
		if err != nil {
			return fmt.Errorf("inserting prompt: %w", err)
		}
		return insertLinks(ctx, tx, p.ID, contextProfileIDs)
	})
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	return r.GetByID(ctx, p.ID)
}

// GetByID returns the prompt with full linked-context detail, description
// included.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error) {
	query := `
		SELECT p.id, p.title, p.description, p.content, p.category, p.is_favorited,
			p.created_at, p.updated_at, p.last_used,
			COALESCE(
				JSON_AGG(JSON_BUILD_OBJECT('id', cp.id, 'name', cp.name, 'description', cp.description))
					FILTER (WHERE cp.id IS NOT NULL),
				'[]'::json
			) AS linked_contexts
		FROM prompts p
		LEFT JOIN prompt_context_links pcl ON pcl.prompt_id = p.id
		LEFT JOIN context_profiles cp ON cp.id = pcl.context_profile_id
		WHERE p.id = $1
		GROUP BY p.id`

	p, err := scanPrompt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainprompt.Prompt{}, domainprompt.ErrNotFound
		}
		return domainprompt.Prompt{}, fmt.Errorf("querying prompt: %w", err)
	}
	return p, nil
}

func (r *Repository) List(ctx context.Context, filters domainprompt.ListFilters) ([]domainprompt.Prompt, error) {
	query, args := buildListQuery(filters)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing prompts: %w", err)
	}
	defer rows.Close()

	var prompts []domainprompt.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning prompt row: %w", err)
		}
		prompts = append(prompts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating prompt rows: %w", err)
	}
	return prompts, nil
}

// Update applies the patch and, when a link set is supplied, replaces all
// link rows — both in the same transaction. Not-found is detected before any
// link mutation.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch domainprompt.Patch) (domainprompt.Prompt, error) {
	err := postgres.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		query, args := buildUpdateQuery(id, patch)
		var updatedID uuid.UUID
		if err := tx.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return domainprompt.ErrNotFound
			}
			return fmt.Errorf("updating prompt: %w", err)
		}
		if patch.ContextProfileIDs != nil {
			return replaceLinks(ctx, tx, id, *patch.ContextProfileIDs)
		}
		return nil
	})
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete removes the prompt; link rows go with it via ON DELETE CASCADE.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting prompt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainprompt.ErrNotFound
	}
	return nil
}

// MarkUsed advances last_used without touching updated_at.
func (r *Repository) MarkUsed(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error) {
	tag, err := r.pool.Exec(ctx, `UPDATE prompts SET last_used = NOW() WHERE id = $1`, id)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("marking prompt used: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domainprompt.Prompt{}, domainprompt.ErrNotFound
	}
	return r.GetByID(ctx, id)
}

func replaceLinks(ctx context.Context, tx pgx.Tx, promptID uuid.UUID, contextProfileIDs []uuid.UUID) error {
	if _, err := tx.Exec(ctx, `DELETE FROM prompt_context_links WHERE prompt_id = $1`, promptID); err != nil {
		return fmt.Errorf("clearing prompt links: %w", err)
	}
	return insertLinks(ctx, tx, promptID, contextProfileIDs)
}

func insertLinks(ctx context.Context, tx pgx.Tx, promptID uuid.UUID, contextProfileIDs []uuid.UUID) error {
	for _, cid := range contextProfileIDs {
		_, err := tx.Exec(ctx, `
			INSERT INTO prompt_context_links (prompt_id, context_profile_id)
			VALUES ($1, $2)
			ON CONFLICT (prompt_id, context_profile_id) DO NOTHING`,
			promptID, cid,
		)
		if err != nil {
			return fmt.Errorf("linking context profile %s: %w", cid, err)
		}
	}
	return nil
}

func scanPrompt(row pgx.Row) (domainprompt.Prompt, error) {
	var p domainprompt.Prompt
	err := row.Scan(
		&p.ID, &p.Title, &p.Description, &p.Content, &p.Category, &p.IsFavorited,
		&p.CreatedAt, &p.UpdatedAt, &p.LastUsed, &p.LinkedContexts,
	)
	if err != nil {
		return domainprompt.Prompt{}, err
	}
	if p.LinkedContexts == nil {
		p.LinkedContexts = []contextprofile.Link{}
	}
	return p, nil
}
