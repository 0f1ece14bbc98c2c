package contextprofile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
)

// Repository implements port/contextprofile.Repository using Postgres.
// Link rows referencing a deleted profile are removed by ON DELETE CASCADE.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, cp domaincontext.ContextProfile) (domaincontext.ContextProfile, error) {
	query := `
		INSERT INTO context_profiles (id, name, description, json_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, description, json_data, created_at, updated_at`

	var created domaincontext.ContextProfile
	err := r.pool.QueryRow(ctx, query,
		cp.ID, cp.Name, cp.Description, cp.JSONData, cp.CreatedAt, cp.UpdatedAt,
	).Scan(
		&created.ID, &created.Name, &created.Description, &created.JSONData,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return domaincontext.ContextProfile{}, fmt.Errorf("inserting context profile: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domaincontext.ContextProfile, error) {
	cp, err := scanProfile(r.pool.QueryRow(ctx, profileSelect+" AND cp.id = $1", id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaincontext.ContextProfile{}, domaincontext.ErrNotFound
		}
		return domaincontext.ContextProfile{}, fmt.Errorf("querying context profile: %w", err)
	}
	return cp, nil
}

func (r *Repository) List(ctx context.Context, filters domaincontext.ListFilters) ([]domaincontext.ContextProfile, error) {
	query, args := buildListQuery(filters)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing context profiles: %w", err)
	}
	defer rows.Close()

	var profiles []domaincontext.ContextProfile
	for rows.Next() {
		cp, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning context profile row: %w", err)
		}
		profiles = append(profiles, cp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating context profile rows: %w", err)
	}
	return profiles, nil
}

func (r *Repository) Update(ctx context.Context, id uuid.UUID, patch domaincontext.Patch) (domaincontext.ContextProfile, error) {
	query, args := buildUpdateQuery(id, patch)

	var updatedID uuid.UUID
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domaincontext.ContextProfile{}, domaincontext.ErrNotFound
		}
		return domaincontext.ContextProfile{}, fmt.Errorf("updating context profile: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM context_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting context profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domaincontext.ErrNotFound
	}
	return nil
}

// profileSelect aggregates link counts per profile, for the list screens.
const profileSelect = `
	SELECT cp.id, cp.name, cp.description, cp.json_data, cp.created_at, cp.updated_at,
		COALESCE(pc.prompt_count, 0) AS linked_prompts,
		COALESCE(kc.knowledge_count, 0) AS linked_knowledge
	FROM context_profiles cp
	LEFT JOIN (
		SELECT context_profile_id, COUNT(*) AS prompt_count
		FROM prompt_context_links GROUP BY context_profile_id
	) pc ON pc.context_profile_id = cp.id
	LEFT JOIN (
		SELECT context_profile_id, COUNT(*) AS knowledge_count
		FROM knowledge_context_links GROUP BY context_profile_id
	) kc ON kc.context_profile_id = cp.id
	WHERE 1=1`

func buildListQuery(f domaincontext.ListFilters) (string, []interface{}) {
	query := profileSelect
	var args []interface{}

	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (cp.name ILIKE $%d OR cp.description ILIKE $%d)", n, n)
	}

	query += " ORDER BY cp.updated_at DESC"
	return query, args
}

func buildUpdateQuery(id uuid.UUID, patch domaincontext.Patch) (string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Name != nil {
		set("name", *patch.Name)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.JSONData != nil {
		set("json_data", *patch.JSONData)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE context_profiles SET %s WHERE id = $%d RETURNING id",
		strings.Join(sets, ", "), len(args))
	return query, args
}

func scanProfile(row pgx.Row) (domaincontext.ContextProfile, error) {
	var cp domaincontext.ContextProfile
	err := row.Scan(
		&cp.ID, &cp.Name, &cp.Description, &cp.JSONData,
		&cp.CreatedAt, &cp.UpdatedAt, &cp.LinkedPrompts, &cp.LinkedKnowledge,
	)
	if err != nil {
		return domaincontext.ContextProfile{}, err
	}
	return cp, nil
}
