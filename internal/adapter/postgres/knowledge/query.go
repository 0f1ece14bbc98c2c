package knowledge

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
)

const listSelect = `
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
	WHERE 1=1`

const categoryAll = "All"

func buildListQuery(f domainknowledge.ListFilters) (string, []interface{}) {
	query := listSelect
	var args []interface{}

	if f.Category != "" && f.Category != categoryAll {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND kb.category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (kb.title ILIKE $%d OR kb.description ILIKE $%d OR kb.content ILIKE $%d)", n, n, n)
	}

	query += " GROUP BY kb.id ORDER BY kb.updated_at DESC"
	return query, args
}

func buildUpdateQuery(id uuid.UUID, patch domainknowledge.Patch) (string, []interface{}) {
	var sets []string
	var args []interface{}

	set := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if patch.Title != nil {
		set("title", *patch.Title)
	}
	if patch.Description != nil {
		set("description", *patch.Description)
	}
	if patch.Content != nil {
		set("content", *patch.Content)
	}
	if patch.Category != nil {
		set("category", *patch.Category)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE knowledge_bases SET %s WHERE id = $%d RETURNING id",
		strings.Join(sets, ", "), len(args))
	return query, args
}
