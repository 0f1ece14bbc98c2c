package prompt

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
)

const listSelect = `
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
	WHERE 1=1`

// buildListQuery turns an immutable filter value into a finished parameterized
// query. Filter values are always bound, never concatenated.
func buildListQuery(f domainprompt.ListFilters) (string, []interface{}) {
	// Recent mode ignores every other filter: top N by last_used.
	if f.RecentOnly {
		return listSelect + fmt.Sprintf(" GROUP BY p.id ORDER BY p.last_used DESC LIMIT %d", domainprompt.RecentLimit), nil
	}

	query := listSelect
	var args []interface{}

	if f.Category != "" && f.Category != domainprompt.CategoryAll {
		args = append(args, f.Category)
		query += fmt.Sprintf(" AND p.category = $%d", len(args))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		n := len(args)
		query += fmt.Sprintf(" AND (p.title ILIKE $%d OR p.description ILIKE $%d OR p.content ILIKE $%d)", n, n, n)
	}
	if f.FavoritesOnly {
		query += " AND p.is_favorited"
	}

	query += " GROUP BY p.id ORDER BY p.updated_at DESC"
	return query, args
}

// buildUpdateQuery builds the partial UPDATE for the patch. updated_at is
// always refreshed, even for a link-only patch.
func buildUpdateQuery(id uuid.UUID, patch domainprompt.Patch) (string, []interface{}) {
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
	if patch.IsFavorited != nil {
		set("is_favorited", *patch.IsFavorited)
	}
	sets = append(sets, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf("UPDATE prompts SET %s WHERE id = $%d RETURNING id",
		strings.Join(sets, ", "), len(args))
	return query, args
}
