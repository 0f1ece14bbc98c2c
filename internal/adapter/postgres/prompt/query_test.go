package prompt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
)

func TestBuildListQuery_NoFilters(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{})

	assert.Empty(t, args)
	assert.Contains(t, query, "ORDER BY p.updated_at DESC")
	assert.NotContains(t, query, "p.category =")
	assert.NotContains(t, query, "ILIKE")
}

func TestBuildListQuery_CategoryAllIsNoFilter(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{Category: domainprompt.CategoryAll})

	assert.Empty(t, args)
	assert.NotContains(t, query, "p.category =")
}

func TestBuildListQuery_Category(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{Category: "Coding"})

	assert.Equal(t, []interface{}{"Coding"}, args)
	assert.Contains(t, query, "AND p.category = $1")
}

func TestBuildListQuery_SearchBindsOneArgThreeTimes(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{Search: "review"})

	assert.Equal(t, []interface{}{"%review%"}, args)
	assert.Contains(t, query, "p.title ILIKE $1")
	assert.Contains(t, query, "p.description ILIKE $1")
	assert.Contains(t, query, "p.content ILIKE $1")
}

func TestBuildListQuery_CategoryAndSearchNumbering(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{Category: "Coding", Search: "go"})

	assert.Equal(t, []interface{}{"Coding", "%go%"}, args)
	assert.Contains(t, query, "p.category = $1")
	assert.Contains(t, query, "p.title ILIKE $2")
}

func TestBuildListQuery_Favorites(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{FavoritesOnly: true})

	assert.Empty(t, args)
	assert.Contains(t, query, "AND p.is_favorited")
}

func TestBuildListQuery_RecentIgnoresOtherFilters(t *testing.T) {
	query, args := buildListQuery(domainprompt.ListFilters{
		RecentOnly:    true,
		Category:      "Coding",
		Search:        "go",
		FavoritesOnly: true,
	})

	assert.Nil(t, args)
	assert.Contains(t, query, "ORDER BY p.last_used DESC LIMIT 3")
	assert.NotContains(t, query, "p.category =")
	assert.NotContains(t, query, "ILIKE")
	assert.NotContains(t, query, "is_favorited")
}

func TestBuildUpdateQuery_SingleField(t *testing.T) {
	id := uuid.New()
	title := "new title"
	query, args := buildUpdateQuery(id, domainprompt.Patch{Title: &title})

	assert.Equal(t, "UPDATE prompts SET title = $1, updated_at = NOW() WHERE id = $2 RETURNING id", query)
	assert.Equal(t, []interface{}{"new title", id}, args)
}

func TestBuildUpdateQuery_LinkOnlyPatchStillTouchesUpdatedAt(t *testing.T) {
	id := uuid.New()
	query, args := buildUpdateQuery(id, domainprompt.Patch{})

	assert.Equal(t, "UPDATE prompts SET updated_at = NOW() WHERE id = $1 RETURNING id", query)
	assert.Equal(t, []interface{}{id}, args)
}

func TestBuildUpdateQuery_AllFields(t *testing.T) {
	id := uuid.New()
	title, desc, content, cat := "t", "d", "c", "Coding"
	fav := true
	query, args := buildUpdateQuery(id, domainprompt.Patch{
		Title:       &title,
		Description: &desc,
		Content:     &content,
		Category:    &cat,
		IsFavorited: &fav,
	})

	assert.Contains(t, query, "title = $1")
	assert.Contains(t, query, "is_favorited = $5")
	assert.Contains(t, query, "WHERE id = $6")
	assert.Len(t, args, 6)
	assert.Equal(t, id, args[5])
}
