package prompt

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/promptvault/promptvault/internal/domain/contextprofile"
)

var (
	ErrNotFound   = errors.New("prompt not found")
	ErrEmptyPatch = errors.New("no fields to update")
)

const DefaultCategory = "General"

// CategoryAll is the sentinel filter value meaning "no category filter".
const CategoryAll = "All"

// RecentLimit caps the recent-prompts listing.
const RecentLimit = 3

type Prompt struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	IsFavorited bool      `json:"is_favorited"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	// LastUsed is only advanced by the explicit mark-used operation.
	LastUsed       time.Time             `json:"last_used"`
	LinkedContexts []contextprofile.Link `json:"linked_contexts"`
}

func New(title, description, content, category string) Prompt {
	now := time.Now().UTC()
	if category == "" {
		category = DefaultCategory
	}
	return Prompt{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		Content:        content,
		Category:       category,
		CreatedAt:      now,
		UpdatedAt:      now,
		LastUsed:       now,
		LinkedContexts: []contextprofile.Link{},
	}
}

// Patch carries a partial update. nil means "field absent" — distinct from a
// pointer to an empty value, which clears the field.
// ContextProfileIDs non-nil (even empty) replaces the entire link set.
type Patch struct {
	Title             *string      `json:"title"`
	Description       *string      `json:"description"`
	Content           *string      `json:"content"`
	Category          *string      `json:"category"`
	IsFavorited       *bool        `json:"is_favorited"`
	ContextProfileIDs *[]uuid.UUID `json:"context_profile_ids"`
}

// HasEntityFields reports whether any prompt column is being changed.
func (p Patch) HasEntityFields() bool {
	return p.Title != nil || p.Description != nil || p.Content != nil ||
		p.Category != nil || p.IsFavorited != nil
}

func (p Patch) IsEmpty() bool {
	return !p.HasEntityFields() && p.ContextProfileIDs == nil
}

type ListFilters struct {
	Search        string
	Category      string
	FavoritesOnly bool
	// RecentOnly returns the RecentLimit most recently used prompts and
	// ignores every other filter.
	RecentOnly bool
}
