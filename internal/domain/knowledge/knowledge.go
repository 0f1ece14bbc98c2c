package knowledge

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/promptvault/promptvault/internal/domain/contextprofile"
)

var (
	ErrNotFound   = errors.New("knowledge base not found")
	ErrEmptyPatch = errors.New("no fields to update")
)

const DefaultCategory = "General"

type KnowledgeBase struct {
	ID             uuid.UUID             `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	Content        string                `json:"content"`
	Category       string                `json:"category"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	LinkedContexts []contextprofile.Link `json:"linked_contexts"`
}

func New(title, description, content, category string) KnowledgeBase {
	now := time.Now().UTC()
	if category == "" {
		category = DefaultCategory
	}
	return KnowledgeBase{
		ID:             uuid.New(),
		Title:          title,
		Description:    description,
		Content:        content,
		Category:       category,
		CreatedAt:      now,
		UpdatedAt:      now,
		LinkedContexts: []contextprofile.Link{},
	}
}

// Patch carries a partial update. nil means "field absent".
type Patch struct {
	Title             *string      `json:"title"`
	Description       *string      `json:"description"`
	Content           *string      `json:"content"`
	Category          *string      `json:"category"`
	ContextProfileIDs *[]uuid.UUID `json:"context_profile_ids"`
}

func (p Patch) HasEntityFields() bool {
	return p.Title != nil || p.Description != nil || p.Content != nil || p.Category != nil
}

func (p Patch) IsEmpty() bool {
	return !p.HasEntityFields() && p.ContextProfileIDs == nil
}

type ListFilters struct {
	Search   string
	Category string
}
