package prompt

import (
	"context"

	"github.com/google/uuid"

	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
)

// Repository is the storage abstraction for prompts and their context links.
// Multi-table mutations (create with links, link-set replacement, delete) are
// atomic: either the entity row and all its link rows change, or nothing does.
type Repository interface {
	// Create inserts the prompt and links it to each given context profile.
	// Duplicate ids in contextProfileIDs collapse to a single link.
	Create(ctx context.Context, p domainprompt.Prompt, contextProfileIDs []uuid.UUID) (domainprompt.Prompt, error)

	// GetByID returns the prompt with full linked-context detail.
	// Returns domainprompt.ErrNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error)

	List(ctx context.Context, filters domainprompt.ListFilters) ([]domainprompt.Prompt, error)

	// Update applies the patch; a non-nil ContextProfileIDs replaces the
	// entire link set. updated_at is always refreshed.
	Update(ctx context.Context, id uuid.UUID, patch domainprompt.Patch) (domainprompt.Prompt, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// MarkUsed advances last_used only, leaving updated_at untouched.
	MarkUsed(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error)
}
