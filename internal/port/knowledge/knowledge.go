package knowledge

import (
	"context"

	"github.com/google/uuid"

	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
)

// Repository is the storage abstraction for knowledge bases and their context
// links. Same atomicity contract as port/prompt.Repository.
type Repository interface {
	Create(ctx context.Context, kb domainknowledge.KnowledgeBase, contextProfileIDs []uuid.UUID) (domainknowledge.KnowledgeBase, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainknowledge.KnowledgeBase, error)
	List(ctx context.Context, filters domainknowledge.ListFilters) ([]domainknowledge.KnowledgeBase, error)
	Update(ctx context.Context, id uuid.UUID, patch domainknowledge.Patch) (domainknowledge.KnowledgeBase, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
