package contextprofile

import (
	"context"

	"github.com/google/uuid"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
)

// Repository is the storage abstraction for context profiles. Deleting a
// profile removes its link rows in both link tables.
type Repository interface {
	Create(ctx context.Context, cp domaincontext.ContextProfile) (domaincontext.ContextProfile, error)
	GetByID(ctx context.Context, id uuid.UUID) (domaincontext.ContextProfile, error)
	List(ctx context.Context, filters domaincontext.ListFilters) ([]domaincontext.ContextProfile, error)
	Update(ctx context.Context, id uuid.UUID, patch domaincontext.Patch) (domaincontext.ContextProfile, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
