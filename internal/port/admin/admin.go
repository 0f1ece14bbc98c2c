package admin

import (
	"context"

	"github.com/promptvault/promptvault/internal/domain/export"
)

// Repository covers the bulk read and bulk destructive operations.
type Repository interface {
	// Export reads a consistent snapshot of the requested scope.
	// Pure read — no side effects.
	Export(ctx context.Context, scope export.Scope) (export.Snapshot, error)

	// Reset deletes every row from every table in one transaction,
	// link tables first.
	Reset(ctx context.Context) error
}
