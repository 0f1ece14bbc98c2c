package admin

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/promptvault/promptvault/internal/domain/event"
	"github.com/promptvault/promptvault/internal/domain/export"
	portadmin "github.com/promptvault/promptvault/internal/port/admin"
	porteventbus "github.com/promptvault/promptvault/internal/port/eventbus"
	portlocker "github.com/promptvault/promptvault/internal/port/locker"
)

// resetLockKey is fixed: every reset contends on the same advisory lock.
const resetLockKey int64 = 0x7076_7265_7365_74 // "pvreset"

type Service struct {
	repo   portadmin.Repository
	locker portlocker.AdvisoryLocker
	bus    porteventbus.EventBus
}

func NewService(repo portadmin.Repository, locker portlocker.AdvisoryLocker, bus porteventbus.EventBus) *Service {
	return &Service{repo: repo, locker: locker, bus: bus}
}

func (s *Service) Export(ctx context.Context, scope export.Scope) (export.Snapshot, error) {
	snap, err := s.repo.Export(ctx, scope)
	if err != nil {
		return export.Snapshot{}, fmt.Errorf("export data: %w", err)
	}
	return snap, nil
}

// Reset wipes all data. Concurrent resets are serialised by an advisory lock;
// the wipe itself is one all-or-nothing transaction.
func (s *Service) Reset(ctx context.Context) (time.Time, error) {
	err := s.locker.WithLock(ctx, resetLockKey, func(ctx context.Context) error {
		return s.repo.Reset(ctx)
	})
	if err != nil {
		return time.Time{}, fmt.Errorf("reset data: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeDataReset, uuid.Nil)); err != nil {
		slog.WarnContext(ctx, "publish event failed", "type", event.TypeDataReset, "error", err)
	}
	return time.Now().UTC(), nil
}
