package contextprofile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
	"github.com/promptvault/promptvault/internal/domain/event"
	portcontext "github.com/promptvault/promptvault/internal/port/contextprofile"
	porteventbus "github.com/promptvault/promptvault/internal/port/eventbus"
)

// Service validates and stores context profiles. json_data is normalized
// (parsed then re-serialized) before anything touches the store.
type Service struct {
	repo portcontext.Repository
	bus  porteventbus.EventBus
}

func NewService(repo portcontext.Repository, bus porteventbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, name, description string, jsonData json.RawMessage) (domaincontext.ContextProfile, error) {
	normalized, err := domaincontext.NormalizeJSON(jsonData)
	if err != nil {
		return domaincontext.ContextProfile{}, err
	}

	cp := domaincontext.New(name, description, normalized)
	created, err := s.repo.Create(ctx, cp)
	if err != nil {
		return domaincontext.ContextProfile{}, fmt.Errorf("create context profile: %w", err)
	}
	s.publish(ctx, event.TypeContextCreated, created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domaincontext.ContextProfile, error) {
	cp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domaincontext.ContextProfile{}, fmt.Errorf("get context profile: %w", err)
	}
	return cp, nil
}

func (s *Service) List(ctx context.Context, filters domaincontext.ListFilters) ([]domaincontext.ContextProfile, error) {
	profiles, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list context profiles: %w", err)
	}
	return profiles, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domaincontext.Patch) (domaincontext.ContextProfile, error) {
	if patch.IsEmpty() {
		return domaincontext.ContextProfile{}, domaincontext.ErrEmptyPatch
	}
	if patch.JSONData != nil {
		normalized, err := domaincontext.NormalizeJSON(*patch.JSONData)
		if err != nil {
			return domaincontext.ContextProfile{}, err
		}
		patch.JSONData = &normalized
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domaincontext.ContextProfile{}, fmt.Errorf("update context profile: %w", err)
	}
	s.publish(ctx, event.TypeContextUpdated, id)
	return updated, nil
}

// Delete removes the profile; link rows on prompts and knowledge bases are
// removed with it.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete context profile: %w", err)
	}
	s.publish(ctx, event.TypeContextDeleted, id)
	return nil
}

func (s *Service) publish(ctx context.Context, t event.Type, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.WarnContext(ctx, "publish event failed", "type", t, "entity_id", id, "error", err)
	}
}
