package prompt

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/promptvault/promptvault/internal/domain/event"
	domainprompt "github.com/promptvault/promptvault/internal/domain/prompt"
	porteventbus "github.com/promptvault/promptvault/internal/port/eventbus"
	portprompt "github.com/promptvault/promptvault/internal/port/prompt"
)

// Service orchestrates prompt CRUD and publishes change-feed events after
// each successful mutation.
type Service struct {
	repo portprompt.Repository
	bus  porteventbus.EventBus
}

func NewService(repo portprompt.Repository, bus porteventbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, title, description, content, category string, contextProfileIDs []uuid.UUID) (domainprompt.Prompt, error) {
	p := domainprompt.New(title, description, content, category)

	created, err := s.repo.Create(ctx, p, contextProfileIDs)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("create prompt: %w", err)
	}
	s.publish(ctx, event.TypePromptCreated, created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("get prompt: %w", err)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, filters domainprompt.ListFilters) ([]domainprompt.Prompt, error) {
	prompts, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	return prompts, nil
}

// Update rejects an empty patch before touching the store. A patch carrying
// only a link set is valid: it replaces the links and refreshes updated_at.
func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domainprompt.Patch) (domainprompt.Prompt, error) {
	if patch.IsEmpty() {
		return domainprompt.Prompt{}, domainprompt.ErrEmptyPatch
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("update prompt: %w", err)
	}
	s.publish(ctx, event.TypePromptUpdated, id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	s.publish(ctx, event.TypePromptDeleted, id)
	return nil
}

// MarkUsed advances last_used only; updated_at is untouched.
func (s *Service) MarkUsed(ctx context.Context, id uuid.UUID) (domainprompt.Prompt, error) {
	p, err := s.repo.MarkUsed(ctx, id)
	if err != nil {
		return domainprompt.Prompt{}, fmt.Errorf("mark prompt used: %w", err)
	}
	s.publish(ctx, event.TypePromptUsed, id)
	return p, nil
}

// publish failures are logged, not returned: the mutation already committed.
func (s *Service) publish(ctx context.Context, t event.Type, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.WarnContext(ctx, "publish event failed", "type", t, "entity_id", id, "error", err)
	}
}
