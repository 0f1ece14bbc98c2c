package knowledge

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/promptvault/promptvault/internal/domain/event"
	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
	porteventbus "github.com/promptvault/promptvault/internal/port/eventbus"
	portknowledge "github.com/promptvault/promptvault/internal/port/knowledge"
)

type Service struct {
	repo portknowledge.Repository
	bus  porteventbus.EventBus
}

func NewService(repo portknowledge.Repository, bus porteventbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, title, description, content, category string, contextProfileIDs []uuid.UUID) (domainknowledge.KnowledgeBase, error) {
	kb := domainknowledge.New(title, description, content, category)

	created, err := s.repo.Create(ctx, kb, contextProfileIDs)
	if err != nil {
		return domainknowledge.KnowledgeBase{}, fmt.Errorf("create knowledge base: %w", err)
	}
	s.publish(ctx, event.TypeKnowledgeCreated, created.ID)
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainknowledge.KnowledgeBase, error) {
	kb, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainknowledge.KnowledgeBase{}, fmt.Errorf("get knowledge base: %w", err)
	}
	return kb, nil
}

func (s *Service) List(ctx context.Context, filters domainknowledge.ListFilters) ([]domainknowledge.KnowledgeBase, error) {
	kbs, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list knowledge bases: %w", err)
	}
	return kbs, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, patch domainknowledge.Patch) (domainknowledge.KnowledgeBase, error) {
	if patch.IsEmpty() {
		return domainknowledge.KnowledgeBase{}, domainknowledge.ErrEmptyPatch
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domainknowledge.KnowledgeBase{}, fmt.Errorf("update knowledge base: %w", err)
	}
	s.publish(ctx, event.TypeKnowledgeUpdated, id)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete knowledge base: %w", err)
	}
	s.publish(ctx, event.TypeKnowledgeDeleted, id)
	return nil
}

func (s *Service) publish(ctx context.Context, t event.Type, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(t, id)); err != nil {
		slog.WarnContext(ctx, "publish event failed", "type", t, "entity_id", id, "error", err)
	}
}
