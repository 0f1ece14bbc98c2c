package event

import (
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypePromptCreated    Type = "prompt_created"
	TypePromptUpdated    Type = "prompt_updated"
	TypePromptDeleted    Type = "prompt_deleted"
	TypePromptUsed       Type = "prompt_used"
	TypeKnowledgeCreated Type = "knowledge_created"
	TypeKnowledgeUpdated Type = "knowledge_updated"
	TypeKnowledgeDeleted Type = "knowledge_deleted"
	TypeContextCreated   Type = "context_created"
	TypeContextUpdated   Type = "context_updated"
	TypeContextDeleted   Type = "context_deleted"
	TypeDataReset        Type = "data_reset"
)

// Channel is a domain-scoped Postgres NOTIFY channel.
// All event types within a domain share one LISTEN connection.
type Channel string

const (
	ChannelPrompt    Channel = "prompt"
	ChannelKnowledge Channel = "knowledge"
	ChannelContext   Channel = "context"
	ChannelAdmin     Channel = "admin"
)

var typeToChannel = map[Type]Channel{
	TypePromptCreated:    ChannelPrompt,
	TypePromptUpdated:    ChannelPrompt,
	TypePromptDeleted:    ChannelPrompt,
	TypePromptUsed:       ChannelPrompt,
	TypeKnowledgeCreated: ChannelKnowledge,
	TypeKnowledgeUpdated: ChannelKnowledge,
	TypeKnowledgeDeleted: ChannelKnowledge,
	TypeContextCreated:   ChannelContext,
	TypeContextUpdated:   ChannelContext,
	TypeContextDeleted:   ChannelContext,
	TypeDataReset:        ChannelAdmin,
}

// ChannelFor returns the domain channel for a given event type.
func ChannelFor(t Type) Channel { return typeToChannel[t] }

// Event carries identifiers only, not full state.
// Subscribers fetch fresh state from the appropriate repository.
type Event struct {
	Type      Type      `json:"type"`
	EntityID  uuid.UUID `json:"entity_id"`
	Timestamp time.Time `json:"timestamp"`
}

func New(eventType Type, entityID uuid.UUID) Event {
	return Event{
		Type:      eventType,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}
