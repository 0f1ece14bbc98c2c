package event_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/promptvault/promptvault/internal/domain/event"
)

func TestChannelFor(t *testing.T) {
	assert.Equal(t, event.ChannelPrompt, event.ChannelFor(event.TypePromptUsed))
	assert.Equal(t, event.ChannelKnowledge, event.ChannelFor(event.TypeKnowledgeDeleted))
	assert.Equal(t, event.ChannelContext, event.ChannelFor(event.TypeContextUpdated))
	assert.Equal(t, event.ChannelAdmin, event.ChannelFor(event.TypeDataReset))
}

func TestNew(t *testing.T) {
	id := uuid.New()
	e := event.New(event.TypePromptCreated, id)
	assert.Equal(t, event.TypePromptCreated, e.Type)
	assert.Equal(t, id, e.EntityID)
	assert.False(t, e.Timestamp.IsZero())
}
