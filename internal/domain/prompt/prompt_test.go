package prompt_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/promptvault/promptvault/internal/domain/prompt"
)

func TestNew_Defaults(t *testing.T) {
	p := prompt.New("Review", "desc", "content", "")

	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, prompt.DefaultCategory, p.Category)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	assert.Equal(t, p.CreatedAt, p.LastUsed)
	assert.NotNil(t, p.LinkedContexts)
	assert.Empty(t, p.LinkedContexts)
}

func TestNew_KeepsExplicitCategory(t *testing.T) {
	p := prompt.New("Review", "", "content", "Coding")
	assert.Equal(t, "Coding", p.Category)
}

func TestPatch_IsEmpty(t *testing.T) {
	title := "t"
	fav := false
	emptyLinks := []uuid.UUID{}

	tests := []struct {
		name  string
		patch prompt.Patch
		empty bool
	}{
		{"zero patch", prompt.Patch{}, true},
		{"title only", prompt.Patch{Title: &title}, false},
		{"favorite false is still a change", prompt.Patch{IsFavorited: &fav}, false},
		{"empty link set replaces links", prompt.Patch{ContextProfileIDs: &emptyLinks}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.empty, tt.patch.IsEmpty())
		})
	}
}

func TestPatch_HasEntityFields(t *testing.T) {
	links := []uuid.UUID{uuid.New()}

	assert.False(t, prompt.Patch{ContextProfileIDs: &links}.HasEntityFields())

	content := "c"
	assert.True(t, prompt.Patch{Content: &content}.HasEntityFields())
}
