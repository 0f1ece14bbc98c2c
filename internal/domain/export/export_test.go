package export_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptvault/promptvault/internal/domain/export"
)

func TestParseScope(t *testing.T) {
	tests := []struct {
		in      string
		want    export.Scope
		wantErr bool
	}{
		{"", export.ScopeAll, false},
		{"all", export.ScopeAll, false},
		{"prompts", export.ScopePrompts, false},
		{"knowledge", export.ScopeKnowledge, false},
		{"contexts", export.ScopeContexts, false},
		{"everything", "", true},
		{"Prompts", "", true},
	}
	for _, tt := range tests {
		t.Run("type="+tt.in, func(t *testing.T) {
			got, err := export.ParseScope(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestScope_Includes(t *testing.T) {
	assert.True(t, export.ScopeAll.Includes(export.ScopePrompts))
	assert.True(t, export.ScopeAll.Includes(export.ScopeContexts))
	assert.True(t, export.ScopePrompts.Includes(export.ScopePrompts))
	assert.False(t, export.ScopePrompts.Includes(export.ScopeKnowledge))
}

func TestSnapshot_Filename(t *testing.T) {
	snap := export.Snapshot{
		Type:       export.ScopePrompts,
		ExportedAt: time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC),
	}
	assert.Equal(t, "ai-prompt-manager-export-prompts-2025-03-14.json", snap.Filename())
}
