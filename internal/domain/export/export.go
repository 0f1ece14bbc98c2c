package export

import (
	"fmt"
	"time"

	"github.com/promptvault/promptvault/internal/domain/contextprofile"
	"github.com/promptvault/promptvault/internal/domain/knowledge"
	"github.com/promptvault/promptvault/internal/domain/prompt"
)

// Version tags the snapshot format.
const Version = "1.0.0"

type Scope string

const (
	ScopeAll       Scope = "all"
	ScopePrompts   Scope = "prompts"
	ScopeKnowledge Scope = "knowledge"
	ScopeContexts  Scope = "contexts"
)

// ParseScope maps the ?type= query value to a Scope. Empty means all.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case "":
		return ScopeAll, nil
	case ScopeAll, ScopePrompts, ScopeKnowledge, ScopeContexts:
		return Scope(s), nil
	default:
		return "", fmt.Errorf("invalid export type %q", s)
	}
}

func (s Scope) Includes(other Scope) bool {
	return s == ScopeAll || s == other
}

// Snapshot is the point-in-time export document. Entity slices are ordered by
// creation time and omitted entirely when outside the requested scope.
type Snapshot struct {
	ExportedAt      time.Time                       `json:"exported_at"`
	Version         string                          `json:"version"`
	Type            Scope                           `json:"type"`
	Prompts         []prompt.Prompt                 `json:"prompts,omitempty"`
	KnowledgeBases  []knowledge.KnowledgeBase       `json:"knowledge_bases,omitempty"`
	ContextProfiles []contextprofile.ContextProfile `json:"context_profiles,omitempty"`
}

// Filename is the download name advertised in Content-Disposition.
func (s Snapshot) Filename() string {
	return fmt.Sprintf("ai-prompt-manager-export-%s-%s.json", s.Type, s.ExportedAt.Format("2006-01-02"))
}
