package contextprofile

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound    = errors.New("context profile not found")
	ErrInvalidJSON = errors.New("invalid JSON data")
	ErrEmptyPatch  = errors.New("no fields to update")
)

// Link is the summary embedded in a prompt's or knowledge base's
// linked_contexts list.
type Link struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
}

// ContextProfile is a reusable block of structured JSON context that prompts
// and knowledge bases link to. LinkedPrompts and LinkedKnowledge are counts
// derived at read time, never stored.
type ContextProfile struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	JSONData        json.RawMessage `json:"json_data"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
	LinkedPrompts   int             `json:"linked_prompts"`
	LinkedKnowledge int             `json:"linked_knowledge"`
}

func New(name, description string, jsonData json.RawMessage) ContextProfile {
	now := time.Now().UTC()
	return ContextProfile{
		ID:          uuid.New(),
		Name:        name,
		Description: description,
		JSONData:    jsonData,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// NormalizeJSON validates raw and returns it compacted. Clients sometimes
// send the object pre-stringified, so a JSON string whose contents parse as
// JSON is unwrapped first. Returns ErrInvalidJSON when neither form parses.
func NormalizeJSON(raw json.RawMessage) (json.RawMessage, error) {
	var inner string
	if err := json.Unmarshal(raw, &inner); err == nil {
		if !json.Valid([]byte(inner)) {
			return nil, ErrInvalidJSON
		}
		raw = json.RawMessage(inner)
	} else if !json.Valid(raw) {
		return nil, ErrInvalidJSON
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return nil, ErrInvalidJSON
	}
	return json.RawMessage(buf.Bytes()), nil
}

// Patch carries a partial update. nil means "field absent".
type Patch struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	JSONData    *json.RawMessage `json:"json_data"`
}

func (p Patch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.JSONData == nil
}

type ListFilters struct {
	Search string
}
