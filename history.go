package qrcontent

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry describes a generated payload as persistence layers store it.
type HistoryEntry struct {
	ID        uuid.UUID `json:"id" yaml:"id"`
	Kind      Kind      `json:"type" yaml:"type"`
	Content   string    `json:"content" yaml:"content"`
	Name      string    `json:"name" yaml:"name"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewHistoryEntry encodes c and stamps the result with a random ID and the current UTC time.
// An empty name defaults to the display name of the content kind.
// The content must not be nil.
func NewHistoryEntry(c Content, name string) HistoryEntry {
	if name == "" {
		name = c.Kind().DisplayName()
	}
	return HistoryEntry{
		ID:        uuid.New(),
		Kind:      c.Kind(),
		Content:   Encode(c),
		Name:      name,
		Timestamp: time.Now().UTC(),
	}
}
