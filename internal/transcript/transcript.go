// Package transcript keeps the in-memory message log for a chat session.
package transcript

import (
	"sync"

	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/models"
)

// Transcript is an append-only ordered log of chat messages.
// Append order is display order. There is a single logical writer
// (the UI event loop); the mutex only guards snapshot reads.
type Transcript struct {
	mu       sync.RWMutex
	messages []models.Message
}

// New creates an empty transcript
func New() *Transcript {
	return &Transcript{}
}

// Append adds a message to the log and returns it
func (t *Transcript) Append(role models.Role, content string) models.Message {
	msg := models.NewMessage(role, content)

	t.mu.Lock()
	t.messages = append(t.messages, msg)
	t.mu.Unlock()

	return msg
}

// Messages returns a snapshot of the log in display order
func (t *Transcript) Messages() []models.Message {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]models.Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Len returns the number of messages in the log
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
