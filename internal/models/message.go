// Package models defines the data types shared across the assistant.
package models

import "github.com/google/uuid"

// Role identifies the author of a chat message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single chat message. Messages are immutable
// once created; ordering is owned by the transcript.
type Message struct {
	ID      string
	Role    Role
	Content string
}

// NewMessage creates a message with a fresh opaque ID
func NewMessage(role Role, content string) Message {
	return Message{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}
}

// AskRequest is the wire request body for the ask endpoint
type AskRequest struct {
	Question string `json:"question"`
}
