// Package domain contains core concepts of the chat system.
// This file defines Message events and related rules.
// Messages are immutable: decoration only ever adds a prefix.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Message represents an immutable chat event.
type Message struct {
	ID        uuid.UUID // unique identifier
	Sender    Participant
	Content   string
	CreatedAt time.Time
}

func NewMessage(sender Participant, content string) Message {
	return Message{
		ID:        uuid.New(),
		Sender:    sender,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// DecoratedMessage is a message together with the prefix rendered for it.
// The prefix is ephemeral and never stored.
type DecoratedMessage struct {
	Message
	Prefix string
}

// Line is the text shown to viewers: the prefix followed by the untouched content.
func (d DecoratedMessage) Line() string {
	return d.Prefix + d.Content
}
