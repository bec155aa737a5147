// Package domain contains core concepts of the chat system.
// This file defines Participant entities and related invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"chat-formatter/errors"
	"strings"

	"github.com/google/uuid"
)

// Participant is someone able to send chat messages.
// The ID is derived from the name so the same name always maps to the
// same stored prefix and suffix.
type Participant struct {
	ID   uuid.UUID
	Name string
}

// NewParticipant builds a participant whose ID is the offline identifier of its name.
func NewParticipant(name string) (Participant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Participant{}, errors.ErrEmptyParticipantName
	}
	return Participant{ID: OfflineID(name), Name: name}, nil
}

// OfflineID returns the name-based UUID used for participants without an account.
func OfflineID(name string) uuid.UUID {
	return uuid.NewMD5(uuid.NameSpaceOID, []byte("OfflinePlayer:"+name))
}
