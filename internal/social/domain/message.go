package domain

import "time"

// Conversation is a direct-message thread between exactly two users.
// Participants are stored in canonical order (A < B) so a pair always maps
// to one row.
type Conversation struct {
	ID           string
	ParticipantA string
	ParticipantB string
	CreatedAt    time.Time
}

// Message belongs to a conversation. Read-only from this service's
// perspective except for test seeding.
type Message struct {
	ID             string    `json:"_id"`
	ConversationID string    `json:"-"`
	SenderID       string    `json:"senderId"`
	ReceiverID     string    `json:"receiverId"`
	Text           string    `json:"message"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CanonicalPair orders two participant ids so conversation lookups are
// direction-independent.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}
