package domain

import "time"

// Conversation is a renter-host message thread, optionally tied to a car
type Conversation struct {
	ID       int64
	RenterID int64
	HostID   int64
	CarID    *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Involves returns true if userID participates in the conversation
func (c *Conversation) Involves(userID int64) bool {
	return c.RenterID == userID || c.HostID == userID
}

// OtherParticipant returns the participant that is not userID
func (c *Conversation) OtherParticipant(userID int64) int64 {
	if c.RenterID == userID {
		return c.HostID
	}
	return c.RenterID
}

// Message is a single message within a conversation
type Message struct {
	ID             int64
	ConversationID int64
	SenderID       int64
	Text           string
	IsRead         bool

	CreatedAt time.Time
}

// ConversationPreview сводка диалога для списка диалогов:
// последнее сообщение и число непрочитанных
type ConversationPreview struct {
	Conversation Conversation
	LastMessage  *Message
	UnreadCount  int
}
