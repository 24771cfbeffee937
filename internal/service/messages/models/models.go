package models

import (
	"time"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// Request модели

// SendMessageRequest запрос на отправку сообщения.
// Получатель задается либо явно, либо через машину (тогда это ее хост)
type SendMessageRequest struct {
	SenderID    int64  `json:"senderId"`
	RecipientID *int64 `json:"recipientId,omitempty"`
	CarID       *int64 `json:"carId,omitempty"`
	Text        string `json:"text"`
}

// Response модели

// MessageResponse ответ с данными сообщения
type MessageResponse struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	SenderID       int64     `json:"senderId"`
	Text           string    `json:"text"`
	IsRead         bool      `json:"isRead"`
	CreatedAt      time.Time `json:"createdAt"`
}

// ConversationResponse ответ с данными диалога
type ConversationResponse struct {
	ID          int64            `json:"id"`
	RenterID    int64            `json:"renterId"`
	HostID      int64            `json:"hostId"`
	CarID       *int64           `json:"carId,omitempty"`
	LastMessage *MessageResponse `json:"lastMessage,omitempty"`
	UnreadCount int              `json:"unreadCount"`
}

// FromDomainMessage конвертирует domain модель в response
func FromDomainMessage(m *domain.Message) *MessageResponse {
	return &MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		Text:           m.Text,
		IsRead:         m.IsRead,
		CreatedAt:      m.CreatedAt,
	}
}

// FromDomainMessages конвертирует список domain моделей в response
func FromDomainMessages(msgs []*domain.Message) []*MessageResponse {
	result := make([]*MessageResponse, 0, len(msgs))
	for _, m := range msgs {
		result = append(result, FromDomainMessage(m))
	}
	return result
}

// FromDomainPreview конвертирует domain превью диалога в response
func FromDomainPreview(p *domain.ConversationPreview) *ConversationResponse {
	resp := &ConversationResponse{
		ID:          p.Conversation.ID,
		RenterID:    p.Conversation.RenterID,
		HostID:      p.Conversation.HostID,
		CarID:       p.Conversation.CarID,
		UnreadCount: p.UnreadCount,
	}
	if p.LastMessage != nil {
		resp.LastMessage = FromDomainMessage(p.LastMessage)
	}
	return resp
}

// FromDomainPreviews конвертирует список превью в response
func FromDomainPreviews(previews []*domain.ConversationPreview) []*ConversationResponse {
	result := make([]*ConversationResponse, 0, len(previews))
	for _, p := range previews {
		result = append(result, FromDomainPreview(p))
	}
	return result
}
