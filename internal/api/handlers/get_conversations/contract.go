package get_conversations

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/messages/models"
)

type MessageService interface {
	ListConversations(ctx context.Context, userID int64) ([]*models.ConversationResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
