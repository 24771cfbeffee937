package get_conversation_messages

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/service/messages/models"
)

type MessageService interface {
	ListMessages(ctx context.Context, userID, conversationID int64) ([]*models.MessageResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
