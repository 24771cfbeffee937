package messages

import (
	"context"

	"github.com/cubecar/CC-RentalService/internal/domain"
)

// MessageRepository интерфейс репозитория сообщений
type MessageRepository interface {
	GetOrCreateConversation(ctx context.Context, renterID, hostID int64, carID *int64) (*domain.Conversation, error)
	GetConversationByID(ctx context.Context, id int64) (*domain.Conversation, error)
	ListConversationsByUser(ctx context.Context, userID int64) ([]*domain.ConversationPreview, error)
	CreateMessage(ctx context.Context, msg *domain.Message) (*domain.Message, error)
	ListMessages(ctx context.Context, conversationID int64) ([]*domain.Message, error)
	MarkRead(ctx context.Context, conversationID, readerID int64) error
}

// CarRepository интерфейс репозитория объявлений
type CarRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
