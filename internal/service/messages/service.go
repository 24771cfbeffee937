package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cubecar/CC-RentalService/internal/domain"
	carRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/car"
	messageRepo "github.com/cubecar/CC-RentalService/internal/infra/storage/message"
	"github.com/cubecar/CC-RentalService/internal/service/messages/models"
)

// Service сервис для обмена сообщениями между арендатором и хостом
type Service struct {
	messageRepo MessageRepository
	carRepo     CarRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса сообщений
func NewService(messageRepo MessageRepository, carRepo CarRepository, logger Logger) *Service {
	return &Service{
		messageRepo: messageRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// SendMessage отправляет сообщение, создавая диалог при необходимости.
// Получатель либо указан явно, либо выводится из машины (ее хост)
func (s *Service) SendMessage(ctx context.Context, req *models.SendMessageRequest) (*models.MessageResponse, error) {
	s.logger.Info("SendMessage: sender=%d, recipient=%v, car=%v", req.SenderID, req.RecipientID, req.CarID)

	// 1. Валидируем входные данные
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: message text must not be empty", ErrInvalidInput)
	}
	if len(text) > domain.MaxMessageLength {
		return nil, fmt.Errorf("%w: message text is too long", ErrInvalidInput)
	}
	if req.RecipientID == nil && req.CarID == nil {
		return nil, fmt.Errorf("%w: recipient or car is required", ErrInvalidInput)
	}

	// 2. Определяем получателя и участников диалога
	renterID := req.SenderID
	var hostID int64
	var carID *int64

	if req.CarID != nil {
		car, err := s.carRepo.GetByID(ctx, *req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				s.logger.Warn("SendMessage: car id=%d not found", *req.CarID)
				return nil, ErrCarNotFound
			}
			s.logger.Error("SendMessage: failed to get car id=%d: %v", *req.CarID, err)
			return nil, fmt.Errorf("%w: SendMessage - failed to get car: %v", ErrInternal, err)
		}
		hostID = car.HostID
		carID = req.CarID

		// Хост отвечает в диалоге о своей машине
		if req.SenderID == car.HostID {
			if req.RecipientID == nil {
				return nil, fmt.Errorf("%w: recipient is required for the host", ErrInvalidInput)
			}
			renterID = *req.RecipientID
		}
	} else {
		hostID = *req.RecipientID
	}

	if renterID == hostID {
		s.logger.Warn("SendMessage: sender=%d tried to message themselves", req.SenderID)
		return nil, ErrSelfConversation
	}

	// 3. Находим или создаем диалог
	conversation, err := s.messageRepo.GetOrCreateConversation(ctx, renterID, hostID, carID)
	if err != nil {
		s.logger.Error("SendMessage: failed to get conversation: %v", err)
		return nil, fmt.Errorf("%w: SendMessage - failed to get conversation: %v", ErrInternal, err)
	}

	// 4. Создаем сообщение
	msg, err := s.messageRepo.CreateMessage(ctx, &domain.Message{
		ConversationID: conversation.ID,
		SenderID:       req.SenderID,
		Text:           text,
	})
	if err != nil {
		s.logger.Error("SendMessage: failed to create message: %v", err)
		return nil, fmt.Errorf("%w: SendMessage - failed to create message: %v", ErrInternal, err)
	}

	s.logger.Info("SendMessage: created message id=%d in conversation id=%d", msg.ID, conversation.ID)
	return models.FromDomainMessage(msg), nil
}

// ListConversations возвращает диалоги пользователя со сводками
func (s *Service) ListConversations(ctx context.Context, userID int64) ([]*models.ConversationResponse, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: user id must be positive", ErrInvalidInput)
	}

	previews, err := s.messageRepo.ListConversationsByUser(ctx, userID)
	if err != nil {
		s.logger.Error("ListConversations: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListConversations - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListConversations: user=%d, conversations=%d", userID, len(previews))
	return models.FromDomainPreviews(previews), nil
}

// ListMessages возвращает сообщения диалога и отмечает входящие прочитанными
// Доступно только участникам диалога
func (s *Service) ListMessages(ctx context.Context, userID, conversationID int64) ([]*models.MessageResponse, error) {
	s.logger.Info("ListMessages: user=%d, conversation=%d", userID, conversationID)

	if conversationID <= 0 {
		return nil, fmt.Errorf("%w: conversation id must be positive", ErrInvalidInput)
	}

	conversation, err := s.messageRepo.GetConversationByID(ctx, conversationID)
	if err != nil {
		if errors.Is(err, messageRepo.ErrConversationNotFound) {
			s.logger.Warn("ListMessages: conversation id=%d not found", conversationID)
			return nil, ErrConversationNotFound
		}
		s.logger.Error("ListMessages: failed to get conversation: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - failed to get conversation: %v", ErrInternal, err)
	}

	if !conversation.Involves(userID) {
		s.logger.Warn("ListMessages: user=%d has no access to conversation=%d", userID, conversationID)
		return nil, ErrAccessDenied
	}

	msgs, err := s.messageRepo.ListMessages(ctx, conversationID)
	if err != nil {
		s.logger.Error("ListMessages: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - repository error: %v", ErrInternal, err)
	}

	// Чтение диалога помечает входящие сообщения прочитанными
	if err := s.messageRepo.MarkRead(ctx, conversationID, userID); err != nil {
		s.logger.Error("ListMessages: failed to mark messages read: %v", err)
		return nil, fmt.Errorf("%w: ListMessages - failed to mark messages read: %v", ErrInternal, err)
	}

	return models.FromDomainMessages(msgs), nil
}
