package send_message

import "github.com/cubecar/CC-RentalService/internal/service/messages/models"

// SendMessageRequest HTTP request model
type SendMessageRequest struct {
	RecipientID *int64 `json:"recipientId,omitempty"`
	CarID       *int64 `json:"carId,omitempty"`
	Text        string `json:"text"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *SendMessageRequest) ToServiceRequest(senderID int64) *models.SendMessageRequest {
	return &models.SendMessageRequest{
		SenderID:    senderID,
		RecipientID: r.RecipientID,
		CarID:       r.CarID,
		Text:        r.Text,
	}
}
