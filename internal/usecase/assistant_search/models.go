package assistant_search

import "github.com/cubecar/CC-RentalService/internal/integrations/assistant"

// Request модель поискового запроса к ассистенту
type Request struct {
	Query     string   // Текст запроса пользователя
	Latitude  *float64 // Координаты пользователя (опционально)
	Longitude *float64
}

// Response модель ответа ассистента
type Response struct {
	Text    string             // Текст ответа
	Sources []assistant.Source // Источники, на которые ссылается ответ
}
