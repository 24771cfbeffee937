package paymentgateway

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// CardDetails данные банковской карты
type CardDetails struct {
	Number string `json:"number"`
	Holder string `json:"holder"`
	Expiry string `json:"expiry"` // MM/YY
	CVC    string `json:"cvc"`
}

// ChargeRequest запрос на списание средств
type ChargeRequest struct {
	Amount         float64     `json:"amount"`
	Currency       string      `json:"currency"`
	Card           CardDetails `json:"card"`
	IdempotencyKey string      `json:"idempotencyKey"`
}

// ChargeResponse ответ платежного шлюза
type ChargeResponse struct {
	TransactionID string `json:"transactionId"`
}

// ErrorResponse модель ошибки от платежного шлюза
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
