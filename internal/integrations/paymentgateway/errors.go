package paymentgateway

import "errors"

var (
	// ErrInvalidCard возвращается при некорректных данных карты
	// (например, номер короче 16 цифр)
	ErrInvalidCard = errors.New("invalid card details")

	// ErrPaymentDeclined возвращается, когда шлюз отклонил списание
	ErrPaymentDeclined = errors.New("payment declined")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("paymentgateway client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от шлюза
	ErrInvalidResponse = errors.New("paymentgateway client: invalid response")
)
