package paymentgateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// minCardNumberDigits минимальная длина номера карты
const minCardNumberDigits = 16

// Client клиент платежного шлюза
type Client struct {
	baseURL    string
	currency   string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
func NewClient(baseURL, currency string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:  baseURL,
		currency: currency,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ProcessPayment проводит списание через шлюз
// Номер карты короче 16 цифр отклоняется еще до запроса
func (c *Client) ProcessPayment(ctx context.Context, amount float64, card CardDetails, idempotencyKey string) (*ChargeResponse, error) {
	if digitCount(card.Number) < minCardNumberDigits {
		return nil, fmt.Errorf("%w: card number too short", ErrInvalidCard)
	}

	payload := ChargeRequest{
		Amount:         amount,
		Currency:       c.currency,
		Card:           card,
		IdempotencyKey: idempotencyKey,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/v1/charges", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", idempotencyKey)

	c.log.Info("ProcessPayment: charging amount=%.2f %s, key=%s", amount, c.currency, idempotencyKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnprocessableEntity:
		return nil, fmt.Errorf("%w: rejected by gateway", ErrInvalidCard)
	case http.StatusPaymentRequired:
		return nil, ErrPaymentDeclined
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var charge ChargeResponse
	if err := json.NewDecoder(resp.Body).Decode(&charge); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if charge.TransactionID == "" {
		return nil, fmt.Errorf("%w: empty transaction id", ErrInvalidResponse)
	}

	c.log.Info("ProcessPayment: charge succeeded, transaction=%s", charge.TransactionID)

	return &charge, nil
}

// digitCount считает цифры в номере карты, игнорируя пробелы и дефисы
func digitCount(number string) int {
	count := 0
	for _, r := range strings.TrimSpace(number) {
		if unicode.IsDigit(r) {
			count++
		}
	}
	return count
}
