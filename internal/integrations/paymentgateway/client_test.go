package paymentgateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func validCard() CardDetails {
	return CardDetails{
		Number: "4242 4242 4242 4242",
		Holder: "JOHN DOE",
		Expiry: "12/27",
		CVC:    "123",
	}
}

func TestProcessPayment_Success(t *testing.T) {
	var gotReq ChargeRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/v1/charges", r.URL.Path)
		require.NotEmpty(t, r.Header.Get("Idempotency-Key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ChargeResponse{TransactionID: "txn_abc123"})
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "USD", 5*time.Second, nopLogger{})

	charge, err := client.ProcessPayment(context.Background(), 280.5, validCard(), "key-1")

	require.NoError(t, err)
	assert.Equal(t, "txn_abc123", charge.TransactionID)
	assert.Equal(t, 280.5, gotReq.Amount)
	assert.Equal(t, "USD", gotReq.Currency)
}

func TestProcessPayment_ShortCardNumberRejectedLocally(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("gateway must not be called for an invalid card")
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "USD", 5*time.Second, nopLogger{})

	card := validCard()
	card.Number = "4242 4242"

	_, err := client.ProcessPayment(context.Background(), 100, card, "key-2")

	assert.ErrorIs(t, err, ErrInvalidCard)
}

func TestProcessPayment_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "USD", 5*time.Second, nopLogger{})

	_, err := client.ProcessPayment(context.Background(), 100, validCard(), "key-3")

	assert.ErrorIs(t, err, ErrPaymentDeclined)
}

func TestProcessPayment_UnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "USD", 5*time.Second, nopLogger{})

	_, err := client.ProcessPayment(context.Background(), 100, validCard(), "key-4")

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
