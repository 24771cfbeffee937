package assistant_search

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cubecar/CC-RentalService/internal/integrations/assistant"
	"github.com/cubecar/CC-RentalService/pkg/ptr"
)

type fakeAssistant struct {
	result *assistant.Result
	err    error

	gotQuery string
	gotLat   *float64
	gotLng   *float64
}

func (f *fakeAssistant) Search(ctx context.Context, query string, lat, lng *float64) (*assistant.Result, error) {
	f.gotQuery = query
	f.gotLat = lat
	f.gotLng = lng
	return f.result, f.err
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestExecute_Success(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{
		Text:    "Try the coastal route.",
		Sources: []assistant.Source{{URI: "https://example.com/route"}},
	}}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Query: "weekend trip ideas"})

	require.NoError(t, err)
	assert.Equal(t, "Try the coastal route.", resp.Text)
	require.Len(t, resp.Sources, 1)
}

func TestExecute_LocationPassedThrough(t *testing.T) {
	client := &fakeAssistant{result: &assistant.Result{Text: "Nearby picks."}}

	uc := NewUseCase(client, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Query:     "cars near me",
		Latitude:  ptr.Ptr(37.7749),
		Longitude: ptr.Ptr(-122.4194),
	})

	require.NoError(t, err)
	require.NotNil(t, client.gotLat)
	require.NotNil(t, client.gotLng)
	assert.InDelta(t, 37.7749, *client.gotLat, 1e-9)
	assert.InDelta(t, -122.4194, *client.gotLng, 1e-9)
}

func TestExecute_ModelFailureDegradesToText(t *testing.T) {
	client := &fakeAssistant{err: assistant.ErrGenerationFailed}

	uc := NewUseCase(client, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Query: "weekend trip ideas"})

	require.NoError(t, err, "model failure must not surface as an error")
	assert.Equal(t, msgSearchFailed, resp.Text)
	assert.Empty(t, resp.Sources)
}

func TestExecute_DisabledAssistant(t *testing.T) {
	uc := NewUseCase(nil, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{Query: "anything"})

	require.NoError(t, err)
	assert.Equal(t, msgNotConfigured, resp.Text)
}

func TestExecute_EmptyQueryRejected(t *testing.T) {
	uc := NewUseCase(&fakeAssistant{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Query: "   "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_TooLongQueryRejected(t *testing.T) {
	uc := NewUseCase(&fakeAssistant{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Query: strings.Repeat("x", maxQueryLength+1)})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
