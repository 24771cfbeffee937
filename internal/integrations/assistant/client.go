package assistant

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const systemInstruction = `You are a helpful travel assistant for a P2P car sharing app called Cube Car.
Help users find locations, destinations, or plan trips.
Keep responses concise and focused on helping them rent a car for their journey.`

// Client клиент ассистента на базе Gemini
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	log    Logger
}

// NewClient создает новый экземпляр клиента ассистента
func NewClient(ctx context.Context, apiKey, modelName string, log Logger) (*Client, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("%w: NewClient - failed to create client: %v", ErrNotConfigured, err)
	}

	model := client.GenerativeModel(modelName)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemInstruction)},
	}

	return &Client{
		client: client,
		model:  model,
		log:    log,
	}, nil
}

// Search выполняет поисковый запрос к ассистенту.
// Координаты пользователя, если заданы, добавляются в промпт как контекст
func (c *Client) Search(ctx context.Context, query string, lat, lng *float64) (*Result, error) {
	prompt := query
	if lat != nil && lng != nil {
		prompt = fmt.Sprintf("%s\n\nUser location: latitude %.6f, longitude %.6f.", query, *lat, *lng)
	}

	c.log.Info("Search: sending query to model")

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("%w: Search - generate content: %v", ErrGenerationFailed, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	candidate := resp.Candidates[0]

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	text := sb.String()
	if text == "" {
		return nil, ErrEmptyResponse
	}

	result := &Result{
		Text:    text,
		Sources: []Source{},
	}

	// Собираем источники из метаданных цитирования
	if candidate.CitationMetadata != nil {
		for _, src := range candidate.CitationMetadata.CitationSources {
			if src.URI == nil || *src.URI == "" {
				continue
			}
			result.Sources = append(result.Sources, Source{URI: *src.URI})
		}
	}

	return result, nil
}

// Close освобождает ресурсы клиента
func (c *Client) Close() error {
	return c.client.Close()
}
