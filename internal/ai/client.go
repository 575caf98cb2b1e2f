package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	apperrors "github.com/yourusername/learning-platform/internal/pkg/errors"
)

// Generator — минимальный интерфейс генерации текста внешней языковой моделью
type Generator interface {
	// Generate отправляет системное сообщение и подсказку пользователя
	// и возвращает текст первого варианта ответа модели
	Generate(ctx context.Context, systemMessage, userPrompt string) (string, error)
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponseChoice struct {
	Message chatMessage `json:"message"`
}

type chatResponse struct {
	Choices []chatResponseChoice   `json:"choices"`
	ID      string                 `json:"id,omitempty"`
	Usage   map[string]interface{} `json:"usage,omitempty"`
}

// OpenAIClient реализует Generator поверх chat-completions API.
// Подходит для любого OpenAI-совместимого провайдера, URL задается в конфигурации.
type OpenAIClient struct {
	baseURL    string
	model      string
	apiKey     string
	httpClient *http.Client
}

// NewOpenAIClient создает клиент chat-completions API
func NewOpenAIClient(baseURL, model, apiKey string, timeout time.Duration) *OpenAIClient {
	return &OpenAIClient{
		baseURL: baseURL,
		model:   model,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate выполняет один запрос к chat-completions API.
// Запрос привязан к переданному контексту: отмена контекста прерывает вызов.
func (c *OpenAIClient) Generate(ctx context.Context, systemMessage, userPrompt string) (string, error) {
	startTime := time.Now()

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemMessage},
			{Role: "user", Content: userPrompt},
		},
	}

	reqJSON, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewBuffer(reqJSON))
	if err != nil {
		return "", fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: chat completions request failed: %v", apperrors.ErrExternalService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read chat completions response: %v", apperrors.ErrExternalService, err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Printf("[OpenAIClient] API вернул статус %d: %s", resp.StatusCode, truncate(string(body), 200))
		return "", fmt.Errorf("%w: chat completions API returned status %d", apperrors.ErrExternalService, resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to decode chat completions response: %v", apperrors.ErrExternalService, err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: chat completions response contains no choices", apperrors.ErrExternalService)
	}

	log.Printf("[OpenAIClient] Запрос к модели %s выполнен за %v", c.model, time.Since(startTime))
	return chatResp.Choices[0].Message.Content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
