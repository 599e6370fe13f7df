package generation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"smm_manager/internal/pkg/http_client"
)

const (
	defaultBaseURL    = "https://api.openai.com/v1"
	defaultTextModel  = "gpt-4o-mini"
	defaultImageModel = "dall-e-2"
	// Для dall-e-2 это минимальный и самый дешевый размер.
	imageSize = "256x256"
)

const (
	postPersona  = "Ты высококвалифицированный SMM специалист, который будет помогать в генерации текста для постов с заданной тебе тематикой и заданным тоном."
	imagePersona = "Ты ассистент, который составит промт для нейронной сети, которая будет генерировать изображения. Ты должен составить промт на заданную тему."
)

// GenerationError — любой отказ провайдера генерации: квота, таймаут,
// непонятый промт. Ретраев клиент не делает, это забота вызывающего.
type GenerationError struct {
	Message string
}

func (e *GenerationError) Error() string {
	return "generation: " + e.Message
}

type Config struct {
	APIKey     string
	BaseURL    string
	TextModel  string
	ImageModel string
	Logger     *logrus.Logger
}

type Client struct {
	client     *http_client.LoggedClient
	apiKey     string
	baseURL    string
	textModel  string
	imageModel string
}

func NewClient(cfg Config) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	textModel := cfg.TextModel
	if textModel == "" {
		textModel = defaultTextModel
	}
	imageModel := cfg.ImageModel
	if imageModel == "" {
		imageModel = defaultImageModel
	}
	return &Client{
		client:     http_client.NewLoggedClient(cfg.Logger),
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		textModel:  textModel,
		imageModel: imageModel,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// GenerateText генерирует текст поста по заданной теме и тону.
func (c *Client) GenerateText(ctx context.Context, tone, topic string) (string, error) {
	if tone == "" || topic == "" {
		return "", &GenerationError{Message: "tone and topic are required"}
	}
	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: postPersona},
		{Role: "user", Content: fmt.Sprintf("Сгенерировать текст для соцсети с темой: %s и тоном: %s.", topic, tone)},
	})
}

// GenerateImageDescription составляет промт для генерации изображения по теме.
func (c *Client) GenerateImageDescription(ctx context.Context, topic string) (string, error) {
	if topic == "" {
		return "", &GenerationError{Message: "topic is required"}
	}
	return c.complete(ctx, []chatMessage{
		{Role: "system", Content: imagePersona},
		{Role: "user", Content: fmt.Sprintf("Сгенерируй изображение для соцсети с темой: %s", topic)},
	})
}

// GenerateImage генерирует изображение по промту и возвращает URL результата.
func (c *Client) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", &GenerationError{Message: "prompt is required"}
	}

	reqBody := struct {
		Model  string `json:"model"`
		Prompt string `json:"prompt"`
		Size   string `json:"size"`
		N      int    `json:"n"`
	}{
		Model:  c.imageModel,
		Prompt: prompt,
		Size:   imageSize,
		N:      1,
	}

	raw, err := c.post(ctx, "/images/generations", reqBody)
	if err != nil {
		return "", err
	}

	var result struct {
		Data []struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &GenerationError{Message: "failed to parse image response"}
	}
	if len(result.Data) == 0 || result.Data[0].URL == "" {
		return "", &GenerationError{Message: "image generation returned no result"}
	}
	return result.Data[0].URL, nil
}

func (c *Client) complete(ctx context.Context, messages []chatMessage) (string, error) {
	reqBody := struct {
		Model    string        `json:"model"`
		Messages []chatMessage `json:"messages"`
	}{
		Model:    c.textModel,
		Messages: messages,
	}

	raw, err := c.post(ctx, "/chat/completions", reqBody)
	if err != nil {
		return "", err
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", &GenerationError{Message: "failed to parse completion response"}
	}
	if len(result.Choices) == 0 {
		return "", &GenerationError{Message: "completion returned no choices"}
	}
	return result.Choices[0].Message.Content, nil
}

func (c *Client) post(ctx context.Context, path string, reqBody interface{}) (json.RawMessage, error) {
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GenerationError{Message: err.Error()}
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &GenerationError{Message: providerMessage(body, resp.Status)}
	}
	return body, nil
}

// Провайдер оборачивает ошибки в {"error": {"message": ...}}; достаем текст,
// если он есть, иначе отдаем статус как есть.
func providerMessage(body []byte, status string) string {
	var payload struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return "unexpected status " + status
}
