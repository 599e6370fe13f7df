package vk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"smm_manager/internal/pkg/http_client"
)

const (
	defaultBaseURL = "https://api.vk.com/method"
	apiVersion     = "5.236"
)

// Credentials — токен доступа и ID группы. Передаются явно в каждый вызов,
// клиент их не хранит.
type Credentials struct {
	AccessToken string
	GroupID     string
}

type Client struct {
	client  *http_client.LoggedClient
	baseURL string
}

func NewClient(log *logrus.Logger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		client:  http_client.NewLoggedClient(log),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type apiError struct {
	Code    int    `json:"error_code"`
	Message string `json:"error_msg"`
}

func (e *apiError) text() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("error code %d", e.Code)
}

type envelope struct {
	Response json.RawMessage `json:"response"`
	Error    *apiError       `json:"error"`
}

// callMethod вызывает метод VK API и возвращает содержимое поля response.
// Наличие поля error в ответе считается ошибкой независимо от HTTP-статуса.
func (c *Client) callMethod(ctx context.Context, method string, params url.Values) (json.RawMessage, *apiError, error) {
	params.Set("v", apiVersion)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+method,
		strings.NewReader(params.Encode()))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s response: %w", method, err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s response: %w", method, err)
	}
	if env.Error != nil {
		return nil, env.Error, nil
	}
	return env.Response, nil, nil
}

func groupParams(creds Credentials) url.Values {
	params := url.Values{}
	params.Set("access_token", creds.AccessToken)
	params.Set("group_id", creds.GroupID)
	return params
}

// Методы от имени сообщества принимают owner_id со знаком минус.
func ownerParams(creds Credentials) url.Values {
	params := url.Values{}
	params.Set("access_token", creds.AccessToken)
	params.Set("owner_id", "-"+creds.GroupID)
	return params
}
