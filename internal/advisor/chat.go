package advisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// ChatClient calls an OpenAI-compatible chat completions endpoint such as a
// self-hosted Ollama gateway. It keeps no history; the caller's conversation
// id is echoed back unchanged.
type ChatClient struct {
	client *openai.Client
	model  string
}

// NewChatClient creates a ChatClient. An empty baseURL selects DefaultBaseURL.
func NewChatClient(httpClient *http.Client, baseURL, apiKey, model string) *ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &ChatClient{client: openai.NewClientWithConfig(cfg), model: model}
}

// Complete sends the instruction and the user turn as a two-message chat.
func (c *ChatClient) Complete(ctx context.Context, req Request) (*Reply, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.Instructions},
			{Role: openai.ChatMessageRoleUser, Content: req.Message},
		},
	})
	if err != nil {
		return nil, chatError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	return &Reply{
		Message:        resp.Choices[0].Message.Content,
		ConversationID: req.ConversationID,
	}, nil
}

// chatError turns the client's HTTP failures into ProviderErrors.
func chatError(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode != 0 {
		return &ProviderError{Status: apiErr.HTTPStatusCode, Message: apiErr.Message}
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) && reqErr.HTTPStatusCode != 0 {
		message := http.StatusText(reqErr.HTTPStatusCode)
		if reqErr.Err != nil {
			message = reqErr.Err.Error()
		}
		return &ProviderError{Status: reqErr.HTTPStatusCode, Message: message}
	}
	return fmt.Errorf("chat completion: %w", err)
}
