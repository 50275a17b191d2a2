package advisor

import (
	"context"
	"errors"
	"net/http"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/conversations"
	"github.com/openai/openai-go/v2/option"
	"github.com/openai/openai-go/v2/responses"
	"github.com/tidwall/gjson"
)

// DefaultBaseURL is the public OpenAI API root.
const DefaultBaseURL = "https://api.openai.com/v1"

// ResponsesClient calls the OpenAI Responses API. Conversations are stored
// server-side; when a prompt has no conversation a new one is opened first.
type ResponsesClient struct {
	client openai.Client
	model  string
}

// NewResponsesClient creates a ResponsesClient. An empty baseURL selects DefaultBaseURL.
func NewResponsesClient(httpClient *http.Client, baseURL, apiKey, model string) *ResponsesClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		// Service.Ask owns the deadline; a retried call would outlive it.
		option.WithMaxRetries(0),
	}
	if httpClient != nil {
		opts = append(opts, option.WithHTTPClient(httpClient))
	}
	return &ResponsesClient{
		client: openai.NewClient(opts...),
		model:  model,
	}
}

// Complete sends one user turn and returns the assistant's reply.
func (c *ResponsesClient) Complete(ctx context.Context, req Request) (*Reply, error) {
	conversationID := req.ConversationID
	opened := false
	if conversationID == "" {
		conv, err := c.client.Conversations.New(ctx, conversations.ConversationNewParams{})
		if err != nil {
			return nil, responsesError(err, "")
		}
		conversationID = conv.ID
		opened = true
	}

	resp, err := c.client.Responses.New(ctx, responses.ResponseNewParams{
		Model:        c.model,
		Instructions: openai.String(req.Instructions),
		Input:        responses.ResponseNewParamsInputUnion{OfString: openai.String(req.Message)},
		Conversation: responses.ResponseNewParamsConversationUnion{OfString: openai.String(conversationID)},
	})
	if err != nil {
		// A conversation opened for this turn stays upstream; report it so
		// the caller can resend it instead of opening another.
		if opened {
			return nil, responsesError(err, conversationID)
		}
		return nil, responsesError(err, "")
	}

	if id := resp.Conversation.ID; id != "" {
		conversationID = id
	}
	return &Reply{Message: resp.OutputText(), ConversationID: conversationID}, nil
}

// responsesError converts an API rejection into a ProviderError, falling back
// to the status text when the body carried no message. Transport failures are
// returned unchanged.
func responsesError(err error, conversationID string) error {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return err
	}
	msg := apiErr.Message
	if msg == "" {
		msg = gjson.Get(apiErr.RawJSON(), "error.message").String()
	}
	if msg == "" {
		msg = http.StatusText(apiErr.StatusCode)
	}
	return &ProviderError{Status: apiErr.StatusCode, Message: msg, ConversationID: conversationID}
}
