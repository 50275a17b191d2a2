package advisor

import (
	"fmt"
	"net/http"
)

// Provider kinds accepted by NewProvider.
const (
	KindResponses = "responses"
	KindChat      = "chat"
)

// ProviderConfig selects and configures a Provider.
type ProviderConfig struct {
	Kind    string
	APIKey  string
	BaseURL string
	Model   string
}

// NewProvider builds the configured provider. The Responses API needs an
// API key; without one NewProvider returns nil and the advisor reports
// itself unavailable.
func NewProvider(cfg ProviderConfig, httpClient *http.Client) (Provider, error) {
	switch cfg.Kind {
	case "", KindResponses:
		if cfg.APIKey == "" {
			return nil, nil
		}
		return NewResponsesClient(httpClient, cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	case KindChat:
		return NewChatClient(httpClient, cfg.BaseURL, cfg.APIKey, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported advisor provider %q", cfg.Kind)
	}
}
