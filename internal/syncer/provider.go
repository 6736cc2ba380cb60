package syncer

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// ProviderConfig points at the third-party event-listing API used by the
// live-fetch sync variant.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
}

type providerResponse struct {
	Events []ProviderEvent `json:"events"`
}

// FetchProviderEvents pulls the current event list from the listing
// provider. Failures abort the current run; there is no retry.
func FetchProviderEvents(ctx context.Context, client *http.Client, cfg ProviderConfig) ([]ProviderEvent, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("listing provider API key not configured")
	}
	if client == nil {
		client = http.DefaultClient
	}

	url := fmt.Sprintf("%s/events?location=portland", cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch provider events: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("provider returned %d: %s", resp.StatusCode, string(body))
	}

	var payload providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode provider response: %w", err)
	}

	return payload.Events, nil
}
