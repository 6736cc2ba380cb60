package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/rosecitylabs/pdxevents/config"
)

// PayPalClient wraps the two provider calls the donation flow needs:
// a client-credentials token and an order create.
type PayPalClient struct {
	cfg        *config.PayPalConfig
	httpClient *http.Client
}

func NewPayPalClient(cfg *config.PayPalConfig, httpClient *http.Client) *PayPalClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &PayPalClient{cfg: cfg, httpClient: httpClient}
}

type paypalTokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

func (p *PayPalClient) GetAccessToken() (string, error) {
	if p.cfg.ClientID == "" || p.cfg.ClientSecret == "" {
		return "", fmt.Errorf("PayPal credentials not configured")
	}

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequest(http.MethodPost, p.cfg.BaseURL+"/v1/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.SetBasicAuth(p.cfg.ClientID, p.cfg.ClientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("request PayPal token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("PayPal token request returned %d: %s", resp.StatusCode, string(body))
	}

	var token paypalTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("decode PayPal token response: %w", err)
	}

	return token.AccessToken, nil
}

type paypalOrderResponse struct {
	ID    string `json:"id"`
	Links []struct {
		Href string `json:"href"`
		Rel  string `json:"rel"`
	} `json:"links"`
}

// CreateOrder creates a USD order for the given amount in cents and
// returns the order id and the approval redirect URL.
func (p *PayPalClient) CreateOrder(accessToken string, amountCents int, description string) (orderID, approvalURL string, err error) {
	orderBody := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"description": description,
				"amount": map[string]interface{}{
					"currency_code": "USD",
					"value":         fmt.Sprintf("%.2f", float64(amountCents)/100),
				},
			},
		},
	}

	jsonBody, err := json.Marshal(orderBody)
	if err != nil {
		return "", "", err
	}

	req, err := http.NewRequest(http.MethodPost, p.cfg.BaseURL+"/v2/checkout/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", "", err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("create PayPal order: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", "", fmt.Errorf("PayPal order request returned %d: %s", resp.StatusCode, string(body))
	}

	var order paypalOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return "", "", fmt.Errorf("decode PayPal order response: %w", err)
	}

	for _, link := range order.Links {
		if link.Rel == "approve" {
			return order.ID, link.Href, nil
		}
	}

	return "", "", fmt.Errorf("PayPal order response missing approval link")
}
