package paymentControllers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/diaandrei/Flexiro-sub000/config"
)

// GatewayClient proxies the external payment provider's JSON API:
// client-token generation for the frontend SDK and server-side sale
// processing.
type GatewayClient struct {
	cfg        config.GatewayConfig
	httpClient *http.Client
}

func NewGatewayClient(cfg config.GatewayConfig) *GatewayClient {
	return &GatewayClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type tokenResponse struct {
	ClientToken string `json:"client_token"`
	Error       *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type saleResponse struct {
	Transaction struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	} `json:"transaction"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (g *GatewayClient) configured() error {
	if g.cfg.BaseURL == "" || g.cfg.MerchantID == "" || g.cfg.PrivateKey == "" {
		return fmt.Errorf("payment gateway is not configured")
	}
	return nil
}

func (g *GatewayClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.BaseURL+path, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(g.cfg.PublicKey, g.cfg.PrivateKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach payment gateway: %w", err)
	}
	defer resp.Body.Close()

	data, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("gateway error (%d): %s", resp.StatusCode, string(data))
	}
	return json.Unmarshal(data, out)
}

// GenerateClientToken fetches a one-time token the frontend uses to
// initialize the payment form.
func (g *GatewayClient) GenerateClientToken(ctx context.Context) (string, error) {
	if err := g.configured(); err != nil {
		return "", err
	}

	payload := map[string]any{
		"merchant_id": g.cfg.MerchantID,
		"sandbox":     g.cfg.Sandbox,
	}

	var resp tokenResponse
	if err := g.post(ctx, "/client-token", payload, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gateway error: %s", resp.Error.Message)
	}
	if resp.ClientToken == "" {
		return "", fmt.Errorf("gateway returned empty client token")
	}
	return resp.ClientToken, nil
}

// Sale charges the given amount against a payment-method nonce and
// returns the gateway transaction id.
func (g *GatewayClient) Sale(ctx context.Context, amount decimal.Decimal, nonce, orderNumber string) (string, error) {
	if err := g.configured(); err != nil {
		return "", err
	}

	payload := map[string]any{
		"merchant_id":          g.cfg.MerchantID,
		"sandbox":              g.cfg.Sandbox,
		"amount":               amount.StringFixed(2),
		"payment_method_nonce": nonce,
		"order_id":             orderNumber,
		"options": map[string]any{
			"submit_for_settlement": true,
		},
	}

	var resp saleResponse
	if err := g.post(ctx, "/transactions/sale", payload, &resp); err != nil {
		return "", err
	}
	if resp.Error != nil {
		return "", fmt.Errorf("gateway error: %s", resp.Error.Message)
	}
	if resp.Transaction.ID == "" {
		return "", fmt.Errorf("gateway returned no transaction id")
	}
	return resp.Transaction.ID, nil
}
