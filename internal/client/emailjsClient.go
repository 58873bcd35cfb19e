package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"facade-storefront/internal/config"
)

// EmailJSClient sends one transactional email through the EmailJS REST API.
// Send refuses before any network attempt unless the service id, public key
// and private key are all configured.
type EmailJSClient interface {
	Send(ctx context.Context, templateID string, templateParams map[string]any) error
}

type emailJSClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	serviceID  string
	publicKey  string
	privateKey string
}

func NewEmailJSClient(cfg *config.EmailJS) EmailJSClient {
	return &emailJSClientImpl{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseApiURL: cfg.BaseApiURL,
		serviceID:  cfg.ServiceID,
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
	}
}

func (c *emailJSClientImpl) Send(ctx context.Context, templateID string, templateParams map[string]any) error {
	if c.serviceID == "" || c.publicKey == "" || c.privateKey == "" {
		return fmt.Errorf("emailjs configuration missing")
	}

	payload := map[string]any{
		"service_id":      c.serviceID,
		"template_id":     templateID,
		"user_id":         c.publicKey,
		"accessToken":     c.privateKey,
		"template_params": templateParams,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal req payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseApiURL+"/api/v1.0/email/send",
		bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("emailjs error %d: %s", resp.StatusCode, string(b))
	}

	return nil
}
