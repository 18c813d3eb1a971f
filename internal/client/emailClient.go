package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"bakery-storefront/internal/config"
	"bakery-storefront/internal/notify"
)

var ErrEmailNotConfigured = errors.New("email api key not configured")

// EmailClient posts transactional emails to the Resend API.
type EmailClient interface {
	Send(ctx context.Context, msg *notify.Message) error
	Configured() bool
}

type resendClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewEmailClient(emailCfg *config.Email) EmailClient {
	return &resendClientImpl{
		httpClient: &http.Client{
			Timeout: emailCfg.Timeout,
		},
		baseApiURL: emailCfg.BaseApiURL,
		apiKey:     emailCfg.APIKey,
	}
}

func (c *resendClientImpl) Configured() bool {
	return c.apiKey != ""
}

func (c *resendClientImpl) Send(ctx context.Context, msg *notify.Message) error {
	if !c.Configured() {
		return ErrEmailNotConfigured
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.baseApiURL+"/emails",
		bytes.NewReader(body),
	)
	if err != nil {
		return fmt.Errorf("create email request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email api error: status=%d body=%s", resp.StatusCode, string(b))
	}

	return nil
}
