package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// SMSService delivers recovery codes through an HTTP SMS gateway
type SMSService struct {
	client *resty.Client
	sender string
	body   string
}

// SMSConfig holds SMS gateway settings
type SMSConfig struct {
	GatewayURL string
	APIKey     string
	Sender     string
	// Body is a fmt template taking the code and the expiry in minutes
	Body string
}

type smsRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Text string `json:"text"`
}

type smsErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewSMSService creates a gateway client; it returns nil when no gateway is configured
func NewSMSService(cfg SMSConfig) *SMSService {
	if cfg.GatewayURL == "" {
		return nil
	}
	body := cfg.Body
	if body == "" {
		body = "Your recovery code is %s. It expires in %d minutes."
	}
	client := resty.New().
		SetBaseURL(cfg.GatewayURL).
		SetAuthToken(cfg.APIKey).
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json")

	return &SMSService{client: client, sender: cfg.Sender, body: body}
}

// SendRecoveryCode posts the code to the gateway for delivery to phone
func (s *SMSService) SendRecoveryCode(ctx context.Context, phone, code string, ttl time.Duration) error {
	var apiErr smsErrorResponse
	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(smsRequest{
			From: s.sender,
			To:   phone,
			Text: fmt.Sprintf(s.body, code, int(ttl.Minutes())),
		}).
		SetError(&apiErr).
		Post("/messages")
	if err != nil {
		return fmt.Errorf("sms gateway request failed: %w", err)
	}
	if resp.IsError() {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return fmt.Errorf("sms gateway returned %d: %s", resp.StatusCode(), msg)
	}
	return nil
}
