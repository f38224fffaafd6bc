// Package sms sends text messages through the Twilio REST API.
package sms

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Sender delivers a text message to a phone number.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

type Config struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

type twilioSender struct {
	cfg    Config
	client *http.Client
}

// NewTwilioSender builds a Sender over the Twilio messages endpoint.
func NewTwilioSender(cfg Config) Sender {
	return &twilioSender{
		cfg: cfg,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (s *twilioSender) Send(ctx context.Context, to, body string) error {
	// Skip sending if Twilio is not configured
	if s.cfg.AccountSID == "" {
		slog.Warn("Twilio not configured, skipping SMS send", "to", to)
		return nil
	}

	formatted, err := FormatPhoneNumber(to)
	if err != nil {
		return fmt.Errorf("format phone number: %w", err)
	}

	endpoint := fmt.Sprintf("https://api.twilio.com/2010-04-01/Accounts/%s/Messages.json", s.cfg.AccountSID)

	form := url.Values{}
	form.Set("To", formatted)
	form.Set("From", s.cfg.FromNumber)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.SetBasicAuth(s.cfg.AccountSID, s.cfg.AuthToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("twilio returned %d: %s", resp.StatusCode, string(respBody))
	}

	slog.Info("SMS sent", "to", formatted)
	return nil
}

// FormatPhoneNumber normalizes an Australian mobile number to E.164.
// "0412 345 678" becomes "+61412345678".
func FormatPhoneNumber(phone string) (string, error) {
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	switch {
	case strings.HasPrefix(cleaned, "+61"):
		return cleaned, nil
	case strings.HasPrefix(cleaned, "61") && len(cleaned) == 11:
		return "+" + cleaned, nil
	case strings.HasPrefix(cleaned, "0") && len(cleaned) == 10:
		return "+61" + cleaned[1:], nil
	}

	return "", fmt.Errorf("unrecognized phone number format: %s", phone)
}
