package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const resendEndpoint = "https://api.resend.com/emails"

// Message is one outbound transactional email.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendService sends email through the Resend HTTP API.
type ResendService struct {
	ApiKey string
}

func NewResendService(apiKey string) *ResendService {
	return &ResendService{ApiKey: apiKey}
}

func (s *ResendService) Send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", resendEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.ApiKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Resend API error: status %d, body: %s", resp.StatusCode, string(respBody))
	}

	return nil
}
