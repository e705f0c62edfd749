// Package notify delivers enquiry notifications to property owners through
// a Resend-compatible email API. Delivery is best effort: failures are
// logged and never surface to the enquiry sender.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"homefinder/internal/models"
)

type Notifier struct {
	endpoint string
	apiKey   string
	from     string
	client   *http.Client
	logger   *slog.Logger
}

func New(endpoint, apiKey, from string, logger *slog.Logger) *Notifier {
	return &Notifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		from:     from,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
}

// Enabled reports whether outbound delivery is configured.
func (n *Notifier) Enabled() bool {
	return n != nil && n.apiKey != "" && n.endpoint != ""
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text"`
}

// EnquiryReceived tells the property owner about a new enquiry. The owner
// address comes from their profile; owners without an address are skipped.
func (n *Notifier) EnquiryReceived(ctx context.Context, ownerEmail string, property *models.Property, enquiry *models.Enquiry) {
	if !n.Enabled() || ownerEmail == "" {
		return
	}

	subject := fmt.Sprintf("New enquiry for %s", property.Title)
	body := fmt.Sprintf("You have a new enquiry for %s (%s, %s).\n\n%s\n",
		property.Title, property.City, property.State, enquiry.Message)
	if enquiry.Phone != nil {
		body += fmt.Sprintf("\nPhone: %s", *enquiry.Phone)
	}
	if enquiry.PreferredDate != nil {
		body += fmt.Sprintf("\nPreferred viewing date: %s", *enquiry.PreferredDate)
	}

	if err := n.send(ctx, emailPayload{
		From:    n.from,
		To:      []string{ownerEmail},
		Subject: subject,
		Text:    body,
	}); err != nil {
		n.logger.Warn("enquiry notification failed",
			"enquiry_id", enquiry.ID,
			"property_id", property.ID,
			"error", err)
		return
	}
	n.logger.Info("enquiry notification sent", "enquiry_id", enquiry.ID)
}

func (n *Notifier) send(ctx context.Context, payload emailPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("email api returned %d", resp.StatusCode)
	}
	return nil
}
