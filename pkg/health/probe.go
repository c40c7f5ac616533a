package health

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// ConnectionFailed is the display text for any probe failure.
const ConnectionFailed = "Connection Failed"

// NetworkError is a degraded-display failure: the affected card shows
// a disconnected state instead of data. Never fatal.
type NetworkError struct {
	Message string
}

func (e *NetworkError) Error() string {
	return e.Message
}

// Status is the backend health payload.
type Status struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Card is what the informational status card renders.
type Card struct {
	Connected bool    `json:"connected"`
	Status    *Status `json:"status,omitempty"`
	Display   string  `json:"display"`
}

// Probe checks a configured backend base URL. No retry on failure.
type Probe struct {
	baseURL string
	client  *http.Client
}

// NewProbe builds a probe for the given base URL.
func NewProbe(baseURL string) *Probe {
	return &Probe{baseURL: baseURL, client: &http.Client{}}
}

// Check issues a single GET and decodes the health payload. Any
// network or parse failure comes back as *NetworkError.
func (p *Probe) Check(ctx context.Context) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return nil, &NetworkError{Message: err.Error()}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, &NetworkError{Message: err.Error()}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &NetworkError{Message: fmt.Sprintf("unexpected status %d", resp.StatusCode)}
	}

	var status Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, &NetworkError{Message: err.Error()}
	}
	return &status, nil
}

// CheckCard renders the probe result for the status card.
func (p *Probe) CheckCard(ctx context.Context) Card {
	status, err := p.Check(ctx)
	if err != nil {
		return Card{Connected: false, Display: ConnectionFailed}
	}
	return Card{
		Connected: true,
		Status:    status,
		Display:   fmt.Sprintf("Status: %s, Version: %s", status.Status, status.Version),
	}
}
