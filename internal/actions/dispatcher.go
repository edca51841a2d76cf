// Package actions posts user actions (bookings, favorites) to the
// action endpoints and surfaces the confirmation message.
package actions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Kind selects the action endpoint.
type Kind string

const (
	KindBook     Kind = "book"
	KindFavorite Kind = "favorite"
)

func (k Kind) path() string {
	switch k {
	case KindBook:
		return "/booking"
	case KindFavorite:
		return "/favorite"
	default:
		return ""
	}
}

// Dispatcher sends action requests over HTTP.
type Dispatcher struct {
	baseURL string
	client  *http.Client
}

func NewDispatcher(baseURL string) *Dispatcher {
	return &Dispatcher{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type actionPayload struct {
	ID       string  `json:"id"`
	Username *string `json:"username"`
}

type actionResult struct {
	Message string `json:"message"`
}

// Dispatch posts the action and returns the server's confirmation
// message. A missing username is sent as JSON null, matching what the
// endpoints accept.
func (d *Dispatcher) Dispatch(ctx context.Context, kind Kind, id string, username *string) (string, error) {
	path := kind.path()
	if path == "" {
		return "", fmt.Errorf("unknown action kind %q", kind)
	}

	body, err := json.Marshal(actionPayload{ID: id, Username: username})
	if err != nil {
		return "", fmt.Errorf("encode %s action: %w", kind, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build %s request: %w", kind, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s action: %w", kind, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("post %s action: unexpected status %d", kind, resp.StatusCode)
	}

	var result actionResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode %s response: %w", kind, err)
	}
	return result.Message, nil
}
