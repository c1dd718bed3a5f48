// Package classify talks to the external text-classification service.
// The service is an opaque function: message plus chronological history in,
// category plus reasoning out.
package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"switchboard/domain"
)

type request struct {
	CurrentMessage domain.ChatMessage   `json:"currentMessage"`
	MessageHistory []domain.ChatMessage `json:"messageHistory"`
}

// HTTPClassifier calls the classifier over HTTP JSON with a small retry
// budget. Transient failures are retried; anything else bubbles up to the
// categorization pipeline, which logs and swallows it.
type HTTPClassifier struct {
	endpoint string
	client   *retryablehttp.Client
	log      *slog.Logger
}

func NewHTTPClassifier(endpoint string, timeout time.Duration, log *slog.Logger) *HTTPClassifier {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = timeout
	client.Logger = nil
	return &HTTPClassifier{endpoint: endpoint, client: client, log: log}
}

func (c *HTTPClassifier) Categorize(ctx context.Context, message domain.ChatMessage, history []domain.ChatMessage) (domain.Categorization, error) {
	if history == nil {
		// The wire contract promises an array, empty for the first message.
		history = []domain.ChatMessage{}
	}
	body, err := json.Marshal(request{CurrentMessage: message, MessageHistory: history})
	if err != nil {
		return domain.Categorization{}, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.Categorization{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Categorization{}, fmt.Errorf("classifier unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.Categorization{}, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var result domain.Categorization
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return domain.Categorization{}, fmt.Errorf("classifier response malformed: %w", err)
	}
	if !result.Category.Valid() {
		return domain.Categorization{}, fmt.Errorf("classifier returned unknown category %q", result.Category)
	}
	return result, nil
}
