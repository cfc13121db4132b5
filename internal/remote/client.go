// Package remote calls an external analysis service that returns the same
// Bundle shape as the local engine.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/betterfriend/internal/analysis"
	"github.com/MikeSquared-Agency/betterfriend/internal/engine"
	"github.com/MikeSquared-Agency/betterfriend/internal/suggestion"
)

// maxErrorBody caps how much of a failed response is quoted in the error.
const maxErrorBody = 512

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}
}

type request struct {
	Text string        `json:"text"`
	Goal analysis.Goal `json:"goal"`
}

// Analyze posts the transcript to <base>/analyze. Any transport error,
// non-2xx status or incomplete bundle is returned as an error; there is no
// retry.
func (c *Client) Analyze(ctx context.Context, text string, goal analysis.Goal) (*engine.Bundle, error) {
	body, err := json.Marshal(request{Text: text, Goal: goal})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(respBody) > maxErrorBody {
			respBody = respBody[:maxErrorBody]
		}
		return nil, fmt.Errorf("remote error %d: %s", resp.StatusCode, string(respBody))
	}

	var b engine.Bundle
	if err := json.Unmarshal(respBody, &b); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}
	if err := validate(&b); err != nil {
		return nil, fmt.Errorf("invalid response: %w", err)
	}
	b.Source = engine.SourceRemote
	return &b, nil
}

// validate rejects a bundle the local pipeline could never produce. Missing
// descriptive analysis lists are normalized to empty.
func validate(b *engine.Bundle) error {
	if n := len(b.Suggestions); n < suggestion.MinSuggestions || n > suggestion.MaxSuggestions {
		return fmt.Errorf("%d suggestions, want %d to %d", n, suggestion.MinSuggestions, suggestion.MaxSuggestions)
	}
	switch {
	case b.Highlights == nil:
		return errors.New("missing highlights")
	case b.InteractiveHighlights == nil:
		return errors.New("missing interactiveHighlights")
	case b.ParsedMessages == nil:
		return errors.New("missing parsedMessages")
	}
	if b.Analysis.Sentiment.Label == "" {
		return errors.New("missing sentiment label")
	}

	res := &b.Analysis
	if res.Tone == nil {
		res.Tone = []string{}
	}
	if res.Patterns == nil {
		res.Patterns = []string{}
	}
	if res.Risks == nil {
		res.Risks = []string{}
	}
	return nil
}
