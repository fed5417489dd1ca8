package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	apierrors "github.com/kavia-common/simple-qa-assistant-34089-34098/internal/errors"
	"github.com/kavia-common/simple-qa-assistant-34089-34098/internal/models"
)

// Error bodies are read best-effort and capped for display
const maxErrorBody = 4096

// Ask sends a question to the answer service and returns the answer text.
// Failures come back as typed errors from the errors package; callers
// that always need something renderable should use AskText instead.
func (c *Client) Ask(question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", apierrors.ErrEmptyQuestion
	}

	payload, err := json.Marshal(models.AskRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("failed to encode question: %w", err)
	}

	endpoint := c.AskURL()
	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Read the body best-effort for diagnostics; empty is fine
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", apierrors.NewStatusError(resp.StatusCode, endpoint, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", apierrors.NewNetworkError(endpoint, err)
	}

	return extractAnswer(body)
}

// AskText is the render-or-bust variant of Ask: it never fails, turning
// every error into the fixed fallback message shown as an assistant reply.
func (c *Client) AskText(question string) string {
	answer, err := c.Ask(question)
	if err != nil {
		return Fallback(err)
	}
	return answer
}

// Fallback converts an error into the user-facing assistant message
func Fallback(err error) string {
	return fmt.Sprintf("Sorry, I couldn't get an answer right now.\n\nDetails: %v", err)
}

// extractAnswer pulls the answer text out of a loosely-typed JSON payload.
// Field precedence: "answer", then "response", then the payload verbatim.
func extractAnswer(body []byte) (string, error) {
	text := strings.TrimSpace(string(body))
	if !gjson.Valid(text) {
		return "", apierrors.NewParseError("response is not valid JSON")
	}

	parsed := gjson.Parse(text)
	if answer := parsed.Get("answer"); answer.Exists() {
		return answer.String(), nil
	}
	if response := parsed.Get("response"); response.Exists() {
		return response.String(), nil
	}

	return text, nil
}
