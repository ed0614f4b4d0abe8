package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const StatusSuccess = "success"

var (
	ErrNetwork         = errors.New("network error")
	ErrInvalidResponse = errors.New("invalid response from data source")
)

// RemoteError is returned when the endpoint answers with a non-success status.
type RemoteError struct {
	Action  string
	Status  string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("sheets: %s returned status %q", e.Action, e.Status)
	}
	return fmt.Sprintf("sheets: %s failed: %s", e.Action, e.Message)
}

// Envelope is the part of every response the client inspects.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Client talks to the spreadsheet web app: every call is a POST of a flat JSON
// object carrying an "action" field to a single endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

func NewClient(endpoint string, timeout time.Duration) *Client {
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Call sends action merged with the fields of payload and decodes the response into out.
// payload and out may be nil.
func (c *Client) Call(ctx context.Context, action string, payload any, out any) error {
	body, err := encodeRequest(action, payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", action, err)
	}
	// The web app rejects CORS preflights, so the original client sends JSON as plain text.
	req.Header.Set("Content-Type", "text/plain;charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNetwork, action, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %s: reading body: %v", ErrNetwork, action, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s: unexpected HTTP status %d", ErrNetwork, action, resp.StatusCode)
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, action, err)
	}
	if env.Status != StatusSuccess {
		return &RemoteError{Action: action, Status: env.Status, Message: env.Message}
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidResponse, action, err)
	}
	return nil
}

func encodeRequest(action string, payload any) ([]byte, error) {
	fields := map[string]json.RawMessage{}
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode %s payload: %w", action, err)
		}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("%s payload must encode to a JSON object: %w", action, err)
		}
	}

	actionJSON, _ := json.Marshal(action)
	fields["action"] = actionJSON

	return json.Marshal(fields)
}
