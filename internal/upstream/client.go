// Package upstream talks to a live concierge backend when one is
// configured. With no base URL the service answers everything from its own
// demo data and this client is never consulted.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/caretrip/concierge/internal/seats"
	"github.com/caretrip/concierge/pkg/logger"
)

// Client is responsible for fetching helper data from a live backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logger.Logger
}

// NewClient creates a new upstream client. An empty baseURL yields a client
// whose Enabled() is false.
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log.Named("upstream"),
	}
}

// Enabled reports whether a live backend is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// HelperSeats fetches the seat map for a helper link from the live backend.
func (c *Client) HelperSeats(ctx context.Context, linkID string) (*seats.Map, error) {
	var out seats.Map
	path := fmt.Sprintf("/api/helper/%s/seats", url.PathEscape(linkID))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActionResponse is the backend's reply to an executed action.
type ActionResponse struct {
	Success  bool           `json:"success"`
	ActionID string         `json:"action_id"`
	Message  string         `json:"message,omitempty"`
	Error    string         `json:"error,omitempty"`
	Data     map[string]any `json:"data,omitempty"`
}

// ExecuteAction forwards a helper action to the live backend.
func (c *Client) ExecuteAction(ctx context.Context, linkID, actionType string, params map[string]any, notes string) (*ActionResponse, error) {
	payload := map[string]any{
		"action_type": actionType,
		"params":      params,
		"notes":       notes,
	}

	var out ActionResponse
	path := fmt.Sprintf("/api/helper/%s/actions/execute", url.PathEscape(linkID))
	if err := c.post(ctx, path, payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LocationReport is the backend's location snapshot for a session.
type LocationReport struct {
	PassengerLocation map[string]any `json:"passenger_location"`
	GateLocation      map[string]any `json:"gate_location"`
	Metrics           map[string]any `json:"metrics"`
	Directions        string         `json:"directions,omitempty"`
	Message           string         `json:"message,omitempty"`
	Alert             map[string]any `json:"alert,omitempty"`
}

// RefreshLocation asks the live backend for fresh location metrics.
func (c *Client) RefreshLocation(ctx context.Context, linkID string) (*LocationReport, error) {
	var out LocationReport
	path := fmt.Sprintf("/api/helper/%s/location", url.PathEscape(linkID))
	if err := c.get(ctx, path, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// HandoffResponse is the backend's reply to a handoff request.
type HandoffResponse struct {
	DossierID     string `json:"dossier_id"`
	BridgeMessage string `json:"bridge_message"`
}

// CreateHandoff asks the live backend to escalate a conversation.
func (c *Client) CreateHandoff(ctx context.Context, transcript []map[string]string, reason string) (*HandoffResponse, error) {
	payload := map[string]any{
		"transcript": transcript,
		"reason":     reason,
	}

	var out HandoffResponse
	if err := c.post(ctx, "/api/handoff", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get executes a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Fetching upstream data", logger.String("path", path))
	return c.do(req, out)
}

// post executes a POST request with a JSON body and decodes the response.
func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("Posting upstream request", logger.String("path", path))
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}
	return nil
}
