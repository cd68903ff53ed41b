package airtable

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

	pkgerrors "github.com/fst-serve/serve-backend/pkg/errors"
)

const (
	defaultBaseURL             = "https://api.airtable.com/v0"
	ordersTable                = "Orders"
	errorBodyReadLimit   int64 = 1024
	pendingStatus              = "🔴 Pending"
)

var errCredentialsRequired = errors.New("airtable api key and base id are required")

// Client talks to the Airtable surfaces the order flow records into:
// the records API (api key + base id) and an inbound webhook URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	baseID     string
	webhookURL string
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithBaseURL overrides the records API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		trimmed := strings.TrimSpace(baseURL)
		if trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithWebhookURL configures the inbound webhook used by ForwardOrder.
func WithWebhookURL(url string) Option {
	return func(c *Client) {
		c.webhookURL = strings.TrimSpace(url)
	}
}

// NewClient builds an Airtable client. Credentials may be empty; the
// calls that need them fail with a configuration error instead.
func NewClient(apiKey, baseID string, opts ...Option) *Client {
	client := &Client{
		apiKey:     strings.TrimSpace(apiKey),
		baseID:     strings.TrimSpace(baseID),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if client.baseURL == "" {
		client.baseURL = defaultBaseURL
	}

	return client
}

// HasWebhook reports whether ForwardOrder has a destination configured.
func (c *Client) HasWebhook() bool {
	return c != nil && c.webhookURL != ""
}

// HasCredentials reports whether the records API is usable.
func (c *Client) HasCredentials() bool {
	return c != nil && c.apiKey != "" && c.baseID != ""
}

// ForwardOrder relays an already validated order payload to the
// configured webhook URL.
func (c *Client) ForwardOrder(ctx context.Context, payload any) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "airtable client not configured")
	}
	if c.webhookURL == "" {
		return pkgerrors.New(pkgerrors.CodeConfiguration, "airtable webhook url is not configured")
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal order payload")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build webhook request")
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute webhook request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "webhook request failed")
	}

	return nil
}

// OrderFields is the record shape the Orders table expects.
type OrderFields struct {
	Location      string `json:"Location"`
	LocationNotes string `json:"Loc Notes"`
	Vehicle       string `json:"Vehicle"`
	Energy        string `json:"Energy"`
	Price         int    `json:"Price"`
	Time          string `json:"Time"`
	Notes         string `json:"Notes"`
	Reason        string `json:"Reason"`
	Status        string `json:"Status"`
}

type recordPayload struct {
	Records []struct {
		Fields OrderFields `json:"fields"`
	} `json:"records"`
}

// CreateOrderRecord writes a pending order row into the Orders table.
func (c *Client) CreateOrderRecord(ctx context.Context, fields OrderFields) error {
	if c == nil {
		return pkgerrors.New(pkgerrors.CodeDependency, "airtable client not configured")
	}
	if !c.HasCredentials() {
		return pkgerrors.Wrap(pkgerrors.CodeConfiguration, errCredentialsRequired, "airtable records api is not configured")
	}

	if fields.Status == "" {
		fields.Status = pendingStatus
	}

	var payload recordPayload
	payload.Records = make([]struct {
		Fields OrderFields `json:"fields"`
	}, 1)
	payload.Records[0].Fields = fields

	body, err := json.Marshal(payload)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "marshal order record")
	}

	url := fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.baseURL, "/"), c.baseID, ordersTable)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "build record request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "execute record request")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
		return pkgerrors.Wrap(pkgerrors.CodeDependency, fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg))), "record request failed")
	}

	return nil
}
