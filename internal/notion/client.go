package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Config holds Notion API client configuration
type Config struct {
	Token   string
	BaseURL string        // e.g. https://api.notion.com
	Version string        // Notion-Version header value
	Timeout time.Duration // per-request timeout
}

// Client is a minimal Notion API client covering the two calls this
// tool makes: a filtered database query and a page create.
type Client struct {
	config     Config
	httpClient *http.Client
	logger     zerolog.Logger
}

// New creates a new Notion API client
func New(config Config, logger zerolog.Logger) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// queryRequest is the database query body with an exact-date filter
type queryRequest struct {
	Filter dateFilter `json:"filter"`
}

type dateFilter struct {
	Property string        `json:"property"`
	Date     dateCondition `json:"date"`
}

type dateCondition struct {
	Equals string `json:"equals"`
}

type queryResponse struct {
	Results []Page `json:"results"`
}

// createPageRequest is the page create body
type createPageRequest struct {
	Parent     parent     `json:"parent"`
	Icon       *Icon      `json:"icon,omitempty"`
	Properties Properties `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

// QueryByDate returns the first page in the database whose date
// property equals the given date, or nil when none matches.
func (c *Client) QueryByDate(ctx context.Context, databaseID, property, date string) (*Page, error) {
	body := queryRequest{
		Filter: dateFilter{
			Property: property,
			Date:     dateCondition{Equals: date},
		},
	}

	var resp queryResponse
	path := fmt.Sprintf("/v1/databases/%s/query", databaseID)
	if err := c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("database query failed: %w", err)
	}

	if len(resp.Results) == 0 {
		return nil, nil
	}
	return &resp.Results[0], nil
}

// CreatePage creates one page in the database with the given icon and
// properties.
func (c *Client) CreatePage(ctx context.Context, databaseID string, icon *Icon, props Properties) (*Page, error) {
	body := createPageRequest{
		Parent:     parent{DatabaseID: databaseID},
		Icon:       icon,
		Properties: props,
	}

	var page Page
	if err := c.do(ctx, http.MethodPost, "/v1/pages", body, &page); err != nil {
		return nil, fmt.Errorf("page create failed: %w", err)
	}

	c.logger.Debug().Str("page_id", page.ID).Msg("Created Notion page")
	return &page, nil
}

// apiError is the error envelope the Notion API returns alongside
// non-2xx statuses.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// do sends one JSON request and decodes the response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.config.BaseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Notion-Version", c.config.Version)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("notion returned status %d (%s): %s", resp.StatusCode, apiErr.Code, apiErr.Message)
		}
		return fmt.Errorf("notion returned status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
