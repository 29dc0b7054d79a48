package garmin

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds Garmin Connect client configuration
type Config struct {
	Email    string
	Password string
	SSOURL   string        // SSO host, e.g. https://sso.garmin.com
	APIURL   string        // Connect host, e.g. https://connect.garmin.com
	Timeout  time.Duration // per-request timeout
}

// Client talks to the unofficial Garmin Connect API. It holds the
// session cookies established by Login; all data calls require a
// successful Login first.
type Client struct {
	config      Config
	httpClient  *http.Client
	logger      zerolog.Logger
	displayName string
}

// ticketPattern extracts the CAS service ticket from the SSO signin
// response body ("...?ticket=ST-xxxx-cas";).
var ticketPattern = regexp.MustCompile(`ticket=([^"\\]+)`)

// New creates a new Garmin Connect client
func New(config Config, logger zerolog.Logger) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		config: config,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Login performs the SSO ticket flow: post credentials to the signin
// endpoint, extract the service ticket, exchange it against the Connect
// host for session cookies, then resolve the account's display name.
func (c *Client) Login(ctx context.Context) error {
	ticket, err := c.obtainTicket(ctx)
	if err != nil {
		return fmt.Errorf("sso signin failed: %w", err)
	}

	if err := c.exchangeTicket(ctx, ticket); err != nil {
		return fmt.Errorf("ticket exchange failed: %w", err)
	}

	profile, err := c.fetchProfile(ctx)
	if err != nil {
		return fmt.Errorf("profile lookup failed: %w", err)
	}
	c.displayName = profile.DisplayName

	c.logger.Debug().
		Str("display_name", c.displayName).
		Msg("Garmin login complete")

	return nil
}

// DailySleep fetches the sleep summary for one local calendar date
// (YYYY-MM-DD). A day the device has not reported yet yields a response
// with an empty DTO, not an error.
func (c *Client) DailySleep(ctx context.Context, date string) (*SleepData, error) {
	if c.displayName == "" {
		return nil, fmt.Errorf("not logged in")
	}

	endpoint := fmt.Sprintf(
		"%s/modern/proxy/wellness-service/wellness/dailySleepData/%s?date=%s&nonSleepBufferMinutes=60",
		c.config.APIURL, url.PathEscape(c.displayName), url.QueryEscape(date),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sleep request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sleep request returned status %d", resp.StatusCode)
	}

	var data SleepData
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode sleep data: %w", err)
	}

	c.logger.Debug().
		Str("date", date).
		Bool("has_dto", data.DailySleepDTO != nil).
		Msg("Fetched daily sleep data")

	return &data, nil
}

// obtainTicket posts the credential form to the SSO endpoint and pulls
// the service ticket out of the response body.
func (c *Client) obtainTicket(ctx context.Context) (string, error) {
	service := c.config.APIURL + "/modern"
	signin := fmt.Sprintf("%s/sso/signin?service=%s&clientId=GarminConnect&consumed=false&gauthHost=%s/sso",
		c.config.SSOURL, url.QueryEscape(service), url.QueryEscape(c.config.SSOURL))

	form := url.Values{}
	form.Set("username", c.config.Email)
	form.Set("password", c.config.Password)
	form.Set("embed", "false")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, signin, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("signin returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	match := ticketPattern.FindSubmatch(body)
	if match == nil {
		// Wrong password and locked accounts both land here; Garmin
		// returns 200 with an error page either way.
		return "", fmt.Errorf("no service ticket in signin response (check credentials)")
	}

	return string(match[1]), nil
}

// exchangeTicket redeems the service ticket so the Connect host sets
// its session cookies on our jar.
func (c *Client) exchangeTicket(ctx context.Context, ticket string) error {
	target := fmt.Sprintf("%s/modern?ticket=%s", c.config.APIURL, url.QueryEscape(ticket))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ticket exchange returned status %d", resp.StatusCode)
	}

	// Body is the Connect SPA shell; only the cookies matter.
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func (c *Client) fetchProfile(ctx context.Context) (*socialProfile, error) {
	endpoint := c.config.APIURL + "/modern/proxy/userprofile-service/socialProfile"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("profile request returned status %d", resp.StatusCode)
	}

	var profile socialProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if profile.DisplayName == "" {
		return nil, fmt.Errorf("profile has no display name")
	}

	return &profile, nil
}

// setHeaders applies the headers the Connect backend expects from the
// web client. NK is a Garmin quirk; requests without it get 403s on
// some proxy endpoints.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; garmin-to-notion)")
	req.Header.Set("NK", "NT")
	req.Header.Set("Accept", "application/json, text/html")
}
