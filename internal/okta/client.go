package okta

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"okta-sentinel/internal/model"
)

// Event types carrying these keywords count as authentication-related
// and are kept by AuthenticationLogs.
var authEventKeywords = []string{"authentication", "mfa", "sso", "session"}

const sinceLayout = "2006-01-02T15:04:05.000Z"

// Client talks to the Okta System Log API using an SSWS API token.
type Client struct {
	baseURL    string
	apiToken   string
	httpClient *http.Client
	log        logrus.FieldLogger
}

// NewClient validates the credentials and returns a Client for the
// given Okta domain.
func NewClient(domain, apiToken string, timeout time.Duration, log logrus.FieldLogger) (*Client, error) {
	if domain == "" || apiToken == "" {
		return nil, fmt.Errorf("missing Okta credentials: domain and API token are required")
	}

	return &Client{
		baseURL:    fmt.Sprintf("https://%s/api/v1", domain),
		apiToken:   apiToken,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}, nil
}

// TestConnection performs a minimal logs request to verify the domain
// and token are usable.
func (c *Client) TestConnection(ctx context.Context) error {
	params := url.Values{}
	params.Set("limit", "1")

	resp, err := c.get(ctx, "/logs", params)
	if err != nil {
		return fmt.Errorf("test connection: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("test connection: unexpected status %d", resp.StatusCode)
	}

	c.log.Info("Okta API connection successful")
	return nil
}

// Logs fetches raw events published within the trailing window. The API
// returns newest first; ordering is left to callers who care.
func (c *Client) Logs(ctx context.Context, hoursBack, limit int) ([]model.AuditEvent, error) {
	since := time.Now().UTC().Add(-time.Duration(hoursBack) * time.Hour)

	params := url.Values{}
	params.Set("since", since.Format(sinceLayout))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sortOrder", "DESCENDING")

	c.log.WithField("hours", hoursBack).Info("fetching logs from Okta")

	resp, err := c.get(ctx, "/logs", params)
	if err != nil {
		return nil, fmt.Errorf("fetch logs: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch logs: unexpected status %d", resp.StatusCode)
	}

	var events []model.AuditEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decode logs response: %w", err)
	}

	c.log.WithField("count", len(events)).Info("retrieved log events")
	return events, nil
}

// AuthenticationLogs fetches events for the window and keeps only the
// authentication-related ones.
func (c *Client) AuthenticationLogs(ctx context.Context, hoursBack, limit int) ([]model.AuditEvent, error) {
	all, err := c.Logs(ctx, hoursBack, limit)
	if err != nil {
		return nil, err
	}

	var authEvents []model.AuditEvent
	for _, ev := range all {
		eventType := strings.ToLower(ev.EventType)
		for _, keyword := range authEventKeywords {
			if strings.Contains(eventType, keyword) {
				authEvents = append(authEvents, ev)
				break
			}
		}
	}

	c.log.WithField("count", len(authEvents)).Info("filtered to authentication events")
	return authEvents, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "SSWS "+c.apiToken)

	return c.httpClient.Do(req)
}
