package campussdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a client for the campus Q&A service.
// It provides access to anonymous operations and creates authenticated Sessions.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new client with a 10 second request timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Signup registers an account and returns a session for it.
func (c *Client) Signup(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/auth/signup", SignupRequest{Email: email, Password: password}, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// Login exchanges credentials for a session.
func (c *Client) Login(ctx context.Context, email, password string) (*Session, error) {
	var out AuthResponse
	if err := c.postJSON(ctx, "/auth/login", LoginRequest{Email: email, Password: password}, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return newSession(c, out), nil
}

// NewSessionFromToken wraps an existing bearer token, e.g. one persisted by a
// previous login. The token is not checked until the first request.
func (c *Client) NewSessionFromToken(token string) *Session {
	return &Session{client: c, token: token}
}

// ListQueries lists queries newest first. An empty section lists all.
func (c *Client) ListQueries(ctx context.Context, section string) ([]QuerySummary, error) {
	path := "/queries"
	if section != "" {
		path += "?section=" + url.QueryEscape(section)
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}

	var out ListQueriesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Queries, nil
}

// GetQuery fetches a query and its comments anonymously; IsOwner is always false.
func (c *Client) GetQuery(ctx context.Context, queryID string) (*QueryDetailResponse, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/queries/"+url.PathEscape(queryID), nil, nil)
	if err != nil {
		return nil, err
	}

	var out QueryDetailResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSections returns the suggested section catalogue.
func (c *Client) ListSections(ctx context.Context) ([]string, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/sections", nil, nil)
	if err != nil {
		return nil, err
	}

	var out SectionsResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Sections, nil
}

// Cleanup triggers the retention sweep. cronSecret may be empty when the
// server has no CRON_SECRET configured.
func (c *Client) Cleanup(ctx context.Context, cronSecret string) (*CleanupResponse, error) {
	var headers map[string]string
	if cronSecret != "" {
		headers = map[string]string{"Authorization": "Bearer " + cronSecret}
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/cleanup", nil, headers)
	if err != nil {
		return nil, err
	}

	var out CleanupResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
