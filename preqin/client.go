// Package preqin is a client for the Preqin investor commitment API.
package preqin

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// BaseURL is the production Preqin API.
const BaseURL = "https://api.preqin.com"

// Timeout bounds every request to the API.
const Timeout = 30 * time.Second

// Client calls the Preqin API.
//
// Authenticate must succeed before any commitment is fetched.
type Client struct {
	BaseURL string // e.g. https://api.preqin.com
	Workers int    // pages fetched in parallel, 1 or less is sequential
	HTTP    *http.Client

	token string
}

// NewClient returns a client for the API at baseURL ("" is BaseURL).
//
// httpClient may be nil, then a plain client is used. Either way its timeout
// is set to Timeout when it has none.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = BaseURL
	}
	if httpClient == nil {
		httpClient = new(http.Client)
	}
	if httpClient.Timeout == 0 {
		httpClient.Timeout = Timeout
	}
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Workers: 1,
		HTTP:    httpClient,
	}
}

// Authenticate exchanges the API username and key for an access token.
//
// The token is kept by the client and sent with every later request.
func (c *Client) Authenticate(ctx context.Context, username, apiKey string) (string, error) {
	if username == "" || apiKey == "" {
		return "", errors.New("preqin username and api key are required")
	}
	body := "username=" + url.QueryEscape(username) + "&apikey=" + url.QueryEscape(apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/connect/token", strings.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("cannot connect to preqin: %w", err)
	}
	defer resp.Body.Close()
	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("cannot read preqin token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("preqin authentication failed http %d: %s", resp.StatusCode, strings.TrimSpace(string(content)))
	}

	var token struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(content, &token); err != nil {
		return "", fmt.Errorf("cannot decode preqin token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", errors.New("preqin token response has no access_token")
	}
	c.token = token.AccessToken
	return c.token, nil
}

// get performs an authenticated GET of path with query and returns the body.
//
// Any status but 200 is an error carrying the status and the start of the body.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("cannot http GET %v: http %d: %s", u.Path, resp.StatusCode, strings.TrimSpace(string(b)))
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, resp.Body); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
