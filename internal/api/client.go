// Package api is the thin HTTP/websocket client for the Clash external
// controller. It fetches snapshots and streams logs; all interpretation
// of the data happens elsewhere.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"clashview/internal/model"
)

var (
	// ErrBadConfig indicates the controller URL could not be parsed.
	ErrBadConfig = errors.New("invalid controller URL")
	// ErrFailedResponse indicates the controller answered with a non-2xx
	// status.
	ErrFailedResponse = errors.New("failed response from controller")
	// ErrBadResponse indicates the controller's body did not decode.
	ErrBadResponse = errors.New("broken response from controller")
)

const requestTimeout = 10 * time.Second

// Client talks to one external controller endpoint.
type Client struct {
	baseURL *url.URL
	secret  string
	httpc   *http.Client
}

// New builds a client for the given controller base URL. An empty secret
// disables the Authorization header.
func New(rawURL, secret string) (*Client, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrBadConfig, rawURL)
	}
	return &Client{
		baseURL: u,
		secret:  secret,
		httpc:   &http.Client{Timeout: requestTimeout},
	}, nil
}

// Proxies fetches one full proxy snapshot.
func (c *Client) Proxies(ctx context.Context) (model.Proxies, error) {
	var body struct {
		Proxies model.Proxies `json:"proxies"`
	}
	if err := c.getJSON(ctx, "/proxies", &body); err != nil {
		return nil, err
	}
	return body.Proxies, nil
}

// Version fetches the controller version, used as a connectivity probe.
func (c *Client) Version(ctx context.Context) (model.Version, error) {
	var v model.Version
	err := c.getJSON(ctx, "/version", &v)
	return v, err
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	// JoinPath keeps any prefix on the configured base URL, e.g. a
	// reverse-proxied http://host/clash.
	u := c.baseURL.JoinPath(path)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("building request for %s: %w", path, err)
	}
	c.authorize(req.Header)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: %s returned %s", ErrFailedResponse, path, resp.Status)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrBadResponse, path, err)
	}
	return nil
}

func (c *Client) authorize(h http.Header) {
	if c.secret != "" {
		h.Set("Authorization", "Bearer "+c.secret)
	}
}
