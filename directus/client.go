// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package directus

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

	"github.com/antoniszymanski/directus-typegen-go/typegen"
	"github.com/rs/zerolog"
)

type Client struct {
	host       *url.URL
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(host string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(host)
	if err != nil {
		return nil, typegen.ValidationError{Field: "host", Err: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, typegen.ValidationError{
			Field: "host",
			Err:   fmt.Errorf("%q is not an http(s) URL", host),
		}
	}

	c := &Client{
		host:       u,
		httpClient: http.DefaultClient,
		log:        zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

type ClientOption func(c *Client)

func HTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func Logger(log zerolog.Logger) ClientOption {
	return func(c *Client) {
		c.log = log
	}
}

var loginResponseSchema = typegen.CompileSchema("memory:login.schema.json", `{
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "object",
			"required": ["access_token"],
			"properties": {
				"access_token": {"type": "string"},
				"expires": {"type": "integer"},
				"refresh_token": {"type": "string"}
			}
		}
	}
}`)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Mode     string `json:"mode"`
}

type loginResponse struct {
	Data struct {
		AccessToken string `json:"access_token"`
	} `json:"data"`
}

// Login authenticates with email and password and returns the access token.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body, err := json.Marshal(loginRequest{Email: email, Password: password, Mode: "json"})
	if err != nil {
		return "", err
	}
	endpoint := c.endpoint("auth", "login")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", TransportError{Op: "login", URL: endpoint, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	data, err := c.do(req, "login")
	if err != nil {
		return "", err
	}
	if err = loginResponseSchema.Validate(data); err != nil {
		return "", TransportError{Op: "login", URL: endpoint, Err: err}
	}
	var resp loginResponse
	if err = json.Unmarshal(data, &resp); err != nil {
		return "", TransportError{Op: "login", URL: endpoint, Err: err}
	}
	return resp.Data.AccessToken, nil
}

// FetchSpec downloads the OpenAPI specification of the instance.
func (c *Client) FetchSpec(ctx context.Context, token string) ([]byte, error) {
	endpoint := c.endpoint("server", "specs", "oas")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, TransportError{Op: "fetch spec", URL: endpoint, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")
	return c.do(req, "fetch spec")
}

func (c *Client) endpoint(elem ...string) string {
	return c.host.JoinPath(elem...).String()
}

func (c *Client) do(req *http.Request, op string) ([]byte, error) {
	endpoint := req.URL.String()
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, TransportError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	data, err := io.ReadAll(resp.Body)
	c.log.Debug().
		Str("method", req.Method).
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Dur("elapsed", time.Since(start)).
		Msg("request")
	if err != nil {
		return nil, TransportError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, TransportError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        statusError(resp.Status, data),
		}
	}
	if !json.Valid(data) {
		return nil, TransportError{
			Op:         op,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Err:        errors.New("malformed JSON response"),
		}
	}
	return data, nil
}

type errorResponse struct {
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// statusError describes a non-2xx response, using the messages of a Directus
// error body when there is one.
func statusError(status string, body []byte) error {
	var resp errorResponse
	if json.Unmarshal(body, &resp) == nil && len(resp.Errors) > 0 {
		msgs := make([]string, 0, len(resp.Errors))
		for _, e := range resp.Errors {
			msgs = append(msgs, e.Message)
		}
		return fmt.Errorf("unexpected status %s: %s", status, strings.Join(msgs, "; "))
	}
	return fmt.Errorf("unexpected status %s", status)
}
