// Package client talks to the authentication service. A successful signup
// or signin persists the returned token, later fetches attach it as the raw
// authorization header, and signout clears it locally without a server call.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrBadLogin is the single error surfaced for signin failures. Network
// failures and credential rejections are indistinguishable to the caller.
var ErrBadLogin = errors.New("bad login info")

// ErrUnauthorized is returned when a protected fetch is rejected
var ErrUnauthorized = errors.New("unauthorized")

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Client is the service client
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenStore
}

// New returns a Client for the service at baseURL, persisting tokens in the
// given store.
func New(baseURL string, tokens TokenStore) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		tokens:  tokens,
	}
}

// Signup registers a new account and stores the returned token. Server-side
// validation errors (missing fields, duplicate email) come back verbatim.
func (c *Client) Signup(ctx context.Context, email, password string) error {
	token, err := c.postCredentials(ctx, "/signup", email, password)
	if err != nil {
		return err
	}
	return c.tokens.Save(token)
}

// Signin authenticates and stores the returned token. Any failure surfaces
// as ErrBadLogin.
func (c *Client) Signin(ctx context.Context, email, password string) error {
	token, err := c.postCredentials(ctx, "/signin", email, password)
	if err != nil {
		return ErrBadLogin
	}
	return c.tokens.Save(token)
}

// Signout clears the stored token. No server call is made; tokens are
// stateless on the server side.
func (c *Client) Signout() error {
	return c.tokens.Clear()
}

// FetchMessage requests the protected resource using the stored token
func (c *Client) FetchMessage(ctx context.Context) (string, error) {
	token, err := c.tokens.Load()
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("authorization", token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return "", ErrUnauthorized
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch message: unexpected status %d", resp.StatusCode)
	}

	var out messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode message: %w", err)
	}

	return out.Message, nil
}

func (c *Client) postCredentials(ctx context.Context, path, email, password string) (string, error) {
	body, err := json.Marshal(credentials{Email: email, Password: password})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var out errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err == nil && out.Error != "" {
			return "", errors.New(out.Error)
		}
		return "", fmt.Errorf("request %s: unexpected status %d", path, resp.StatusCode)
	}

	var out tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}
	if out.Token == "" {
		return "", errors.New("response carried no token")
	}

	return out.Token, nil
}
