// Package upstream is the typed client for the external applicants API. The
// gateway never interprets the upstream beyond this documented contract.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bracurobu/traction-intake/internal/models"
)

var (
	// ErrUnauthorized means the bearer token was rejected; callers must drop
	// the session and send the user back to login.
	ErrUnauthorized = errors.New("upstream rejected the bearer token")

	// ErrBadCredentials means the auth endpoint refused the username/password
	// pair.
	ErrBadCredentials = errors.New("invalid credentials")

	// ErrMissingToken means the auth endpoint answered success but the body
	// carried no usable access token. Such a token is never stored.
	ErrMissingToken = errors.New("auth response missing access_token")
)

// Client talks to the two upstream bases: the public submission endpoint and
// the authenticated admin API.
type Client struct {
	applicantsBase string
	apiBase        string
	httpClient     *http.Client
}

// NewClient trims the base URLs and installs a default client with a timeout
// when none is injected, so a hung upstream can never pin a request forever.
func NewClient(applicantsBase, apiBase string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		applicantsBase: strings.TrimRight(strings.TrimSpace(applicantsBase), "/"),
		apiBase:        strings.TrimRight(strings.TrimSpace(apiBase), "/"),
		httpClient:     httpClient,
	}
}

type authRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	AccessToken string `json:"access_token"`
}

// CreateApplicant submits one application. Only HTTP 200 counts as success;
// the success body is not interpreted further.
func (c *Client) CreateApplicant(ctx context.Context, applicant *models.Applicant) error {
	body, err := json.Marshal(applicant)
	if err != nil {
		return fmt.Errorf("encode applicant: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.applicantsBase+"/applicants", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create applicant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send applicant: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("create applicant: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Authenticate exchanges credentials for a bearer token.
func (c *Client) Authenticate(ctx context.Context, username, password string) (string, error) {
	body, err := json.Marshal(authRequest{Username: username, Password: password})
	if err != nil {
		return "", fmt.Errorf("encode credentials: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBase+"/auth", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create auth request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send credentials: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return "", ErrBadCredentials
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return "", fmt.Errorf("authenticate: unexpected status %d", resp.StatusCode)
	}

	var parsed authResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode auth response: %w", err)
	}
	if strings.TrimSpace(parsed.AccessToken) == "" {
		return "", ErrMissingToken
	}
	return parsed.AccessToken, nil
}

// ListApplicants fetches one page with the given bearer token.
func (c *Client) ListApplicants(ctx context.Context, token string, page int) (*models.ListPage, error) {
	url := c.apiBase + "/applicants?page=" + strconv.Itoa(page) + "&per_page=" + strconv.Itoa(models.PerPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create list request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch applicants: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("list applicants: unexpected status %d", resp.StatusCode)
	}

	var parsed models.ListPage
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("decode applicants page: %w", err)
	}
	return &parsed, nil
}
