// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/boswachter/observations/models"
)

// ErrUnexpectedStatus is returned for any non-2xx response.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// StatusError carries the status of a rejected request. The body is not
// inspected.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: %d", ErrUnexpectedStatus, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }

// Client talks to the observation API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// New returns a client for the API rooted at baseURL. Requests carry no
// timeout of their own; callers bound them with the context.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Submit posts one observation. Any 2xx counts as success; the stored
// record and edit key are decoded when the server echoes them.
func (c *Client) Submit(ctx context.Context, obs models.ObservationCreate) (models.CreateObservationResponse, error) {
	var out models.CreateObservationResponse

	data, err := json.Marshal(obs)
	if err != nil {
		return out, fmt.Errorf("encode observation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/observations/", bytes.NewReader(data))
	if err != nil {
		return out, err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return out, fmt.Errorf("submit observation: %w", err)
	}
	defer res.Body.Close()

	if !success(res.StatusCode) {
		return out, &StatusError{StatusCode: res.StatusCode}
	}

	// Best effort; the status alone decides success.
	_ = json.NewDecoder(res.Body).Decode(&out)
	return out, nil
}

// List fetches stored observations. Zero offset and limit leave paging
// to the server defaults.
func (c *Client) List(ctx context.Context, offset, limit int) ([]models.Observation, error) {
	q := url.Values{}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	target := c.baseURL + "/observations"
	if len(q) > 0 {
		target += "?" + q.Encode()
	}

	var out []models.Observation
	if err := c.getJSON(ctx, target, &out); err != nil {
		return nil, fmt.Errorf("list observations: %w", err)
	}
	if out == nil {
		out = []models.Observation{}
	}
	return out, nil
}

// Get fetches a single observation by id.
func (c *Client) Get(ctx context.Context, id int64) (models.Observation, error) {
	var out models.Observation
	target := c.baseURL + "/observations/" + strconv.FormatInt(id, 10)
	if err := c.getJSON(ctx, target, &out); err != nil {
		return models.Observation{}, fmt.Errorf("get observation %d: %w", id, err)
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, target string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if !success(res.StatusCode) {
		return &StatusError{StatusCode: res.StatusCode}
	}

	return json.NewDecoder(res.Body).Decode(v)
}

func success(code int) bool {
	return code >= 200 && code < 300
}
