package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"adizon-admin/internal/domain"

	"github.com/oapi-codegen/runtime"
	"github.com/sirupsen/logrus"
)

const (
	usersPath = "/api/users"

	DefaultListLimit = 100
)

// Client реализует domain.UserClient поверх REST API Adizon.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *logrus.Logger
}

// Option настраивает Client.
type Option func(*Client)

// WithHTTPClient задает собственный http.Client (например, в тестах).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout задает таймаут одного запроса.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// NewClient создает новый экземпляр Client.
func NewClient(baseURL, token string, logger *logrus.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ domain.UserClient = (*Client)(nil)

// List возвращает страницу пользователей.
func (c *Client) List(ctx context.Context, skip, limit int) ([]*domain.User, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if skip < 0 {
		skip = 0
	}

	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var users []*domain.User
	if err := c.do(ctx, "list_users", http.MethodGet, usersPath, query, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// ListPending возвращает пользователей, ожидающих одобрения.
func (c *Client) ListPending(ctx context.Context) ([]*domain.User, error) {
	var users []*domain.User
	if err := c.do(ctx, "list_pending_users", http.MethodGet, usersPath+"/pending", nil, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Stats возвращает агрегированную статистику.
func (c *Client) Stats(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats
	if err := c.do(ctx, "get_stats", http.MethodGet, usersPath+"/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// GetByID возвращает пользователя по ID.
func (c *Client) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	path, err := userPath(userID, "")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := c.do(ctx, "get_user", http.MethodGet, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create создает пользователя.
func (c *Client) Create(ctx context.Context, in *domain.UserCreate) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, "create_user", http.MethodPost, usersPath, nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update частично обновляет пользователя.
func (c *Client) Update(ctx context.Context, userID string, in *domain.UserUpdate) (*domain.User, error) {
	path, err := userPath(userID, "")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := c.do(ctx, "update_user", http.MethodPatch, path, nil, in, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Approve одобряет пользователя.
func (c *Client) Approve(ctx context.Context, userID string) (*domain.User, error) {
	path, err := userPath(userID, "/approve")
	if err != nil {
		return nil, err
	}

	var user domain.User
	if err := c.do(ctx, "approve_user", http.MethodPost, path, nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LinkPlatform связывает пользователя с идентификатором на внешней платформе.
func (c *Client) LinkPlatform(ctx context.Context, userID string, platform domain.Platform, platformID string) (*domain.User, error) {
	path, err := userPath(userID, "/link")
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for name, value := range map[string]string{"platform": string(platform), "platform_id": platformID} {
		if err := addQueryParam(query, name, value); err != nil {
			return nil, err
		}
	}

	var user domain.User
	if err := c.do(ctx, "link_platform", http.MethodPost, path, query, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete удаляет пользователя.
func (c *Client) Delete(ctx context.Context, userID string) error {
	path, err := userPath(userID, "")
	if err != nil {
		return err
	}
	return c.do(ctx, "delete_user", http.MethodDelete, path, nil, nil, nil)
}

func userPath(userID, suffix string) (string, error) {
	id, err := runtime.StyleParamWithLocation("simple", false, "id", runtime.ParamLocationPath, userID)
	if err != nil {
		return "", fmt.Errorf("failed to build user path: %w", err)
	}
	return usersPath + "/" + id + suffix, nil
}

func addQueryParam(query url.Values, name, value string) error {
	frag, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
	if err != nil {
		return fmt.Errorf("failed to build %s param: %w", name, err)
	}
	parsed, err := url.ParseQuery(frag)
	if err != nil {
		return fmt.Errorf("failed to parse %s param: %w", name, err)
	}
	for k, values := range parsed {
		for _, v := range values {
			query.Add(k, v)
		}
	}
	return nil
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body, out any) error {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: failed to encode request: %w", operation, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("%s: failed to build request: %w", operation, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	entry := c.logger.WithFields(logrus.Fields{
		"operation": operation,
		"method":    method,
		"url":       target,
		"latency":   time.Since(start),
	})
	if err != nil {
		entry.WithError(err).Warn("Adizon API request failed")
		return fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	entry.WithField("status", resp.StatusCode).Debug("Adizon API request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %w", operation, newAPIError(resp))
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", operation, err)
	}
	return nil
}
