// Package directory implements the client for the remote auth service that
// owns user records.
package directory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"warden/config"
	"warden/internal/domain/entity"
	domainerrors "warden/internal/domain/errors"
	"warden/internal/domain/service"
	"warden/internal/errors"
)

// httpClient talks to the remote auth service over its JSON HTTP API.
type httpClient struct {
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

// NewHTTPClient builds a UserDirectory backed by the configured remote
// endpoint.
func NewHTTPClient(cfg *config.Config, logger *slog.Logger) service.UserDirectory {
	return &httpClient{
		baseURL: strings.TrimRight(cfg.Directory.BaseURL, "/"),
		client:  &http.Client{Timeout: cfg.Directory.Timeout},
		logger:  logger,
	}
}

// userEnvelope matches the remote service's single-user response shape.
type userEnvelope struct {
	User entity.User `json:"user"`
}

func (c *httpClient) ListUsers(ctx context.Context, authorization string, query service.ListUsersQuery) (*service.UserPage, error) {
	values := url.Values{}
	if query.Role != "" {
		values.Set("role", query.Role)
	}
	if query.Status != "" {
		values.Set("status", query.Status)
	}
	if query.Page > 0 {
		values.Set("page", strconv.Itoa(query.Page))
	}
	if query.Limit > 0 {
		values.Set("limit", strconv.Itoa(query.Limit))
	}

	endpoint := c.baseURL + "/users"
	if encoded := values.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	var page service.UserPage
	if err := c.do(ctx, http.MethodGet, endpoint, authorization, nil, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

func (c *httpClient) GetUser(ctx context.Context, authorization string, userID string) (*entity.User, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(userID))

	var envelope userEnvelope
	if err := c.do(ctx, http.MethodGet, endpoint, authorization, nil, &envelope); err != nil {
		return nil, err
	}

	return &envelope.User, nil
}

func (c *httpClient) PatchUser(ctx context.Context, authorization string, userID string, patch *entity.UserPatch) (*entity.User, error) {
	endpoint := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(userID))

	body, err := json.Marshal(patch)
	if err != nil {
		return nil, errors.Wrap(err, "marshal user patch")
	}

	var envelope userEnvelope
	if err := c.do(ctx, http.MethodPatch, endpoint, authorization, body, &envelope); err != nil {
		return nil, err
	}

	return &envelope.User, nil
}

// do performs one round trip. Non-2xx replies become *RemoteError carrying
// the upstream status and raw body so callers can forward them verbatim;
// transport failures become ErrDirectoryUnavailable.
func (c *httpClient) do(ctx context.Context, method, endpoint, authorization string, body []byte, out any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "build directory request")
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Error("auth service unreachable",
			slog.String("method", method),
			slog.String("endpoint", endpoint),
			slog.Any("error", err))

		return domainerrors.ErrDirectoryUnavailable
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("reading auth service response failed",
			slog.String("endpoint", endpoint),
			slog.Any("error", err))

		return domainerrors.ErrDirectoryUnavailable
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domainerrors.NewRemoteError(resp.StatusCode, raw)
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return errors.Wrap(err, "decode directory response")
		}
	}

	return nil
}
