package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"nexuraPortal/internal/origin"
	"nexuraPortal/internal/types/campaign"
	"nexuraPortal/internal/types/leaderboard"
	"nexuraPortal/internal/types/quest"
)

const (
	CampaignsPath   = "/api/campaigns"
	QuestsPath      = "/api/quests"
	LeaderboardPath = "/api/leaderboard"

	maxErrorBody = 1024
)

var absoluteURL = regexp.MustCompile(`(?i)^https?://`)

// BackendClient performs the read-only requests against the rewards backend.
// It never retries.
type BackendClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewBackendClient builds a client for baseURL. An empty baseURL resolves
// paths against the origin stored in the request context. A zero timeout
// means none.
func NewBackendClient(baseURL string, timeout time.Duration, logger *zap.Logger) *BackendClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackendClient{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger.Named("backend"),
	}
}

// BuildURL joins base and path with exactly one slash. Absolute http(s)
// paths are returned unchanged.
func BuildURL(base, path string) string {
	if absoluteURL.MatchString(path) {
		return path
	}
	base = strings.TrimRight(base, "/")
	path = strings.TrimLeft(path, "/")
	return base + "/" + path
}

func (c *BackendClient) resolve(ctx context.Context, path string) (string, error) {
	u := BuildURL(c.baseURL, path)
	if absoluteURL.MatchString(u) {
		return u, nil
	}
	o := origin.FromContext(ctx)
	if o == "" {
		return "", ErrNoOrigin
	}
	return BuildURL(o, u), nil
}

func (c *BackendClient) FetchCampaigns(ctx context.Context) (campaign.Collections, error) {
	var out campaign.Collections
	err := c.getJSON(ctx, CampaignsPath, func(body []byte) error {
		return json.Unmarshal(body, &out)
	})
	return out, err
}

func (c *BackendClient) FetchQuests(ctx context.Context) (quest.Collections, error) {
	var out quest.Collections
	err := c.getJSON(ctx, QuestsPath, func(body []byte) error {
		return json.Unmarshal(body, &out)
	})
	return out, err
}

func (c *BackendClient) FetchLeaderboard(ctx context.Context) (leaderboard.Leaderboard, error) {
	var out leaderboard.Leaderboard
	err := c.getJSON(ctx, LeaderboardPath, func(body []byte) error {
		var err error
		out, err = leaderboard.Decode(body)
		return err
	})
	return out, err
}

func (c *BackendClient) getJSON(ctx context.Context, path string, decode func([]byte) error) error {
	start := time.Now()
	outcome := "error"
	defer func() {
		backendRequestsTotal.WithLabelValues(path, outcome).Inc()
		backendRequestDuration.WithLabelValues(path).Observe(time.Since(start).Seconds())
	}()

	target, err := c.resolve(ctx, path)
	if err != nil {
		return &NetworkError{Endpoint: path, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &NetworkError{Endpoint: path, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed", zap.String("url", target), zap.Error(err))
		return &NetworkError{Endpoint: path, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		outcome = "http_" + fmt.Sprint(resp.StatusCode)
		c.logger.Warn("backend returned non-2xx",
			zap.String("url", target),
			zap.Int("status", resp.StatusCode),
			zap.String("body", string(body)))
		return &HTTPError{Endpoint: path, StatusCode: resp.StatusCode, Body: string(body)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &NetworkError{Endpoint: path, Err: fmt.Errorf("read body: %w", err)}
	}
	if err := decode(body); err != nil {
		outcome = "decode_error"
		c.logger.Warn("backend payload not understood", zap.String("url", target), zap.Error(err))
		return fmt.Errorf("decode %s: %w", path, err)
	}

	outcome = "ok"
	c.logger.Debug("backend read", zap.String("url", target), zap.Duration("took", time.Since(start)))
	return nil
}
