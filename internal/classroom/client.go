package classroom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/sma-publisher-api/pkg/config"
	appErrors "github.com/noah-isme/sma-publisher-api/pkg/errors"
)

// Client talks to the remote classroom platform. Every call is scoped to one
// course and authenticated with the caller-supplied bearer token; the client
// holds no credential state of its own.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient constructs a platform client from config.
func NewClient(cfg config.ClassroomConfig, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// CreateAnnouncement posts an announcement into one course.
func (c *Client) CreateAnnouncement(ctx context.Context, courseID, token string, req AnnouncementRequest) (*CreatedPost, error) {
	url := fmt.Sprintf("%s/courses/%s/announcements", c.baseURL, courseID)
	return c.create(ctx, url, token, req)
}

// CreateCourseWork posts an assignment or question into one course.
func (c *Client) CreateCourseWork(ctx context.Context, courseID, token string, req CourseWorkRequest) (*CreatedPost, error) {
	url := fmt.Sprintf("%s/courses/%s/courseWork", c.baseURL, courseID)
	return c.create(ctx, url, token, req)
}

// ListTopics returns the topic list for one course.
func (c *Client) ListTopics(ctx context.Context, courseID, token string) ([]Topic, error) {
	url := fmt.Sprintf("%s/courses/%s/topics", c.baseURL, courseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemotePlatform.Code, appErrors.ErrRemotePlatform.Status, "list topics failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.responseError(resp)
	}

	var body topicListResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemotePlatform.Code, appErrors.ErrRemotePlatform.Status, "decode topic list")
	}
	return body.Topic, nil
}

func (c *Client) create(ctx context.Context, url, token string, payload interface{}) (*CreatedPost, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal platform request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemotePlatform.Code, appErrors.ErrRemotePlatform.Status, "platform request failed")
	}
	defer resp.Body.Close()

	c.logger.Debug("platform create call",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, c.responseError(resp)
	}

	var created CreatedPost
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrRemotePlatform.Code, appErrors.ErrRemotePlatform.Status, "decode platform response")
	}
	return &created, nil
}

// responseError maps a non-2xx platform response onto a typed error carrying
// the platform's human-readable message when one is present.
func (c *Client) responseError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	message := fmt.Sprintf("platform returned status %d", resp.StatusCode)
	var body platformError
	if err := json.Unmarshal(raw, &body); err == nil && body.Error.Message != "" {
		message = body.Error.Message
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return appErrors.Clone(appErrors.ErrUnauthorized, message)
	default:
		return appErrors.Clone(appErrors.ErrRemotePlatform, message)
	}
}
