package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/BurtMcGurt64/owlplanner/internal/domain"
	"github.com/BurtMcGurt64/owlplanner/internal/ports"
	"go.uber.org/zap"
)

const (
	schedulesPath = "/api/schedules"
	coursesPath   = "/api/courses"
	healthPath    = "/health"

	defaultRequestTimeout = 20 * time.Second
	maxResponseBytes      = 1 << 20
)

// Client talks to the remote scheduling service. The zero value is not
// usable; BaseURL is required. RequestTimeout bounds every schedule call
// and defaults to 20 seconds.
type Client struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	Logger         *zap.Logger
}

var _ ports.SchedulerAPI = (*Client)(nil)

type scheduleRequest struct {
	Courses     domain.CourseQuery   `json:"courses"`
	Preferences domain.PreferenceSet `json:"preferences"`
}

type errorPayload struct {
	Detail string `json:"detail"`
}

type coursesResponse struct {
	Courses []struct {
		Course string `json:"course"`
	} `json:"courses"`
}

// RequestSchedules issues one schedule-generation call. The request is
// actively cancelled when the timeout ceiling is hit; the cancel func is
// released on every exit path.
func (c *Client) RequestSchedules(ctx context.Context, courses domain.CourseQuery, prefs domain.PreferenceSet) (domain.ScheduleResult, error) {
	endpoint, err := buildAPIURL(c.BaseURL, schedulesPath)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	body, err := json.Marshal(scheduleRequest{Courses: courses, Preferences: prefs})
	if err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("encode schedule request: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("create schedule request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		translated := translateTransportError(ctx, requestCtx, err)
		c.logger().Debug("schedule request failed", zap.Error(err))
		return domain.ScheduleResult{}, translated
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.ScheduleResult{}, decodeServerError(resp)
	}

	var result domain.ScheduleResult
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return domain.ScheduleResult{}, fmt.Errorf("decode schedule response: %w", err)
	}

	c.logger().Debug("schedules fetched",
		zap.Int("returned", len(result.Schedules)),
		zap.Int("total", result.Total))
	return result, nil
}

// Ping answers true only when the health endpoint responds with a success
// status inside the given timeout.
func (c *Client) Ping(ctx context.Context, timeout time.Duration) bool {
	endpoint, err := buildAPIURL(c.BaseURL, healthPath)
	if err != nil {
		return false
	}

	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	probeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Debug("health probe failed", zap.Error(err))
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

	return resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
}

// ListCourses fetches the full course catalog and returns the course names
// in server order.
func (c *Client) ListCourses(ctx context.Context) ([]string, error) {
	endpoint, err := buildAPIURL(c.BaseURL, coursesPath)
	if err != nil {
		return nil, err
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create courses request: %w", err)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, translateTransportError(ctx, requestCtx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, decodeServerError(resp)
	}

	var payload coursesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode courses response: %w", err)
	}

	names := make([]string, 0, len(payload.Courses))
	for _, entry := range payload.Courses {
		names = append(names, entry.Course)
	}
	return names, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) logger() *zap.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return zap.NewNop()
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	requestTimeout := c.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}
	return context.WithTimeout(ctx, requestTimeout)
}

// translateTransportError maps a failed round trip onto the error taxonomy.
// A caller-initiated cancellation passes through untranslated so superseded
// requests are not mistaken for outages.
func translateTransportError(callerCtx, requestCtx context.Context, err error) error {
	if callerCtx.Err() != nil && errors.Is(callerCtx.Err(), context.Canceled) {
		return context.Canceled
	}
	if errors.Is(requestCtx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout
	}
	return ErrUnreachable
}

// decodeServerError extracts the {"detail": ...} payload when present and
// degrades to a status-code message for malformed or non-JSON bodies.
func decodeServerError(resp *http.Response) error {
	serverErr := &ServerError{Status: resp.StatusCode}

	var payload errorPayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload); err == nil {
		serverErr.Detail = payload.Detail
	}
	return serverErr
}

func buildAPIURL(baseURL string, path string) (string, error) {
	if baseURL == "" {
		return "", errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("api base url host is required")
	}

	endpoint, err := parsed.Parse(path)
	if err != nil {
		return "", fmt.Errorf("resolve api path: %w", err)
	}
	return endpoint.String(), nil
}
