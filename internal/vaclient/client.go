// Package vaclient provides a client for the video-analytics server's
// create-analytics endpoints.
//
// The server authenticates with a bearer token obtained out of band (for
// example from the web UI session). The client forwards it unchanged and
// never logs it.
package vaclient

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"

	"github.com/fpang/va-creator/internal/analytics"
	"github.com/fpang/va-creator/internal/grammar"
)

const (
	// DefaultBaseURL is where the analytics server listens on an appliance.
	DefaultBaseURL = "http://localhost:2001"

	// DefaultTimeout is the per-request budget, connect through body read.
	DefaultTimeout = 30 * time.Second
)

// Client creates analytics configurations on one server.
type Client struct {
	http    *resty.Client
	baseURL string
}

// NewClient creates a client for baseURL that authenticates with token.
// A non-positive timeout selects DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	rest := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		// Set directly so an empty token still goes out as "Bearer ".
		SetHeader("Authorization", "Bearer "+token).
		SetHeader("Content-Type", "application/json").
		SetLogger(restyLogger{}).
		// The server is reached over plain HTTP on the appliance itself.
		SetDisableWarn(true)

	return &Client{http: rest, baseURL: baseURL}
}

// BaseURL returns the server address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// CreateAnalytics posts the fixed configuration of type t for streamID.
// A non-2xx reply is returned as *StatusError; anything that prevented a
// reply (refused connection, timeout, cancellation) is returned wrapped.
func (c *Client) CreateAnalytics(ctx context.Context, t grammar.AnalyticsType, streamID int) error {
	path, err := analytics.Endpoint(t)
	if err != nil {
		return err
	}
	payload, err := analytics.NewPayload(t, streamID)
	if err != nil {
		return err
	}

	log.Debug().
		Str("method", "POST").
		Str("path", path).
		Int("streamId", streamID).
		Str("type", t.String()).
		Msg("Analytics API request")

	startTime := time.Now()
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		Post(path)
	duration := time.Since(startTime)
	if err != nil {
		log.Debug().Int("statusCode", 0).Dur("duration", duration).Err(err).Msg("Analytics API response")
		return fmt.Errorf("request failed: %w", err)
	}

	log.Debug().Int("statusCode", resp.StatusCode()).Dur("duration", duration).Msg("Analytics API response")

	if !resp.IsSuccess() {
		return &StatusError{StatusCode: resp.StatusCode(), Body: string(resp.Body())}
	}
	return nil
}
