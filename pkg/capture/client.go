package capture

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"

// DefaultRetryCount is how many times a failed fetch is retried
const DefaultRetryCount = 3

// Options configures a Client. Cookie and Token carry an already
// authenticated portal session; the client never logs in by itself.
// RetryCount 0 disables retries and a negative count means DefaultRetryCount.
type Options struct {
	Cookie     string
	Token      string
	RetryCount int
	RetryWait  time.Duration
	Timeout    time.Duration
	Logger     *log.Logger
}

// Client fetches raw timetable captures over HTTP
type Client struct {
	http   *resty.Client
	logger *log.Logger
}

// NewClient creates a capture client. Zero durations fall back to defaults.
func NewClient(opts Options) *Client {
	if opts.RetryCount < 0 {
		opts.RetryCount = DefaultRetryCount
	}
	if opts.RetryWait == 0 {
		opts.RetryWait = time.Second
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	client := resty.New().
		SetTimeout(opts.Timeout).
		SetRetryCount(opts.RetryCount).
		SetRetryWaitTime(opts.RetryWait).
		SetRetryMaxWaitTime(4*opts.RetryWait).
		SetHeader("User-Agent", userAgent).
		SetHeader("Accept", "application/json")

	if opts.Cookie != "" {
		client.SetHeader("Cookie", opts.Cookie)
	}
	if opts.Token != "" {
		client.SetAuthToken(opts.Token)
	}

	// Retry transport errors and gateway hiccups
	client.AddRetryCondition(func(res *resty.Response, err error) bool {
		if err != nil {
			return true
		}
		switch res.StatusCode() {
		case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
			return true
		}
		return false
	})

	logger := opts.Logger
	client.AddRetryHook(func(res *resty.Response, err error) {
		if err != nil {
			logger.Warn("portal request failed, retrying", "err", err)
			return
		}
		logger.Warn("portal busy, retrying", "status", res.StatusCode(), "attempt", res.Request.Attempt)
	})

	return &Client{http: client, logger: logger}
}

// Fetch downloads the raw timetable JSON at url.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	res, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}

	if res.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d when fetching %s", res.StatusCode(), url)
	}

	c.logger.Debug("fetched capture", "url", url, "bytes", len(res.Body()), "attempts", res.Request.Attempt)
	return res.Body(), nil
}
