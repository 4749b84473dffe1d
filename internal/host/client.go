package host

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
)

// DefaultRESTPath is the APIv3 REST endpoint relative to the site URL.
const DefaultRESTPath = "/civicrm/ajax/rest"

// Registrar is the host capability used after scaffolding.
type Registrar interface {
	// Name identifies the site in messages.
	Name() string
	Refresh(ctx context.Context) error
	Install(ctx context.Context, key string) error
}

// Site holds connection settings for a CiviCRM site.
type Site struct {
	URL      string
	APIKey   string
	SiteKey  string
	RESTPath string
}

// APIError is an is_error response from the host API.
type APIError struct {
	Action  string
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Extension.%s: %s", e.Action, e.Message)
}

type apiResponse struct {
	IsError      int    `json:"is_error"`
	ErrorMessage string `json:"error_message"`
}

// Client calls the Extension API over REST.
type Client struct {
	site    Site
	resty   *resty.Client
	logger  *log.Logger
	timeout time.Duration
	retries int
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) Option {
	return func(c *Client) { c.retries = n }
}

// NewFromSite returns a client for site, or false if no site URL is set.
func NewFromSite(site Site, opts ...Option) (*Client, bool) {
	if strings.TrimSpace(site.URL) == "" {
		return nil, false
	}
	return New(site, opts...), true
}

// New returns a client for site.
func New(site Site, opts ...Option) *Client {
	if site.RESTPath == "" {
		site.RESTPath = DefaultRESTPath
	}

	c := &Client{
		site:    site,
		logger:  log.Default(),
		timeout: 30 * time.Second,
		retries: 2,
	}
	for _, opt := range opts {
		opt(c)
	}

	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = c.retries
	retryClient.RetryWaitMin = 500 * time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Second
	retryClient.Logger = nil

	c.resty = resty.NewWithClient(retryClient.StandardClient()).
		SetBaseURL(strings.TrimRight(site.URL, "/")).
		SetTimeout(c.timeout).
		SetHeader("User-Agent", "civix").
		SetLogger(c.logger)

	return c
}

// Name returns the site URL.
func (c *Client) Name() string { return c.site.URL }

// Refresh asks the site to rescan its extension directories.
func (c *Client) Refresh(ctx context.Context) error {
	return c.call(ctx, "refresh", map[string]any{})
}

// Install installs and enables the extension with the given key.
func (c *Client) Install(ctx context.Context, key string) error {
	return c.call(ctx, "install", map[string]any{"keys": key})
}

func (c *Client) call(ctx context.Context, action string, params map[string]any) error {
	encoded, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("encoding %s params: %w", action, err)
	}

	form := url.Values{}
	form.Set("entity", "Extension")
	form.Set("action", action)
	form.Set("json", string(encoded))
	if c.site.APIKey != "" {
		form.Set("api_key", c.site.APIKey)
	}
	if c.site.SiteKey != "" {
		form.Set("key", c.site.SiteKey)
	}

	c.logger.Debug("host request", "site", c.site.URL, "action", action)

	resp, err := c.resty.R().
		SetContext(ctx).
		SetFormDataFromValues(form).
		Post(c.site.RESTPath)
	if err != nil {
		return fmt.Errorf("calling Extension.%s: %w", action, err)
	}
	if resp.IsError() {
		return fmt.Errorf("calling Extension.%s: host returned status %d", action, resp.StatusCode())
	}

	var result apiResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return fmt.Errorf("parsing Extension.%s response: %w", action, err)
	}
	if result.IsError != 0 {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "unknown error"
		}
		return &APIError{Action: action, Message: msg}
	}

	c.logger.Debug("host response", "action", action, "status", resp.StatusCode())
	return nil
}
