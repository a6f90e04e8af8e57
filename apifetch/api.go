// package apifetch performs single bgpview api requests and unwraps the response envelope
package apifetch

// import
import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Config ...
type Config struct {
	BaseURL   string        // api base url, without trailing slash
	UserAgent string        // user agent send with every request
	Timeout   time.Duration // per request timeout, zero waits forever
	Proxy     string        // optional outbound proxy url, empty falls back to HTTPS_PROXY
}

// Envelope is the wrapper every api response is delivered in
type Envelope struct {
	Status        string          `json:"status"`
	StatusMessage string          `json:"status_message"`
	Data          json.RawMessage `json:"data"`
}

// Client ...
type Client struct {
	config Config
	client *http.Client
	logger *zap.Logger
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		BaseURL:   _DEFAULT_BASEURL,
		UserAgent: _DEFAULT_USERAGENT,
		Timeout:   _DEFAULT_TIMEOUT,
		Proxy:     _DEFAULT_PROXY,
	}
}

// New returns a client for config, a nil logger disables logging
func New(config Config, logger *zap.Logger) (*Client, error) {
	if config.BaseURL == _empty {
		config.BaseURL = _DEFAULT_BASEURL
	}
	config.BaseURL = strings.TrimRight(config.BaseURL, "/")
	if config.UserAgent == _empty {
		config.UserAgent = _DEFAULT_USERAGENT
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	transport, err := getTransport(getTlsConf(), config.Proxy)
	if err != nil {
		return nil, err
	}
	client := getClient(transport)
	client.Timeout = config.Timeout
	return &Client{
		config: config,
		client: client,
		logger: logger.Named("apifetch"),
	}, nil
}

// BaseURL ...
func (c *Client) BaseURL() string { return c.config.BaseURL }

// Get fetches {base}/{resource}/{path} and returns the envelope data of an ok response
func (c *Client) Get(ctx context.Context, resource, path string) ([]byte, error) {
	env, err := c.fetch(ctx, resource+"/"+path)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}
