// package apifetch performs single bgpview api requests and unwraps the response envelope
package apifetch

// import
import (
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	E "github.com/sagernet/sing/common/exceptions"
	"go.uber.org/zap"
)

// const
const (
	_DEFAULT_BASEURL   = "https://api.bgpview.io" // public api endpoint
	_DEFAULT_USERAGENT = "bgpview-cli"            // user agent used for fetch
	_DEFAULT_TIMEOUT   = 0                        // no client side timeout
	_DEFAULT_PROXY     = ""                       // optional outbound proxy

	_MAX_BODY  = 64 << 20 // decoded response body limit
	_STATUS_OK = "ok"
)

var (
	// ErrHTTPStatus is wrapped by every non-2xx response
	ErrHTTPStatus = errors.New("unexpected http status")
	// ErrStatus is returned when the envelope status is not ok
	ErrStatus = errors.New("api returned error status")
)

// HTTPError ...
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return "[" + e.URL + "] " + strconv.Itoa(e.StatusCode) + " " + http.StatusText(e.StatusCode)
}

// Unwrap ...
func (e *HTTPError) Unwrap() error { return ErrHTTPStatus }

// StatusError ...
type StatusError struct {
	Status  string
	Message string
	URL     string
}

func (e *StatusError) Error() string {
	msg := "[" + e.URL + "] api status [" + e.Status + "]"
	if e.Message != _empty {
		msg += " " + e.Message
	}
	return msg
}

// Unwrap ...
func (e *StatusError) Unwrap() error { return ErrStatus }

// fetch ...
func (c *Client) fetch(ctx context.Context, endpoint string) (*Envelope, error) {
	target := c.config.BaseURL + "/" + endpoint

	// setup request
	request, err := getRequest(ctx, target, c.config.UserAgent)
	if err != nil {
		return nil, err
	}

	// fetch
	t0 := time.Now()
	c.logger.Debug("fetch", zap.String("url", target))
	resp, err := c.client.Do(request)
	if err != nil {
		return nil, E.Cause(err, "fetch [", target, "]")
	}
	defer resp.Body.Close()

	// fail before any body parsing
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, _MAX_BODY))
		c.logger.Debug("fetch failed", zap.String("url", target), zap.Int("status", resp.StatusCode))
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: target}
	}

	// decode transfer compression
	encoding := resp.Header.Get("Content-Encoding")
	body, err := decompress(encoding, resp.Body)
	if err != nil {
		return nil, E.Cause(err, "fetch [", target, "]")
	}
	defer body.Close()
	data, err := io.ReadAll(io.LimitReader(body, _MAX_BODY))
	if err != nil {
		return nil, E.Cause(err, "read [", target, "]")
	}
	c.logger.Debug("fetch done",
		zap.String("url", target),
		zap.Int("status", resp.StatusCode),
		zap.String("encoding", encoding),
		zap.Int("bytes", len(data)),
		zap.Duration("took", time.Since(t0)))

	// unwrap envelope
	env, err := decodeEnvelope(data)
	if err != nil {
		return nil, E.Cause(err, "decode [", target, "]")
	}
	if env.Status != _STATUS_OK {
		return nil, &StatusError{Status: env.Status, Message: env.StatusMessage, URL: target}
	}
	return env, nil
}

// decodeEnvelope ...
func decodeEnvelope(data []byte) (*Envelope, error) {
	env := &Envelope{}
	if err := json.Unmarshal(data, env); err != nil {
		return nil, err
	}
	if env.Status == _STATUS_OK && len(env.Data) == 0 {
		return nil, E.New("envelope without data")
	}
	return env, nil
}
