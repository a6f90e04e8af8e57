package apifetch

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{"status":"ok","status_message":"Query was successful","data":{"asn":15169,"name":"GOOGLE"}}`

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	config := DefaultConfig()
	config.BaseURL = server.URL + "/"
	client, err := New(config, nil)
	require.NoError(t, err)
	return client, server
}

func TestGet_Plain(t *testing.T) {
	var gotPath, gotUA, gotEncoding string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotUA = r.Header.Get("User-Agent")
		gotEncoding = r.Header.Get("Accept-Encoding")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(okBody))
	})

	data, err := client.Get(context.Background(), "asn", "15169")
	require.NoError(t, err)
	assert.JSONEq(t, `{"asn":15169,"name":"GOOGLE"}`, string(data))
	assert.Equal(t, "/asn/15169", gotPath)
	assert.Equal(t, _DEFAULT_USERAGENT, gotUA)
	assert.Equal(t, "zstd, gzip", gotEncoding)
}

func TestGet_Compressed(t *testing.T) {
	var zbuf bytes.Buffer
	zw, err := zstd.NewWriter(&zbuf)
	require.NoError(t, err)
	_, err = zw.Write([]byte(okBody))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	var gbuf bytes.Buffer
	gw := gzip.NewWriter(&gbuf)
	_, err = gw.Write([]byte(okBody))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	tests := []struct {
		encoding string
		body     []byte
	}{
		{"zstd", zbuf.Bytes()},
		{"gzip", gbuf.Bytes()},
		{"identity", []byte(okBody)},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Encoding", tt.encoding)
				w.Write(tt.body)
			})
			data, err := client.Get(context.Background(), "asn", "15169")
			require.NoError(t, err)
			assert.JSONEq(t, `{"asn":15169,"name":"GOOGLE"}`, string(data))
		})
	}
}

func TestGet_UnsupportedEncoding(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Encoding", "br")
		w.Write([]byte(okBody))
	})
	_, err := client.Get(context.Background(), "asn", "15169")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported content encoding")
}

func TestGet_HTTPStatus(t *testing.T) {
	calls := 0
	client, server := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`not json at all`))
	})

	_, err := client.Get(context.Background(), "asn", "1/prefixes")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHTTPStatus))

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Equal(t, server.URL+"/asn/1/prefixes", httpErr.URL)
	assert.Equal(t, 1, calls, "no retry expected")
}

func TestGet_APIStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"error","status_message":"Malformed input"}`))
	})

	_, err := client.Get(context.Background(), "asn", "foo")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrStatus))
	assert.Contains(t, err.Error(), "Malformed input")
}

func TestGet_MalformedEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":`))
	})
	_, err := client.Get(context.Background(), "asn", "1")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrStatus))
	assert.False(t, errors.Is(err, ErrHTTPStatus))
}

func TestGet_OkWithoutData(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	_, err := client.Get(context.Background(), "asn", "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "envelope without data")
}

func TestGet_Timeout(t *testing.T) {
	done := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	}))
	defer server.Close()
	defer close(done)

	config := DefaultConfig()
	config.BaseURL = server.URL
	config.Timeout = 50 * time.Millisecond
	client, err := New(config, nil)
	require.NoError(t, err)

	_, err = client.Get(context.Background(), "asn", "1")
	require.Error(t, err)
}

func TestNew_Defaults(t *testing.T) {
	client, err := New(Config{}, nil)
	require.NoError(t, err)
	assert.Equal(t, "https://api.bgpview.io", client.BaseURL())
	assert.Equal(t, time.Duration(0), client.client.Timeout)

	_, err = New(Config{Proxy: "://bad"}, nil)
	require.Error(t, err)
}
