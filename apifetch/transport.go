// package apifetch ...
package apifetch

// import
import (
	"context"
	"crypto/tls"
	"net/http"
	"net/url"

	E "github.com/sagernet/sing/common/exceptions"
)

// getTlsConf ...
func getTlsConf() *tls.Config {
	return &tls.Config{
		InsecureSkipVerify:     false,
		SessionTicketsDisabled: true,
		Renegotiation:          tls.RenegotiateNever,
		MinVersion:             tls.VersionTLS12,
		CipherSuites: []uint16{
			tls.TLS_ECDHE_ECDSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_RSA_WITH_CHACHA20_POLY1305_SHA256,
			tls.TLS_ECDHE_ECDSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_RSA_WITH_AES_256_GCM_SHA384,
			tls.TLS_ECDHE_ECDSA_WITH_AES_128_GCM_SHA256,
			tls.TLS_ECDHE_RSA_WITH_AES_128_GCM_SHA256,
		},
	}
}

// getTransport ...
func getTransport(tlsconf *tls.Config, proxy string) (*http.Transport, error) {
	proxyFunc := http.ProxyFromEnvironment
	if proxy != _empty {
		u, err := url.Parse(proxy)
		if err != nil {
			return nil, E.Cause(err, "invalid proxy url [", proxy, "]")
		}
		proxyFunc = http.ProxyURL(u)
	}
	return &http.Transport{
		Proxy:              proxyFunc,
		TLSClientConfig:    tlsconf,
		DisableCompression: true, // Accept-Encoding is negotiated by getRequest
		ForceAttemptHTTP2:  true,
	}, nil
}

// getClient ...
func getClient(transport *http.Transport) *http.Client {
	return &http.Client{
		CheckRedirect: nil,
		Jar:           nil,
		Transport:     transport,
	}
}

// getRequest ...
func getRequest(ctx context.Context, targetURL, userAgent string) (*http.Request, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, E.Cause(err, "invalid api url syntax [", targetURL, "]")
	}
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, E.Cause(err, "setup request [", targetURL, "]")
	}
	request.Header.Set("User-Agent", userAgent)
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", _ACCEPT_ENCODING)
	return request, nil
}
