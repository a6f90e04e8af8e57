// package apifetch ...
package apifetch

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	E "github.com/sagernet/sing/common/exceptions"
)

// const
const (
	_empty           = ""
	_ACCEPT_ENCODING = "zstd, gzip"
)

// decompress wraps body into a reader for the announced content encoding
func decompress(encoding string, body io.Reader) (io.ReadCloser, error) {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case _empty, "identity":
		return io.NopCloser(body), nil
	case "zstd":
		r, err := zstd.NewReader(body)
		if err != nil {
			return nil, E.Cause(err, "unable to create new de-compress reader [zstd]")
		}
		return r.IOReadCloser(), nil
	case "gzip", "x-gzip":
		r, err := gzip.NewReader(body)
		if err != nil {
			return nil, E.Cause(err, "unable to create new de-compress reader [gzip]")
		}
		return r, nil
	}
	return nil, E.New("unsupported content encoding [", encoding, "]")
}
