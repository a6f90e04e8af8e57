package bgpview

import (
	"context"
	"strings"

	"github.com/goccy/go-json"
	E "github.com/sagernet/sing/common/exceptions"
	"go.uber.org/zap"
)

// const kind
const (
	KindASN         Kind = "asn"
	KindPrefixes    Kind = "prefixes"
	KindPeers       Kind = "peers"
	KindUpstreams   Kind = "upstreams"
	KindDownstreams Kind = "downstreams"
	KindIX          Kind = "ix"
	KindIP          Kind = "ip"
)

// const api resources
const (
	_resASN = "asn"
	_resIP  = "ip"
)

// _asnPrefix holds the characters stripped from the front of asn queries
const _asnPrefix = "AaSsNn"

// Kind names one queryable resource
type Kind string

// Projection is one fetched payload with its three renderings
type Projection interface {
	// Kind ...
	Kind() Kind
	// Verbose returns the full payload keyed by the natural primary key
	Verbose() any
	// Summary returns comma separated lines, each terminated by a linefeed
	Summary() []string
	// Terse returns the minimal identifying values
	Terse() any
}

// Fetcher performs one api request and returns the envelope data
type Fetcher interface {
	Get(ctx context.Context, resource, path string) ([]byte, error)
}

// Endpoint ...
type Endpoint struct {
	Resource string // api resource, asn or ip
	Path     string // path below the resource
}

func (e Endpoint) String() string { return e.Resource + "/" + e.Path }

// kindInfo ...
type kindInfo struct {
	kind     Kind
	resource string // api resource
	suffix   string // path suffix after the query
	field    string // payload field carrying the records
	asnQuery bool   // query is an asn
	help     string
	query    string
}

var kinds = []kindInfo{
	{kind: KindASN, resource: _resASN, asnQuery: true, help: "Query basic ASN data", query: "ASN number"},
	{kind: KindPrefixes, resource: _resASN, suffix: "prefixes", asnQuery: true, help: "Query prefixes for an ASN", query: "ASN number"},
	{kind: KindPeers, resource: _resASN, suffix: "peers", field: "ipv4_peers", asnQuery: true, help: "Query peers for an ASN", query: "ASN number"},
	{kind: KindUpstreams, resource: _resASN, suffix: "upstreams", field: "ipv4_upstreams", asnQuery: true, help: "Query upstreams for an ASN", query: "ASN number"},
	{kind: KindDownstreams, resource: _resASN, suffix: "downstreams", field: "ipv4_downstreams", asnQuery: true, help: "Query downstreams for an ASN", query: "ASN number"},
	{kind: KindIX, resource: _resASN, suffix: "ixs", asnQuery: true, help: "Query IXs for an ASN", query: "ASN number"},
	{kind: KindIP, resource: _resIP, help: "Query ASN/Prefixes for an IP address", query: "IP address"},
}

// info ...
func (k Kind) info() (kindInfo, bool) {
	for _, i := range kinds {
		if i.kind == k {
			return i, true
		}
	}
	return kindInfo{}, false
}

// NormalizeASN strips a leading AS / ASN marker in any case, eg AS1234 -> 1234
func NormalizeASN(query string) string {
	return strings.TrimLeft(query, _asnPrefix)
}

// EndpointFor derives the api endpoint for query
func EndpointFor(kind Kind, query string) (Endpoint, error) {
	i, ok := kind.info()
	if !ok {
		return Endpoint{}, E.Cause(ErrUnknownKind, "[", string(kind), "]")
	}
	if i.asnQuery {
		query = NormalizeASN(query)
	}
	path := query
	if i.suffix != _empty {
		path += "/" + i.suffix
	}
	return Endpoint{Resource: i.resource, Path: path}, nil
}

// payload is the part every projection shares
type payload struct {
	endpoint Endpoint
	raw      json.RawMessage
}

// Endpoint ...
func (p *payload) Endpoint() Endpoint { return p.endpoint }

// JSON returns the raw payload
func (p *payload) JSON() []byte { return p.raw }

// fetch performs the single transport call of a projection
func fetch(ctx context.Context, f Fetcher, kind Kind, query string) (payload, error) {
	endpoint, err := EndpointFor(kind, query)
	if err != nil {
		return payload{}, err
	}
	data, err := f.Get(ctx, endpoint.Resource, endpoint.Path)
	if err != nil {
		return payload{}, E.Cause(err, string(kind), " lookup")
	}
	debug("fetched", zap.String("kind", string(kind)), zap.Stringer("endpoint", endpoint), zap.Int("bytes", len(data)))
	return payload{endpoint: endpoint, raw: data}, nil
}

// decodeError ...
func decodeError(err error, p payload) error {
	return E.Cause(err, "decode [", p.endpoint.String(), "]")
}
