package bgpview

import (
	"context"
	"strconv"

	"github.com/goccy/go-json"
	E "github.com/sagernet/sing/common/exceptions"
	"go.uber.org/zap"
)

// Neighbor is one asn on the other side of a bgp relation
type Neighbor struct {
	ASN         int64  `json:"asn"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CountryCode string `json:"country_code"`
}

func (Neighbor) required() []string {
	return []string{"asn", "name", "description", "country_code"}
}

// Relations holds the peers, upstreams or downstreams of one asn.
// ipv6 relations are decoded but not rendered.
type Relations struct {
	payload
	kind Kind
	ipv4 []keyed[Neighbor]
	ipv6 []keyed[Neighbor]
}

// NewPeers fetches asn/{asn}/peers
func NewPeers(ctx context.Context, f Fetcher, asn string) (*Relations, error) {
	return newRelations(ctx, f, KindPeers, asn)
}

// NewUpstreams fetches asn/{asn}/upstreams
func NewUpstreams(ctx context.Context, f Fetcher, asn string) (*Relations, error) {
	return newRelations(ctx, f, KindUpstreams, asn)
}

// NewDownstreams fetches asn/{asn}/downstreams
func NewDownstreams(ctx context.Context, f Fetcher, asn string) (*Relations, error) {
	return newRelations(ctx, f, KindDownstreams, asn)
}

// newRelations ...
func newRelations(ctx context.Context, f Fetcher, kind Kind, asn string) (*Relations, error) {
	i, ok := kind.info()
	if !ok || i.field == _empty {
		return nil, E.Cause(ErrUnknownKind, "[", string(kind), "] is not a relation")
	}
	p, err := fetch(ctx, f, kind, asn)
	if err != nil {
		return nil, err
	}
	var fields map[string]json.RawMessage
	if err := decodeRequired(p.raw, &fields, i.field); err != nil {
		return nil, decodeError(err, p)
	}
	r := &Relations{payload: p, kind: kind}
	if err := json.Unmarshal(fields[i.field], &r.ipv4); err != nil {
		return nil, decodeError(E.Cause(err, i.field), p)
	}
	v6 := "ipv6_" + string(kind)
	if raw, ok := fields[v6]; ok {
		if err := json.Unmarshal(raw, &r.ipv6); err != nil {
			return nil, decodeError(E.Cause(err, v6), p)
		}
	}
	debug(string(kind), zap.Int("ipv4", len(r.ipv4)), zap.Int("ipv6", len(r.ipv6)))
	return r, nil
}

// Kind ...
func (r *Relations) Kind() Kind { return r.kind }

// IPv4 ...
func (r *Relations) IPv4() []Neighbor { return values(r.ipv4) }

// IPv6 ...
func (r *Relations) IPv6() []Neighbor { return values(r.ipv6) }

// ASNs returns the ipv4 neighbor asns
func (r *Relations) ASNs() []int64 {
	out := make([]int64, 0, len(r.ipv4))
	for _, n := range r.ipv4 {
		out = append(out, n.Value.ASN)
	}
	return out
}

// Verbose maps asn to record
func (r *Relations) Verbose() any {
	out := make(map[string]json.RawMessage, len(r.ipv4))
	for _, n := range r.ipv4 {
		out[strconv.FormatInt(n.Value.ASN, 10)] = n.Raw
	}
	return out
}

// Summary ...
func (r *Relations) Summary() []string {
	out := make([]string, 0, len(r.ipv4))
	for _, n := range r.ipv4 {
		v := n.Value
		out = append(out, line(v.ASN, v.Name, v.Description, v.CountryCode))
	}
	return out
}

// Terse ...
func (r *Relations) Terse() any { return r.ASNs() }
