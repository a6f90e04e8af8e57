package bgpview

import (
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// IPOrigin is the asn announcing a prefix covering the queried address
type IPOrigin struct {
	ASN         int64  `json:"asn"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CountryCode string `json:"country_code"`
}

// UnmarshalJSON ...
func (o *IPOrigin) UnmarshalJSON(b []byte) error {
	type plain IPOrigin
	return decodeRequired(b, (*plain)(o), "asn", "name", "description")
}

// IPPrefix is one prefix covering the queried address
type IPPrefix struct {
	Prefix      string   `json:"prefix"`
	IP          string   `json:"ip"`
	CIDR        int      `json:"cidr"`
	ASN         IPOrigin `json:"asn"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	CountryCode string   `json:"country_code"`
}

func (IPPrefix) required() []string {
	return []string{"prefix", "asn", "name", "description", "country_code"}
}

type ipData struct {
	Prefixes []keyed[IPPrefix] `json:"prefixes"`
}

// IP holds every prefix covering one address. One address can be covered by
// several prefixes and asns, so the scalar accessors return de-duplicated lists.
type IP struct {
	payload
	data ipData
}

// NewIP fetches ip/{ip}
func NewIP(ctx context.Context, f Fetcher, ip string) (*IP, error) {
	p, err := fetch(ctx, f, KindIP, ip)
	if err != nil {
		return nil, err
	}
	x := &IP{payload: p}
	if err := decodeRequired(p.raw, &x.data, "prefixes"); err != nil {
		return nil, decodeError(err, p)
	}
	debug("ip", zap.Int("prefixes", len(x.data.Prefixes)))
	return x, nil
}

// Kind ...
func (x *IP) Kind() Kind { return KindIP }

// Records ...
func (x *IP) Records() []IPPrefix { return values(x.data.Prefixes) }

// ASNs ...
func (x *IP) ASNs() []int64 {
	return collect(x, func(p IPPrefix) int64 { return p.ASN.ASN })
}

// CountryCodes ...
func (x *IP) CountryCodes() []string {
	return collect(x, func(p IPPrefix) string { return p.CountryCode })
}

// CC is short for CountryCodes
func (x *IP) CC() []string { return x.CountryCodes() }

// Names returns the names of the origin asns
func (x *IP) Names() []string {
	return collect(x, func(p IPPrefix) string { return p.ASN.Name })
}

// Descriptions returns the descriptions of the origin asns
func (x *IP) Descriptions() []string {
	return collect(x, func(p IPPrefix) string { return p.ASN.Description })
}

// Prefixes ...
func (x *IP) Prefixes() []string {
	out := make([]string, 0, len(x.data.Prefixes))
	for _, p := range x.data.Prefixes {
		out = append(out, p.Value.Prefix)
	}
	return out
}

// Verbose maps prefix to record
func (x *IP) Verbose() any {
	out := make(map[string]json.RawMessage, len(x.data.Prefixes))
	for _, p := range x.data.Prefixes {
		out[p.Value.Prefix] = p.Raw
	}
	return out
}

// Summary ...
func (x *IP) Summary() []string {
	out := make([]string, 0, len(x.data.Prefixes))
	for _, p := range x.data.Prefixes {
		v := p.Value
		out = append(out, line(v.Prefix, v.ASN.ASN, v.Name, v.Description, v.CountryCode))
	}
	return out
}

// Terse ...
func (x *IP) Terse() any { return x.Prefixes() }

// collect maps every prefix through fn and drops duplicates
func collect[T comparable](x *IP, fn func(IPPrefix) T) []T {
	out := make([]T, 0, len(x.data.Prefixes))
	for _, p := range x.data.Prefixes {
		out = append(out, fn(p.Value))
	}
	return unique(out)
}
