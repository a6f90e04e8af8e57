package bgpview

import (
	"context"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// PrefixRecord is one announced prefix
type PrefixRecord struct {
	Prefix      string `json:"prefix"`
	IP          string `json:"ip"`
	CIDR        int    `json:"cidr"`
	ROAStatus   string `json:"roa_status"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CountryCode string `json:"country_code"`
}

func (PrefixRecord) required() []string {
	return []string{"prefix", "ip", "name", "description", "country_code"}
}

type prefixesData struct {
	IPv4 []keyed[PrefixRecord] `json:"ipv4_prefixes"`
	IPv6 []keyed[PrefixRecord] `json:"ipv6_prefixes"`
}

// Prefixes holds the ipv4 and ipv6 prefixes announced by one asn.
// Only verbose output shows the ipv6 records.
type Prefixes struct {
	payload
	data prefixesData
}

// NewPrefixes fetches asn/{asn}/prefixes
func NewPrefixes(ctx context.Context, f Fetcher, asn string) (*Prefixes, error) {
	p, err := fetch(ctx, f, KindPrefixes, asn)
	if err != nil {
		return nil, err
	}
	pf := &Prefixes{payload: p}
	if err := decodeRequired(p.raw, &pf.data, "ipv4_prefixes", "ipv6_prefixes"); err != nil {
		return nil, decodeError(err, p)
	}
	debug("prefixes", zap.Int("ipv4", len(pf.data.IPv4)), zap.Int("ipv6", len(pf.data.IPv6)))
	return pf, nil
}

// Kind ...
func (p *Prefixes) Kind() Kind { return KindPrefixes }

// IPv4 ...
func (p *Prefixes) IPv4() []PrefixRecord { return values(p.data.IPv4) }

// IPv6 ...
func (p *Prefixes) IPv6() []PrefixRecord { return values(p.data.IPv6) }

// Prefixes returns the ipv4 prefix strings
func (p *Prefixes) Prefixes() []string {
	out := make([]string, 0, len(p.data.IPv4))
	for _, r := range p.data.IPv4 {
		out = append(out, r.Value.Prefix)
	}
	return out
}

// Verbose maps prefix to record, ipv6 records overwrite ipv4 records of the same prefix
func (p *Prefixes) Verbose() any {
	out := make(map[string]json.RawMessage, len(p.data.IPv4)+len(p.data.IPv6))
	for _, r := range p.data.IPv4 {
		out[r.Value.Prefix] = r.Raw
	}
	for _, r := range p.data.IPv6 {
		out[r.Value.Prefix] = r.Raw
	}
	return out
}

// Summary has one line per ipv4 prefix
func (p *Prefixes) Summary() []string {
	out := make([]string, 0, len(p.data.IPv4))
	for _, r := range p.data.IPv4 {
		v := r.Value
		out = append(out, line(v.Prefix, v.IP, v.Name, v.Description, v.CountryCode))
	}
	return out
}

// Terse ...
func (p *Prefixes) Terse() any { return p.Prefixes() }
