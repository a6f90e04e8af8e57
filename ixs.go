package bgpview

import (
	"context"
	"strconv"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Exchange is one internet exchange membership
type Exchange struct {
	IXID        int64  `json:"ix_id"`
	Name        string `json:"name"`
	NameFull    string `json:"name_full"`
	CountryCode string `json:"country_code"`
	City        string `json:"city"`
	IPv4Address string `json:"ipv4_address"`
	IPv6Address string `json:"ipv6_address"`
}

func (Exchange) required() []string {
	return []string{"ix_id", "name", "name_full", "ipv4_address", "country_code"}
}

// IX holds the exchange memberships of one asn. The payload is a bare list.
type IX struct {
	payload
	exchanges []keyed[Exchange]
}

// NewIX fetches asn/{asn}/ixs
func NewIX(ctx context.Context, f Fetcher, asn string) (*IX, error) {
	p, err := fetch(ctx, f, KindIX, asn)
	if err != nil {
		return nil, err
	}
	ix := &IX{payload: p}
	if err := json.Unmarshal(p.raw, &ix.exchanges); err != nil {
		return nil, decodeError(err, p)
	}
	debug("ixs", zap.Int("exchanges", len(ix.exchanges)))
	return ix, nil
}

// Kind ...
func (x *IX) Kind() Kind { return KindIX }

// Exchanges ...
func (x *IX) Exchanges() []Exchange { return values(x.exchanges) }

// Names returns the full exchange names
func (x *IX) Names() []string {
	out := make([]string, 0, len(x.exchanges))
	for _, e := range x.exchanges {
		out = append(out, e.Value.NameFull)
	}
	return out
}

// Verbose maps exchange id to record
func (x *IX) Verbose() any {
	out := make(map[string]json.RawMessage, len(x.exchanges))
	for _, e := range x.exchanges {
		out[strconv.FormatInt(e.Value.IXID, 10)] = e.Raw
	}
	return out
}

// Summary ...
func (x *IX) Summary() []string {
	out := make([]string, 0, len(x.exchanges))
	for _, e := range x.exchanges {
		v := e.Value
		out = append(out, line(v.Name, v.NameFull, v.IPv4Address, v.CountryCode))
	}
	return out
}

// Terse lists full names, not ids
func (x *IX) Terse() any { return x.Names() }
