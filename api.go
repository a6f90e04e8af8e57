// package bgpview fetches asn and ip routing data from the bgpview api and renders it
// as verbose json, comma separated summary lines or terse identifier lists
package bgpview

import (
	"context"
	"errors"

	E "github.com/sagernet/sing/common/exceptions"
)

// ErrUnknownKind ...
var ErrUnknownKind = errors.New("unknown query kind")

// Kinds returns all queryable kinds in command order
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i, k := range kinds {
		out[i] = k.kind
	}
	return out
}

// ParseKind ...
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := k.info(); !ok {
		return _empty, E.Cause(ErrUnknownKind, "[", s, "]")
	}
	return k, nil
}

// Help returns the one line description of the kind
func (k Kind) Help() string {
	i, _ := k.info()
	return i.help
}

// QueryHelp describes what the query of the kind has to be
func (k Kind) QueryHelp() string {
	i, _ := k.info()
	return i.query
}

// Lookup fetches query for kind and returns its projection
func Lookup(ctx context.Context, f Fetcher, kind Kind, query string) (Projection, error) {
	switch kind {
	case KindASN:
		return project(NewASN(ctx, f, query))
	case KindPrefixes:
		return project(NewPrefixes(ctx, f, query))
	case KindPeers:
		return project(NewPeers(ctx, f, query))
	case KindUpstreams:
		return project(NewUpstreams(ctx, f, query))
	case KindDownstreams:
		return project(NewDownstreams(ctx, f, query))
	case KindIX:
		return project(NewIX(ctx, f, query))
	case KindIP:
		return project(NewIP(ctx, f, query))
	}
	return nil, E.Cause(ErrUnknownKind, "[", string(kind), "]")
}

// project drops typed nil projections of failed lookups
func project(p Projection, err error) (Projection, error) {
	if err != nil {
		return nil, err
	}
	return p, nil
}
