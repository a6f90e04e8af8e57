package bgpview

import (
	"context"
	"errors"
	"testing"
)

const asnPayload = `{
	"asn": 15169,
	"name": "GOOGLE",
	"description_short": "Google LLC",
	"description_full": ["Google LLC"],
	"country_code": "US",
	"website": "https://about.google/",
	"rir_allocation": {"rir_name": "ARIN", "date_allocated": "2000-03-30 00:00:00"}
}`

const prefixesPayload = `{
	"ipv4_prefixes": [
		{"prefix": "8.8.4.0/24", "ip": "8.8.4.0", "cidr": 24, "roa_status": "Valid", "name": "GOOGLE", "description": "Google LLC", "country_code": "US", "parent": {"prefix": "8.0.0.0/9"}},
		{"prefix": "8.8.8.0/24", "ip": "8.8.8.0", "cidr": 24, "roa_status": "Valid", "name": "GOOGLE", "description": "Google LLC", "country_code": null}
	],
	"ipv6_prefixes": [
		{"prefix": "2001:4860::/32", "ip": "2001:4860::", "cidr": 32, "roa_status": "Valid", "name": "GOOGLE-IPV6", "description": "Google LLC", "country_code": "US"},
		{"prefix": "8.8.8.0/24", "ip": "8.8.8.0", "cidr": 24, "roa_status": "Valid", "name": "DUPLICATE", "description": "written last", "country_code": "US"}
	]
}`

const peersPayload = `{
	"ipv4_peers": [
		{"asn": 174, "name": "COGENT-174", "description": "Cogent Communications", "country_code": "US"},
		{"asn": 3356, "name": "LEVEL3", "description": "Level 3 Parent, LLC", "country_code": "US"},
		{"asn": 6939, "name": "HURRICANE", "description": "Hurricane Electric LLC", "country_code": "US"}
	],
	"ipv6_peers": [
		{"asn": 6939, "name": "HURRICANE", "description": "Hurricane Electric LLC", "country_code": "US"},
		{"asn": 1299, "name": "TWELVE99", "description": "Arelion Sweden AB", "country_code": "SE"}
	]
}`

const upstreamsPayload = `{
	"ipv4_upstreams": [
		{"asn": 1299, "name": "TWELVE99", "description": "Arelion Sweden AB", "country_code": "SE"}
	],
	"ipv6_upstreams": [],
	"ipv4_graph": "https://api.bgpview.io/assets/graphs/AS15169_IPv4.svg"
}`

const downstreamsPayload = `{
	"ipv4_downstreams": [],
	"ipv6_downstreams": [
		{"asn": 36040, "name": "YOUTUBE", "description": "Google LLC", "country_code": "US"}
	]
}`

const ixsPayload = `[
	{"ix_id": 1, "name": "DE-CIX Frankfurt", "name_full": "DE-CIX Frankfurt Internet Exchange", "country_code": "DE", "city": "Frankfurt", "ipv4_address": "80.81.192.157", "ipv6_address": "2001:7f8::d05:0:1", "speed": 100000},
	{"ix_id": 18, "name": "AMS-IX", "name_full": "Amsterdam Internet Exchange", "country_code": "NL", "city": "Amsterdam", "ipv4_address": "80.249.208.247", "ipv6_address": null, "speed": 400000}
]`

const ipPayload = `{
	"prefixes": [
		{"prefix": "8.8.8.0/24", "ip": "8.8.8.0", "cidr": 24, "asn": {"asn": 15169, "name": "GOOGLE", "description": "Google LLC", "country_code": "US"}, "name": "LVLT-GOGL-8-8-8", "description": "Google LLC", "country_code": "US"},
		{"prefix": "8.0.0.0/9", "ip": "8.0.0.0", "cidr": 9, "asn": {"asn": 3356, "name": "LEVEL3", "description": "Level 3 Parent, LLC", "country_code": "US"}, "name": "LVLT-ORG-8-8", "description": "Level 3 Parent, LLC", "country_code": "US"},
		{"prefix": "8.8.0.0/16", "ip": "8.8.0.0", "cidr": 16, "asn": {"asn": 15169, "name": "GOOGLE", "description": "Google LLC", "country_code": "US"}, "name": "GOOGLE", "description": "Google LLC", "country_code": "US"}
	],
	"rir_allocation": {"rir_name": "ARIN", "prefix": "8.0.0.0/9"},
	"maxmind": {"country_code": "US", "city": null}
}`

// fakeFetcher serves canned payloads by endpoint and records every call
type fakeFetcher struct {
	payloads map[string]string
	calls    []string
	err      error
}

func newFakeFetcher(payloads map[string]string) *fakeFetcher {
	return &fakeFetcher{payloads: payloads}
}

func (f *fakeFetcher) Get(_ context.Context, resource, path string) ([]byte, error) {
	endpoint := resource + "/" + path
	f.calls = append(f.calls, endpoint)
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.payloads[endpoint]
	if !ok {
		return nil, errors.New("no payload for " + endpoint)
	}
	return []byte(p), nil
}

func allPayloads() map[string]string {
	return map[string]string{
		"asn/15169":             asnPayload,
		"asn/15169/prefixes":    prefixesPayload,
		"asn/15169/peers":       peersPayload,
		"asn/15169/upstreams":   upstreamsPayload,
		"asn/15169/downstreams": downstreamsPayload,
		"asn/3356/ixs":          ixsPayload,
		"ip/8.8.8.8":            ipPayload,
	}
}

func queryFor(t *testing.T, kind Kind) string {
	t.Helper()
	switch kind {
	case KindIX:
		return "3356"
	case KindIP:
		return "8.8.8.8"
	}
	return "AS15169"
}
