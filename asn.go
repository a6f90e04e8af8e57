package bgpview

import (
	"context"
	"strconv"
	"strings"
)

// ASNRecord ...
type ASNRecord struct {
	ASN              int64  `json:"asn"`
	Name             string `json:"name"`
	DescriptionShort string `json:"description_short"`
	CountryCode      string `json:"country_code"`
	Website          string `json:"website"`
}

func (ASNRecord) required() []string {
	return []string{"asn", "name", "description_short", "country_code"}
}

// ASN is the base record of one autonomous system
type ASN struct {
	payload
	fetcher Fetcher
	record  ASNRecord
}

// NewASN fetches asn/{asn}
func NewASN(ctx context.Context, f Fetcher, asn string) (*ASN, error) {
	p, err := fetch(ctx, f, KindASN, asn)
	if err != nil {
		return nil, err
	}
	a := &ASN{payload: p, fetcher: f}
	if err := decodeRequired(p.raw, &a.record, a.record.required()...); err != nil {
		return nil, decodeError(err, p)
	}
	return a, nil
}

// Kind ...
func (a *ASN) Kind() Kind { return KindASN }

// Record ...
func (a *ASN) Record() ASNRecord { return a.record }

// ASN ...
func (a *ASN) ASN() int64 { return a.record.ASN }

// Name ...
func (a *ASN) Name() string { return a.record.Name }

// Description returns the short description
func (a *ASN) Description() string { return a.record.DescriptionShort }

// CountryCode ...
func (a *ASN) CountryCode() string { return a.record.CountryCode }

// CC is short for CountryCode
func (a *ASN) CC() string { return a.CountryCode() }

// Prefixes looks up the ipv4 prefixes announced by the asn. Every call is a new request.
func (a *ASN) Prefixes(ctx context.Context) ([]string, error) {
	p, err := NewPrefixes(ctx, a.fetcher, strconv.FormatInt(a.record.ASN, 10))
	if err != nil {
		return nil, err
	}
	return p.Prefixes(), nil
}

// Verbose returns the complete payload
func (a *ASN) Verbose() any { return a.raw }

// Summary ...
func (a *ASN) Summary() []string {
	return []string{line(a.ASN(), a.Name(), a.Description(), a.CC())}
}

// Terse is the summary line without linefeed
func (a *ASN) Terse() any {
	return strings.TrimSuffix(a.Summary()[0], _linefeed)
}
