// package bgpview ...
package bgpview

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	E "github.com/sagernet/sing/common/exceptions"
	"go.uber.org/zap"
)

// const
const (
	_app      = "bgpview"
	_empty    = ""
	_linefeed = "\n"
	_sep      = ","
)

var logger = zap.NewNop().Named(_app)

// SetLogger replaces the package logger, nil restores the no-op logger
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l.Named(_app)
}

// debug ...
func debug(msg string, fields ...zap.Field) { logger.Debug(msg, fields...) }

// line joins the summary columns of one record, terminated by a linefeed
func line(fields ...any) string {
	s := make([]string, len(fields))
	for i, f := range fields {
		s[i] = fmt.Sprint(f)
	}
	return strings.Join(s, _sep) + _linefeed
}

// unique returns in without duplicates, first seen order
func unique[T comparable](in []T) []T {
	seen := make(map[T]struct{}, len(in))
	out := make([]T, 0, len(in))
	for _, v := range in {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// record types name the payload fields they can not live without
type record interface {
	required() []string
}

// keyed holds a decoded record next to its raw json
type keyed[T record] struct {
	Value T
	Raw   json.RawMessage
}

// UnmarshalJSON ...
func (k *keyed[T]) UnmarshalJSON(b []byte) error {
	if err := decodeRequired(b, &k.Value, k.Value.required()...); err != nil {
		return err
	}
	k.Raw = append(json.RawMessage(nil), b...)
	return nil
}

// decodeRequired decodes data into v after checking that all fields are present
func decodeRequired(data []byte, v any, fields ...string) error {
	if len(fields) > 0 {
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(data, &probe); err != nil {
			return err
		}
		for _, f := range fields {
			if _, ok := probe[f]; !ok {
				return E.New("missing field [", f, "]")
			}
		}
	}
	return json.Unmarshal(data, v)
}

// values projects records onto their decoded values
func values[T record](in []keyed[T]) []T {
	out := make([]T, len(in))
	for i, k := range in {
		out[i] = k.Value
	}
	return out
}
