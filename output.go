package bgpview

import (
	"bytes"
	"io"
	"strings"

	"github.com/goccy/go-json"
	E "github.com/sagernet/sing/common/exceptions"
)

// Mode selects one of the three renderings
type Mode int

// const mode
const (
	ModeSummary Mode = iota
	ModeVerbose
	ModeTerse
)

const _indent = "    "

func (m Mode) String() string {
	switch m {
	case ModeVerbose:
		return "verbose"
	case ModeTerse:
		return "terse"
	}
	return "summary"
}

// SelectMode resolves the output flags, verbose takes priority over terse
func SelectMode(verbose, terse bool) Mode {
	switch {
	case verbose:
		return ModeVerbose
	case terse:
		return ModeTerse
	}
	return ModeSummary
}

// Render writes the mode rendering of p to w. verbose and terse are written as
// indented json, summary lines as they are.
func Render(w io.Writer, p Projection, mode Mode) error {
	var v any
	switch mode {
	case ModeVerbose:
		v = p.Verbose()
	case ModeTerse:
		v = p.Terse()
	default:
		_, err := io.WriteString(w, strings.Join(p.Summary(), _empty))
		return err
	}
	b, err := indentJSON(v)
	if err != nil {
		return E.Cause(err, "render ", mode.String())
	}
	_, err = w.Write(append(b, _linefeed...))
	return err
}

// indentJSON encodes v with four space indent, leaving & < > unescaped
func indentJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent(_empty, _indent)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte(_linefeed)), nil
}
