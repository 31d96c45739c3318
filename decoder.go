package main

import (
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrShortEscape marks a \x escape with a single hex digit.
	ErrShortEscape = errors.New("escape has a single hex digit")
	// ErrMalformedStatement marks a statement that does not match the template.
	ErrMalformedStatement = errors.New("malformed statement")
)

// Decoder reads generated statements back into art lines.
type Decoder struct {
	Template Template
	// Lenient accepts one-digit escapes written by the legacy style.
	Lenient bool
}

// NewDecoder returns a strict decoder for statements built from tmpl.
func NewDecoder(tmpl Template) *Decoder {
	return &Decoder{Template: tmpl}
}

// DecodeStatements finds every statement in text and returns the art line
// each one prints. Text outside statements is skipped.
func (d *Decoder) DecodeStatements(text string) ([]string, error) {
	prefix := d.Template.Prefix
	suffix := strings.TrimRight(d.Template.Suffix, "\r\n")
	if prefix == "" {
		return nil, errors.Wrap(ErrMalformedStatement, "template prefix is empty")
	}

	var lines []string
	rest := text
	for n := 1; ; n++ {
		i := strings.Index(rest, prefix)
		if i < 0 {
			break
		}
		rest = rest[i+len(prefix):]

		raw, consumed, err := d.unescape(rest, suffix)
		if err != nil {
			return nil, errors.Wrapf(err, "statement %d", n)
		}
		rest = rest[consumed:]
		if !strings.HasPrefix(rest, suffix) {
			return nil, errors.Wrapf(ErrMalformedStatement, "statement %d: missing %q", n, suffix)
		}
		rest = rest[len(suffix):]
		lines = append(lines, DecodeCP437(raw))
	}
	return lines, nil
}

// unescape reads consecutive \x escapes from the start of s and reports how
// many bytes of s it consumed. In lenient mode a digit that starts the
// statement suffix ends the escape instead of extending it.
func (d *Decoder) unescape(s, suffix string) ([]byte, int, error) {
	var out []byte
	pos := 0
	for strings.HasPrefix(s[pos:], `\x`) {
		pos += 2
		hi, ok := hexValue(s, pos)
		if !ok {
			return nil, 0, errors.Wrapf(ErrMalformedStatement, "offset %d: \\x without hex digits", pos)
		}
		lo, ok := hexValue(s, pos+1)
		if ok && d.Lenient && suffix != "" && strings.HasPrefix(s[pos+1:], suffix) {
			ok = false
		}
		if !ok {
			if !d.Lenient {
				return nil, 0, errors.Wrapf(ErrShortEscape, "offset %d: \\x%c", pos, s[pos])
			}
			out = append(out, hi)
			pos++
			continue
		}
		out = append(out, hi<<4|lo)
		pos += 2
	}
	return out, pos, nil
}

func hexValue(s string, i int) (byte, bool) {
	if i >= len(s) {
		return 0, false
	}
	c := s[i]
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
