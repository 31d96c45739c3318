package main

import (
	"strings"

	"github.com/pkg/errors"
)

// EscapeStyle selects how a byte is written inside the generated literal.
type EscapeStyle string

const (
	// EscapePadded always writes two hex digits: 0x09 becomes \x09.
	EscapePadded EscapeStyle = "padded"
	// EscapeLegacy drops leading zeros: 0x09 becomes \x9. Output from the
	// old generator looks like this and is still pasted in places, so it
	// stays selectable. Rust rejects \x9 in a byte string.
	EscapeLegacy EscapeStyle = "legacy"
)

// ParseEscapeStyle validates a style name from flags or config.
func ParseEscapeStyle(s string) (EscapeStyle, error) {
	switch EscapeStyle(strings.ToLower(strings.TrimSpace(s))) {
	case "", EscapePadded:
		return EscapePadded, nil
	case EscapeLegacy:
		return EscapeLegacy, nil
	default:
		return "", errors.Errorf("unknown escape style %q (want padded or legacy)", s)
	}
}

// Template wraps the escaped bytes of one line into a statement.
// Suffix carries the line terminator.
type Template struct {
	Prefix string
	Suffix string
}

// DefaultTemplate emits calls into the kernel shell's welcome printer.
var DefaultTemplate = Template{
	Prefix: `        Self::print_welcome_title(b"`,
	Suffix: "\");\n",
}

const hexDigits = "0123456789abcdef"

// Encoder turns art lines into print statements.
type Encoder struct {
	Template Template
	Style    EscapeStyle
}

// NewEncoder returns an encoder using the given template and escape style.
func NewEncoder(tmpl Template, style EscapeStyle) *Encoder {
	return &Encoder{Template: tmpl, Style: style}
}

// appendEscape writes b as a \x escape in the encoder's style.
func (e *Encoder) appendEscape(sb *strings.Builder, b byte) {
	sb.WriteString(`\x`)
	if e.Style == EscapeLegacy && b < 0x10 {
		sb.WriteByte(hexDigits[b])
		return
	}
	sb.WriteByte(hexDigits[b>>4])
	sb.WriteByte(hexDigits[b&0x0f])
}

// EscapeBytes renders raw bytes as concatenated escapes, without template.
func (e *Encoder) EscapeBytes(raw []byte) string {
	var sb strings.Builder
	sb.Grow(len(raw) * 4)
	for _, b := range raw {
		e.appendEscape(&sb, b)
	}
	return sb.String()
}

// EncodeLine converts one line of art into a single statement that prints
// the line's codepage 437 bytes verbatim.
func (e *Encoder) EncodeLine(line string) (string, error) {
	raw, err := EncodeCP437(line)
	if err != nil {
		return "", err
	}
	return e.Template.Prefix + e.EscapeBytes(raw) + e.Template.Suffix, nil
}
