package main

import (
	"fmt"

	"golang.org/x/text/encoding/charmap"
)

// cp437 is the IBM PC text-mode character set the VGA buffer renders.
// The table is compiled in, so output never depends on the host locale.
var cp437 = charmap.CodePage437

// UnencodableError reports a rune that has no codepage 437 byte.
// Line and Column are 1-based; Column counts runes, not bytes.
type UnencodableError struct {
	Line   int
	Column int
	Rune   rune
}

func (e *UnencodableError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d, column %d: %q (U+%04X) has no codepage 437 encoding",
			e.Line, e.Column, e.Rune, e.Rune)
	}
	return fmt.Sprintf("column %d: %q (U+%04X) has no codepage 437 encoding",
		e.Column, e.Rune, e.Rune)
}

// EncodeCP437 maps each rune of line to its codepage 437 byte.
func EncodeCP437(line string) ([]byte, error) {
	out := make([]byte, 0, len(line))
	column := 0
	for _, r := range line {
		column++
		b, ok := cp437.EncodeRune(r)
		if !ok {
			return nil, &UnencodableError{Column: column, Rune: r}
		}
		out = append(out, b)
	}
	return out, nil
}

// DecodeCP437 is the inverse of EncodeCP437. Every byte has a glyph.
func DecodeCP437(b []byte) string {
	runes := make([]rune, len(b))
	for i, c := range b {
		runes[i] = cp437.DecodeByte(c)
	}
	return string(runes)
}
