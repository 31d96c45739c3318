package main

import (
	"strings"

	"github.com/pkg/errors"
)

// SplitArt strips leading and trailing newlines from art and splits it into
// lines. Spaces are significant and kept. CRLF line endings are accepted.
// Art made only of newlines yields no lines at all.
func SplitArt(art string) []string {
	art = strings.ReplaceAll(art, "\r\n", "\n")
	art = strings.Trim(art, "\n")
	if art == "" {
		return nil
	}
	return strings.Split(art, "\n")
}

// DefaultMaxWidth is the widest line the welcome title printer can center:
// 80 VGA columns less two border columns and a two-column margin each side.
const DefaultMaxWidth = 74

// ArtWidth returns the rune width of the widest line.
func ArtWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if n := len([]rune(line)); n > widest {
			widest = n
		}
	}
	return widest
}

// WideLines returns the 1-based numbers of lines longer than maxWidth.
// A maxWidth of zero or less disables the check.
func WideLines(lines []string, maxWidth int) []int {
	if maxWidth <= 0 {
		return nil
	}
	var wide []int
	for i, line := range lines {
		if len([]rune(line)) > maxWidth {
			wide = append(wide, i+1)
		}
	}
	return wide
}

// Assemble encodes every line of art, top to bottom, and concatenates the
// statements. The first line that cannot be encoded aborts the run.
func (e *Encoder) Assemble(art string) (string, error) {
	var sb strings.Builder
	for i, line := range SplitArt(art) {
		stmt, err := e.EncodeLine(line)
		if err != nil {
			var uerr *UnencodableError
			if errors.As(err, &uerr) {
				uerr.Line = i + 1
			}
			return "", errors.Wrap(err, "failed to encode art")
		}
		sb.WriteString(stmt)
	}
	return sb.String(), nil
}
