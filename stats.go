package main

import (
	"fmt"
	"strings"
)

// Stats summarizes an encoded art block.
type Stats struct {
	Lines    int
	Widest   int
	Bytes    int
	Distinct int
	// LowBytes counts bytes below 0x10, the ones the legacy escape style
	// writes with a single hex digit.
	LowBytes int
}

// CalculateStats computes Stats over the codepage 437 bytes of each line.
func CalculateStats(raw [][]byte) Stats {
	var seen [256]bool
	stats := Stats{Lines: len(raw)}

	for _, line := range raw {
		if len(line) > stats.Widest {
			stats.Widest = len(line)
		}
		stats.Bytes += len(line)
		for _, b := range line {
			if !seen[b] {
				seen[b] = true
				stats.Distinct++
			}
			if b < 0x10 {
				stats.LowBytes++
			}
		}
	}

	return stats
}

// String returns a one-line summary for the status bar and debug logs.
func (s Stats) String() string {
	parts := []string{
		fmt.Sprintf("%d lines", s.Lines),
		fmt.Sprintf("%d wide", s.Widest),
		fmt.Sprintf("%d bytes", s.Bytes),
		fmt.Sprintf("%d distinct", s.Distinct),
	}
	if s.LowBytes > 0 {
		parts = append(parts, fmt.Sprintf("%d below 0x10", s.LowBytes))
	}
	return strings.Join(parts, " | ")
}

// encodeLines encodes each line to codepage 437, tagging errors with the
// 1-based line number.
func encodeLines(lines []string) ([][]byte, error) {
	raw := make([][]byte, len(lines))
	for i, line := range lines {
		b, err := EncodeCP437(line)
		if err != nil {
			if uerr, ok := err.(*UnencodableError); ok {
				uerr.Line = i + 1
			}
			return nil, err
		}
		raw[i] = b
	}
	return raw, nil
}
