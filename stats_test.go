package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateStats(t *testing.T) {
	tests := []struct {
		name string
		raw  [][]byte
		want Stats
	}{
		{
			name: "empty",
			raw:  nil,
			want: Stats{},
		},
		{
			name: "low bytes counted",
			raw:  [][]byte{{0x41, 0x09}, {0x41, 0x41, 0x01}},
			want: Stats{Lines: 2, Widest: 3, Bytes: 5, Distinct: 3, LowBytes: 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalculateStats(tt.raw))
		})
	}
}

func TestStatsString(t *testing.T) {
	assert.Equal(t, "2 lines | 3 wide | 5 bytes | 3 distinct | 2 below 0x10",
		Stats{Lines: 2, Widest: 3, Bytes: 5, Distinct: 3, LowBytes: 2}.String())
	assert.Equal(t, "1 lines | 1 wide | 1 bytes | 1 distinct",
		Stats{Lines: 1, Widest: 1, Bytes: 1, Distinct: 1}.String())
}

func TestKernelBannerStats(t *testing.T) {
	raw, err := encodeLines(SplitArt(defaultArt))
	require.NoError(t, err)

	stats := CalculateStats(raw)
	assert.Equal(t, 7, stats.Lines)
	assert.Equal(t, 0, stats.LowBytes)
	// space : + #
	assert.Equal(t, 4, stats.Distinct)
}

func TestEncodeLinesTagsLine(t *testing.T) {
	_, err := encodeLines([]string{"ok", "€"})

	var uerr *UnencodableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 2, uerr.Line)
}
