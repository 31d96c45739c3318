package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeCP437(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []byte
	}{
		{"ascii", "A:+#", []byte{0x41, 0x3a, 0x2b, 0x23}},
		{"tab", "A\t", []byte{0x41, 0x09}},
		{"double box corners", "╔═╗", []byte{0xc9, 0xcd, 0xbb}},
		{"double box sides", "║╚╝", []byte{0xba, 0xc8, 0xbc}},
		{"latin", "é", []byte{0x82}},
		{"empty", "", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EncodeCP437(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeCP437Unencodable(t *testing.T) {
	_, err := EncodeCP437("ab€")
	require.Error(t, err)

	var uerr *UnencodableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, 3, uerr.Column)
	assert.Equal(t, '€', uerr.Rune)
	assert.Contains(t, err.Error(), "U+20AC")
}

func TestDecodeCP437CoversEveryByte(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		decoded := DecodeCP437([]byte{b})
		back, err := EncodeCP437(decoded)
		require.NoError(t, err, "byte 0x%02x", b)
		assert.Equal(t, []byte{b}, back, "byte 0x%02x", b)
	}
}
