package main

import (
	"bytes"
	"encoding/base64"
	"os"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClipboardMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ClipboardMode
		wantErr bool
	}{
		{"", ClipboardSystem, false},
		{"system", ClipboardSystem, false},
		{"OSC52", ClipboardOSC52, false},
		{"auto", ClipboardAuto, false},
		{"none", ClipboardNone, false},
		{"pasteboard", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClipboardMode(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOSC52Clipboard(t *testing.T) {
	text := "banner\n"
	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	tests := []struct {
		name     string
		env      map[string]string
		contains string
	}{
		{"plain terminal", map[string]string{"TERM": "xterm-256color"}, "\x1b]52;c;" + encoded},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0"}, "\x1bPtmux;"},
		{"screen", map[string]string{"TERM": "screen"}, "\x1bP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := &osc52Clipboard{out: &out, env: func(k string) string { return tt.env[k] }}

			require.NoError(t, c.Write(text))
			assert.Contains(t, out.String(), tt.contains)
			assert.Contains(t, out.String(), encoded)
		})
	}
}

func TestFallbackClipboard(t *testing.T) {
	failing := &fakeClipboard{err: errors.Wrap(ErrClipboardUnavailable, "no display")}
	working := &fakeClipboard{}

	require.NoError(t, fallbackClipboard{failing, working}.Write("x"))
	assert.Equal(t, []string{"x"}, working.writes)
}

func TestFallbackClipboardAllFail(t *testing.T) {
	first := &fakeClipboard{err: errors.Wrap(ErrClipboardUnavailable, "no display")}
	second := &fakeClipboard{err: errors.Wrap(ErrClipboardUnavailable, "not a tty")}

	err := fallbackClipboard{first, second}.Write("x")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipboardUnavailable)
	assert.Contains(t, err.Error(), "no display")
	assert.Contains(t, err.Error(), "not a tty")
}

func TestFallbackClipboardEmpty(t *testing.T) {
	assert.ErrorIs(t, fallbackClipboard{}.Write("x"), ErrClipboardUnavailable)
}

func TestNewClipboardNone(t *testing.T) {
	assert.Nil(t, NewClipboard(ClipboardNone, nil))
}

func TestNewClipboard(t *testing.T) {
	stderr, err := os.CreateTemp(t.TempDir(), "stderr")
	require.NoError(t, err)
	t.Cleanup(func() { stderr.Close() })

	t.Run("system", func(t *testing.T) {
		assert.Equal(t, systemClipboard{}, NewClipboard(ClipboardSystem, stderr))
	})

	t.Run("osc52", func(t *testing.T) {
		c, ok := NewClipboard(ClipboardOSC52, stderr).(*osc52Clipboard)
		require.True(t, ok)
		assert.Same(t, stderr, c.out)
	})

	t.Run("auto without a terminal", func(t *testing.T) {
		c, ok := NewClipboard(ClipboardAuto, stderr).(fallbackClipboard)
		require.True(t, ok)
		assert.Equal(t, fallbackClipboard{systemClipboard{}}, c)
	})
}
