package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func readyPreview(t *testing.T, art string, clip ClipboardWriter) previewModel {
	t.Helper()
	require.NoError(t, InitTheme(DefaultThemeName, ""))

	m := newPreviewModel(art, NewEncoder(DefaultTemplate, EscapePadded), clip)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(previewModel)
}

func TestPreviewShowsDecodedArt(t *testing.T) {
	m := readyPreview(t, defaultArt, nil)

	require.NoError(t, m.err)
	assert.Equal(t, SplitArt(defaultArt), m.decoded)
	assert.Equal(t, 7, m.stats.Lines)

	view := m.View()
	assert.Contains(t, view, "Banner")
	assert.Contains(t, view, "padded escapes")
}

func TestPreviewToggleEscapes(t *testing.T) {
	m := readyPreview(t, "A\t", nil)
	assert.Contains(t, m.code, `\x09`)

	updated, _ := m.Update(key("e"))
	m = updated.(previewModel)
	assert.Equal(t, EscapeLegacy, m.encoder.Style)
	assert.Contains(t, m.code, `\x9"`)
	assert.Equal(t, []string{"A\t"}, m.decoded)

	updated, _ = m.Update(key("e"))
	m = updated.(previewModel)
	assert.Equal(t, EscapePadded, m.encoder.Style)
}

func TestPreviewCopy(t *testing.T) {
	clip := &fakeClipboard{}
	m := readyPreview(t, "AB", clip)

	updated, cmd := m.Update(key("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	require.IsType(t, copyResultMsg{}, msg)
	assert.Equal(t, []string{m.code}, clip.writes)

	updated, _ = updated.(previewModel).Update(msg)
	assert.Contains(t, updated.(previewModel).status, "copied to clipboard (1 lines)")
}

func TestPreviewCopyFailure(t *testing.T) {
	clip := &fakeClipboard{err: errors.Wrap(ErrClipboardUnavailable, "headless")}
	m := readyPreview(t, "AB", clip)

	_, cmd := m.Update(key("y"))
	updated, _ := m.Update(cmd())
	assert.Contains(t, updated.(previewModel).status, "copy failed")
}

func TestPreviewCopyDisabled(t *testing.T) {
	m := readyPreview(t, "AB", nil)

	updated, cmd := m.Update(key("y"))
	assert.Nil(t, cmd)
	assert.Contains(t, updated.(previewModel).status, "clipboard disabled")
}

func TestPreviewThemeCycle(t *testing.T) {
	m := readyPreview(t, "AB", nil)
	before := GetCurrentThemeName()

	updated, _ := m.Update(key("t"))
	assert.NotEqual(t, before, GetCurrentThemeName())
	assert.Contains(t, updated.(previewModel).status, GetCurrentThemeName())
}

func TestPreviewUnencodableArt(t *testing.T) {
	m := readyPreview(t, "€", nil)

	require.Error(t, m.err)
	assert.Contains(t, m.View(), "Error:")
	assert.Contains(t, m.View(), "no codepage 437 encoding")
}

func TestPreviewQuit(t *testing.T) {
	m := readyPreview(t, "AB", nil)

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
