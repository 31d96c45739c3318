package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// previewModel shows the banner as the target will print it, next to the
// statements that print it.
type previewModel struct {
	art      string
	encoder  *Encoder
	clip     ClipboardWriter
	code     string
	decoded  []string
	stats    Stats
	viewport viewport.Model
	status   string
	err      error
	ready    bool
	width    int
	height   int
}

// copyResultMsg reports the outcome of a clipboard write
type copyResultMsg struct {
	err error
}

func newPreviewModel(art string, encoder *Encoder, clip ClipboardWriter) previewModel {
	m := previewModel{
		art:     art,
		encoder: encoder,
		clip:    clip,
	}
	m.regenerate()
	return m
}

// regenerate re-encodes the art and decodes the result back for display,
// so the art pane shows what the generated bytes really contain.
func (m *previewModel) regenerate() {
	m.err = nil

	raw, err := encodeLines(SplitArt(m.art))
	if err != nil {
		m.err = err
		return
	}
	m.stats = CalculateStats(raw)

	code, err := m.encoder.Assemble(m.art)
	if err != nil {
		m.err = err
		return
	}
	m.code = code

	decoder := &Decoder{Template: m.encoder.Template, Lenient: true}
	decoded, err := decoder.DecodeStatements(code)
	if err != nil {
		m.err = err
		return
	}
	m.decoded = decoded

	if m.ready {
		m.viewport.SetContent(codeStyle.Render(m.code))
		m.viewport.GotoTop()
	}
}

// Init performs no I/O; everything is computed up front
func (m previewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "y":
			if m.err != nil || m.code == "" {
				return m, nil
			}
			if m.clip == nil {
				m.status = warningStyle.Render("clipboard disabled")
				return m, nil
			}
			m.status = labelStyle.Render("copying...")
			return m, copyToClipboard(m.clip, m.code)
		case "e":
			if m.encoder.Style == EscapeLegacy {
				m.encoder.Style = EscapePadded
			} else {
				m.encoder.Style = EscapeLegacy
			}
			m.regenerate()
			m.status = ""
			return m, nil
		case "t":
			name := NextTheme()
			m.status = labelStyle.Render("theme: " + name)
			if m.ready {
				m.viewport.SetContent(codeStyle.Render(m.code))
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(m.width, m.codeHeight())
			m.viewport.SetContent(codeStyle.Render(m.code))
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = m.codeHeight()
		}

	case copyResultMsg:
		if msg.err != nil {
			logger.WithError(msg.err).Debug("preview copy failed")
			m.status = errorStyle.Render("copy failed: " + msg.err.Error())
		} else {
			m.status = successStyle.Render(fmt.Sprintf("copied to clipboard (%d lines)", m.stats.Lines))
		}
		return m, nil
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// codeHeight is what remains for the code pane after the art pane, the two
// pane titles, the status line and the status bar.
func (m previewModel) codeHeight() int {
	artHeight := lipgloss.Height(m.renderArt())
	h := m.height - artHeight - 4
	if h < 3 {
		h = 3
	}
	return h
}

// View renders the preview
func (m previewModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n\n" +
			labelStyle.Render("q: quit")
	}
	if !m.ready {
		return labelStyle.Render("Initializing...")
	}

	sections := []string{
		m.renderArt(),
		titleStyle.Render(fmt.Sprintf("Generated (%s escapes)", m.encoder.Style)),
		m.viewport.View(),
		m.status,
		m.renderStatusBar(),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m previewModel) renderArt() string {
	title := titleStyle.Render("Banner")
	if len(m.decoded) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, title, labelStyle.Render("(empty art)"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, artStyle.Render(strings.Join(m.decoded, "\n")))
}

// renderStatusBar renders the bottom status bar with keybindings
func (m previewModel) renderStatusBar() string {
	escapes := strings.ToUpper(string(m.encoder.Style))
	help := fmt.Sprintf("q: quit | y: copy | e: escapes [%s] | t: theme [%s] | ↑↓: scroll | %s",
		escapes, GetCurrentThemeName(), m.stats)

	return statusBarStyle.Width(m.width).Render(help)
}

func copyToClipboard(clip ClipboardWriter, text string) tea.Cmd {
	return func() tea.Msg {
		return copyResultMsg{err: clip.Write(text)}
	}
}
