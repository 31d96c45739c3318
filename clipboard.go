package main

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// ErrClipboardUnavailable is wrapped by every clipboard write failure.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ClipboardWriter places text on a clipboard.
type ClipboardWriter interface {
	Write(text string) error
}

// ClipboardMode selects which clipboard the generated code is copied to.
type ClipboardMode string

const (
	ClipboardSystem ClipboardMode = "system"
	ClipboardOSC52  ClipboardMode = "osc52"
	ClipboardAuto   ClipboardMode = "auto"
	ClipboardNone   ClipboardMode = "none"
)

// ParseClipboardMode validates a clipboard mode from flags or config.
func ParseClipboardMode(s string) (ClipboardMode, error) {
	switch m := ClipboardMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ClipboardSystem, nil
	case ClipboardSystem, ClipboardOSC52, ClipboardAuto, ClipboardNone:
		return m, nil
	default:
		return "", errors.Errorf("unknown clipboard mode %q (want system, osc52, auto or none)", s)
	}
}

// systemClipboard goes through xclip/xsel/wl-copy, pbcopy or the Windows API.
type systemClipboard struct{}

func (systemClipboard) Write(text string) error {
	if clipboard.Unsupported {
		return errors.Wrap(ErrClipboardUnavailable, "no clipboard utility found (install xclip, xsel or wl-clipboard)")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrapf(ErrClipboardUnavailable, "system clipboard: %v", err)
	}
	return nil
}

// osc52Clipboard asks the terminal emulator to set its clipboard. It works
// over SSH, but nothing reports whether the terminal honored the request.
type osc52Clipboard struct {
	out io.Writer
	env func(string) string
}

func newOSC52Clipboard(out io.Writer) *osc52Clipboard {
	return &osc52Clipboard{out: out, env: os.Getenv}
}

func (c *osc52Clipboard) Write(text string) error {
	seq := osc52.New(text)
	switch {
	case c.env("TMUX") != "":
		seq = seq.Tmux()
	case strings.HasPrefix(c.env("TERM"), "screen"):
		seq = seq.Screen()
	}
	if _, err := seq.WriteTo(c.out); err != nil {
		return errors.Wrapf(ErrClipboardUnavailable, "osc52: %v", err)
	}
	return nil
}

// fallbackClipboard tries each writer in turn until one succeeds.
type fallbackClipboard []ClipboardWriter

func (f fallbackClipboard) Write(text string) error {
	var result *multierror.Error
	for _, w := range f {
		err := w.Write(text)
		if err == nil {
			return nil
		}
		result = multierror.Append(result, err)
	}
	if result == nil {
		return errors.Wrap(ErrClipboardUnavailable, "no clipboard configured")
	}
	return result
}

// NewClipboard builds the writer for mode. ClipboardNone returns nil, which
// Deliver treats as "do not copy". OSC 52 sequences go to stderr.
func NewClipboard(mode ClipboardMode, stderr *os.File) ClipboardWriter {
	switch mode {
	case ClipboardNone:
		return nil
	case ClipboardOSC52:
		return newOSC52Clipboard(stderr)
	case ClipboardAuto:
		writers := fallbackClipboard{systemClipboard{}}
		if term.IsTerminal(stderr) {
			writers = append(writers, newOSC52Clipboard(stderr))
		}
		return writers
	default:
		return systemClipboard{}
	}
}
