package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Deliver prints text to out and then copies it to clip. The printed copy
// stands even when the clipboard write fails. Empty text is a no-op, and a
// nil clip skips the clipboard.
func Deliver(out io.Writer, clip ClipboardWriter, text string) error {
	if text == "" {
		return nil
	}
	if _, err := fmt.Fprintln(out, text); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	if clip == nil {
		return nil
	}
	if err := clip.Write(text); err != nil {
		return errors.Wrap(err, "failed to copy to clipboard")
	}
	return nil
}
