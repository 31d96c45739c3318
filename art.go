package main

import (
	_ "embed"
	"io"
	"os"

	"github.com/pkg/errors"
)

// defaultArt is the welcome banner shown by the kernel shell. Lines keep
// their trailing spaces; the title printer centers on the full width.
//
//go:embed art.txt
var defaultArt string

// LoadArt returns the art block to encode.
// An empty path selects the embedded banner, "-" reads stdin.
func LoadArt(path string, stdin io.Reader) (string, error) {
	switch path {
	case "":
		return defaultArt, nil
	case "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", errors.Wrap(err, "failed to read art from stdin")
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read art file %s", path)
		}
		return string(data), nil
	}
}
