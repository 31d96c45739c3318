package main

import (
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/go-gh/v2/pkg/term"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the process-level dependencies so commands can be run
// against buffers and a fake clipboard.
type app struct {
	v            *viper.Viper
	stdin        io.Reader
	stdout       io.Writer
	stderr       *os.File
	newClipboard func(ClipboardMode) ClipboardWriter
}

func newApp() *app {
	a := &app{
		v:      NewViper(),
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	a.newClipboard = func(mode ClipboardMode) ClipboardWriter {
		return NewClipboard(mode, a.stderr)
	}
	return a
}

// setup reads the config file and applies logging settings.
func (a *app) setup(cmd *cobra.Command) (Config, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		a.v.SetConfigFile(path)
	}
	if err := ReadConfigFile(a.v); err != nil {
		return Config{}, err
	}

	cfg, err := LoadConfig(a.v)
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid configuration")
	}
	if err := configureLogger(logger.Logger, cfg); err != nil {
		return Config{}, errors.Wrap(err, "invalid log level")
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		logger.WithField("file", used).Debug("loaded config")
	}
	return cfg, nil
}

// generate encodes the configured art and delivers it to stdout and the
// clipboard.
func (a *app) generate(cmd *cobra.Command, _ []string) error {
	cfg, err := a.setup(cmd)
	if err != nil {
		return err
	}

	art, err := LoadArt(cfg.Art, a.stdin)
	if err != nil {
		return err
	}

	lines := SplitArt(art)
	widest := ArtWidth(lines)
	for _, n := range WideLines(lines, cfg.MaxWidth) {
		logger.WithFields(logrus.Fields{
			"line":      n,
			"widest":    widest,
			"max_width": cfg.MaxWidth,
		}).Warn("art line is wider than the target can center")
	}

	encoder := NewEncoder(cfg.Template, cfg.Escapes)
	text, err := encoder.Assemble(art)
	if err != nil {
		return err
	}
	if text == "" {
		logger.Info("art is empty, nothing to generate")
		return nil
	}

	if raw, err := encodeLines(lines); err == nil {
		logger.WithField("escapes", cfg.Escapes).Debugf("encoded banner: %s", CalculateStats(raw))
	}

	return Deliver(a.stdout, a.newClipboard(cfg.Clipboard), text)
}

func (a *app) decode(cmd *cobra.Command, _ []string) error {
	cfg, err := a.setup(cmd)
	if err != nil {
		return err
	}

	var in io.Reader = a.stdin
	if path, _ := cmd.Flags().GetString("in"); path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return errors.Wrap(err, "failed to open input")
		}
		defer f.Close()
		in = f
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	lenient, _ := cmd.Flags().GetBool("lenient")
	decoder := &Decoder{Template: cfg.Template, Lenient: lenient}
	lines, err := decoder.DecodeStatements(string(data))
	if err != nil {
		return errors.Wrap(err, "failed to decode statements")
	}
	if len(lines) == 0 {
		logger.WithField("prefix", cfg.Template.Prefix).Warn("no statements found")
		return nil
	}

	_, err = io.WriteString(a.stdout, strings.Join(lines, "\n")+"\n")
	return err
}

func (a *app) preview(cmd *cobra.Command, _ []string) error {
	cfg, err := a.setup(cmd)
	if err != nil {
		return err
	}
	if !term.FromEnv().IsTerminalOutput() {
		return errors.New("preview needs a terminal")
	}

	art, err := LoadArt(cfg.Art, a.stdin)
	if err != nil {
		return err
	}
	if err := InitTheme(cfg.Theme, cfg.ThemeDir); err != nil {
		return err
	}

	m := newPreviewModel(art, NewEncoder(cfg.Template, cfg.Escapes), a.newClipboard(cfg.Clipboard))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return errors.Wrap(err, "preview failed")
	}
	return nil
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "bannergen",
		Short: "Turn codepage 437 text art into print statements",
		Long: `bannergen encodes each line of a text-art banner as codepage 437 bytes,
wraps the escaped bytes in a print statement, prints the result and copies it
to the clipboard. Without flags it regenerates the kernel welcome banner.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          a.generate,
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default $HOME/.bannergen/config.yaml or ./config.yaml)")
	flags.String("art", "", "art file to encode, - for stdin (default: built-in banner)")
	flags.String("escapes", string(EscapePadded), "escape style: padded (\\x09) or legacy (\\x9)")
	flags.String("prefix", DefaultTemplate.Prefix, "text before the escaped bytes of each line")
	flags.String("suffix", DefaultTemplate.Suffix, "text after the escaped bytes of each line, including the line break")
	flags.String("clipboard", string(ClipboardSystem), "clipboard target: system, osc52, auto or none")
	flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	flags.String("log-format", "text", "log format (text or json)")
	flags.Int("max-width", DefaultMaxWidth, "warn about art lines wider than this, 0 to disable")
	flags.String("theme", DefaultThemeName, "preview color theme")
	flags.String("theme-dir", "", "directory of extra YAML themes for the preview")

	for key, flag := range map[string]string{
		"art":             "art",
		"escapes":         "escapes",
		"template.prefix": "prefix",
		"template.suffix": "suffix",
		"clipboard":       "clipboard",
		"log_level":       "log-level",
		"log_format":      "log-format",
		"max_width":       "max-width",
		"theme":           "theme",
		"theme_dir":       "theme-dir",
	} {
		_ = a.v.BindPFlag(key, flags.Lookup(flag))
	}

	decodeCmd := &cobra.Command{
		Use:   "decode",
		Short: "Recover art from generated statements",
		Long: `decode reads source text, finds every statement built from the configured
template and prints the art each one would display. Escapes must have two hex
digits unless --lenient is given.`,
		Args: cobra.NoArgs,
		RunE: a.decode,
	}
	decodeCmd.Flags().String("in", "", "file to read statements from (default stdin)")
	decodeCmd.Flags().Bool("lenient", false, "accept single-digit legacy escapes")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "Show the banner and generated code side by side",
		Args:  cobra.NoArgs,
		RunE:  a.preview,
	}

	rootCmd.AddCommand(decodeCmd, previewCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd(newApp()).Execute(); err != nil {
		logger.WithError(err).Error("bannergen failed")
		os.Exit(1)
	}
}
