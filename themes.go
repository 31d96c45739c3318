package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	goghthemes "github.com/willyv3/gogh-themes"
)

// Theme provides all colors for the preview.
type Theme struct {
	Background string
	Foreground string
	Subtle     string

	Blue   string
	Green  string
	Red    string
	Yellow string
	Purple string
	Gray   string
}

// DefaultThemeName is used when no theme is configured or the configured
// one does not exist.
const DefaultThemeName = "Dracula"

// themes registry, keyed by display name
var themes = make(map[string]Theme)

// CurrentTheme is the active theme
var CurrentTheme Theme

var currentThemeName string

// themeOrder defines the order for cycling through themes
var themeOrder []string

// InitTheme loads the built-in gogh themes plus any YAML themes in themeDir,
// then selects name. Unknown names fall back to the default theme.
func InitTheme(name, themeDir string) error {
	loadGoghThemes()

	if themeDir != "" {
		custom, err := LoadThemeDir(themeDir)
		if err != nil {
			return err
		}
		for themeName, theme := range custom {
			themes[themeName] = theme
		}
	}

	buildThemeOrder()

	if name == "" {
		name = DefaultThemeName
	}
	if !SetTheme(name) {
		logger.WithField("theme", name).Warn("unknown theme, using default")
		if !SetTheme(DefaultThemeName) && len(themeOrder) > 0 {
			SetTheme(themeOrder[0])
		}
	}
	return nil
}

// loadGoghThemes converts every theme shipped with gogh-themes. The semantic
// colors use the normal ANSI slots; YAML themes use the bright ones.
func loadGoghThemes() {
	for name, gogh := range goghthemes.All() {
		themes[name] = Theme{
			Background: gogh.Background,
			Foreground: gogh.Foreground,
			Subtle:     generateShade(gogh.Background, 1.3),

			Blue:   gogh.Blue,
			Green:  gogh.Green,
			Red:    gogh.Red,
			Yellow: gogh.Yellow,
			Purple: gogh.Magenta,
			Gray:   gogh.White,
		}
	}
}

// buildThemeOrder creates alphabetically sorted theme cycling order
func buildThemeOrder() {
	themeOrder = make([]string, 0, len(themes))
	for name := range themes {
		themeOrder = append(themeOrder, name)
	}
	sort.Strings(themeOrder)
}

// SetTheme activates a theme by name and refreshes the styles.
func SetTheme(name string) bool {
	theme, ok := themes[name]
	if !ok {
		return false
	}
	CurrentTheme = theme
	currentThemeName = name
	InitStyles()
	return true
}

// NextTheme cycles to the next theme in the rotation
func NextTheme() string {
	if len(themeOrder) == 0 {
		return currentThemeName
	}

	currentIndex := -1
	for i, name := range themeOrder {
		if name == currentThemeName {
			currentIndex = i
			break
		}
	}

	next := themeOrder[(currentIndex+1)%len(themeOrder)]
	SetTheme(next)
	return next
}

// GetCurrentThemeName returns the name of the active theme
func GetCurrentThemeName() string {
	return currentThemeName
}

// GetThemeCount returns the total number of available themes
func GetThemeCount() int {
	return len(themes)
}

// generateShade adjusts the brightness of a color
// factor < 1.0 darkens, factor > 1.0 brightens
func generateShade(hexColor string, factor float64) string {
	hex := strings.TrimPrefix(hexColor, "#")
	if len(hex) != 6 {
		return hexColor
	}

	r, errR := strconv.ParseInt(hex[0:2], 16, 64)
	g, errG := strconv.ParseInt(hex[2:4], 16, 64)
	b, errB := strconv.ParseInt(hex[4:6], 16, 64)
	if errR != nil || errG != nil || errB != nil {
		return hexColor
	}

	return fmt.Sprintf("#%02x%02x%02x",
		clampChannel(float64(r)*factor),
		clampChannel(float64(g)*factor),
		clampChannel(float64(b)*factor))
}

func clampChannel(v float64) int64 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	default:
		return int64(v)
	}
}
