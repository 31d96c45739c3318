package main

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAMLTheme represents the structure of theme YAML files
// These come from terminal color schemes with 16 ANSI colors
type YAMLTheme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`

	Color08 string `yaml:"color_08"` // White
	Color10 string `yaml:"color_10"` // Bright Red
	Color11 string `yaml:"color_11"` // Bright Green
	Color12 string `yaml:"color_12"` // Bright Yellow
	Color13 string `yaml:"color_13"` // Bright Blue
	Color14 string `yaml:"color_14"` // Bright Magenta
}

// ConvertToTheme maps ANSI terminal colors to the preview's semantic colors
func (yt *YAMLTheme) ConvertToTheme() Theme {
	return Theme{
		Background: yt.Background,
		Foreground: yt.Foreground,
		Subtle:     generateShade(yt.Background, 1.3),

		Blue:   yt.Color13,
		Green:  yt.Color11,
		Red:    yt.Color10,
		Yellow: yt.Color12,
		Purple: yt.Color14,
		Gray:   yt.Color08,
	}
}

// LoadThemeFromYAML loads a single YAML theme file
func LoadThemeFromYAML(filePath string) (*YAMLTheme, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read theme file")
	}

	var yamlTheme YAMLTheme
	if err := yaml.Unmarshal(data, &yamlTheme); err != nil {
		return nil, errors.Wrapf(err, "failed to parse theme %s", filePath)
	}
	if yamlTheme.Name == "" {
		return nil, errors.Errorf("theme %s has no name", filePath)
	}

	return &yamlTheme, nil
}

// LoadThemeDir loads every *.yml and *.yaml theme in dir, keyed by the
// theme's name. Files that fail to parse are skipped with a warning.
func LoadThemeDir(dir string) (map[string]Theme, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, errors.Wrap(err, "failed to open theme directory")
	}

	var files []string
	for _, pattern := range []string{"*.yml", "*.yaml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, errors.Wrap(err, "failed to list theme files")
		}
		files = append(files, matches...)
	}

	themeMap := make(map[string]Theme)
	for _, file := range files {
		yamlTheme, err := LoadThemeFromYAML(file)
		if err != nil {
			logger.WithError(err).WithField("file", file).Warn("skipping theme")
			continue
		}
		themeMap[yamlTheme.Name] = yamlTheme.ConvertToTheme()
	}

	return themeMap, nil
}
