package main

import "github.com/charmbracelet/lipgloss"

// Styles are rebuilt from CurrentTheme whenever the theme changes

// GetTitleStyle returns the pane title style with theme blue color
func GetTitleStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.Blue))
}

// GetLabelStyle returns the label style with theme gray color
func GetLabelStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray))
}

// GetArtStyle renders the decoded banner
func GetArtStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green)).
		Bold(true).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Purple)).
		Padding(0, 1)
}

// GetCodeStyle renders generated statements
func GetCodeStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Foreground))
}

// GetStatusBarStyle returns the status bar style
func GetStatusBarStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Gray)).
		Background(lipgloss.Color(CurrentTheme.Subtle))
}

// GetSuccessStyle flags a completed copy
func GetSuccessStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Green)).
		Bold(true)
}

// GetWarningStyle flags legacy escapes
func GetWarningStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Yellow))
}

// GetErrorStyle returns the error style with theme red color
func GetErrorStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.Red)).
		Bold(true)
}

var (
	titleStyle     = GetTitleStyle()
	labelStyle     = GetLabelStyle()
	artStyle       = GetArtStyle()
	codeStyle      = GetCodeStyle()
	statusBarStyle = GetStatusBarStyle()
	successStyle   = GetSuccessStyle()
	warningStyle   = GetWarningStyle()
	errorStyle     = GetErrorStyle()
)

// InitStyles rebuilds the global styles from CurrentTheme
func InitStyles() {
	titleStyle = GetTitleStyle()
	labelStyle = GetLabelStyle()
	artStyle = GetArtStyle()
	codeStyle = GetCodeStyle()
	statusBarStyle = GetStatusBarStyle()
	successStyle = GetSuccessStyle()
	warningStyle = GetWarningStyle()
	errorStyle = GetErrorStyle()
}
