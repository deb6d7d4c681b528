package ui

import "github.com/charmbracelet/lipgloss"

// Color palette for the chrome around the messages.
// Usernames take their colors from chat.Palette instead.
var (
	primaryColor   = lipgloss.Color("#9146FF") // Stream purple
	accentColor    = lipgloss.Color("#BF94FF") // Soft lavender
	successColor   = lipgloss.Color("#B5D99C") // Bright sage
	mutedColor     = lipgloss.Color("#8C8C99") // Cool grey
	fgColor        = lipgloss.Color("#EFEFF1") // Off white
	panelBgColor   = lipgloss.Color("#18181B") // Near black
	liveBadgeColor = lipgloss.Color("#EB0400") // Live red
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1)

	liveBadgeStyle = lipgloss.NewStyle().
			Foreground(fgColor).
			Background(liveBadgeColor).
			Bold(true).
			Padding(0, 1)

	chatBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Background(panelBgColor).
			Padding(0, 1)

	inputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(0, 1)

	usernameStyle = lipgloss.NewStyle().
			Bold(true)

	messageTextStyle = lipgloss.NewStyle().
				Foreground(fgColor)

	timestampStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	highlightStyle = lipgloss.NewStyle().
			Foreground(successColor).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	placeholderStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Italic(true)
)
