package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Banners and section headers: bold
	colorHeader = color.New(color.Bold)

	// Notices the user should see but not worry about: yellow
	colorNotice = color.New(color.FgYellow)

	// Errors shown in place of a summary: red
	colorError = color.New(color.FgRed, color.Bold)

	// Locations and coordinates: cyan
	colorLocation = color.New(color.FgCyan)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// isTerminal reports whether both ends of the session are a TTY.
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

// EnableColor enables color output (if terminal supports it).
func EnableColor() {
	color.NoColor = false
}

// formatHeader formats text as a section header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatNotice formats a user-visible notice.
func formatNotice(s string) string {
	return colorNotice.Sprint(s)
}

// formatError formats an error message.
func formatError(s string) string {
	return colorError.Sprint(s)
}

// formatLocation formats a place name or coordinate pair.
func formatLocation(s string) string {
	return colorLocation.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
