// Package styles provides shared lipgloss styles for UI components.
//
// This package centralizes color definitions so the status table and the
// confirmation prompt look the same.
package styles

import (
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/git-vcs/internal/hooks"
)

// Primary colors used throughout the UI
var (
	// Primary is the main accent color (cyan/teal)
	Primary = lipgloss.Color("62")

	// Success is used for installed hooks (green)
	Success = lipgloss.Color("82")

	// Warning is used for legacy hooks (orange)
	Warning = lipgloss.Color("214")

	// Error is used for failures (red)
	Error = lipgloss.Color("196")

	// Muted is used for missing and foreign hooks (gray)
	Muted = lipgloss.Color("240")
)

// Common styles
var (
	Bold = lipgloss.NewStyle().Bold(true)

	PrimaryStyle = lipgloss.NewStyle().Foreground(Primary)
	SuccessStyle = lipgloss.NewStyle().Foreground(Success)
	WarningStyle = lipgloss.NewStyle().Foreground(Warning)
	ErrorStyle   = lipgloss.NewStyle().Foreground(Error)
	MutedStyle   = lipgloss.NewStyle().Foreground(Muted)
)

// Status symbols
const (
	SymbolInstalled = "●"
	SymbolLegacy    = "◐"
	SymbolForeign   = "○"
	SymbolMissing   = "·"
)

// FormatOwnership returns the colored symbol and label for a hook state.
func FormatOwnership(o hooks.Ownership) string {
	switch o {
	case hooks.Owned:
		return SuccessStyle.Render(SymbolInstalled + " " + o.String())
	case hooks.Legacy:
		return WarningStyle.Render(SymbolLegacy + " " + o.String())
	case hooks.Foreign:
		return MutedStyle.Render(SymbolForeign + " " + o.String())
	default:
		return MutedStyle.Render(SymbolMissing + " " + o.String())
	}
}

// Profile returns the color profile for w given a color mode
// ("auto", "always" or "never"). Unknown modes behave like "auto".
func Profile(w io.Writer, mode string) colorprofile.Profile {
	switch mode {
	case "always":
		return colorprofile.TrueColor
	case "never":
		return colorprofile.NoTTY
	default:
		return colorprofile.Detect(w, os.Environ())
	}
}

// Writer wraps w so styled output is downsampled to the profile selected by
// mode. Escape sequences are stripped entirely when color is off.
func Writer(w io.Writer, mode string) io.Writer {
	cw := colorprofile.NewWriter(w, os.Environ())
	cw.Profile = Profile(w, mode)
	return cw
}
