package util

import (
    "os"

    "github.com/charmbracelet/lipgloss"

    "shapeshifter/internal/actionmode"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
    if explicit {
        return true
    }
    return os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb"
}

// Palette defines a small set of colors used across widgets.
type Palette struct {
    Primary   lipgloss.Color
    Success   lipgloss.Color
    Warning   lipgloss.Color
    Muted     lipgloss.Color
    MutedDark lipgloss.Color

    // Toolbar backgrounds by action mode state
    Inactive lipgloss.Color
    Active   lipgloss.Color
}

// DefaultPalette returns the default palette.
func DefaultPalette() Palette {
    return Palette{
        Primary:   lipgloss.Color("#3D6DFF"),
        Success:   lipgloss.Color("#2AA876"),
        Warning:   lipgloss.Color("#F0AD4E"),
        Muted:     lipgloss.Color("#6C757D"),
        MutedDark: lipgloss.Color("#5A5A5A"),
        Inactive:  lipgloss.Color(actionmode.InactiveColor),
        Active:    lipgloss.Color(actionmode.ActiveColor),
    }
}

// ToolbarColor is the toolbar background for an ActiveState value
// ("inactive" or "active").
func (p Palette) ToolbarColor(activeState string) lipgloss.Color {
    if activeState == "active" {
        return p.Active
    }
    return p.Inactive
}
