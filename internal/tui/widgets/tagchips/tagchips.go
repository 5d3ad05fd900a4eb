package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "shapeshifter/internal/tui/state"
    "shapeshifter/internal/tui/util"
)

// View renders sub-path tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.CLOSED:
        return "Closed"
    case state.OPEN:
        return "Open"
    case state.SPLIT:
        return "Split"
    case state.SPLIT_POINTS:
        return fmt.Sprintf("Added %d", t.Value)
    case state.MISSING:
        return fmt.Sprintf("Missing +%d", t.Value)
    case state.POINTS:
        return fmt.Sprintf("Pts %d", t.Value)
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag) lipgloss.Style {
    pal := util.DefaultPalette()
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#FFFFFF"))
    switch t.Kind {
    case state.CLOSED:
        return base.Background(pal.Primary)
    case state.OPEN:
        return base.Background(pal.Muted)
    case state.SPLIT:
        return base.Background(pal.Success)
    case state.SPLIT_POINTS:
        return base.Background(pal.Success)
    case state.MISSING:
        return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
    case state.POINTS:
        return base.Background(pal.MutedDark)
    default:
        return base
    }
}
