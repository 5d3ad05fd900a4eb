package statusbar

import (
    "fmt"
    "strings"

    "shapeshifter/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState, mode string) string {
    input := "[CMD]"
    if s.Mode == state.INSERT {
        input = "[INSERT]"
    }
    side := "Focus: from"
    if s.Focus == state.RIGHT {
        side = "Focus: to"
    }
    pos := fmt.Sprintf("Sub:%d Pt:%d", s.SubIdx, s.CmdIdx)
    sel := "Select: " + s.Gran.String()
    morph := fmt.Sprintf("Morph: %.2f", s.Fraction)
    width := fmt.Sprintf("W:%d", s.Width)

    parts := []string{input, "Mode: " + mode, side, pos, sel, morph, width}
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}
