package help

import (
    overlay "shapeshifter/internal/tui/widgets/helpoverlay"
    "shapeshifter/internal/tui/state"
)

// RenderHelp returns the grouped keys overlay content for the editor.
func RenderHelp(s state.UIState, actionMode string) string {
    h := overlay.NewHelpOverlay()
    return h.View(s, actionMode)
}
