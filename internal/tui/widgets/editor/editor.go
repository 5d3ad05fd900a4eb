package editor

import (
    "fmt"
    "strings"

    "shapeshifter/internal/tui/state"
)

type Editor struct{}

func NewEditor() Editor { return Editor{} }

// View renders the path data prompt for the focused side. input is the
// already rendered text input; errMsg is the last parse error, if any.
func (Editor) View(s state.UIState, input, errMsg string) string {
    header := "[CMD]"
    if s.Mode == state.INSERT {
        header = "[INSERT]"
    }
    side := "from"
    if s.Focus == state.RIGHT {
        side = "to"
    }
    var b strings.Builder
    fmt.Fprintf(&b, "%s  Edit %s path data (enter: apply, esc: cancel)\n", header, side)
    fmt.Fprintf(&b, "%s\n", input)
    if errMsg != "" {
        fmt.Fprintf(&b, "! %s\n", errMsg)
    }
    return b.String()
}
