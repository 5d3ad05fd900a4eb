package helpoverlay

import (
    "fmt"
    "strings"

    "shapeshifter/internal/tui/state"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns grouped keys help with the current input and action mode indicated.
func (HelpOverlay) View(s state.UIState, actionMode string) string {
    mode := "CMD"
    if s.Mode == state.INSERT {
        mode = "INSERT"
    }
    sections := []struct {
        title string
        keys  []string
    }{
        {"Navigation", []string{"tab: switch from/to", "↑/↓ or k/j: move point", "[/]: previous/next subpath", "g: cycle subpath/segment/point"}},
        {"Selection", []string{"space: toggle at cursor", "enter: select only cursor", "c: clear selections", "esc: close action mode"}},
        {"Actions", []string{"r: reverse", "b/f: shift back/forward", "1: set first position", "h: split in half", "x: delete", "F: auto fix"}},
        {"Modes", []string{"a: add points", "s: split subpaths", "p: pair subpaths"}},
        {"File", []string{"e: edit path data", "y: copy path data", "w: save project", "+/-: morph preview"}},
        {"View", []string{"d: toggle diff", "v: toggle unified/side-by-side", "?: toggle help", "q: quit"}},
    }
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Mode: %s, Action: %s)\n", mode, actionMode)
    for _, sec := range sections {
        fmt.Fprintf(&b, "\n%s:\n", sec.title)
        for _, k := range sec.keys {
            fmt.Fprintf(&b, "  %s\n", k)
        }
    }
    return b.String()
}
