package diff

import (
    "fmt"
    "strings"

    dmp "github.com/sergi/go-diff/diffmatchpatch"
    "shapeshifter/internal/tui/state"
)

type DiffView struct{}

func NewDiffView() DiffView { return DiffView{} }

// View renders a plain line diff of path data, one sub-path per line. For
// SideBySide it aligns two columns with a vertical separator. For Unified it
// prefixes lines with +/- markers and leaves unchanged lines indented.
func (DiffView) View(s state.UIState, before, after string) string {
    if s.View == state.SideBySide && (s.Width == 0 || s.Width >= state.Threshold(s)) {
        return sideBySide(before, after, s)
    }
    return unified(before, after)
}

// lineDiffs diffs whole lines rather than characters.
func lineDiffs(before, after string) []dmp.Diff {
    d := dmp.New()
    a, b, lines := d.DiffLinesToChars(before, after)
    diffs := d.DiffMain(a, b, false)
    return d.DiffCharsToLines(diffs, lines)
}

func splitLines(text string) []string {
    return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func unified(before, after string) string {
    var b strings.Builder
    b.WriteString("BEFORE vs AFTER (Unified)\n")
    for _, df := range lineDiffs(before, after) {
        prefix := "  "
        switch df.Type {
        case dmp.DiffDelete:
            prefix = "- "
        case dmp.DiffInsert:
            prefix = "+ "
        }
        for _, line := range splitLines(df.Text) {
            fmt.Fprintf(&b, "%s%s\n", prefix, line)
        }
    }
    return b.String()
}

func sideBySide(before, after string, s state.UIState) string {
    const sep = " │ "
    var b strings.Builder
    b.WriteString("BEFORE │ AFTER\n")
    left := splitLines(before)
    right := splitLines(after)
    max := len(left)
    if len(right) > max {
        max = len(right)
    }
    // Compute column width from total width if provided
    colWidth := 40
    if s.Width > 0 {
        colWidth = (s.Width - len(sep)) / 2
        if colWidth < 10 {
            colWidth = 10
        }
    }
    for i := 0; i < max; i++ {
        l := ""
        r := ""
        if i < len(left) {
            l = left[i]
        }
        if i < len(right) {
            r = right[i]
        }
        mark := " "
        if l != r {
            mark = "*"
        }
        fmt.Fprintf(&b, "%s%s%s%s\n", pad(clip(l, colWidth), colWidth), sep, pad(clip(r, colWidth-1), colWidth-1), mark)
    }
    return b.String()
}

func clip(s string, width int) string {
    runes := []rune(s)
    if len(runes) > width {
        return string(runes[:width])
    }
    return s
}

func pad(s string, width int) string {
    if w := len([]rune(s)); w < width {
        return s + strings.Repeat(" ", width-w)
    }
    return s
}
