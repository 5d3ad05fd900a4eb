package tui

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    dmp "github.com/sergi/go-diff/diffmatchpatch"

    "shapeshifter/internal/pathdata"
)

var (
    diffDelLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
    diffAddLine  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    diffDelChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"}).Underline(true)
    diffAddChar  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Underline(true)
    faint        = lipgloss.NewStyle().Faint(true)
    tagStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"})
    tagWarnStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.AdaptiveColor{Light: "160", Dark: "203"})
)

// pathLines renders p with one sub-path per line so diffs line up by
// sub-path.
func pathLines(p pathdata.Path) string {
    lines := make([]string, 0, p.SubPathCount())
    for _, sp := range p.SubPaths {
        lines = append(lines, sp.String())
    }
    return strings.Join(lines, "\n")
}

// renderUnifiedDiff renders a simple unified diff with line- and char-level highlights.
func renderUnifiedDiff(before, after string) string {
    if before == after {
        return "No changes\n"
    }
    // Heuristic: if line counts match, do per-line char highlight; otherwise show raw blocks.
    bLines := strings.Split(before, "\n")
    aLines := strings.Split(after, "\n")
    var sb strings.Builder
    if len(bLines) == len(aLines) {
        for i := 0; i < len(bLines); i++ {
            bl := bLines[i]
            al := aLines[i]
            if bl == al {
                sb.WriteString("  ")
                sb.WriteString(faint.Render(bl))
                sb.WriteString("\n")
                continue
            }
            diffs := charDiffs(bl, al)
            sb.WriteString(diffDelLine.Render("- "))
            for _, df := range diffs {
                switch df.Type {
                case dmp.DiffDelete:
                    sb.WriteString(diffDelChar.Render(df.Text))
                case dmp.DiffEqual:
                    sb.WriteString(diffDelLine.Render(df.Text))
                }
            }
            sb.WriteString("\n")
            sb.WriteString(diffAddLine.Render("+ "))
            for _, df := range diffs {
                switch df.Type {
                case dmp.DiffInsert:
                    sb.WriteString(diffAddChar.Render(df.Text))
                case dmp.DiffEqual:
                    sb.WriteString(diffAddLine.Render(df.Text))
                }
            }
            sb.WriteString("\n")
        }
        return sb.String()
    }
    // Sub-paths were added or removed: show both blocks
    sb.WriteString(tagWarnStyle.Render("BEFORE") + "\n")
    for _, l := range bLines {
        sb.WriteString(diffDelLine.Render("- ") + l + "\n")
    }
    sb.WriteString("\n")
    sb.WriteString(tagStyle.Render("AFTER") + "\n")
    for _, l := range aLines {
        sb.WriteString(diffAddLine.Render("+ ") + l + "\n")
    }
    return sb.String()
}

// renderSideBySideDiff renders a very simple side-by-side view.
// width is the max width of each column (best-effort).
func renderSideBySideDiff(before, after string, width int) string {
    bLines := strings.Split(before, "\n")
    aLines := strings.Split(after, "\n")
    max := len(bLines)
    if len(aLines) > max {
        max = len(aLines)
    }
    pad := func(s string, n int) string {
        if w := lipgloss.Width(s); w < n {
            return s + strings.Repeat(" ", n-w)
        }
        return s
    }
    var sb strings.Builder
    sb.WriteString(pad(tagWarnStyle.Render("BEFORE"), width) + "  |  " + tagStyle.Render("AFTER") + "\n")
    for i := 0; i < max; i++ {
        var bl, al string
        if i < len(bLines) {
            bl = bLines[i]
        }
        if i < len(aLines) {
            al = aLines[i]
        }
        if bl == al {
            sb.WriteString(pad(faint.Render(bl), width) + "  |  " + faint.Render(al) + "\n")
            continue
        }
        var lbuf, rbuf strings.Builder
        for _, df := range charDiffs(bl, al) {
            switch df.Type {
            case dmp.DiffDelete:
                lbuf.WriteString(diffDelChar.Render(df.Text))
            case dmp.DiffInsert:
                rbuf.WriteString(diffAddChar.Render(df.Text))
            case dmp.DiffEqual:
                lbuf.WriteString(diffDelLine.Render(df.Text))
                rbuf.WriteString(diffAddLine.Render(df.Text))
            }
        }
        left := pad(diffDelLine.Render("- ")+lbuf.String(), width)
        right := diffAddLine.Render("+ ") + rbuf.String()
        sb.WriteString(left + "  |  " + right + "\n")
    }
    return sb.String()
}

func charDiffs(before, after string) []dmp.Diff {
    d := dmp.New()
    diffs := d.DiffMain(before, after, false)
    return d.DiffCleanupSemantic(diffs)
}
