package toolbar

import "shapeshifter/internal/actionmode"

// Action is a toolbar button: its key and label.
type Action struct {
    Key   string
    Label string
}

// RenderActions returns the toolbar buttons visible for td, in display order.
func RenderActions(td actionmode.ToolbarData) []Action {
    var out []Action
    if !td.ShouldShowActionMode() {
        return []Action{{"esc", "Start editing"}}
    }
    if td.IsSelectionMode() {
        if td.NumSubPaths() > 0 {
            out = append(out, Action{"r", "Reverse"})
        }
        if td.ShouldShowShiftSubPath() {
            out = append(out, Action{"b", "Shift back"}, Action{"f", "Shift forward"})
        }
        if td.ShouldShowSetFirstPosition() {
            out = append(out, Action{"1", "Set first position"})
        }
        if td.ShouldShowSplitInHalf() {
            out = append(out, Action{"h", "Split in half"})
        }
        if td.NumSplitSubPaths() > 0 || td.NumSplitPoints() > 0 || td.NumSegments() > 0 {
            out = append(out, Action{"x", "Delete"})
        }
        if td.ShouldShowAutoFix() {
            out = append(out, Action{"F", "Auto fix"})
        }
    }
    out = append(out, modeAction("a", "Add points", td.IsAddPointsMode()))
    out = append(out, modeAction("s", "Split subpaths", td.IsSplitSubPathsMode()))
    if td.ShouldShowPairSubPaths() {
        out = append(out, modeAction("p", "Pair subpaths", td.IsPairSubPathsMode()))
    }
    return append(out, Action{"esc", "Close"})
}

func modeAction(key, label string, on bool) Action {
    if on {
        label = "[" + label + "]"
    }
    return Action{key, label}
}
