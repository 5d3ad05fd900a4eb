package state

// ToggleMode switches between CMD and INSERT modes and sets a brief notice.
func ToggleMode(s UIState) UIState {
    if s.Mode == CMD {
        s.Mode = INSERT
        s.Notice = "[INSERT]"
    } else {
        s.Mode = CMD
        s.Notice = "[CMD]"
    }
    return s
}

// ToggleView switches between Unified and SideBySide diff views.
func ToggleView(s UIState) UIState {
    if s.View == Unified {
        s.View = SideBySide
    } else {
        s.View = Unified
    }
    return s
}

// ToggleDiff shows or hides the diff panel.
func ToggleDiff(s UIState) UIState {
    s.ShowDiff = !s.ShowDiff
    return s
}

// ToggleHelp shows or hides the full help overlay.
func ToggleHelp(s UIState) UIState {
    s.ShowHelp = !s.ShowHelp
    return s
}

// Resize updates width and sets a fallback notice if too narrow for side-by-side.
// Threshold heuristic: need at least 2*MinCol plus 3 chars for separator/gutters.
func Resize(s UIState, width int) UIState {
    s.Width = width
    if s.View == SideBySide && s.Width < Threshold(s) {
        s.View = Unified
        s.Notice = "Narrow width: using unified view"
    }
    return s
}

// Threshold is the narrowest width that fits two columns.
func Threshold(s UIState) int {
    return 2*s.MinCol + 3
}

// ToggleFocus moves focus to the other path column and resets the cursor.
func ToggleFocus(s UIState) UIState {
    if s.Focus == LEFT {
        s.Focus = RIGHT
    } else {
        s.Focus = LEFT
    }
    s.SubIdx, s.CmdIdx = 0, 0
    return s
}

// MoveCursor moves the cursor by delta commands within a sub-path of n
// commands. In SUBPATH granularity the caller moves sub-paths instead.
func MoveCursor(s UIState, delta, n int) UIState {
    s.CmdIdx = clamp(s.CmdIdx+delta, n)
    return s
}

// MoveSubPath moves the cursor by delta sub-paths out of n and resets the
// command cursor.
func MoveSubPath(s UIState, delta, n int) UIState {
    s.SubIdx = clamp(s.SubIdx+delta, n)
    s.CmdIdx = 0
    return s
}

// Clamp keeps the cursor inside a path of subs sub-paths whose current
// sub-path has cmds commands.
func Clamp(s UIState, subs, cmds int) UIState {
    s.SubIdx = clamp(s.SubIdx, subs)
    s.CmdIdx = clamp(s.CmdIdx, cmds)
    return s
}

func clamp(v, n int) int {
    if v >= n {
        v = n - 1
    }
    if v < 0 {
        v = 0
    }
    return v
}

// CycleGranularity steps SUBPATH -> SEGMENT -> POINT -> SUBPATH.
func CycleGranularity(s UIState) UIState {
    s.Gran = (s.Gran + 1) % 3
    s.Notice = "Select: " + s.Gran.String()
    return s
}

// StepFraction moves the morph preview by delta, clamped to [0,1].
func StepFraction(s UIState, delta float64) UIState {
    s.Fraction += delta
    if s.Fraction < 0 {
        s.Fraction = 0
    }
    if s.Fraction > 1 {
        s.Fraction = 1
    }
    return s
}

// SetNotice replaces the notice line.
func SetNotice(s UIState, notice string) UIState {
    s.Notice = notice
    return s
}
