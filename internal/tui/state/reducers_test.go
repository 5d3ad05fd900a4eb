package state

import "testing"

func TestToggleModeSetsNotice(t *testing.T) {
    s := UIState{Mode: CMD}
    s = ToggleMode(s)
    if s.Mode != INSERT || s.Notice == "" { t.Fatalf("expected INSERT mode and notice") }
    s = ToggleMode(s)
    if s.Mode != CMD || s.Notice == "" { t.Fatalf("expected CMD mode and notice") }
}

func TestToggleView(t *testing.T) {
    s := UIState{View: Unified}
    s = ToggleView(s)
    if s.View != SideBySide { t.Fatalf("expected SideBySide view") }
}

func TestToggleDiffAndHelp(t *testing.T) {
    s := ToggleHelp(ToggleDiff(UIState{}))
    if !s.ShowDiff || !s.ShowHelp { t.Fatalf("expected diff and help shown") }
}

func TestResizeFallbackToUnified(t *testing.T) {
    s := UIState{View: SideBySide, MinCol: 20}
    s = Resize(s, 30) // threshold = 2*20+3 = 43; 30 < 43 => unified
    if s.View != Unified { t.Fatalf("expected Unified after resize fallback") }
    if s.Notice == "" { t.Fatalf("expected fallback notice to be set") }
}

func TestToggleFocusResetsCursor(t *testing.T) {
    s := UIState{SubIdx: 2, CmdIdx: 3}
    s = ToggleFocus(s)
    if s.Focus != RIGHT || s.SubIdx != 0 || s.CmdIdx != 0 { t.Fatalf("expected RIGHT focus with cursor reset, got %+v", s) }
    s = ToggleFocus(s)
    if s.Focus != LEFT { t.Fatalf("expected LEFT focus") }
}

func TestCursorClamps(t *testing.T) {
    s := UIState{}
    s = MoveCursor(s, -1, 5)
    if s.CmdIdx != 0 { t.Fatalf("expected cursor to stay at 0") }
    s = MoveCursor(s, 9, 5)
    if s.CmdIdx != 4 { t.Fatalf("expected cursor clamped to 4, got %d", s.CmdIdx) }
    s = MoveSubPath(s, 1, 3)
    if s.SubIdx != 1 || s.CmdIdx != 0 { t.Fatalf("expected sub-path 1 with cursor reset") }
    s = Clamp(UIState{SubIdx: 7, CmdIdx: 7}, 2, 3)
    if s.SubIdx != 1 || s.CmdIdx != 2 { t.Fatalf("unexpected clamp %+v", s) }
    s = Clamp(s, 0, 0)
    if s.SubIdx != 0 || s.CmdIdx != 0 { t.Fatalf("expected empty path to clamp to 0") }
}

func TestCycleGranularity(t *testing.T) {
    s := UIState{}
    for _, want := range []Granularity{SEGMENT, POINT, SUBPATH} {
        s = CycleGranularity(s)
        if s.Gran != want { t.Fatalf("expected %v, got %v", want, s.Gran) }
    }
    if s.Notice != "Select: subpath" { t.Fatalf("unexpected notice %q", s.Notice) }
}

func TestStepFraction(t *testing.T) {
    s := StepFraction(UIState{}, -0.1)
    if s.Fraction != 0 { t.Fatalf("expected 0") }
    s = StepFraction(UIState{Fraction: 0.95}, 0.1)
    if s.Fraction != 1 { t.Fatalf("expected 1") }
}
