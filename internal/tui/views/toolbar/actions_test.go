package toolbar

import (
    "testing"

    "github.com/stretchr/testify/assert"
    "shapeshifter/internal/actionmode"
    "shapeshifter/internal/pathdata"
)

func layer(d string) *actionmode.MorphableLayer {
    return &actionmode.MorphableLayer{ID: "l", Name: "l", PathData: pathdata.MustParse(d), FillColor: "#000"}
}

func keys(as []Action) []string {
    var out []string
    for _, a := range as {
        out = append(out, a.Key)
    }
    return out
}

func TestInactiveToolbarOffersStart(t *testing.T) {
    td := actionmode.NewToolbarData(actionmode.ToolbarState{})
    assert.Equal(t, []Action{{"esc", "Start editing"}}, RenderActions(td))
}

func TestSelectionModeWithNothingSelectedOffersAutoFix(t *testing.T) {
    from, to := layer("M0 0 L10 0 L10 10 Z"), layer("M0 0 L10 10 Z")
    td := actionmode.NewToolbarData(actionmode.ToolbarState{Mode: actionmode.ModeSelection, FromLayer: from, ToLayer: to})
    assert.Equal(t, []string{"F", "a", "s", "esc"}, keys(RenderActions(td)))
}

func TestClosedSubPathSelection(t *testing.T) {
    from, to := layer("M0 0 L10 0 L10 10 Z M20 20 L30 20 L30 30 Z"), layer("M0 0 L10 10 Z")
    td := actionmode.NewToolbarData(actionmode.ToolbarState{
        Mode:       actionmode.ModeSelection,
        FromLayer:  from,
        ToLayer:    to,
        Selections: []actionmode.Selection{{Source: actionmode.From, Type: actionmode.SubPathSelection, SubIdx: 0}},
    })
    assert.Equal(t, []string{"r", "b", "f", "a", "s", "p", "esc"}, keys(RenderActions(td)))
}

func TestActiveModeIsBracketed(t *testing.T) {
    td := actionmode.NewToolbarData(actionmode.ToolbarState{Mode: actionmode.ModeSplitCommands})
    acts := RenderActions(td)
    assert.Contains(t, acts, Action{"a", "[Add points]"})
    assert.NotContains(t, keys(acts), "F")
}
