package actionmode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shapeshifter/internal/pathdata"
)

const (
	square   = "M 0 0 L 10 0 L 10 10 L 0 10 Z"
	triangle = "M 0 0 L 10 0 L 10 10 Z"
	polyline = "M 0 0 L 10 0 L 10 10"
)

func filledLayer(d string) *MorphableLayer {
	return &MorphableLayer{ID: "l", Name: "shape", PathData: pathdata.MustParse(d), FillColor: "#000"}
}

func strokedLayer(d string) *MorphableLayer {
	return &MorphableLayer{ID: "l", Name: "line", PathData: pathdata.MustParse(d), FillColor: "none", StrokeColor: "#000"}
}

func toolbar(mode ActionMode, from, to *MorphableLayer, sels ...Selection) ToolbarData {
	block := &Block{From: from.PathData, To: to.PathData}
	return NewToolbarData(ToolbarState{Mode: mode, FromLayer: from, ToLayer: to, Selections: sels, Block: block})
}

func point(src ActionSource, sub, cmd int) Selection {
	return Selection{Source: src, Type: PointSelection, SubIdx: sub, CmdIdx: cmd}
}

func subPath(src ActionSource, sub int) Selection {
	return Selection{Source: src, Type: SubPathSelection, SubIdx: sub}
}

func segment(src ActionSource, sub, cmd int) Selection {
	return Selection{Source: src, Type: SegmentSelection, SubIdx: sub, CmdIdx: cmd}
}

func TestClassifySingleKind(t *testing.T) {
	l := filledLayer(square)
	g := Classify([]Selection{point(From, 0, 1), point(From, 0, 3)}, l)
	assert.Empty(t, g.SubPaths)
	assert.Empty(t, g.Segments)
	assert.Equal(t, []CommandRef{{0, 1}, {0, 3}}, g.Points)

	g = Classify([]Selection{subPath(From, 2), subPath(From, 0)}, l)
	assert.Equal(t, []int{2, 0}, g.SubPaths)
	assert.Empty(t, g.Points)

	assert.Equal(t, 0, Classify(nil, l).Len())
}

func TestClassifySegmentsNeedFilledSplitSegment(t *testing.T) {
	split, err := pathdata.MustParse(square).SplitFilled(0, 0, 2)
	require.NoError(t, err)
	l := &MorphableLayer{PathData: split, FillColor: "red"}

	g := Classify([]Selection{segment(From, 0, 1), segment(From, 0, 2), segment(From, 7, 1)}, l)
	assert.Equal(t, []CommandRef{{0, 1}}, g.Segments)

	l.FillColor = "none"
	assert.Empty(t, Classify([]Selection{segment(From, 0, 1)}, l).Segments)
	assert.Empty(t, Classify([]Selection{segment(From, 0, 1)}, nil).Segments)
}

func TestCheckCompatibleEqualStructure(t *testing.T) {
	c := CheckCompatible(pathdata.MustParse(square), pathdata.MustParse("M 5 5 L 6 5 L 6 6 L 5 6 Z"))
	assert.True(t, c.Compatible)
	assert.Equal(t, NoSource, c.ErrorSide)
	assert.Equal(t, 0, c.PointsMissing)

	assert.True(t, CheckCompatible(pathdata.Path{}, pathdata.Path{}).Compatible)
	assert.True(t, CheckBlock(nil).Compatible)
}

func TestCheckCompatibleReportsFewerSide(t *testing.T) {
	short := pathdata.MustParse("M 0 0 L 1 0 M 5 5 L 6 5")
	long := pathdata.MustParse("M 0 0 L 1 0 M 5 5 L 6 5 L 7 5 L 8 5")

	c := CheckCompatible(short, long)
	assert.Equal(t, Compatibility{ErrorSide: From, SubIdx: 1, PointsMissing: 2}, c)

	c = CheckCompatible(long, short)
	assert.Equal(t, Compatibility{ErrorSide: To, SubIdx: 1, PointsMissing: 2}, c)
}

func TestCheckCompatibleMissingSubPath(t *testing.T) {
	two := pathdata.MustParse("M 0 0 L 1 0 M 5 5 L 6 5 L 7 5")
	one := pathdata.MustParse("M 0 0 L 1 0")
	assert.Equal(t, Compatibility{ErrorSide: To, SubIdx: 1, PointsMissing: 3}, CheckCompatible(two, one))
	assert.Equal(t, Compatibility{ErrorSide: From, SubIdx: 0, PointsMissing: 2}, CheckCompatible(pathdata.Path{}, one))
}

func TestToolbarEmptySelectionMode(t *testing.T) {
	td := toolbar(ModeSelection, filledLayer(square), filledLayer(square))
	assert.Equal(t, "Select something below to edit its properties", td.Title())
	assert.Equal(t, "", td.Subtitle())
	assert.True(t, td.ShouldShowAutoFix())
	assert.True(t, td.ShouldShowActionMode())
	assert.False(t, td.ShouldShowPairSubPaths())
	assert.False(t, td.ShouldShowSetFirstPosition())
	assert.False(t, td.ShouldShowShiftSubPath())
	assert.False(t, td.ShouldShowSplitInHalf())
	assert.Equal(t, "active", td.ActiveState())
}

func TestToolbarNoModeNoLayers(t *testing.T) {
	td := NewToolbarData(ToolbarState{Selections: []Selection{point(To, 0, 1)}})
	assert.Equal(t, "Shape Shifter", td.Title())
	assert.Equal(t, 0, td.NumSelections())
	assert.False(t, td.ShouldShowAutoFix())
	assert.False(t, td.ShouldShowActionMode())
	assert.Equal(t, "inactive", td.ActiveState())
}

func TestToolbarTitles(t *testing.T) {
	three := filledLayer("M 0 0 L 1 0 Z M 5 5 L 6 5 Z M 9 9 L 10 9 Z")
	other := filledLayer(square)

	td := toolbar(ModeSelection, three, other, subPath(From, 0), subPath(From, 1), subPath(From, 2))
	assert.Equal(t, "3 subpaths selected", td.Title())
	assert.False(t, td.ShouldShowAutoFix())

	td = toolbar(ModeSelection, three, other, subPath(From, 1))
	assert.Equal(t, "1 subpath selected", td.Title())

	td = toolbar(ModeSelection, three, other, point(From, 0, 1))
	assert.Equal(t, "1 point selected", td.Title())
	td = toolbar(ModeSelection, three, other, point(From, 0, 1), point(From, 1, 1))
	assert.Equal(t, "2 points selected", td.Title())

	split, err := pathdata.MustParse(square).SplitFilled(0, 0, 2)
	require.NoError(t, err)
	sl := &MorphableLayer{PathData: split, FillColor: "#fff"}
	td = toolbar(ModeSelection, sl, other, segment(From, 0, 1))
	assert.Equal(t, "1 segment selected", td.Title())

	for mode, want := range map[ActionMode]string{
		ModeSplitCommands: "Add points",
		ModeSplitSubPaths: "Split subpaths",
		ModePairSubPaths:  "Pair subpaths",
	} {
		assert.Equal(t, want, toolbar(mode, three, other, subPath(From, 0)).Title())
	}
}

func TestToolbarPairSubtitle(t *testing.T) {
	from, to := filledLayer(square), filledLayer(square)
	ts := ToolbarState{Mode: ModePairSubPaths, FromLayer: from, ToLayer: to,
		Selections: []Selection{subPath(From, 0)}, Unpaired: &Unpaired{Source: From}}
	assert.Equal(t, "Pair the selected subpath with a corresponding subpath on the right", NewToolbarData(ts).Subtitle())

	ts.Unpaired = &Unpaired{Source: To}
	ts.Selections = []Selection{subPath(To, 0)}
	assert.Equal(t, "Pair the selected subpath with a corresponding subpath on the left", NewToolbarData(ts).Subtitle())

	ts.Unpaired = nil
	assert.Equal(t, "Select a subpath", NewToolbarData(ts).Subtitle())

	// unpaired is only meaningful in pair mode
	ts.Mode = ModeSelection
	ts.Unpaired = &Unpaired{Source: From}
	assert.Equal(t, "", NewToolbarData(ts).Subtitle())
}

func TestToolbarIncompatibleSubtitle(t *testing.T) {
	td := toolbar(ModeSelection, filledLayer(square), filledLayer(triangle))
	assert.Equal(t, "Add 1 point to the subpath on the right", td.Subtitle())

	td = toolbar(ModeSelection, filledLayer("M 0 0 L 10 0 Z"), filledLayer(square))
	assert.Equal(t, "Add 2 points to the subpath on the left", td.Subtitle())

	td = toolbar(ModeNone, filledLayer(square), filledLayer(triangle))
	assert.Equal(t, "", td.Subtitle())
}

func TestToolbarModeSubtitles(t *testing.T) {
	td := toolbar(ModeSplitCommands, filledLayer(square), filledLayer(square))
	assert.Equal(t, "Click along the edge of a subpath to add a point", td.Subtitle())

	td = toolbar(ModeSplitSubPaths, filledLayer(square), filledLayer(square), subPath(From, 0))
	assert.Equal(t, "Draw a line across a subpath to split it into 2", td.Subtitle())

	td = toolbar(ModeSplitSubPaths, strokedLayer(polyline), strokedLayer(polyline), subPath(To, 0))
	assert.Equal(t, "Click along the edge of a subpath to split it into 2", td.Subtitle())
}

func TestToolbarSetFirstPosition(t *testing.T) {
	closed, open := filledLayer(square), strokedLayer(polyline)

	td := toolbar(ModeSelection, closed, closed, point(From, 0, 2))
	assert.True(t, td.ShouldShowSetFirstPosition())
	assert.True(t, td.ShouldShowSplitInHalf())

	td = toolbar(ModeSelection, closed, closed, point(From, 0, 0))
	assert.False(t, td.ShouldShowSetFirstPosition())
	assert.False(t, td.ShouldShowSplitInHalf())

	td = toolbar(ModeSelection, open, open, point(To, 0, 2))
	assert.False(t, td.ShouldShowSetFirstPosition())
	assert.True(t, td.ShouldShowSplitInHalf())

	td = toolbar(ModeSelection, closed, closed, point(From, 0, 1), point(From, 0, 2))
	assert.False(t, td.ShouldShowSetFirstPosition())
	assert.False(t, td.ShouldShowSplitInHalf())
}

func TestToolbarShiftSubPath(t *testing.T) {
	mixed := filledLayer("M 0 0 L 1 0 M 5 5 L 6 5 L 6 6 Z")
	td := toolbar(ModeSelection, mixed, mixed, subPath(From, 1), subPath(From, 0))
	assert.True(t, td.ShouldShowShiftSubPath())
	td = toolbar(ModeSelection, mixed, mixed, subPath(From, 0), subPath(From, 1))
	assert.False(t, td.ShouldShowShiftSubPath())
}

func TestToolbarPairSubPathsVisibility(t *testing.T) {
	single := filledLayer(square)
	for _, mode := range []ActionMode{ModeSelection, ModeSplitCommands, ModePairSubPaths} {
		td := toolbar(mode, single, single, subPath(From, 0))
		assert.False(t, td.ShouldShowPairSubPaths(), mode.String())
	}

	multi := filledLayer("M 0 0 L 1 0 Z M 5 5 L 6 5 Z")
	assert.True(t, toolbar(ModeSelection, multi, single, subPath(From, 0)).ShouldShowPairSubPaths())
	assert.False(t, toolbar(ModeSelection, multi, single, subPath(From, 0), subPath(From, 1)).ShouldShowPairSubPaths())
	assert.False(t, toolbar(ModeSelection, multi, single, point(From, 0, 1)).ShouldShowPairSubPaths())
	assert.True(t, toolbar(ModeSplitCommands, multi, single, point(From, 0, 1)).ShouldShowPairSubPaths())
}

func TestToolbarSplitCounts(t *testing.T) {
	p, err := pathdata.MustParse(square).SplitInHalf(0, 1)
	require.NoError(t, err)
	p, err = p.SplitStroked(0, 3)
	require.NoError(t, err)
	l := &MorphableLayer{PathData: p, StrokeColor: "#000"}
	other := filledLayer("M 0 0 L 1 0 M 2 2 L 3 3")

	td := toolbar(ModeSelection, l, other, subPath(From, 0), subPath(From, 1))
	assert.Equal(t, 2, td.NumSplitSubPaths())

	td = toolbar(ModeSelection, l, other, point(From, 0, 1), point(From, 0, 2))
	assert.Equal(t, 1, td.NumSplitPoints())
	assert.Equal(t, 2, td.NumPoints())
}

func TestToolbarDataIsASnapshot(t *testing.T) {
	l := filledLayer(square)
	sels := []Selection{point(From, 0, 1)}
	td := toolbar(ModeSelection, l, l, sels...)
	sels[0].CmdIdx = 3
	got := td.Selections()
	assert.Equal(t, 1, got[0].CmdIdx)
	got[0].CmdIdx = 4
	assert.Equal(t, 1, td.Selections()[0].CmdIdx)
	assert.Equal(t, "shape", td.LayerName())
}

func TestLayerPaint(t *testing.T) {
	assert.True(t, MorphableLayer{FillColor: "#123"}.IsFilled())
	assert.False(t, MorphableLayer{FillColor: "None"}.IsFilled())
	assert.False(t, MorphableLayer{}.IsStroked())
	assert.True(t, MorphableLayer{StrokeColor: "black"}.IsStroked())
}
