package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const square = "M 0 0 L 10 0 L 10 10 L 0 10 Z"

func tolEqualPoint(t *testing.T, want, got Point) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-6)
	assert.InDelta(t, want.Y, got.Y, 1e-6)
}

func TestParseClosedSquare(t *testing.T) {
	p, err := Parse(square)
	require.NoError(t, err)
	require.Equal(t, 1, p.SubPathCount())
	sp := p.SubPaths[0]
	assert.True(t, sp.IsClosed())
	assert.Equal(t, 5, sp.PointCount())
	tolEqualPoint(t, Point{0, 0}, sp.Commands[4].End())
	assert.Equal(t, square, p.String())
}

func TestParseRelativeAndAxisCommands(t *testing.T) {
	p, err := Parse("m 1 1 h 4 v 4 h -4 z")
	require.NoError(t, err)
	assert.Equal(t, "M 1 1 L 5 1 L 5 5 L 1 5 Z", p.String())
}

func TestParseImplicitLineTo(t *testing.T) {
	p, err := Parse("M0 0 10 0 10 10")
	require.NoError(t, err)
	assert.Equal(t, 3, p.PointCount(0))
	assert.False(t, p.SubPaths[0].IsClosed())
	assert.Equal(t, Line, p.SubPaths[0].Commands[2].Type)
}

func TestParseMultipleSubPaths(t *testing.T) {
	p, err := Parse("M0 0 L1 0 M5 5 L6 5")
	require.NoError(t, err)
	assert.Equal(t, 2, p.SubPathCount())
	assert.Equal(t, 0, p.PointCount(2))
}

func TestParseExplicitCloseLine(t *testing.T) {
	p, err := Parse("M 0 0 L 10 0 L 10 10 L 0 0 Z")
	require.NoError(t, err)
	assert.Equal(t, 4, p.PointCount(0))
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 Z", p.String())
}

func TestParseCurves(t *testing.T) {
	p, err := Parse("M0 0 C 0 10 10 10 10 0 S 20 -10 20 0")
	require.NoError(t, err)
	c := p.SubPaths[0].Commands[2]
	assert.Equal(t, Cubic, c.Type)
	tolEqualPoint(t, Point{10, -10}, c.Points[1])
	assert.Equal(t, "M 0 0 C 0 10 10 10 10 0 C 10 -10 20 -10 20 0", p.String())

	q, err := Parse("M0 0 Q 5 5 10 0 T 20 0")
	require.NoError(t, err)
	tolEqualPoint(t, Point{15, -5}, q.SubPaths[0].Commands[2].Points[1])
}

func TestParseArcBecomesCubics(t *testing.T) {
	p, err := Parse("M 0 0 A 5 5 0 0 1 10 0")
	require.NoError(t, err)
	cmds := p.SubPaths[0].Commands
	require.Greater(t, len(cmds), 1)
	for _, c := range cmds[1:] {
		assert.Equal(t, Cubic, c.Type)
	}
	tolEqualPoint(t, Point{10, 0}, cmds[len(cmds)-1].End())

	flat, err := Parse("M0 0 a5 5 0 1010 0")
	require.NoError(t, err)
	tolEqualPoint(t, Point{10, 0}, flat.SubPaths[0].Commands[len(flat.SubPaths[0].Commands)-1].End())
}

func TestParseErrors(t *testing.T) {
	for _, d := range []string{"L 1 2", "M 1", "M 0 0 X 1 1", "5 5"} {
		_, err := Parse(d)
		assert.ErrorIs(t, err, ErrSyntax, d)
	}
}

func TestAccessorsRejectBadIndices(t *testing.T) {
	p := MustParse(square)
	_, err := p.SubPath(3)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.Command(0, 9)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.Command(-1, 0)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestSplitInHalfAndDeletePoint(t *testing.T) {
	p := MustParse(square)
	split, err := p.SplitInHalf(0, 1)
	require.NoError(t, err)
	require.Equal(t, 6, split.PointCount(0))
	c, _ := split.Command(0, 1)
	assert.True(t, c.IsSplitPoint())
	tolEqualPoint(t, Point{5, 0}, c.End())
	c, _ = split.Command(0, 2)
	assert.False(t, c.IsSplitPoint())

	// the receiver is untouched
	assert.Equal(t, 5, p.PointCount(0))

	joined, err := split.DeletePoint(0, 1)
	require.NoError(t, err)
	assert.Equal(t, square, joined.String())
}

func TestDeletePointRestoresCubic(t *testing.T) {
	p := MustParse("M 0 0 C 0 10 10 10 10 0")
	split, err := p.SplitCommand(0, 1, 0.3)
	require.NoError(t, err)
	joined, err := split.DeletePoint(0, 1)
	require.NoError(t, err)
	want := p.SubPaths[0].Commands[1]
	got := joined.SubPaths[0].Commands[1]
	require.Equal(t, Cubic, got.Type)
	for i := range want.Points {
		tolEqualPoint(t, want.Points[i], got.Points[i])
	}
}

func TestDeletePointRequiresSplitPoint(t *testing.T) {
	_, err := MustParse(square).DeletePoint(0, 2)
	assert.ErrorIs(t, err, ErrNotSplitPoint)
}

func TestSplitCommandRejectsBadInput(t *testing.T) {
	p := MustParse(square)
	_, err := p.SplitCommand(0, 0, 0.5)
	assert.ErrorIs(t, err, ErrIndex)
	_, err = p.SplitCommand(0, 1, 1)
	assert.ErrorIs(t, err, ErrIndex)
}

func TestReverse(t *testing.T) {
	open, err := MustParse("M 0 0 L 10 0 L 10 10").Reverse(0)
	require.NoError(t, err)
	assert.Equal(t, "M 10 10 L 10 0 L 0 0", open.String())

	closed, err := MustParse(square).Reverse(0)
	require.NoError(t, err)
	assert.Equal(t, "M 0 0 L 0 10 L 10 10 L 10 0 Z", closed.String())
}

func TestReverseCarriesSplitPoints(t *testing.T) {
	p, err := MustParse(square).SplitInHalf(0, 1)
	require.NoError(t, err)
	r, err := p.Reverse(0)
	require.NoError(t, err)
	c, _ := r.Command(0, 4)
	tolEqualPoint(t, Point{5, 0}, c.End())
	assert.True(t, c.IsSplitPoint())
	for _, i := range []int{0, 1, 2, 3, 5} {
		c, _ := r.Command(0, i)
		assert.False(t, c.IsSplitPoint(), "command %d", i)
	}
}

func TestShift(t *testing.T) {
	p := MustParse(square)
	fwd, err := p.ShiftForward(0)
	require.NoError(t, err)
	assert.Equal(t, "M 10 0 L 10 10 L 0 10 L 0 0 Z", fwd.String())

	back, err := p.ShiftBack(0)
	require.NoError(t, err)
	assert.Equal(t, "M 0 10 L 0 0 L 10 0 L 10 10 Z", back.String())

	front, err := p.ShiftPointToFront(0, 2)
	require.NoError(t, err)
	assert.Equal(t, "M 10 10 L 0 10 L 0 0 L 10 0 Z", front.String())

	_, err = MustParse("M 0 0 L 10 0 L 10 10").ShiftForward(0)
	assert.ErrorIs(t, err, ErrOpenSubPath)
}

func TestSplitStrokedAndUnsplit(t *testing.T) {
	p := MustParse("M 0 0 L 10 0 L 20 0 L 30 0")
	split, err := p.SplitStroked(0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, split.SubPathCount())
	assert.Equal(t, "M 0 0 L 10 0 L 20 0 M 20 0 L 30 0", split.String())
	assert.True(t, split.SubPaths[0].IsUnsplittable())
	assert.True(t, split.SubPaths[1].IsUnsplittable())

	merged, err := split.DeleteSubPath(1)
	require.NoError(t, err)
	assert.Equal(t, p.String(), merged.String())
	assert.False(t, merged.SubPaths[0].IsUnsplittable())
}

func TestSplitStrokedClosedRestoresClosure(t *testing.T) {
	p := MustParse(square)
	split, err := p.SplitStroked(0, 2)
	require.NoError(t, err)
	assert.False(t, split.SubPaths[0].IsClosed())
	assert.False(t, split.SubPaths[1].IsClosed())
	merged, err := split.DeleteSubPath(0)
	require.NoError(t, err)
	assert.Equal(t, square, merged.String())
}

func TestSplitFilledAndUnsplit(t *testing.T) {
	p := MustParse(square)
	split, err := p.SplitFilled(0, 0, 2)
	require.NoError(t, err)
	require.Equal(t, 2, split.SubPathCount())
	assert.Equal(t, "M 0 0 L 10 10 L 0 10 Z", split.SubPaths[0].String())
	assert.Equal(t, "M 0 0 L 10 0 L 10 10 Z", split.SubPaths[1].String())
	chord, _ := split.Command(0, 1)
	assert.True(t, chord.IsSplitSegment())

	merged, err := split.DeleteSegment(0, 1)
	require.NoError(t, err)
	assert.Equal(t, square, merged.String())

	_, err = split.DeleteSegment(0, 2)
	assert.ErrorIs(t, err, ErrNotSplitSegment)
}

func TestSplitFilledAfterReverse(t *testing.T) {
	split, err := MustParse(square).SplitFilled(0, 1, 3)
	require.NoError(t, err)
	rev, err := split.Reverse(1)
	require.NoError(t, err)
	merged, err := rev.DeleteSubPath(1)
	require.NoError(t, err)
	require.Equal(t, 1, merged.SubPathCount())
	assert.Equal(t, 5, merged.PointCount(0))
	assert.True(t, merged.SubPaths[0].IsClosed())
}

func TestSplitFilledRejectsAdjacentPoints(t *testing.T) {
	p := MustParse(square)
	for _, c := range [][2]int{{0, 1}, {0, 3}, {2, 3}} {
		_, err := p.SplitFilled(0, c[0], c[1])
		assert.ErrorIs(t, err, ErrIndex, "%v", c)
	}
	_, err := MustParse("M 0 0 L 10 0 L 10 10 L 0 10").SplitFilled(0, 0, 2)
	assert.ErrorIs(t, err, ErrOpenSubPath)
}

func TestDeleteSubPathRequiresSplit(t *testing.T) {
	_, err := MustParse(square).DeleteSubPath(0)
	assert.ErrorIs(t, err, ErrNotUnsplittable)
}

func TestMoveSubPath(t *testing.T) {
	p := MustParse("M0 0 L1 0 M5 5 L6 5 M9 9 L10 9")
	out, err := p.MoveSubPath(2, 0)
	require.NoError(t, err)
	assert.Equal(t, "M 9 9 L 10 9 M 0 0 L 1 0 M 5 5 L 6 5", out.String())
}

func TestAppendCollapsingSubPath(t *testing.T) {
	p := MustParse("M 0 0 L 10 0").AppendCollapsingSubPath(3)
	require.Equal(t, 2, p.SubPathCount())
	assert.Equal(t, 3, p.PointCount(1))
	for _, c := range p.SubPaths[1].Commands {
		tolEqualPoint(t, Point{10, 0}, c.End())
	}
}

func TestLongestSegment(t *testing.T) {
	p := MustParse("M 0 0 L 1 0 L 11 0 L 12 0")
	assert.Equal(t, 2, p.LongestSegment(0))
	assert.Equal(t, -1, p.LongestSegment(4))
}

func TestInterpolate(t *testing.T) {
	from := MustParse("M 0 0 L 10 0")
	to := MustParse("M 0 10 L 10 10")
	mid, err := Interpolate(from, to, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "M 0 5 L 10 5", mid.String())

	curve := MustParse("M 0 10 C 0 20 10 20 10 10")
	mixed, err := Interpolate(from, curve, 0.5)
	require.NoError(t, err)
	assert.Equal(t, Cubic, mixed.SubPaths[0].Commands[1].Type)

	_, err = Interpolate(from, MustParse("M 0 0 L 1 1 L 2 2"), 0.5)
	assert.ErrorIs(t, err, ErrIncompatible)
}

func TestInterpolateEndpointsRejectIncompatible(t *testing.T) {
	tri := MustParse("M 0 0 L 10 0 L 10 10 Z")
	sq := MustParse("M 0 0 L 10 0 L 10 10 L 0 10 Z")
	for _, f := range []float64{-1, 0, 0.5, 1, 2} {
		_, err := Interpolate(tri, sq, f)
		assert.ErrorIs(t, err, ErrIncompatible, "f=%v", f)
	}
	start, err := Interpolate(sq, sq, 0)
	require.NoError(t, err)
	assert.Equal(t, sq.String(), start.String())
}
