package actionmode

import "shapeshifter/internal/pathdata"

// AutoFix returns copies of from and to made compatible. Sub-paths short of
// points get their longest segments halved until the counts match, missing
// sub-paths are added as collapsing sub-paths, and the to side is then
// reversed and rotated to sit closest to the from side.
func AutoFix(from, to pathdata.Path) (pathdata.Path, pathdata.Path) {
	from, to = from.Clone(), to.Clone()
	for {
		c := CheckCompatible(from, to)
		if c.Compatible {
			break
		}
		var ok bool
		if c.ErrorSide == From {
			from, ok = fillSubPath(from, c.SubIdx, c.PointsMissing)
		} else {
			to, ok = fillSubPath(to, c.SubIdx, c.PointsMissing)
		}
		if !ok {
			return from, to
		}
	}
	for i := 0; i < to.SubPathCount(); i++ {
		to = align(from, to, i)
	}
	return from, to
}

func fillSubPath(p pathdata.Path, sub, n int) (pathdata.Path, bool) {
	if sub >= p.SubPathCount() {
		return p.AppendCollapsingSubPath(n), true
	}
	for k := 0; k < n; k++ {
		cmd := p.LongestSegment(sub)
		if cmd < 0 {
			return p, false
		}
		q, err := p.SplitInHalf(sub, cmd)
		if err != nil {
			return p, false
		}
		p = q
	}
	return p, true
}

func endPoints(sp pathdata.SubPath) []pathdata.Point {
	out := make([]pathdata.Point, len(sp.Commands))
	for i, c := range sp.Commands {
		out[i] = c.End()
	}
	return out
}

// cost is the summed squared distance between a's points and b's points
// rotated by k. Only the first n points take part.
func cost(a, b []pathdata.Point, n, k int) float64 {
	total := 0.0
	for j := 0; j < n; j++ {
		p, q := a[j], b[(j+k)%n]
		dx, dy := p.X-q.X, p.Y-q.Y
		total += dx*dx + dy*dy
	}
	return total
}

// align reverses and, for closed sub-paths, rotates sub-path i of to so its
// points lie closest to those of from. Ties keep the current orientation.
func align(from, to pathdata.Path, i int) pathdata.Path {
	a, errA := from.SubPath(i)
	b, errB := to.SubPath(i)
	if errA != nil || errB != nil || len(a.Commands) != len(b.Commands) || len(b.Commands) < 2 {
		return to
	}
	closed := a.IsClosed() && b.IsClosed()
	n := len(b.Commands)
	if closed {
		// the closing point repeats the start
		n--
	}
	rev, err := to.Reverse(i)
	if err != nil {
		return to
	}
	revSub, _ := rev.SubPath(i)

	pa := endPoints(a)
	best, bestPath, bestK := cost(pa, endPoints(b), n, 0), to, 0
	candidates := []pathdata.Path{to, rev}
	for ci, cand := range []pathdata.SubPath{b, revSub} {
		pts := endPoints(cand)
		shifts := 1
		if closed {
			shifts = n
		}
		for k := 0; k < shifts; k++ {
			if c := cost(pa, pts, n, k); c < best-1e-9 {
				best, bestPath, bestK = c, candidates[ci], k
			}
		}
	}
	if bestK == 0 {
		return bestPath
	}
	out, err := bestPath.ShiftPointToFront(i, bestK)
	if err != nil {
		return bestPath
	}
	return out
}
