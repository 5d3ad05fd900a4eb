package pathdata

import "fmt"

func (p Path) segmentAt(sub, cmd int) (SubPath, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return SubPath{}, err
	}
	if cmd < 1 || cmd >= len(sp.Commands) {
		return SubPath{}, fmt.Errorf("segment %d of sub-path %d: %w", cmd, sub, ErrIndex)
	}
	return sp, nil
}

// SplitCommand splits the segment ending at command cmd at parameter t,
// inserting a split point.
func (p Path) SplitCommand(sub, cmd int, t float64) (Path, error) {
	sp, err := p.segmentAt(sub, cmd)
	if err != nil {
		return p, err
	}
	if t <= 0 || t >= 1 {
		return p, fmt.Errorf("split parameter %v: %w", t, ErrIndex)
	}
	seg := sp.Commands[cmd]
	if seg.SplitSegment {
		return p, fmt.Errorf("split command %d of sub-path %d: %w", cmd, sub, ErrSplitSegment)
	}
	a, b := seg.splitAt(t)
	a.SplitPoint, a.splitT = true, t
	b.SplitPoint = seg.SplitPoint

	out := sp.clone()
	cmds := make([]Command, 0, len(out.Commands)+1)
	cmds = append(cmds, out.Commands[:cmd]...)
	cmds = append(cmds, a, b)
	cmds = append(cmds, out.Commands[cmd+1:]...)
	out.Commands = cmds
	return p.withSubPath(sub, out), nil
}

// SplitInHalf splits the segment ending at command cmd at its midpoint.
func (p Path) SplitInHalf(sub, cmd int) (Path, error) {
	return p.SplitCommand(sub, cmd, 0.5)
}

// DeletePoint removes a split point by joining the two segments that meet
// there.
func (p Path) DeletePoint(sub, cmd int) (Path, error) {
	c, err := p.Command(sub, cmd)
	if err != nil {
		return p, err
	}
	if !c.SplitPoint {
		return p, fmt.Errorf("delete point %d of sub-path %d: %w", cmd, sub, ErrNotSplitPoint)
	}
	sp := p.SubPaths[sub].clone()
	n := len(sp.Commands) - 1
	if sp.Closed && (cmd == 0 || cmd == n) {
		// bring the start point into the interior so it can be joined
		sp = rotate(sp, 1)
		cmd = n - 1
	}
	if cmd == 0 || cmd >= n {
		return p, fmt.Errorf("delete end point %d of sub-path %d: %w", cmd, sub, ErrNotSplitPoint)
	}
	j := join(sp.Commands[cmd], sp.Commands[cmd+1])
	cmds := make([]Command, 0, len(sp.Commands)-1)
	cmds = append(cmds, sp.Commands[:cmd]...)
	cmds = append(cmds, j)
	cmds = append(cmds, sp.Commands[cmd+2:]...)
	sp.Commands = cmds
	return p.withSubPath(sub, sp), nil
}

// reverseSegments reverses a segment chain. Split flags describe end points,
// so each reversed segment takes the flag of the original start point.
func reverseSegments(segs []Command, startFlag bool) ([]Command, bool) {
	n := len(segs)
	out := make([]Command, n)
	for k := 0; k < n; k++ {
		src := segs[n-1-k]
		r := src.reversed()
		r.SplitSegment = src.SplitSegment
		if n-2-k >= 0 {
			r.SplitPoint = segs[n-2-k].SplitPoint
		} else {
			r.SplitPoint = startFlag
		}
		out[k] = r
	}
	return out, segs[n-1].SplitPoint
}

// Reverse reverses the direction of sub-path sub. Closed sub-paths keep
// their start point.
func (p Path) Reverse(sub int) (Path, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return p, err
	}
	if len(sp.Commands) < 2 {
		return p, nil
	}
	segs, flag := reverseSegments(sp.segments(), sp.Commands[0].SplitPoint)
	out := fromSegments(segs, sp.Closed, flag)
	out.Split = sp.clone().Split
	return p.withSubPath(sub, out), nil
}

// rotate moves the start of a closed sub-path forward by k points.
func rotate(sp SubPath, k int) SubPath {
	segs := sp.segments()
	n := len(segs)
	k = ((k % n) + n) % n
	rot := append(append([]Command(nil), segs[k:]...), segs[:k]...)
	out := fromSegments(rot, true, false)
	out.Split = sp.clone().Split
	return out
}

func (p Path) shift(sub, k int) (Path, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return p, err
	}
	if !sp.Closed {
		return p, fmt.Errorf("shift sub-path %d: %w", sub, ErrOpenSubPath)
	}
	return p.withSubPath(sub, rotate(sp, k)), nil
}

// ShiftBack moves the start point of a closed sub-path one point back.
func (p Path) ShiftBack(sub int) (Path, error) { return p.shift(sub, -1) }

// ShiftForward moves the start point of a closed sub-path one point forward.
func (p Path) ShiftForward(sub int) (Path, error) { return p.shift(sub, 1) }

// ShiftPointToFront makes point cmd the start point of a closed sub-path.
func (p Path) ShiftPointToFront(sub, cmd int) (Path, error) {
	if _, err := p.Command(sub, cmd); err != nil {
		return p, err
	}
	return p.shift(sub, cmd)
}

// MoveSubPath moves sub-path from to index to, shifting the others.
func (p Path) MoveSubPath(from, to int) (Path, error) {
	if _, err := p.SubPath(from); err != nil {
		return p, err
	}
	if _, err := p.SubPath(to); err != nil {
		return p, err
	}
	out := p.Clone()
	moved := out.SubPaths[from]
	rest := append(append([]SubPath(nil), out.SubPaths[:from]...), out.SubPaths[from+1:]...)
	out.SubPaths = append(append(append([]SubPath(nil), rest[:to]...), moved), rest[to:]...)
	return out, nil
}

// AppendCollapsingSubPath adds an open sub-path of n coincident points at
// the path's last point. It morphs into a matching sub-path on the other
// shape while contributing nothing visible.
func (p Path) AppendCollapsingSubPath(n int) Path {
	if n < 1 {
		return p
	}
	at := p.lastPoint()
	sp := SubPath{Commands: []Command{newMove(at, false)}}
	for i := 1; i < n; i++ {
		sp.Commands = append(sp.Commands, newLine(at, at))
	}
	out := p.Clone()
	out.SubPaths = append(out.SubPaths, sp)
	return out
}

// LongestSegment returns the index of the longest segment of sub-path sub
// that may be split, or -1 when there is none.
func (p Path) LongestSegment(sub int) int {
	sp, err := p.SubPath(sub)
	if err != nil {
		return -1
	}
	best, bestLen := -1, -1.0
	for i, c := range sp.Commands {
		if i == 0 || c.SplitSegment {
			continue
		}
		if l := c.length(); l > bestLen {
			best, bestLen = i, l
		}
	}
	return best
}
