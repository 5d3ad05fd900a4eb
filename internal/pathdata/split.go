package pathdata

import "fmt"

// SplitStroked cuts sub-path sub at point cmd into two open sub-paths. The
// second half is inserted directly after the first.
func (p Path) SplitStroked(sub, cmd int) (Path, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return p, err
	}
	if sp.Split != nil {
		return p, fmt.Errorf("split sub-path %d: %w", sub, ErrAlreadySplit)
	}
	n := len(sp.Commands) - 1
	if cmd < 1 || cmd >= n {
		return p, fmt.Errorf("split point %d of sub-path %d: %w", cmd, sub, ErrIndex)
	}
	segs := sp.segments()
	id := p.nextSplitID()

	first := fromSegments(segs[:cmd], false, sp.Commands[0].SplitPoint)
	first.Split = &SplitInfo{ID: id, Kind: StrokedSplit, Part: 0, Closed: sp.Closed}
	second := fromSegments(segs[cmd:], false, sp.Commands[cmd].SplitPoint)
	second.Split = &SplitInfo{ID: id, Kind: StrokedSplit, Part: 1, Closed: sp.Closed}
	return p.withSubPath(sub, first, second), nil
}

// SplitFilled cuts closed sub-path sub along the chord between points i and
// j. The half keeping the original start point stays at index sub and the
// other half follows it. Both chords are split segments.
func (p Path) SplitFilled(sub, i, j int) (Path, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return p, err
	}
	if !sp.Closed {
		return p, fmt.Errorf("split sub-path %d: %w", sub, ErrOpenSubPath)
	}
	if sp.Split != nil {
		return p, fmt.Errorf("split sub-path %d: %w", sub, ErrAlreadySplit)
	}
	n := len(sp.Commands) - 1
	if i < 0 || j < 0 || i > n || j > n {
		return p, fmt.Errorf("chord %d-%d of sub-path %d: %w", i, j, sub, ErrIndex)
	}
	i, j = i%n, j%n
	if i > j {
		i, j = j, i
	}
	if j-i < 2 || (i == 0 && j == n-1) {
		return p, fmt.Errorf("chord %d-%d of sub-path %d joins adjacent points: %w", i, j, sub, ErrIndex)
	}
	segs := sp.segments()
	vi, vj := sp.Commands[i], sp.Commands[j]
	id := p.nextSplitID()

	chordA := newLine(vi.End(), vj.End())
	chordA.SplitSegment, chordA.SplitPoint = true, vj.SplitPoint
	a := append(append(append([]Command(nil), segs[:i]...), chordA), segs[j:]...)

	chordB := newLine(vj.End(), vi.End())
	chordB.SplitSegment, chordB.SplitPoint = true, vi.SplitPoint
	b := append(append([]Command(nil), segs[i:j]...), chordB)

	first := fromSegments(a, true, false)
	first.Split = &SplitInfo{ID: id, Kind: FilledSplit, Part: 0}
	second := fromSegments(b, true, false)
	second.Split = &SplitInfo{ID: id, Kind: FilledSplit, Part: 1}
	return p.withSubPath(sub, first, second), nil
}

// DeleteSubPath merges an unsplittable sub-path back with its sibling.
func (p Path) DeleteSubPath(sub int) (Path, error) {
	sp, err := p.SubPath(sub)
	if err != nil {
		return p, err
	}
	if sp.Split == nil {
		return p, fmt.Errorf("delete sub-path %d: %w", sub, ErrNotUnsplittable)
	}
	other, ok := p.sibling(sub)
	if !ok {
		return p, fmt.Errorf("delete sub-path %d: sibling missing: %w", sub, ErrCannotUnsplit)
	}
	first, second := sub, other
	if sp.Split.Part == 1 {
		first, second = other, sub
	}
	var merged SubPath
	if sp.Split.Kind == FilledSplit {
		merged, err = mergeFilled(p.SubPaths[first], p.SubPaths[second])
	} else {
		merged, err = mergeStroked(p.SubPaths[first], p.SubPaths[second])
	}
	if err != nil {
		return p, fmt.Errorf("delete sub-path %d: %w", sub, err)
	}
	lo, hi := first, second
	if lo > hi {
		lo, hi = hi, lo
	}
	out := Path{}
	for k, s := range p.SubPaths {
		switch k {
		case lo:
			out.SubPaths = append(out.SubPaths, merged)
		case hi:
		default:
			out.SubPaths = append(out.SubPaths, s.clone())
		}
	}
	return out, nil
}

// DeleteSegment removes the split chord at command cmd, merging the filled
// split it belongs to.
func (p Path) DeleteSegment(sub, cmd int) (Path, error) {
	c, err := p.Command(sub, cmd)
	if err != nil {
		return p, err
	}
	sp := p.SubPaths[sub]
	if !c.SplitSegment || sp.Split == nil || sp.Split.Kind != FilledSplit {
		return p, fmt.Errorf("delete segment %d of sub-path %d: %w", cmd, sub, ErrNotSplitSegment)
	}
	return p.DeleteSubPath(sub)
}

// mergeStroked joins two open halves end to start, reversing halves when
// they were flipped after the split.
func mergeStroked(a, b SubPath) (SubPath, error) {
	candidates := [][2]SubPath{{a, b}, {a, reversedSub(b)}, {reversedSub(a), b}, {reversedSub(a), reversedSub(b)}}
	for _, c := range candidates {
		x, y := c[0], c[1]
		if !x.Commands[len(x.Commands)-1].End().Equals(y.Commands[0].End()) {
			continue
		}
		segs := append(x.segments(), y.segments()...)
		closed := a.Split.Closed && segs[len(segs)-1].End().Equals(segs[0].Start())
		return fromSegments(segs, closed, x.Commands[0].SplitPoint), nil
	}
	return SubPath{}, ErrCannotUnsplit
}

func reversedSub(s SubPath) SubPath {
	if len(s.Commands) < 2 {
		return s
	}
	segs, flag := reverseSegments(s.segments(), s.Commands[0].SplitPoint)
	out := fromSegments(segs, s.Closed, flag)
	out.Split = s.Split
	return out
}

// chain returns the segments of a closed sub-path in cyclic order starting
// right after its chord and ending right before it, plus the chord's index
// among the segments.
func chain(s SubPath) ([]Command, Command, int, bool) {
	segs := s.segments()
	for c, seg := range segs {
		if seg.SplitSegment {
			out := append(append([]Command(nil), segs[c+1:]...), segs[:c]...)
			return out, seg, c, true
		}
	}
	return nil, Command{}, -1, false
}

// mergeFilled removes the shared chord of two filled halves and stitches
// their remaining boundaries into one closed sub-path. The result starts at
// the first half's start point.
func mergeFilled(a, b SubPath) (SubPath, error) {
	ca, chordA, idx, okA := chain(a)
	cb, chordB, _, okB := chain(b)
	if !okA || !okB {
		return SubPath{}, ErrNotSplitSegment
	}
	switch {
	case chordB.End().Equals(chordA.Start()):
	case chordB.Start().Equals(chordA.Start()):
		cb, _ = reverseSegments(cb, chordB.SplitPoint)
	default:
		return SubPath{}, ErrCannotUnsplit
	}
	merged := append(ca, cb...)
	if len(merged) == 0 {
		return SubPath{}, ErrCannotUnsplit
	}
	// chord endpoints are no longer split-created points unless they were before
	n := len(a.Commands) - 1
	pos := (n - idx - 1) % n
	out := fromSegments(merged, true, false)
	if pos > 0 && pos < len(merged) {
		out = rotate(out, pos)
	}
	out.Split = nil
	return out, nil
}
