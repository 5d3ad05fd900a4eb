// Package pathdata models SVG path data as sub-paths of point commands and
// implements the structural edits used to make two shapes morphable.
//
// A Path is a value: every edit returns a new Path and leaves its receiver
// untouched, so snapshots taken by callers stay valid.
package pathdata

import (
	"errors"
	"fmt"
)

var (
	ErrIndex           = errors.New("index out of range")
	ErrSyntax          = errors.New("invalid path data")
	ErrOpenSubPath     = errors.New("sub-path is not closed")
	ErrNotSplitPoint   = errors.New("point was not added by a split")
	ErrNotUnsplittable = errors.New("sub-path was not produced by a split")
	ErrSplitSegment    = errors.New("segment is a split chord")
	ErrNotSplitSegment = errors.New("segment is not a split chord")
	ErrAlreadySplit    = errors.New("sub-path is already split")
	ErrCannotUnsplit   = errors.New("split halves no longer meet")
	ErrIncompatible    = errors.New("paths are not morph compatible")
)

// SplitKind tells how a sub-path pair was produced.
type SplitKind int

const (
	// StrokedSplit cuts a sub-path at a point into two open halves.
	StrokedSplit SplitKind = iota
	// FilledSplit cuts a closed sub-path along a chord into two closed halves.
	FilledSplit
)

// SplitInfo links the two halves of a split sub-path.
type SplitInfo struct {
	ID   int
	Kind SplitKind
	// Part is 0 for the half that kept the original start point, 1 otherwise.
	Part int
	// Closed records whether a stroked split cut a closed sub-path.
	Closed bool
}

// SubPath is a contiguous run of commands starting with a Move.
// A closed sub-path's last command ends on the Move point.
type SubPath struct {
	Commands []Command
	Closed   bool
	Split    *SplitInfo
}

// IsClosed reports whether the sub-path is closed.
func (s SubPath) IsClosed() bool { return s.Closed }

// IsUnsplittable reports whether the sub-path is one half of a split and
// can therefore be merged back into its sibling.
func (s SubPath) IsUnsplittable() bool { return s.Split != nil }

// PointCount is the number of commands, the unit compared for morphing.
func (s SubPath) PointCount() int { return len(s.Commands) }

func (s SubPath) clone() SubPath {
	out := SubPath{Closed: s.Closed, Commands: make([]Command, len(s.Commands))}
	for i, c := range s.Commands {
		out.Commands[i] = c.clone()
	}
	if s.Split != nil {
		info := *s.Split
		out.Split = &info
	}
	return out
}

// segments returns copies of every command after the Move.
func (s SubPath) segments() []Command {
	out := make([]Command, 0, len(s.Commands)-1)
	for _, c := range s.Commands[1:] {
		out = append(out, c.clone())
	}
	return out
}

// fromSegments rebuilds a sub-path from a segment chain. startFlag is the
// split flag of the first segment's start point; closed sub-paths derive it
// from the last segment.
func fromSegments(segs []Command, closed bool, startFlag bool) SubPath {
	if closed && len(segs) > 0 {
		startFlag = segs[len(segs)-1].SplitPoint
	}
	cmds := make([]Command, 0, len(segs)+1)
	cmds = append(cmds, newMove(segs[0].Start(), startFlag))
	cmds = append(cmds, segs...)
	return SubPath{Commands: cmds, Closed: closed}
}

// Path is an ordered list of sub-paths.
type Path struct {
	SubPaths []SubPath
}

// SubPathCount returns the number of sub-paths.
func (p Path) SubPathCount() int { return len(p.SubPaths) }

// SubPath returns sub-path i.
func (p Path) SubPath(i int) (SubPath, error) {
	if i < 0 || i >= len(p.SubPaths) {
		return SubPath{}, fmt.Errorf("sub-path %d: %w", i, ErrIndex)
	}
	return p.SubPaths[i], nil
}

// Command returns command j of sub-path i.
func (p Path) Command(i, j int) (Command, error) {
	sp, err := p.SubPath(i)
	if err != nil {
		return Command{}, err
	}
	if j < 0 || j >= len(sp.Commands) {
		return Command{}, fmt.Errorf("command %d of sub-path %d: %w", j, i, ErrIndex)
	}
	return sp.Commands[j], nil
}

// PointCount returns the number of points in sub-path i, or zero when the
// sub-path does not exist.
func (p Path) PointCount(i int) int {
	if i < 0 || i >= len(p.SubPaths) {
		return 0
	}
	return len(p.SubPaths[i].Commands)
}

// Clone returns a deep copy of p.
func (p Path) Clone() Path {
	out := Path{SubPaths: make([]SubPath, len(p.SubPaths))}
	for i, s := range p.SubPaths {
		out.SubPaths[i] = s.clone()
	}
	return out
}

// withSubPath returns a copy of p with sub-path i replaced by the given
// sub-paths.
func (p Path) withSubPath(i int, repl ...SubPath) Path {
	out := Path{SubPaths: make([]SubPath, 0, len(p.SubPaths)+len(repl)-1)}
	for j, s := range p.SubPaths {
		if j == i {
			out.SubPaths = append(out.SubPaths, repl...)
			continue
		}
		out.SubPaths = append(out.SubPaths, s.clone())
	}
	return out
}

// lastPoint returns the end point of the path, or the origin when empty.
func (p Path) lastPoint() Point {
	for i := len(p.SubPaths) - 1; i >= 0; i-- {
		cmds := p.SubPaths[i].Commands
		if len(cmds) > 0 {
			return cmds[len(cmds)-1].End()
		}
	}
	return Point{}
}

// nextSplitID returns an id not used by any split in p.
func (p Path) nextSplitID() int {
	id := 0
	for _, s := range p.SubPaths {
		if s.Split != nil && s.Split.ID >= id {
			id = s.Split.ID + 1
		}
	}
	return id
}

// sibling returns the index of the other half of the split sub-path i.
func (p Path) sibling(i int) (int, bool) {
	info := p.SubPaths[i].Split
	if info == nil {
		return -1, false
	}
	for j, s := range p.SubPaths {
		if j != i && s.Split != nil && s.Split.ID == info.ID {
			return j, true
		}
	}
	return -1, false
}
