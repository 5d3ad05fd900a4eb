package actionmode

import (
	"errors"
	"sort"

	"shapeshifter/internal/pathdata"
)

// State is the editor state the toolbar and the path columns are derived
// from. Reducers take a State and return a new one; the receiver and the
// slices it references are never modified.
type State struct {
	Mode       ActionMode
	From       MorphableLayer
	To         MorphableLayer
	Selections []Selection
	Unpaired   *Unpaired
	// Hover is the segment previewed by split-in-half.
	Hover *Selection
	// Pending is the first point of a filled split chord.
	Pending *Selection
	Notice  string
}

// NewState returns the state for a pair of layers with no mode active.
func NewState(from, to MorphableLayer) State {
	return State{From: from, To: to}
}

// Layer returns the layer of side src.
func (s State) Layer(src ActionSource) (MorphableLayer, bool) {
	switch src {
	case From:
		return s.From, true
	case To:
		return s.To, true
	}
	return MorphableLayer{}, false
}

// Block returns the morph block of the two layers.
func (s State) Block() Block {
	return Block{LayerID: s.From.ID, From: s.From.PathData, To: s.To.PathData}
}

// Toolbar selects the toolbar inputs from s.
func (s State) Toolbar() ToolbarState {
	from, to, block := s.From, s.To, s.Block()
	return ToolbarState{
		Mode:       s.Mode,
		FromLayer:  &from,
		ToLayer:    &to,
		Selections: append([]Selection(nil), s.Selections...),
		Unpaired:   s.Unpaired,
		Block:      &block,
	}
}

// Source is the side the current selections belong to.
func (s State) Source() ActionSource {
	if len(s.Selections) == 0 {
		return NoSource
	}
	return s.Selections[0].Source
}

// Groups classifies the current selections against their layer.
func (s State) Groups() Groups {
	l, ok := s.Layer(s.Source())
	if !ok {
		return Groups{}
	}
	return Classify(s.Selections, &l)
}

// IsSelected reports whether sel is part of the selection.
func (s State) IsSelected(sel Selection) bool {
	for _, x := range s.Selections {
		if x == sel {
			return true
		}
	}
	return false
}

func (s State) setPath(src ActionSource, p pathdata.Path) State {
	switch src {
	case From:
		s.From.PathData = p
	case To:
		s.To.PathData = p
	}
	return s
}

// apply runs an edit against one side's path. Failures become the notice
// and leave the paths unchanged.
func (s State) apply(src ActionSource, edit func(pathdata.Path) (pathdata.Path, error)) (State, bool) {
	l, ok := s.Layer(src)
	if !ok {
		s.Notice = "Nothing selected"
		return s, false
	}
	p, err := edit(l.PathData)
	if err != nil {
		s.Notice = err.Error()
		return s, false
	}
	s = s.setPath(src, p)
	s.Notice = ""
	return s, true
}

func (s State) clearTransient() State {
	s.Selections = nil
	s.Hover = nil
	s.Pending = nil
	return s
}

// SetLayers replaces both layers, dropping selections that may no longer
// address anything. The mode is kept.
func SetLayers(s State, from, to MorphableLayer) State {
	s.From, s.To = from, to
	s = s.clearTransient()
	s.Unpaired = nil
	return s
}

// StartActionMode enters selection mode.
func StartActionMode(s State) State {
	if s.Mode == ModeNone {
		s.Mode = ModeSelection
		s.Notice = ""
	}
	return s
}

// CloseActionMode leaves any mode and drops all selections.
func CloseActionMode(s State) State {
	s = s.clearTransient()
	s.Unpaired = nil
	s.Mode = ModeNone
	s.Notice = ""
	return s
}

func toggleMode(s State, m ActionMode) State {
	if s.Mode == ModeNone {
		return s
	}
	s.Hover, s.Pending, s.Unpaired = nil, nil, nil
	if s.Mode == m {
		s.Mode = ModeSelection
		return s
	}
	s.Mode = m
	if m == ModePairSubPaths {
		if g := s.Groups(); len(g.SubPaths) == 1 {
			s.Unpaired = &Unpaired{Source: s.Source(), SubIdx: g.SubPaths[0]}
		}
	}
	return s
}

// ToggleSplitCommandsMode switches between add-points and selection mode.
func ToggleSplitCommandsMode(s State) State { return toggleMode(s, ModeSplitCommands) }

// ToggleSplitSubPathsMode switches between split-subpaths and selection mode.
func ToggleSplitSubPathsMode(s State) State { return toggleMode(s, ModeSplitSubPaths) }

// TogglePairSubPathsMode switches between pair-subpaths and selection mode.
// A single selected sub-path becomes the one waiting for a partner.
func TogglePairSubPathsMode(s State) State { return toggleMode(s, ModePairSubPaths) }

// ToggleSelection adds sel to the selection or removes it when present.
// Without extend the selection is replaced. Selections never span both
// sides: selecting on the other side starts over.
func ToggleSelection(s State, sel Selection, extend bool) State {
	if s.Mode == ModeNone {
		s.Mode = ModeSelection
	}
	var sels []Selection
	if extend && s.Source() == sel.Source {
		sels = append(sels, s.Selections...)
	}
	for i, x := range sels {
		if x == sel {
			s.Selections = append(sels[:i:i], sels[i+1:]...)
			return s
		}
	}
	if !extend && len(s.Selections) == 1 && s.Selections[0] == sel {
		s.Selections = nil
		return s
	}
	s.Selections = append(sels, sel)
	s.Hover = nil
	return s
}

// ClearSelections drops every selection.
func ClearSelections(s State) State {
	s.Selections = nil
	s.Hover = nil
	return s
}

func (s State) eachSelectedSubPath(edit func(pathdata.Path, int) (pathdata.Path, error)) State {
	subs := s.Groups().SubPaths
	if len(subs) == 0 {
		return s
	}
	out, _ := s.apply(s.Source(), func(p pathdata.Path) (pathdata.Path, error) {
		var err error
		for _, i := range subs {
			if p, err = edit(p, i); err != nil {
				return p, err
			}
		}
		return p, nil
	})
	return out
}

// ReverseSelectedSubPaths reverses every selected sub-path.
func ReverseSelectedSubPaths(s State) State {
	return s.eachSelectedSubPath(pathdata.Path.Reverse)
}

// ShiftBackSelectedSubPaths moves the start point of every selected
// sub-path one point back.
func ShiftBackSelectedSubPaths(s State) State {
	return s.eachSelectedSubPath(pathdata.Path.ShiftBack)
}

// ShiftForwardSelectedSubPaths moves the start point of every selected
// sub-path one point forward.
func ShiftForwardSelectedSubPaths(s State) State {
	return s.eachSelectedSubPath(pathdata.Path.ShiftForward)
}

// DeleteSelections deletes selected split points, split segments and
// unsplittable sub-paths. Other selections are ignored.
func DeleteSelections(s State) State {
	src := s.Source()
	g := s.Groups()
	if g.Len() == 0 {
		return s
	}
	out, ok := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
		var err error
		pts := append([]CommandRef(nil), g.Points...)
		sort.Slice(pts, func(i, j int) bool {
			if pts[i].SubIdx != pts[j].SubIdx {
				return pts[i].SubIdx > pts[j].SubIdx
			}
			return pts[i].CmdIdx > pts[j].CmdIdx
		})
		for _, r := range pts {
			if c, cerr := p.Command(r.SubIdx, r.CmdIdx); cerr != nil || !c.IsSplitPoint() {
				continue
			}
			if p, err = p.DeletePoint(r.SubIdx, r.CmdIdx); err != nil {
				return p, err
			}
		}
		subs := append([]int(nil), g.SubPaths...)
		for _, r := range g.Segments {
			subs = append(subs, r.SubIdx)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(subs)))
		// merging shifts later indices, so splits are resolved to ids first
		var ids []int
		seen := map[int]bool{}
		for _, i := range subs {
			sp, serr := p.SubPath(i)
			if serr != nil || !sp.IsUnsplittable() || seen[sp.Split.ID] {
				continue
			}
			seen[sp.Split.ID] = true
			ids = append(ids, sp.Split.ID)
		}
		for _, id := range ids {
			i := splitIndex(p, id)
			if i < 0 {
				continue
			}
			if p, err = p.DeleteSubPath(i); err != nil {
				return p, err
			}
		}
		return p, nil
	})
	if ok {
		out = out.clearTransient()
	}
	return out
}

// splitIndex returns the index of the first sub-path belonging to split id,
// or -1.
func splitIndex(p pathdata.Path, id int) int {
	for i, sp := range p.SubPaths {
		if sp.Split != nil && sp.Split.ID == id {
			return i
		}
	}
	return -1
}

func (s State) singlePoint() (CommandRef, bool) {
	g := s.Groups()
	if len(g.Points) != 1 || g.Len() != 1 {
		return CommandRef{}, false
	}
	return g.Points[0], true
}

// ShiftPointToFront makes the single selected point the first point of its
// closed sub-path.
func ShiftPointToFront(s State) State {
	pt, ok := s.singlePoint()
	if !ok {
		return s
	}
	src := s.Source()
	out, ok := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
		return p.ShiftPointToFront(pt.SubIdx, pt.CmdIdx)
	})
	if ok {
		out.Selections = []Selection{{Source: src, Type: PointSelection, SubIdx: pt.SubIdx}}
	}
	return out
}

// SplitInHalfHover previews the segment split-in-half would cut.
func SplitInHalfHover(s State) State {
	pt, ok := s.singlePoint()
	if !ok || pt.CmdIdx == 0 {
		return s
	}
	s.Hover = &Selection{Source: s.Source(), Type: SegmentSelection, SubIdx: pt.SubIdx, CmdIdx: pt.CmdIdx}
	return s
}

// ClearHover drops the split-in-half preview.
func ClearHover(s State) State {
	s.Hover = nil
	return s
}

// SplitInHalfClick halves the segment ending at the single selected point.
func SplitInHalfClick(s State) State {
	pt, ok := s.singlePoint()
	if !ok || pt.CmdIdx == 0 {
		return s
	}
	out, ok := s.apply(s.Source(), func(p pathdata.Path) (pathdata.Path, error) {
		return p.SplitInHalf(pt.SubIdx, pt.CmdIdx)
	})
	if ok {
		out = out.clearTransient()
	}
	return out
}

// SplitCommandClick adds a point at parameter t of the segment ending at
// command cmd. Only valid in add-points mode.
func SplitCommandClick(s State, src ActionSource, sub, cmd int, t float64) State {
	if s.Mode != ModeSplitCommands {
		return s
	}
	out, _ := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
		return p.SplitCommand(sub, cmd, t)
	})
	return out
}

// SplitSubPathClick splits a sub-path in split-subpaths mode. Stroked layers
// are cut at the clicked point. Filled layers take two clicks on the same
// sub-path, which become the ends of the splitting chord.
func SplitSubPathClick(s State, src ActionSource, sub, cmd int) State {
	if s.Mode != ModeSplitSubPaths {
		return s
	}
	l, ok := s.Layer(src)
	if !ok {
		return s
	}
	switch {
	case l.IsFilled():
		click := Selection{Source: src, Type: PointSelection, SubIdx: sub, CmdIdx: cmd}
		if s.Pending == nil || s.Pending.Source != src || s.Pending.SubIdx != sub {
			s.Pending = &click
			s.Notice = ""
			return s
		}
		if s.Pending.CmdIdx == cmd {
			s.Pending = nil
			return s
		}
		first := s.Pending.CmdIdx
		s.Pending = nil
		out, ok := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
			return p.SplitFilled(sub, first, cmd)
		})
		if ok {
			out = out.clearTransient()
		}
		return out
	case l.IsStroked():
		out, ok := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
			return p.SplitStroked(sub, cmd)
		})
		if ok {
			out = out.clearTransient()
		}
		return out
	}
	s.Notice = errNoPaint.Error()
	return s
}

var errNoPaint = errors.New("layer has neither fill nor stroke")

// PairSubPathClick pairs sub-paths across the two sides. The first click
// marks a sub-path as unpaired; a click on the other side moves the clicked
// sub-path to the unpaired sub-path's index.
func PairSubPathClick(s State, src ActionSource, sub int) State {
	if s.Mode != ModePairSubPaths {
		return s
	}
	if s.Unpaired == nil || s.Unpaired.Source == src {
		if _, ok := s.Layer(src); !ok {
			return s
		}
		s.Unpaired = &Unpaired{Source: src, SubIdx: sub}
		s.Selections = []Selection{{Source: src, Type: SubPathSelection, SubIdx: sub}}
		s.Notice = ""
		return s
	}
	target := s.Unpaired.SubIdx
	out, ok := s.apply(src, func(p pathdata.Path) (pathdata.Path, error) {
		return p.MoveSubPath(sub, target)
	})
	if ok {
		out = out.clearTransient()
		out.Unpaired = nil
	}
	return out
}

// AutoFixClick makes both shapes compatible with AutoFix.
func AutoFixClick(s State) State {
	from, to := AutoFix(s.From.PathData, s.To.PathData)
	s.From.PathData, s.To.PathData = from, to
	s = s.clearTransient()
	s.Unpaired = nil
	if c := CheckCompatible(from, to); !c.Compatible {
		s.Notice = "Auto fix could not make the shapes compatible"
	} else {
		s.Notice = ""
	}
	return s
}
