package actionmode

import "fmt"

// Toolbar background colours for the inactive and active action mode.
const (
	InactiveColor = "#607D8B"
	ActiveColor   = "#2979FF"
)

// Unpaired is the sub-path waiting for a partner in pair mode.
type Unpaired struct {
	Source ActionSource
	SubIdx int
}

// ToolbarState is everything the toolbar is derived from.
type ToolbarState struct {
	Mode       ActionMode
	FromLayer  *MorphableLayer
	ToLayer    *MorphableLayer
	Selections []Selection
	Unpaired   *Unpaired
	Block      *Block
}

// ActiveState is "inactive" when no action mode is running, "active"
// otherwise.
func (ts ToolbarState) ActiveState() string {
	if ts.Mode == ModeNone {
		return "inactive"
	}
	return "active"
}

// ToolbarData is an immutable snapshot of the toolbar. Build a new one on
// every change of its ToolbarState.
type ToolbarData struct {
	mode       ActionMode
	selections []Selection
	compat     Compatibility

	layerName string
	groups    Groups
	filled    bool
	stroked   bool

	numSplitSubPaths     int
	numSplitPoints       int
	showSetFirstPosition bool
	showShiftSubPath     bool
	showSplitInHalf      bool
	showPairSubPaths     bool
	unpairedSource       ActionSource
}

// NewToolbarData projects ts into a toolbar snapshot. All selections are
// assumed to belong to the side of the first one.
func NewToolbarData(ts ToolbarState) ToolbarData {
	td := ToolbarData{
		mode:       ts.Mode,
		selections: append([]Selection(nil), ts.Selections...),
		compat:     CheckBlock(ts.Block),
	}
	if ts.Mode == ModePairSubPaths && ts.Unpaired != nil {
		td.unpairedSource = ts.Unpaired.Source
	}
	if len(ts.Selections) == 0 {
		return td
	}
	layer := ts.FromLayer
	if ts.Selections[0].Source == To {
		layer = ts.ToLayer
	}
	if layer == nil {
		return td
	}
	td.layerName = layer.Name
	td.filled = layer.IsFilled()
	td.stroked = layer.IsStroked()
	td.groups = Classify(ts.Selections, layer)
	path := layer.PathData

	for _, i := range td.groups.SubPaths {
		if sp, err := path.SubPath(i); err == nil && sp.IsUnsplittable() {
			td.numSplitSubPaths++
		}
	}
	for _, p := range td.groups.Points {
		if c, err := path.Command(p.SubIdx, p.CmdIdx); err == nil && c.IsSplitPoint() {
			td.numSplitPoints++
		}
	}
	if pts := td.groups.Points; len(pts) == 1 && pts[0].CmdIdx != 0 {
		td.showSplitInHalf = true
		if sp, err := path.SubPath(pts[0].SubIdx); err == nil && sp.IsClosed() {
			td.showSetFirstPosition = true
		}
	}
	if subs := td.groups.SubPaths; len(subs) > 0 {
		if sp, err := path.SubPath(subs[0]); err == nil && sp.IsClosed() {
			td.showShiftSubPath = true
		}
	}
	if ts.FromLayer != nil && ts.ToLayer != nil &&
		ts.FromLayer.PathData.SubPathCount() == 1 && ts.ToLayer.PathData.SubPathCount() == 1 {
		td.showPairSubPaths = false
	} else {
		td.showPairSubPaths = td.NumSubPaths() == 1 || td.NumSegments() > 0 || !td.IsSelectionMode()
	}
	return td
}

// Mode is the action mode the snapshot was built in.
func (td ToolbarData) Mode() ActionMode { return td.mode }

// Selections returns a copy of the selections the snapshot was built from.
func (td ToolbarData) Selections() []Selection {
	return append([]Selection(nil), td.selections...)
}

// LayerName is the name of the layer the selections belong to.
func (td ToolbarData) LayerName() string { return td.layerName }

// Compatibility is the compatibility of the block the snapshot was built
// with.
func (td ToolbarData) Compatibility() Compatibility { return td.compat }

// Groups returns a copy of the classified selections.
func (td ToolbarData) Groups() Groups {
	return Groups{
		SubPaths: append([]int(nil), td.groups.SubPaths...),
		Segments: append([]CommandRef(nil), td.groups.Segments...),
		Points:   append([]CommandRef(nil), td.groups.Points...),
	}
}

// Selection counts. NumSplitSubPaths counts selected sub-paths produced
// by a split, and NumSplitPoints counts selected split points.
func (td ToolbarData) NumSelections() int    { return td.groups.Len() }
func (td ToolbarData) NumSubPaths() int      { return len(td.groups.SubPaths) }
func (td ToolbarData) NumSegments() int      { return len(td.groups.Segments) }
func (td ToolbarData) NumPoints() int        { return len(td.groups.Points) }
func (td ToolbarData) NumSplitSubPaths() int { return td.numSplitSubPaths }
func (td ToolbarData) NumSplitPoints() int   { return td.numSplitPoints }

// Action visibility flags, fixed when the snapshot is built.
func (td ToolbarData) ShouldShowSetFirstPosition() bool { return td.showSetFirstPosition }
func (td ToolbarData) ShouldShowShiftSubPath() bool     { return td.showShiftSubPath }
func (td ToolbarData) ShouldShowSplitInHalf() bool      { return td.showSplitInHalf }
func (td ToolbarData) ShouldShowPairSubPaths() bool     { return td.showPairSubPaths }
func (td ToolbarData) ShouldShowActionMode() bool       { return td.mode != ModeNone }

// IsSelectionMode reports whether clicks select rather than edit.
func (td ToolbarData) IsSelectionMode() bool {
	return td.mode == ModeNone || td.mode == ModeSelection
}

// Mode checks for the three editing modes.
func (td ToolbarData) IsAddPointsMode() bool     { return td.mode == ModeSplitCommands }
func (td ToolbarData) IsSplitSubPathsMode() bool { return td.mode == ModeSplitSubPaths }
func (td ToolbarData) IsPairSubPathsMode() bool  { return td.mode == ModePairSubPaths }

// ShouldShowAutoFix is true in selection mode with nothing selected.
func (td ToolbarData) ShouldShowAutoFix() bool {
	return td.mode == ModeSelection && td.NumSelections() == 0
}

// ActiveState mirrors ToolbarState.ActiveState.
func (td ToolbarData) ActiveState() string {
	return ToolbarState{Mode: td.mode}.ActiveState()
}

func plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// Title is the toolbar headline.
func (td ToolbarData) Title() string {
	switch td.mode {
	case ModeSplitCommands:
		return "Add points"
	case ModeSplitSubPaths:
		return "Split subpaths"
	case ModePairSubPaths:
		return "Pair subpaths"
	}
	switch {
	case td.NumSubPaths() > 0:
		return plural(td.NumSubPaths(), "subpath") + " selected"
	case td.NumSegments() > 0:
		return plural(td.NumSegments(), "segment") + " selected"
	case td.NumPoints() > 0:
		return plural(td.NumPoints(), "point") + " selected"
	case td.mode == ModeSelection:
		return "Select something below to edit its properties"
	}
	return "Shape Shifter"
}

// Subtitle is the toolbar hint line. It is empty when there is nothing to
// say.
func (td ToolbarData) Subtitle() string {
	switch td.mode {
	case ModeSplitCommands:
		return "Click along the edge of a subpath to add a point"
	case ModeSplitSubPaths:
		if td.filled {
			return "Draw a line across a subpath to split it into 2"
		}
		if td.stroked {
			return "Click along the edge of a subpath to split it into 2"
		}
	case ModePairSubPaths:
		if td.unpairedSource != NoSource {
			dir := "left"
			if td.unpairedSource == From {
				dir = "right"
			}
			return "Pair the selected subpath with a corresponding subpath on the " + dir
		}
		return "Select a subpath"
	case ModeSelection:
		if td.compat.Compatible {
			return ""
		}
		var dir string
		switch td.compat.ErrorSide {
		case From:
			dir = "left"
		case To:
			dir = "right"
		default:
			return ""
		}
		return fmt.Sprintf("Add %s to the subpath on the %s", plural(td.compat.PointsMissing, "point"), dir)
	}
	return ""
}
