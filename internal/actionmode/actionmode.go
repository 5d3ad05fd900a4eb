// Package actionmode holds the editing state machine used to make two shapes
// morph compatible: which side and which sub-paths, segments and points are
// selected, which edit mode is active, and the toolbar snapshot derived from
// all of it.
package actionmode

import (
	"strings"

	"shapeshifter/internal/pathdata"
)

// ActionSource identifies one of the two shapes of a morph.
type ActionSource int

const (
	NoSource ActionSource = iota
	From
	To
)

func (s ActionSource) String() string {
	switch s {
	case From:
		return "from"
	case To:
		return "to"
	default:
		return "none"
	}
}

// Other returns the opposite side.
func (s ActionSource) Other() ActionSource {
	switch s {
	case From:
		return To
	case To:
		return From
	default:
		return NoSource
	}
}

// ActionMode is the active editing mode. Only one mode is active at a time.
type ActionMode int

const (
	ModeNone ActionMode = iota
	ModeSelection
	ModeSplitCommands
	ModeSplitSubPaths
	ModePairSubPaths
)

func (m ActionMode) String() string {
	switch m {
	case ModeSelection:
		return "selection"
	case ModeSplitCommands:
		return "add points"
	case ModeSplitSubPaths:
		return "split subpaths"
	case ModePairSubPaths:
		return "pair subpaths"
	default:
		return "none"
	}
}

// SelectionType tells what a selection addresses.
type SelectionType int

const (
	SubPathSelection SelectionType = iota
	SegmentSelection
	PointSelection
)

// Selection addresses a sub-path, or a segment or point within one, on one
// side of the morph. CmdIdx is ignored for sub-path selections.
type Selection struct {
	Source ActionSource
	Type   SelectionType
	SubIdx int
	CmdIdx int
}

// CommandRef addresses a command within a path.
type CommandRef struct {
	SubIdx int
	CmdIdx int
}

// MorphableLayer is a path layer that can be morphed.
type MorphableLayer struct {
	ID          string
	Name        string
	PathData    pathdata.Path
	FillColor   string
	StrokeColor string
}

func paints(color string) bool {
	c := strings.ToLower(strings.TrimSpace(color))
	return c != "" && c != "none" && c != "transparent"
}

// IsFilled reports whether the layer has a visible fill.
func (l MorphableLayer) IsFilled() bool { return paints(l.FillColor) }

// IsStroked reports whether the layer has a visible stroke.
func (l MorphableLayer) IsStroked() bool { return paints(l.StrokeColor) }

// Block is the pair of paths animated by a morph.
type Block struct {
	LayerID string
	From    pathdata.Path
	To      pathdata.Path
}

// Groups is the result of Classify.
type Groups struct {
	SubPaths []int
	Segments []CommandRef
	Points   []CommandRef
}

// Len returns the total number of classified selections.
func (g Groups) Len() int { return len(g.SubPaths) + len(g.Segments) + len(g.Points) }

// Classify partitions selections by type, keeping input order. Segment
// selections are only kept when the layer is filled and the addressed
// command is a split segment. A nil layer yields no segments.
func Classify(selections []Selection, layer *MorphableLayer) Groups {
	var g Groups
	for _, s := range selections {
		switch s.Type {
		case SubPathSelection:
			g.SubPaths = append(g.SubPaths, s.SubIdx)
		case SegmentSelection:
			if layer == nil || !layer.IsFilled() {
				continue
			}
			c, err := layer.PathData.Command(s.SubIdx, s.CmdIdx)
			if err != nil || !c.IsSplitSegment() {
				continue
			}
			g.Segments = append(g.Segments, CommandRef{s.SubIdx, s.CmdIdx})
		case PointSelection:
			g.Points = append(g.Points, CommandRef{s.SubIdx, s.CmdIdx})
		}
	}
	return g
}
