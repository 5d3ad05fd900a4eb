package state

// EditorMode represents the editor's current input mode.
type EditorMode int

const (
    CMD EditorMode = iota
    INSERT
)

// DiffMode controls how the diff is rendered.
type DiffMode int

const (
    Unified DiffMode = iota
    SideBySide
)

// Side is the path column that has keyboard focus.
type Side int

const (
    LEFT Side = iota // from
    RIGHT            // to
)

// Granularity is what space/enter select at the cursor.
type Granularity int

const (
    SUBPATH Granularity = iota
    SEGMENT
    POINT
)

func (g Granularity) String() string {
    switch g {
    case SEGMENT:
        return "segment"
    case POINT:
        return "point"
    default:
        return "subpath"
    }
}

// UIState holds cross-widget UI state used by toolbar, columns, status bar,
// diff and editor.
type UIState struct {
    // Mode & View
    Mode     EditorMode
    View     DiffMode
    ShowDiff bool
    ShowHelp bool

    // Cursor
    Focus  Side
    SubIdx int
    CmdIdx int
    Gran   Granularity

    // Layout
    Width  int
    MinCol int

    // Morph preview position in [0,1]
    Fraction float64

    // Notices and ephemeral messages
    Notice string
}
