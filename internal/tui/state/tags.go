package state

// TagKind enumerates the types of status chips shown next to a sub-path.
type TagKind int

const (
    // Stable ordering for display: Closed/Open, Split, Split points, Missing, Points
    CLOSED TagKind = iota
    OPEN
    SPLIT
    SPLIT_POINTS
    MISSING
    POINTS
)

// Tag represents a single status chip. Value is used for numeric counters
// (e.g., missing points or point counts). Non-numeric tags use Value = 0.
type Tag struct {
    Kind  TagKind
    Value int
}
