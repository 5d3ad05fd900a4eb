package util

import (
    "shapeshifter/internal/pathdata"
    "shapeshifter/internal/tui/state"
)

// ComputeTags calculates the set of status chips for a sub-path given the
// point count of the sub-path at the same index on the other side of the
// morph (0 when that side has no such sub-path).
//
// The returned slice preserves a stable order:
//   Closed|Open, Split, Split points, Missing, Points
//
// Rules:
// - Closed and Open are mutually exclusive.
// - Split marks sub-paths produced by a split sub-paths action.
// - Split points counts points added by the add points action.
// - Missing is how many points this side lacks compared to the other.
// - Points is always included (counter).
func ComputeTags(sp pathdata.SubPath, otherPoints int) []state.Tag {
    tags := make([]state.Tag, 0, 5)

    // 1) Closed / Open
    if sp.IsClosed() {
        tags = append(tags, state.Tag{Kind: state.CLOSED})
    } else {
        tags = append(tags, state.Tag{Kind: state.OPEN})
    }

    // 2) Split
    if sp.IsUnsplittable() {
        tags = append(tags, state.Tag{Kind: state.SPLIT})
    }

    // 3) Split points (N)
    if n := splitPoints(sp); n > 0 {
        tags = append(tags, state.Tag{Kind: state.SPLIT_POINTS, Value: n})
    }

    // 4) Missing (+N)
    if missing := otherPoints - sp.PointCount(); missing > 0 {
        tags = append(tags, state.Tag{Kind: state.MISSING, Value: missing})
    }

    // 5) Points (N)
    tags = append(tags, state.Tag{Kind: state.POINTS, Value: sp.PointCount()})

    return tags
}

func splitPoints(sp pathdata.SubPath) int {
    n := 0
    for _, c := range sp.Commands {
        if c.IsSplitPoint() {
            n++
        }
    }
    return n
}
