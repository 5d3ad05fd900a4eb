package subpaths

import (
    "fmt"

    "shapeshifter/internal/pathdata"
    "shapeshifter/internal/tui/state"
    "shapeshifter/internal/tui/util"
    chips "shapeshifter/internal/tui/widgets/tagchips"
)

// RenderTags is a thin adapter over the TagChips widget for list items.
func RenderTags(tags []state.Tag, noColor bool) string {
    return chips.View(tags, noColor)
}

// RenderHeader renders the list line of sub-path i: its index followed by
// its chips, given the path on the other side of the morph.
func RenderHeader(i int, sp pathdata.SubPath, other pathdata.Path, noColor bool) string {
    tags := util.ComputeTags(sp, other.PointCount(i))
    return fmt.Sprintf("subpath %d %s", i, RenderTags(tags, noColor))
}
