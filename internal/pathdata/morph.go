package pathdata

import "fmt"

// Interpolate returns the path a fraction f of the way from one shape to
// the other. Both paths must have the same sub-path and point counts.
func Interpolate(from, to Path, f float64) (Path, error) {
	if len(from.SubPaths) != len(to.SubPaths) {
		return Path{}, fmt.Errorf("%d vs %d sub-paths: %w", len(from.SubPaths), len(to.SubPaths), ErrIncompatible)
	}
	for i, a := range from.SubPaths {
		if b := to.SubPaths[i]; len(a.Commands) != len(b.Commands) {
			return Path{}, fmt.Errorf("sub-path %d has %d vs %d points: %w", i, len(a.Commands), len(b.Commands), ErrIncompatible)
		}
	}
	if f <= 0 {
		return from.Clone(), nil
	}
	if f >= 1 {
		return to.Clone(), nil
	}
	out := Path{SubPaths: make([]SubPath, len(from.SubPaths))}
	for i, a := range from.SubPaths {
		b := to.SubPaths[i]
		sp := SubPath{Closed: a.Closed && b.Closed, Commands: make([]Command, len(a.Commands))}
		for j := range a.Commands {
			sp.Commands[j] = lerpCommand(a.Commands[j], b.Commands[j], f)
		}
		out.SubPaths[i] = sp
	}
	return out, nil
}
