package actionmode

import "shapeshifter/internal/pathdata"

// Compatibility describes whether two paths can be morphed and, when not,
// which side of the first mismatching sub-path needs more points.
type Compatibility struct {
	Compatible    bool
	ErrorSide     ActionSource
	SubIdx        int
	PointsMissing int
}

// CheckCompatible compares the point counts of from and to sub-path by
// sub-path. A sub-path missing on one side counts as having no points, so
// differing sub-path counts are reported against the side lacking the
// sub-path.
func CheckCompatible(from, to pathdata.Path) Compatibility {
	n := from.SubPathCount()
	if m := to.SubPathCount(); m > n {
		n = m
	}
	for i := 0; i < n; i++ {
		a, b := from.PointCount(i), to.PointCount(i)
		switch {
		case a < b:
			return Compatibility{ErrorSide: From, SubIdx: i, PointsMissing: b - a}
		case b < a:
			return Compatibility{ErrorSide: To, SubIdx: i, PointsMissing: a - b}
		}
	}
	return Compatibility{Compatible: true}
}

// CheckBlock is CheckCompatible for a block. A nil block is compatible.
func CheckBlock(b *Block) Compatibility {
	if b == nil {
		return Compatibility{Compatible: true}
	}
	return CheckCompatible(b.From, b.To)
}
