package pathdata

// CommandType is the drawing instruction of a single path command.
type CommandType int

const (
	Move CommandType = iota
	Line
	Quad
	Cubic
)

func (t CommandType) String() string {
	switch t {
	case Move:
		return "M"
	case Line:
		return "L"
	case Quad:
		return "Q"
	case Cubic:
		return "C"
	default:
		return "?"
	}
}

// Command is one point of a sub-path together with the segment that leads
// to it. Points holds the start point, any control points and the end point;
// a Move holds only its target.
type Command struct {
	Type   CommandType
	Points []Point

	// SplitPoint marks an end point that was added by splitting a segment.
	SplitPoint bool
	// SplitSegment marks a chord added when a filled sub-path was split.
	SplitSegment bool

	// splitT is the parameter the segment was split at when this command is
	// the first half of a split; zero when unknown.
	splitT float64
}

// IsSplitPoint reports whether the command's end point was added by a split.
func (c Command) IsSplitPoint() bool { return c.SplitPoint }

// IsSplitSegment reports whether the command is a chord produced by a
// filled sub-path split.
func (c Command) IsSplitSegment() bool { return c.SplitSegment }

// Start returns the command's start point.
func (c Command) Start() Point { return c.Points[0] }

// End returns the command's end point.
func (c Command) End() Point { return c.Points[len(c.Points)-1] }

func (c Command) clone() Command {
	c.Points = append([]Point(nil), c.Points...)
	return c
}

func newMove(p Point, split bool) Command {
	return Command{Type: Move, Points: []Point{p}, SplitPoint: split}
}

func newLine(a, b Point) Command {
	return Command{Type: Line, Points: []Point{a, b}}
}

// reversed returns the segment traversed from end to start. Flags are left
// to the caller since they describe end points.
func (c Command) reversed() Command {
	out := c.clone()
	for i, j := 0, len(out.Points)-1; i < j; i, j = i+1, j-1 {
		out.Points[i], out.Points[j] = out.Points[j], out.Points[i]
	}
	out.splitT = 0
	return out
}

// splitAt divides a segment at parameter t using de Casteljau's algorithm.
func (c Command) splitAt(t float64) (Command, Command) {
	p := c.Points
	switch c.Type {
	case Line:
		m := p[0].Lerp(p[1], t)
		return Command{Type: Line, Points: []Point{p[0], m}},
			Command{Type: Line, Points: []Point{m, p[1]}}
	case Quad:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		m := a.Lerp(b, t)
		return Command{Type: Quad, Points: []Point{p[0], a, m}},
			Command{Type: Quad, Points: []Point{m, b, p[2]}}
	default:
		a := p[0].Lerp(p[1], t)
		b := p[1].Lerp(p[2], t)
		cc := p[2].Lerp(p[3], t)
		ab := a.Lerp(b, t)
		bc := b.Lerp(cc, t)
		m := ab.Lerp(bc, t)
		return Command{Type: Cubic, Points: []Point{p[0], a, ab, m}},
			Command{Type: Cubic, Points: []Point{m, bc, cc, p[3]}}
	}
}

// toCubic returns the segment promoted to an equivalent cubic.
func (c Command) toCubic() Command {
	out := c
	p := c.Points
	switch c.Type {
	case Line:
		out.Points = []Point{p[0], p[0].Lerp(p[1], 1.0/3), p[0].Lerp(p[1], 2.0/3), p[1]}
	case Quad:
		out.Points = []Point{p[0], p[0].Lerp(p[1], 2.0/3), p[2].Lerp(p[1], 2.0/3), p[2]}
	case Cubic:
		out.Points = append([]Point(nil), p...)
	}
	out.Type = Cubic
	return out
}

// length estimates the arc length of the segment as the mean of its chord
// and control polygon lengths.
func (c Command) length() float64 {
	if c.Type == Move {
		return 0
	}
	chord := c.Start().Dist(c.End())
	poly := 0.0
	for i := 1; i < len(c.Points); i++ {
		poly += c.Points[i-1].Dist(c.Points[i])
	}
	return (chord + poly) / 2
}

// join merges two consecutive segments that were produced by splitting one
// segment. The original control points are recovered exactly when a's split
// parameter is known; otherwise it is estimated from the segment lengths.
func join(a, b Command) Command {
	if a.Type == Line && b.Type == Line {
		out := newLine(a.Start(), b.End())
		out.SplitPoint = b.SplitPoint
		out.SplitSegment = a.SplitSegment && b.SplitSegment
		return out
	}
	t := a.splitT
	if t <= 0 || t >= 1 {
		la, lb := a.length(), b.length()
		if la+lb == 0 {
			t = 0.5
		} else {
			t = la / (la + lb)
		}
	}
	var out Command
	if a.Type == Quad && b.Type == Quad {
		p0, p2 := a.Start(), b.End()
		p1 := p0.Add(a.Points[1].Sub(p0).Mul(1 / t))
		out = Command{Type: Quad, Points: []Point{p0, p1, p2}}
	} else {
		ca, cb := a.toCubic(), b.toCubic()
		p0, p3 := ca.Start(), cb.End()
		p1 := p0.Add(ca.Points[1].Sub(p0).Mul(1 / t))
		p2 := p3.Add(cb.Points[2].Sub(p3).Mul(1 / (1 - t)))
		out = Command{Type: Cubic, Points: []Point{p0, p1, p2, p3}}
	}
	out.SplitPoint = b.SplitPoint
	return out
}

// lerpCommand interpolates two commands point by point, promoting both to
// cubics when their types differ.
func lerpCommand(a, b Command, f float64) Command {
	if a.Type != b.Type {
		if a.Type == Move || b.Type == Move {
			return a.clone()
		}
		a, b = a.toCubic(), b.toCubic()
	}
	out := Command{Type: a.Type, Points: make([]Point, len(a.Points))}
	for i := range a.Points {
		out.Points[i] = a.Points[i].Lerp(b.Points[i], f)
	}
	return out
}
