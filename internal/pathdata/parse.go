package pathdata

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	pstrconv "github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

type scanner struct {
	path []byte
	pos  int
}

func (s *scanner) num() (float64, error) {
	s.pos += skipCommaWhitespace(s.path[s.pos:])
	f, n := pstrconv.ParseFloat(s.path[s.pos:])
	if n == 0 {
		return 0, fmt.Errorf("%w: expected number at offset %d", ErrSyntax, s.pos)
	}
	s.pos += n
	return f, nil
}

// flag reads an arc flag, which may be written without a separator.
func (s *scanner) flag() (bool, error) {
	s.pos += skipCommaWhitespace(s.path[s.pos:])
	if s.pos >= len(s.path) || (s.path[s.pos] != '0' && s.path[s.pos] != '1') {
		return false, fmt.Errorf("%w: expected arc flag at offset %d", ErrSyntax, s.pos)
	}
	v := s.path[s.pos] == '1'
	s.pos++
	return v, nil
}

func (s *scanner) nums(n int) ([]float64, error) {
	out := make([]float64, n)
	for i := range out {
		f, err := s.num()
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// builder accumulates sub-paths while parsing.
type builder struct {
	subs   []SubPath
	cur    SubPath
	active bool
	start  Point
	pos    Point
}

func (b *builder) flush() {
	if b.active {
		if len(b.cur.Commands) < 2 {
			b.cur.Closed = false
		}
		b.subs = append(b.subs, b.cur)
	}
	b.active = false
	b.cur = SubPath{}
}

func (b *builder) moveTo(p Point) {
	b.flush()
	b.cur = SubPath{Commands: []Command{newMove(p, false)}}
	b.active = true
	b.start, b.pos = p, p
}

// ensure starts a sub-path at the current point when drawing resumes after
// a close.
func (b *builder) ensure() {
	if !b.active || b.cur.Closed {
		b.moveTo(b.pos)
	}
}

func (b *builder) add(t CommandType, pts ...Point) {
	b.ensure()
	all := append([]Point{b.pos}, pts...)
	b.cur.Commands = append(b.cur.Commands, Command{Type: t, Points: all})
	b.pos = pts[len(pts)-1]
}

func (b *builder) close() {
	if !b.active || b.cur.Closed {
		return
	}
	if !b.pos.Equals(b.start) {
		b.cur.Commands = append(b.cur.Commands, newLine(b.pos, b.start))
	} else if n := len(b.cur.Commands); n > 1 {
		// snap the last end point onto the start so the sub-path closes exactly
		last := &b.cur.Commands[n-1]
		last.Points[len(last.Points)-1] = b.start
	}
	b.cur.Closed = true
	b.pos = b.start
}

// Parse reads SVG path data. Arcs are converted to cubic curves and a
// closing Z becomes an explicit line back to the start unless the sub-path
// already ends there.
func Parse(d string) (Path, error) {
	s := &scanner{path: []byte(d)}
	b := &builder{}
	var prevCmd byte
	var ctrl Point
	for {
		s.pos += skipCommaWhitespace(s.path[s.pos:])
		if s.pos >= len(s.path) {
			break
		}
		cmd := prevCmd
		if c := s.path[s.pos]; (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			cmd = c
			s.pos++
		} else if prevCmd == 0 {
			return Path{}, fmt.Errorf("%w: path must start with a command", ErrSyntax)
		}
		if prevCmd == 0 && cmd != 'M' && cmd != 'm' {
			return Path{}, fmt.Errorf("%w: path must start with a moveto", ErrSyntax)
		}
		rel := cmd >= 'a'
		x, y := b.pos.X, b.pos.Y
		abs := func(a, c float64) Point {
			if rel {
				return Point{a + x, c + y}
			}
			return Point{a, c}
		}
		switch cmd {
		case 'M', 'm':
			v, err := s.nums(2)
			if err != nil {
				return Path{}, err
			}
			b.moveTo(abs(v[0], v[1]))
			// subsequent pairs are implicit linetos
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
		case 'Z', 'z':
			b.close()
		case 'L', 'l':
			v, err := s.nums(2)
			if err != nil {
				return Path{}, err
			}
			b.add(Line, abs(v[0], v[1]))
		case 'H', 'h':
			v, err := s.num()
			if err != nil {
				return Path{}, err
			}
			if rel {
				v += x
			}
			b.add(Line, Point{v, y})
		case 'V', 'v':
			v, err := s.num()
			if err != nil {
				return Path{}, err
			}
			if rel {
				v += y
			}
			b.add(Line, Point{x, v})
		case 'C', 'c':
			v, err := s.nums(6)
			if err != nil {
				return Path{}, err
			}
			c1, c2, end := abs(v[0], v[1]), abs(v[2], v[3]), abs(v[4], v[5])
			b.add(Cubic, c1, c2, end)
			ctrl = c2
		case 'S', 's':
			v, err := s.nums(4)
			if err != nil {
				return Path{}, err
			}
			c2, end := abs(v[0], v[1]), abs(v[2], v[3])
			c1 := Point{x, y}
			if strings.IndexByte("CcSs", prevCmd) >= 0 {
				c1 = Point{2*x - ctrl.X, 2*y - ctrl.Y}
			}
			b.add(Cubic, c1, c2, end)
			ctrl = c2
		case 'Q', 'q':
			v, err := s.nums(4)
			if err != nil {
				return Path{}, err
			}
			c, end := abs(v[0], v[1]), abs(v[2], v[3])
			b.add(Quad, c, end)
			ctrl = c
		case 'T', 't':
			v, err := s.nums(2)
			if err != nil {
				return Path{}, err
			}
			end := abs(v[0], v[1])
			c := Point{x, y}
			if strings.IndexByte("QqTt", prevCmd) >= 0 {
				c = Point{2*x - ctrl.X, 2*y - ctrl.Y}
			}
			b.add(Quad, c, end)
			ctrl = c
		case 'A', 'a':
			v, err := s.nums(3)
			if err != nil {
				return Path{}, err
			}
			large, err := s.flag()
			if err != nil {
				return Path{}, err
			}
			sweep, err := s.flag()
			if err != nil {
				return Path{}, err
			}
			e, err := s.nums(2)
			if err != nil {
				return Path{}, err
			}
			end := abs(e[0], e[1])
			for _, c := range arcToCubics(Point{x, y}, end, v[0], v[1], v[2], large, sweep) {
				b.add(c.Type, c.Points[1:]...)
			}
		default:
			return Path{}, fmt.Errorf("%w: unknown command %q", ErrSyntax, cmd)
		}
		prevCmd = cmd
	}
	b.flush()
	return Path{SubPaths: b.subs}, nil
}

// MustParse is like Parse but panics on error. Intended for fixtures.
func MustParse(d string) Path {
	p, err := Parse(d)
	if err != nil {
		panic(err)
	}
	return p
}

func formatNum(v float64) string {
	v = math.Round(v*1000) / 1000
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func writePoints(sb *strings.Builder, pts []Point) {
	for _, p := range pts {
		sb.WriteByte(' ')
		sb.WriteString(formatNum(p.X))
		sb.WriteByte(' ')
		sb.WriteString(formatNum(p.Y))
	}
}

// String serialises the path back to SVG path data. A closed sub-path whose
// last command is a line is written with Z in its place.
func (p Path) String() string {
	var sb strings.Builder
	for i, sp := range p.SubPaths {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(sp.String())
	}
	return sb.String()
}

// String serialises a single sub-path.
func (s SubPath) String() string {
	var sb strings.Builder
	for i, c := range s.Commands {
		if i > 0 {
			sb.WriteByte(' ')
		}
		last := i == len(s.Commands)-1
		if last && s.Closed && c.Type == Line {
			sb.WriteByte('Z')
			break
		}
		sb.WriteString(c.Type.String())
		if c.Type == Move {
			writePoints(&sb, c.Points)
		} else {
			writePoints(&sb, c.Points[1:])
		}
		if last && s.Closed {
			sb.WriteString(" Z")
		}
	}
	return sb.String()
}
