package pathdata

import "math"

// maxArcSpan is the largest parametric angle a single cubic may cover when
// approximating an elliptical arc.
const maxArcSpan = math.Pi / 8

func ellipsePrime(a, b, sinTheta, cosTheta, eta float64) Point {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	return Point{-aSinEta*cosTheta - bCosEta*sinTheta, -aSinEta*sinTheta + bCosEta*cosTheta}
}

func ellipsePointAt(a, b, sinTheta, cosTheta, eta float64, c Point) Point {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	return Point{c.X + aCosEta*cosTheta - bSinEta*sinTheta, c.Y + aCosEta*sinTheta + bSinEta*cosTheta}
}

// ellipseCenter locates the centre of the ellipse through start and end,
// growing the radii minimally when no such ellipse exists.
func ellipseCenter(rx, ry *float64, rot float64, start, end Point, sweep, large bool) Point {
	cos, sin := math.Cos(rot), math.Sin(rot)
	nx, ny := end.X-start.X, end.Y-start.Y
	nx, ny = nx*cos+ny*sin, -nx*sin+ny*cos
	nx *= *ry / *rx

	midX, midY := nx/2, ny/2
	midlenSq := midX*midX + midY*midY

	hr := 0.0
	if *ry**ry < midlenSq {
		nry := math.Sqrt(midlenSq)
		if *rx == *ry {
			*rx = nry
		} else {
			*rx = *rx * nry / *ry
		}
		*ry = nry
	} else {
		hr = math.Sqrt(*ry**ry-midlenSq) / math.Sqrt(midlenSq)
	}
	var cx, cy float64
	if sweep == large {
		cx = midX + midY*hr
		cy = midY - midX*hr
	} else {
		cx = midX - midY*hr
		cy = midY + midX*hr
	}
	cx *= *rx / *ry
	return Point{cx*cos - cy*sin + start.X, cx*sin + cy*cos + start.Y}
}

// arcToCubics approximates an SVG elliptical arc with cubic segments
// (Maisonobe, "Drawing an elliptical arc using polylines, quadratic or
// cubic Bezier curves"). rotDeg is in degrees.
func arcToCubics(start, end Point, rx, ry, rotDeg float64, large, sweep bool) []Command {
	if start.Equals(end) {
		return nil
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return []Command{newLine(start, end)}
	}
	rot := rotDeg * math.Pi / 180
	c := ellipseCenter(&rx, &ry, rot, start, end, sweep, large)

	startAngle := math.Atan2(start.Y-c.Y, start.X-c.X) - rot
	endAngle := math.Atan2(end.Y-c.Y, end.X-c.X) - rot
	arcBig := math.Abs(endAngle-startAngle) > math.Pi

	etaStart := math.Atan2(math.Sin(startAngle)/ry, math.Cos(startAngle)/rx)
	etaEnd := math.Atan2(math.Sin(endAngle)/ry, math.Cos(endAngle)/rx)
	deltaEta := etaEnd - etaStart
	if arcBig != large {
		if deltaEta < 0 {
			deltaEta += math.Pi * 2
		} else {
			deltaEta -= math.Pi * 2
		}
	}
	if deltaEta < 0 && sweep {
		deltaEta += math.Pi * 2
	} else if deltaEta >= 0 && !sweep {
		deltaEta -= math.Pi * 2
	}

	segs := int(math.Abs(deltaEta)/maxArcSpan) + 1
	dEta := deltaEta / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3
	sinTheta, cosTheta := math.Sin(rot), math.Cos(rot)

	out := make([]Command, 0, segs)
	last := start
	ld := ellipsePrime(rx, ry, sinTheta, cosTheta, etaStart)
	for i := 1; i <= segs; i++ {
		eta := etaStart + dEta*float64(i)
		p := end
		if i != segs {
			p = ellipsePointAt(rx, ry, sinTheta, cosTheta, eta, c)
		}
		d := ellipsePrime(rx, ry, sinTheta, cosTheta, eta)
		out = append(out, Command{Type: Cubic, Points: []Point{
			last, last.Add(ld.Mul(alpha)), p.Sub(d.Mul(alpha)), p,
		}})
		last, ld = p, d
	}
	return out
}
