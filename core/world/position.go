package world

import "math"

// Tolerance is the per-axis approximate-equality tolerance for positions.
const Tolerance = 0.01

// Position is a 3D coordinate in world units.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Distance returns the straight-line distance to other.
func (p Position) Distance(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Distance2D returns the straight-line distance to other ignoring Z.
func (p Position) Distance2D(other Position) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// ApproxEqual reports whether both positions are within Tolerance on every axis.
func (p Position) ApproxEqual(other Position) bool {
	return math.Abs(p.X-other.X) <= Tolerance &&
		math.Abs(p.Y-other.Y) <= Tolerance &&
		math.Abs(p.Z-other.Z) <= Tolerance
}

// quantize maps a coordinate onto the Tolerance lattice.
func quantize(v float64) int64 {
	return int64(math.Round(v / Tolerance))
}

// Less imposes a total order on positions by comparing quantized coordinates
// lexicographically. It is the deterministic tie-break for search ordering:
// identical inputs compare identically on every peer, unlike a hash code.
func (p Position) Less(other Position) bool {
	px, ox := quantize(p.X), quantize(other.X)
	if px != ox {
		return px < ox
	}
	py, oy := quantize(p.Y), quantize(other.Y)
	if py != oy {
		return py < oy
	}
	return quantize(p.Z) < quantize(other.Z)
}

// Lerp returns the point a fraction t of the way from p to other.
func (p Position) Lerp(other Position, t float64) Position {
	return Position{
		X: p.X + (other.X-p.X)*t,
		Y: p.Y + (other.Y-p.Y)*t,
		Z: p.Z + (other.Z-p.Z)*t,
	}
}
