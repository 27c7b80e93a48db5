package targets

import "math"

const (
	// MinSeparation is the minimum center-to-center distance between a
	// target and its decoy.
	MinSeparation = 2 * Diameter

	// MaxPlacementAttempts bounds the decoy rejection-sampling loop.
	MaxPlacementAttempts = 64
)

// Source yields uniform values in [0, 1).
type Source interface {
	Float64() float64
}

// Random places a dot uniformly inside the usable rectangle of s, so the
// dot never clips the surface edge.
func Random(src Source, s Surface) Placement {
	return Placement{
		Top:  src.Float64() * s.usableHeight(),
		Left: src.Float64() * s.usableWidth(),
	}
}

func Distance(a, b Placement) float64 {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Hypot(ax-bx, ay-by)
}

// Separated reports whether a and b are at least MinSeparation apart.
func Separated(a, b Placement) bool {
	return Distance(a, b) >= MinSeparation
}

// PlaceDecoy draws decoy positions until one is far enough from target.
// After MaxPlacementAttempts misses it falls back to the usable corner
// farthest from the target. ok is false when not even that corner is far
// enough, i.e. the surface is too small to show two distinguishable dots.
func PlaceDecoy(src Source, s Surface, target Placement) (p Placement, ok bool) {
	for range MaxPlacementAttempts {
		p = Random(src, s)
		if Separated(target, p) {
			return p, true
		}
	}

	p = FarthestCorner(s, target)
	return p, Separated(target, p)
}

// FarthestCorner returns the corner of the usable rectangle that maximizes
// the distance to target. Ties resolve to the first corner in
// top-left, top-right, bottom-left, bottom-right order.
func FarthestCorner(s Surface, target Placement) Placement {
	corners := [4]Placement{
		{Top: 0, Left: 0},
		{Top: 0, Left: s.usableWidth()},
		{Top: s.usableHeight(), Left: 0},
		{Top: s.usableHeight(), Left: s.usableWidth()},
	}
	best := corners[0]
	bestDist := Distance(target, best)
	for _, c := range corners[1:] {
		if d := Distance(target, c); d > bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
