package targets

import "math"

// Diameter is the size of a stimulus dot in surface units (CSS pixels).
const Diameter = 28

type Kind string

const (
	KindTarget = Kind("target")
	KindDecoy  = Kind("decoy")
)

// Placement is the top-left corner of a stimulus inside the play area.
type Placement struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Center returns the center point of a dot placed at p.
func (p Placement) Center() (x, y float64) {
	return p.Left + Diameter/2, p.Top + Diameter/2
}

// Surface is the play area as last measured by the client.
type Surface struct {
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
}

// Measured reports whether the surface has been laid out and can hold a dot.
func (s Surface) Measured() bool {
	return finite(s.Width) && finite(s.Height) &&
		s.Width >= Diameter && s.Height >= Diameter
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}

func (s Surface) usableWidth() float64  { return s.Width - Diameter }
func (s Surface) usableHeight() float64 { return s.Height - Diameter }
