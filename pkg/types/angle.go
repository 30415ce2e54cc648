package types

import (
	"fmt"
	"math"
)

// Degrees is a float64 wrapper representing a compass direction in degrees.
type Degrees float64

// Normalized maps the angle into [0, 360).
func (d Degrees) Normalized() Degrees {
	m := math.Mod(float64(d), 360)
	if m < 0 {
		m += 360
	}
	return Degrees(m)
}

// Radians returns the angle in radians.
func (d Degrees) Radians() float64 { return float64(d) * math.Pi / 180 }

// String formats the angle with one decimal and a degree sign.
func (d Degrees) String() string { return fmt.Sprintf("%.1f°", float64(d)) }
