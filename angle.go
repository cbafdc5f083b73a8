package gfx

import "math"

// TwoPi is one full revolution in radians.
const TwoPi = 2 * math.Pi

// WrapAngle normalizes an angle into [0, 2*Pi) by applying a single
// correction: one full turn is subtracted if the angle is at or above
// 2*Pi, and one full turn is added if it is negative.
//
// This is intentionally not a modulo. An input more than one revolution
// outside [0, 2*Pi) comes back still out of range, e.g.
// WrapAngle(4*Pi + 0.1) returns 2*Pi + 0.1. Callers in the simulation
// only ever step headings by less than a turn per update, so a single
// correction is sufficient there.
func WrapAngle(angle float64) float64 {
	if angle >= TwoPi {
		angle -= TwoPi
	} else if angle < 0 {
		angle += TwoPi
	}
	return angle
}
