package sensor

import "github.com/robosim/gfx"

// Offset is a sensor mounting point relative to the robot center, in the
// robot's own frame (X forward of center when the heading is zero).
type Offset struct {
	X, Y float64
}

// WorldPosition returns the sensor's world-space position for a robot at
// the given position with the given heading (radians).
func (o Offset) WorldPosition(robot gfx.Point, heading float64) gfx.Point {
	return robot.Add(gfx.Pt(o.X, o.Y).Rotate(heading))
}

// LineSensor is a line sensor mounted at a fixed offset from the robot
// center. Update recomputes its world position and samples the map.
type LineSensor struct {
	Map    *LineMap
	Offset Offset

	pos       gfx.Point
	triggered bool
}

// Update recomputes the sensor position from the robot pose and queries
// the line map.
func (s *LineSensor) Update(robot gfx.Point, heading float64) {
	s.pos = s.Offset.WorldPosition(robot, heading)
	s.triggered = s.Map != nil && s.Map.Triggered(s.pos.X, s.pos.Y)
}

// Triggered returns the last reading taken from the sensor.
func (s *LineSensor) Triggered() bool { return s.triggered }

// Position returns the sensor's world position as of the last Update.
func (s *LineSensor) Position() gfx.Point { return s.pos }

// Draw marks the sensor's position on the given target as a small
// circle outline.
func (s *LineSensor) Draw(t gfx.Target) error {
	return gfx.CircleOutline(t, s.pos.X, s.pos.Y, 5)
}
