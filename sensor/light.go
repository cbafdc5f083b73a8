package sensor

import (
	"math"

	"github.com/robosim/gfx"
)

// Light model constants. The intensity of a beam falls off as a gaussian
// over the angular distance between the beam spine and the sensor.
const (
	// MaxIntensity is the peak sensor reading, matching a 10-bit ADC.
	MaxIntensity = 1023.0

	// BeamWidth is the angular width of a rendered light beam, radians.
	BeamWidth = math.Pi / 10

	// intensityStdDev is the gaussian falloff width (60 degrees).
	intensityStdDev = math.Pi / 3

	// regulariser scales the gaussian so its peak value is exactly 1
	// at the stddev above.
	regulariser = 2.624947501
)

// Intensity returns the sensor reading for a beam at the given angular
// distance (radians) from the sensor: MaxIntensity on the beam spine,
// falling off as a gaussian with the beam's cone width.
func Intensity(angDist float64) float64 {
	return MaxIntensity * math.Abs(gaussian(angDist, 0, intensityStdDev))
}

// gaussian evaluates the regularised normal density at x.
func gaussian(x, mean, stdDev float64) float64 {
	if stdDev <= 0 {
		return 0
	}
	alpha := 1 / math.Sqrt(2*math.Pi*stdDev*stdDev)
	beta := -((x - mean) * (x - mean)) / (2 * stdDev * stdDev)
	return alpha * math.Exp(beta) * regulariser
}

// LightSensor is a light sensor mounted at a fixed offset from the robot
// center. Its reading is zero until a beam shines on the robot.
type LightSensor struct {
	Offset Offset

	pos   gfx.Point
	value float64
}

// Update recomputes the sensor's world position from the robot pose and
// sets its reading. When lit is false the reading drops to zero;
// otherwise it follows the gaussian falloff over angDist, the angular
// distance between the beam spine and this sensor.
func (s *LightSensor) Update(robot gfx.Point, heading float64, lit bool, angDist float64) {
	s.pos = s.Offset.WorldPosition(robot, heading)
	if !lit {
		s.value = 0
		return
	}
	s.value = Intensity(angDist)
}

// Value returns the last reading taken from the sensor.
func (s *LightSensor) Value() float64 { return s.value }

// Position returns the sensor's world position as of the last Update.
func (s *LightSensor) Position() gfx.Point { return s.pos }

// Draw lights the sensor's position on the given target as a filled dot
// of the given color.
func (s *LightSensor) Draw(t gfx.Target, c gfx.RGBA) error {
	return gfx.Dot(t, s.pos, 4, c)
}
