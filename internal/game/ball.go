package game

import (
	"math"
	"math/rand"
)

const (
	DefaultBallSize     = 30
	DefaultBallVelocity = 14  // Court units per tick
	BoostFactor         = 1.5 // Skill shot multiplier
	MinServeAngle       = 60
	MaxServeAngle       = 120
)

const radiansPerDegree = math.Pi / 180

type Ball struct {
	X, Y         float64
	Size         float64
	Angle        float64 // Degrees, 90 is horizontal
	Velocity     float64
	BaseVelocity float64
	TowardRight  bool
	Visible      bool
}

// NewBall places a ball at the center of the court with a random serve angle
func NewBall(courtW, courtH, size, baseVelocity float64, towardRight bool, rng *rand.Rand) *Ball {
	return &Ball{
		X:            courtW/2 - size/2,
		Y:            courtH/2 - size/2,
		Size:         size,
		Angle:        ServeAngle(rng),
		Velocity:     baseVelocity,
		BaseVelocity: baseVelocity,
		TowardRight:  towardRight,
		Visible:      true,
	}
}

// ServeAngle returns a random angle in [60, 120] rounded to the nearest 10
func ServeAngle(rng *rand.Rand) float64 {
	a := rng.Float64()*(MaxServeAngle-MinServeAngle) + MinServeAngle
	return math.Round(a/10) * 10
}

// CalculateRebound advances the ball one tick along its heading
func (b *Ball) CalculateRebound() {
	dx := math.Sin(b.Angle*radiansPerDegree) * b.Velocity
	dy := math.Cos(b.Angle*radiansPerDegree) * b.Velocity
	if b.TowardRight {
		b.X += dx
		b.Y += dy
	} else {
		b.X -= dx
		b.Y -= dy
	}
}

func (b *Ball) SetAngle(angle float64) {
	b.Angle = angle
}

// InvertAngle mirrors the vertical component (wall bounce)
func (b *Ball) InvertAngle() {
	b.Angle = 180 - b.Angle
}

func (b *Ball) SpeedUp() {
	b.Velocity = BoostFactor * b.BaseVelocity
}

func (b *Ball) SlowDown() {
	b.Velocity = b.BaseVelocity
}

// Boosted reports whether the last paddle hit was a skill shot
func (b *Ball) Boosted() bool {
	return b.Velocity > b.BaseVelocity
}

func (b *Ball) Bounds() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Size, H: b.Size}
}
