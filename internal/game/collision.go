package game

import "math"

// Rect is an axis-aligned bounding box in court units
type Rect struct {
	X, Y float64
	W, H float64
}

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Angle table thresholds, measured as the vertical distance between the
// paddle center and the ball center
const (
	EdgeOffset  = 60
	OuterOffset = 40
	InnerOffset = 20
)

// PaddleCollision reports whether the ball overlaps the paddle.
// vy is the paddle center Y minus the ball center Y, positive when the ball
// is above the paddle center.
func PaddleCollision(paddle, ball Rect) (bool, float64) {
	pcx, pcy := paddle.Center()
	bcx, bcy := ball.Center()

	vx := pcx - bcx
	vy := pcy - bcy

	halfWidths := (paddle.W + ball.W) / 2
	halfHeights := (paddle.H + ball.H) / 2

	return math.Abs(vx) < halfWidths && math.Abs(vy) < halfHeights, vy
}

// ReboundAngle picks the return angle from the step table.
// Buckets are evaluated in order and the first match wins.
func ReboundAngle(vy float64, towardRight bool) float64 {
	pick := func(right, left float64) float64 {
		if towardRight {
			return right
		}
		return left
	}

	switch {
	case vy > EdgeOffset:
		return pick(40, 140)
	case vy > OuterOffset:
		return pick(60, 120)
	case vy > InnerOffset:
		return pick(80, 100)
	case vy < InnerOffset && vy > -InnerOffset:
		return 90
	case vy < -InnerOffset:
		// vy < -40 and vy < -60 are already matched here
		return pick(100, 80)
	default:
		return 90
	}
}

// VerticalDelta returns the per-tick Y displacement sign for a heading:
// -1 moving up, 1 moving down, 0 for a flat trajectory
func VerticalDelta(angle float64, towardRight bool) int {
	dy := math.Cos(angle * math.Pi / 180)
	if !towardRight {
		dy = -dy
	}
	switch {
	case dy < -1e-9:
		return -1
	case dy > 1e-9:
		return 1
	}
	return 0
}

// WallCollision reports whether the ball crosses the top or bottom edge it
// is travelling into
func WallCollision(ball Rect, courtHeight float64, vertical int) bool {
	if vertical < 0 && ball.Y <= 0 {
		return true
	}
	if vertical > 0 && ball.Y+ball.H >= courtHeight {
		return true
	}
	return false
}

// GoalCollision reports whether the ball crosses the left or right edge
func GoalCollision(ball Rect, courtWidth float64) bool {
	return ball.X <= 0 || ball.X+ball.W >= courtWidth
}
