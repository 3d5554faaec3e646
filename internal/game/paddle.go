package game

const (
	DefaultPaddleWidth  = 20
	DefaultPaddleHeight = 150
	DefaultPaddleInset  = 100 // Distance between court edge and paddle
	DefaultPaddleStep   = 10  // Court units per tick while a key is held
)

// Side identifies which half of the court a paddle defends
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

type Paddle struct {
	Side   Side
	X      float64 // Fixed for the whole session
	Y      float64
	Width  float64
	Height float64
	Step   float64
}

// NewPaddle creates a vertically centered paddle.
// The right paddle's X is derived from the court width once, at creation.
func NewPaddle(side Side, s Settings) *Paddle {
	x := s.PaddleInset
	if side == SideRight {
		x = s.CourtWidth - s.PaddleInset
	}
	return &Paddle{
		Side:   side,
		X:      x,
		Y:      s.CourtHeight/2 - s.PaddleHeight/2,
		Width:  s.PaddleWidth,
		Height: s.PaddleHeight,
		Step:   s.PaddleStep,
	}
}

func (p *Paddle) MoveUp() {
	p.Y -= p.Step
}

func (p *Paddle) MoveDown() {
	p.Y += p.Step
}

// CanMoveUp reports whether the paddle is below the top edge
func (p *Paddle) CanMoveUp() bool {
	return p.Y > 0
}

// CanMoveDown reports whether the paddle is above the bottom edge
func (p *Paddle) CanMoveDown(courtHeight float64) bool {
	return p.Y+p.Height < courtHeight
}

// Clamp keeps the paddle inside [0, courtHeight-Height]
func (p *Paddle) Clamp(courtHeight float64) {
	if p.Y < 0 {
		p.Y = 0
	}
	if maxY := courtHeight - p.Height; p.Y > maxY {
		p.Y = maxY
	}
}

func (p *Paddle) CenterY() float64 {
	return p.Y + p.Height/2
}

func (p *Paddle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
