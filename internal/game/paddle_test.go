package game

import "testing"

func TestNewPaddle_Positions(t *testing.T) {
	s := DefaultSettings()

	left := NewPaddle(SideLeft, s)
	right := NewPaddle(SideRight, s)

	if left.X != s.PaddleInset {
		t.Errorf("expected left paddle X=%f, got %f", s.PaddleInset, left.X)
	}
	if right.X != s.CourtWidth-s.PaddleInset {
		t.Errorf("expected right paddle X=%f, got %f", s.CourtWidth-s.PaddleInset, right.X)
	}

	// Vertically centered
	if left.CenterY() != s.CourtHeight/2 {
		t.Errorf("expected left paddle centered at %f, got %f", s.CourtHeight/2, left.CenterY())
	}
	if right.Side != SideRight {
		t.Errorf("expected right paddle side, got %v", right.Side)
	}
}

func TestPaddle_MoveUpDown(t *testing.T) {
	paddle := &Paddle{Y: 100, Height: 150, Step: 10}

	paddle.MoveUp()
	if paddle.Y != 90 {
		t.Errorf("expected Y=90 after MoveUp, got %f", paddle.Y)
	}

	paddle.MoveDown()
	paddle.MoveDown()
	if paddle.Y != 110 {
		t.Errorf("expected Y=110 after two MoveDown, got %f", paddle.Y)
	}
}

func TestPaddle_Bounds(t *testing.T) {
	const courtHeight = 720

	paddle := &Paddle{Y: 0, Height: 150, Step: 10}
	if paddle.CanMoveUp() {
		t.Error("paddle at top should not move up")
	}
	if !paddle.CanMoveDown(courtHeight) {
		t.Error("paddle at top should move down")
	}

	paddle.Y = courtHeight - 150
	if paddle.CanMoveDown(courtHeight) {
		t.Error("paddle at bottom should not move down")
	}
	if !paddle.CanMoveUp() {
		t.Error("paddle at bottom should move up")
	}
}

func TestPaddle_Clamp(t *testing.T) {
	const courtHeight = 720

	tests := []struct {
		y    float64
		want float64
	}{
		{-5, 0},
		{0, 0},
		{300, 300},
		{570, 570},
		{575, 570},
	}

	for _, tt := range tests {
		paddle := &Paddle{Y: tt.y, Height: 150}
		paddle.Clamp(courtHeight)
		if paddle.Y != tt.want {
			t.Errorf("Clamp(%f) = %f, want %f", tt.y, paddle.Y, tt.want)
		}
	}
}

func TestSide_String(t *testing.T) {
	if SideLeft.String() != "left" {
		t.Errorf("expected 'left', got '%s'", SideLeft.String())
	}
	if SideRight.String() != "right" {
		t.Errorf("expected 'right', got '%s'", SideRight.String())
	}
}
