package game

import "testing"

func TestReboundAngle_Table(t *testing.T) {
	tests := []struct {
		name        string
		vy          float64
		towardRight bool
		want        float64
	}{
		{"far above, right", 75, true, 40},
		{"far above, left", 75, false, 140},
		{"above, right", 50, true, 60},
		{"above, left", 50, false, 120},
		{"slightly above, right", 30, true, 80},
		{"slightly above, left", 30, false, 100},
		{"center", 0, true, 90},
		{"center left", 0, false, 90},
		{"exact inner threshold", 20, true, 90},
		{"exact negative inner threshold", -20, false, 90},
		{"slightly below, right", -30, true, 100},
		{"slightly below, left", -30, false, 80},
		// Lower buckets are shadowed by the first below-center match
		{"below, right", -50, true, 100},
		{"far below, right", -75, true, 100},
		{"far below, left", -75, false, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReboundAngle(tt.vy, tt.towardRight)
			if got != tt.want {
				t.Errorf("ReboundAngle(%f, %v) = %f, want %f", tt.vy, tt.towardRight, got, tt.want)
			}
		})
	}
}

func TestReboundAngle_Mirrored(t *testing.T) {
	for vy := -120.0; vy <= 120.0; vy += 0.5 {
		right := ReboundAngle(vy, true)
		left := ReboundAngle(vy, false)
		if right != 180-left {
			t.Errorf("vy=%f: expected %f == 180 - %f", vy, right, left)
		}
	}
}

func TestPaddleCollision(t *testing.T) {
	paddle := Rect{X: 1180, Y: 285, W: 20, H: 150}

	tests := []struct {
		name   string
		ball   Rect
		hit    bool
		wantVy float64
	}{
		{"centered overlap", Rect{X: 1164, Y: 345, W: 30, H: 30}, true, 0},
		{"top edge overlap", Rect{X: 1164, Y: 260, W: 30, H: 30}, true, 85},
		{"above paddle", Rect{X: 1164, Y: 250, W: 30, H: 30}, false, 95},
		{"short of paddle", Rect{X: 1140, Y: 345, W: 30, H: 30}, false, 0},
		{"behind paddle", Rect{X: 1210, Y: 345, W: 30, H: 30}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, vy := PaddleCollision(paddle, tt.ball)
			if hit != tt.hit {
				t.Errorf("expected hit=%v, got %v", tt.hit, hit)
			}
			if vy != tt.wantVy {
				t.Errorf("expected vy=%f, got %f", tt.wantVy, vy)
			}
		})
	}
}

func TestVerticalDelta(t *testing.T) {
	tests := []struct {
		angle       float64
		towardRight bool
		want        int
	}{
		{90, true, 0},
		{90, false, 0},
		{30, true, 1},
		{30, false, -1},
		{150, true, -1},
		{150, false, 1},
	}

	for _, tt := range tests {
		got := VerticalDelta(tt.angle, tt.towardRight)
		if got != tt.want {
			t.Errorf("VerticalDelta(%f, %v) = %d, want %d", tt.angle, tt.towardRight, got, tt.want)
		}
	}
}

func TestWallCollision(t *testing.T) {
	const courtHeight = 720

	tests := []struct {
		name     string
		y        float64
		vertical int
		want     bool
	}{
		{"top edge moving up", -2, -1, true},
		{"top edge moving down", -2, 1, false},
		{"bottom edge moving down", 695, 1, true},
		{"bottom edge moving up", 695, -1, false},
		{"mid court", 300, -1, false},
		{"flat on top edge", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ball := Rect{X: 600, Y: tt.y, W: 30, H: 30}
			if got := WallCollision(ball, courtHeight, tt.vertical); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestGoalCollision(t *testing.T) {
	const courtWidth = 1280

	if !GoalCollision(Rect{X: -1, Y: 300, W: 30, H: 30}, courtWidth) {
		t.Error("expected goal past the left edge")
	}
	if !GoalCollision(Rect{X: 1251, Y: 300, W: 30, H: 30}, courtWidth) {
		t.Error("expected goal past the right edge")
	}
	if GoalCollision(Rect{X: 625, Y: 300, W: 30, H: 30}, courtWidth) {
		t.Error("expected no goal at center")
	}
}
