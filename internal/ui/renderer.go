package ui

import (
	"fmt"
	"math"

	"github.com/diegok/duopong/internal/game"
)

const (
	SpriteChar     = '\u2588' // █
	CenterLineChar = '|'
)

// Renderer handles rendering all game screens
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer with the given screen
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the screen for the snapshot's phase
func (r *Renderer) Render(snap game.Snapshot) {
	switch snap.Phase {
	case game.PhaseMenu:
		r.RenderMenu(snap)
	case game.PhaseWin:
		r.RenderWin(snap)
	default:
		r.RenderGame(snap)
	}
}

// court maps court units onto the terminal rows between the scoreboard
// and the status bar
type court struct {
	scaleX, scaleY float64
	screenW        int
	screenH        int
}

func newCourt(snap game.Snapshot, screenW, screenH int) court {
	rows := screenH - 2
	if rows < 1 {
		rows = 1
	}
	return court{
		scaleX:  float64(screenW) / snap.CourtWidth,
		scaleY:  float64(rows) / snap.CourtHeight,
		screenW: screenW,
		screenH: screenH,
	}
}

// cells returns the half-open cell range covered by a rectangle, at least
// one cell wide and tall
func (c court) cells(rect game.Rect) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(rect.X * c.scaleX))
	x1 = int(math.Ceil((rect.X + rect.W) * c.scaleX))
	y0 = int(math.Floor(rect.Y*c.scaleY)) + 1 // +1 for the scoreboard row
	y1 = int(math.Ceil((rect.Y+rect.H)*c.scaleY)) + 1
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

func (r *Renderer) drawSprite(c court, rect game.Rect) {
	x0, y0, x1, y1 := c.cells(rect)
	for y := y0; y < y1; y++ {
		if y < 1 || y >= c.screenH-1 {
			continue
		}
		for x := x0; x < x1; x++ {
			if x < 0 || x >= c.screenW {
				continue
			}
			r.screen.SetCell(x, y, spriteStyle, SpriteChar)
		}
	}
}

func (r *Renderer) drawCourt(snap game.Snapshot) court {
	screenW, screenH := r.screen.Size()
	c := newCourt(snap, screenW, screenH)

	r.screen.FillRect(0, 0, screenW, screenH, courtStyle, ' ')

	// Dashed center line
	centerX := screenW / 2
	for y := 1; y < screenH-1; y += 2 {
		r.screen.SetCell(centerX, y, lineStyle, CenterLineChar)
	}

	r.renderScores(snap, screenW)

	r.drawSprite(c, snap.Left)
	r.drawSprite(c, snap.Right)

	return c
}

// renderScores draws each player's score above their half of the court
func (r *Renderer) renderScores(snap game.Snapshot, screenW int) {
	one := fmt.Sprintf("%d", snap.PlayerOneScore)
	two := fmt.Sprintf("%d", snap.PlayerTwoScore)

	r.screen.DrawText(screenW/4-len(one)/2, 0, one, textStyle)
	r.screen.DrawText(screenW*3/4-len(two)/2, 0, two, textStyle)
}

func (r *Renderer) renderStatus(text string) {
	_, screenH := r.screen.Size()
	r.screen.DrawText(1, screenH-1, text, dimStyle)
}

// RenderGame displays the court during play and while a point is scored
func (r *Renderer) RenderGame(snap game.Snapshot) {
	c := r.drawCourt(snap)

	if snap.BallVisible {
		r.drawSprite(c, snap.Ball)
	}

	r.renderStatus(fmt.Sprintf("First to %d wins | q to quit", snap.PointsToWin))
	r.screen.Show()
}

// RenderMenu displays the title and the mode list
func (r *Renderer) RenderMenu(snap game.Snapshot) {
	screenW, screenH := r.screen.Size()
	r.screen.FillRect(0, 0, screenW, screenH, courtStyle, ' ')

	r.screen.DrawCenteredText(screenH/4, "PONG", textStyle)

	rows := []int{screenH / 2, int(float64(screenH) / 1.5)}
	for i, mode := range game.MenuModes {
		label := mode.String()
		if i == snap.MenuIndex {
			label = "> " + label + " <"
		}
		style := textStyle
		if !mode.Available() {
			style = dimStyle
		}
		r.screen.DrawCenteredText(rows[i], label, style)
	}

	r.screen.DrawCenteredText(screenH-2, "ENTER to start | q to quit", hintStyle)
	r.screen.Show()
}

// RenderWin displays the final court with the winner announcement
func (r *Renderer) RenderWin(snap game.Snapshot) {
	r.drawCourt(snap)
	screenW, screenH := r.screen.Size()

	text := fmt.Sprintf("PLAYER %s WINS!", snap.Winner)
	boxW := len(text) + 6
	boxH := 5
	boxX := (screenW - boxW) / 2
	boxY := (screenH - boxH) / 2
	r.screen.FillRect(boxX, boxY, boxW, boxH, courtStyle, ' ')
	r.screen.DrawBox(boxX, boxY, boxW, boxH, textStyle)
	r.screen.DrawCenteredText(boxY+2, text, textStyle)

	r.renderStatus("Press 'q' to quit")
	r.screen.Show()
}
