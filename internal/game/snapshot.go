package game

// Snapshot is a read-only copy of everything the renderer draws
type Snapshot struct {
	Phase          Phase
	CourtWidth     float64
	CourtHeight    float64
	Ball           Rect
	BallVisible    bool
	Left           Rect
	Right          Rect
	PlayerOneScore int
	PlayerTwoScore int
	PointsToWin    int
	Winner         Player
	MenuIndex      int
	Tick           int
}

// Snapshot copies the current state
func (g *Game) Snapshot() Snapshot {
	winner, _ := g.Winner()
	return Snapshot{
		Phase:          g.phase,
		CourtWidth:     g.Settings.CourtWidth,
		CourtHeight:    g.Settings.CourtHeight,
		Ball:           g.Ball.Bounds(),
		BallVisible:    g.Ball.Visible,
		Left:           g.Left.Bounds(),
		Right:          g.Right.Bounds(),
		PlayerOneScore: g.PlayerOneScore,
		PlayerTwoScore: g.PlayerTwoScore,
		PointsToWin:    g.Settings.PointsToWin,
		Winner:         winner,
		MenuIndex:      g.menuIndex,
		Tick:           g.Tick,
	}
}
