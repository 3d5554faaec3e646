package game

import (
	"errors"
	"log/slog"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Constants for game state management
const (
	DefaultPointsToWin   = 10
	DefaultRespawnDelay  = 3 * time.Second
	DefaultBlinkInterval = 200 * time.Millisecond
)

var (
	ErrModeUnavailable = errors.New("game mode not available")
	ErrNotInMenu       = errors.New("mode can only be selected from the menu")
)

// Settings holds the court geometry and rules of a session
type Settings struct {
	CourtWidth    float64
	CourtHeight   float64
	BallSize      float64
	BallVelocity  float64
	PaddleWidth   float64
	PaddleHeight  float64
	PaddleInset   float64
	PaddleStep    float64
	PointsToWin   int
	RespawnDelay  time.Duration
	BlinkInterval time.Duration
	KeyHold       time.Duration
}

func DefaultSettings() Settings {
	return Settings{
		CourtWidth:    1280,
		CourtHeight:   720,
		BallSize:      DefaultBallSize,
		BallVelocity:  DefaultBallVelocity,
		PaddleWidth:   DefaultPaddleWidth,
		PaddleHeight:  DefaultPaddleHeight,
		PaddleInset:   DefaultPaddleInset,
		PaddleStep:    DefaultPaddleStep,
		PointsToWin:   DefaultPointsToWin,
		RespawnDelay:  DefaultRespawnDelay,
		BlinkInterval: DefaultBlinkInterval,
		KeyHold:       DefaultKeyHold,
	}
}

// Audio receives fire-and-forget sound notifications
type Audio interface {
	PaddleHit()
	WallHit()
	Score()
}

// NopAudio discards every notification
type NopAudio struct{}

func (NopAudio) PaddleHit() {}
func (NopAudio) WallHit()   {}
func (NopAudio) Score()     {}

// Phase is the state machine tag
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlay
	PhaseScore
	PhaseWin
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlay:
		return "play"
	case PhaseScore:
		return "score"
	case PhaseWin:
		return "win"
	}
	return "unknown"
}

// Mode is a menu entry
type Mode int

const (
	ModeOnePlayer Mode = iota
	ModeTwoPlayer
)

func (m Mode) String() string {
	if m == ModeOnePlayer {
		return "1 PLAYER"
	}
	return "2 PLAYER"
}

// MenuModes lists the menu entries in display order
var MenuModes = []Mode{ModeOnePlayer, ModeTwoPlayer}

// Available reports whether the mode can be started
func (m Mode) Available() bool {
	return m == ModeTwoPlayer
}

// scoreCountdown is owned by the score phase and dropped when it ends
type scoreCountdown struct {
	remaining time.Duration
	interval  time.Duration
	blinkLeft time.Duration
	visible   bool
}

func newScoreCountdown(delay, interval time.Duration) *scoreCountdown {
	return &scoreCountdown{
		remaining: delay,
		interval:  interval,
		blinkLeft: interval,
		visible:   true,
	}
}

// advance returns true once the respawn delay has elapsed
func (c *scoreCountdown) advance(dt time.Duration) bool {
	c.remaining -= dt
	if c.remaining <= 0 {
		return true
	}
	if c.interval <= 0 {
		return false
	}
	c.blinkLeft -= dt
	for c.blinkLeft <= 0 {
		c.visible = !c.visible
		c.blinkLeft += c.interval
	}
	return false
}

// Game is the complete state of one session
type Game struct {
	Settings       Settings
	Ball           *Ball
	Left           *Paddle
	Right          *Paddle
	Controls       *Controls
	PlayerOneScore int
	PlayerTwoScore int
	Tick           int

	current   *Paddle
	phase     Phase
	countdown *scoreCountdown
	menuIndex int
	matchID   string

	audio Audio
	log   *slog.Logger
	rng   *rand.Rand
}

// NewGame creates a game waiting in the menu.
// A nil audio, logger or rng gets a silent, discarding or time-seeded default.
func NewGame(s Settings, audio Audio, logger *slog.Logger, rng *rand.Rand) *Game {
	if audio == nil {
		audio = NopAudio{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	g := &Game{
		Settings:  s,
		Left:      NewPaddle(SideLeft, s),
		Right:     NewPaddle(SideRight, s),
		Controls:  NewControls(s.KeyHold),
		phase:     PhaseMenu,
		menuIndex: int(ModeTwoPlayer),
		audio:     audio,
		log:       logger,
		rng:       rng,
	}
	g.Ball = g.newBall(true)
	g.current = g.Right
	return g
}

func (g *Game) newBall(towardRight bool) *Ball {
	s := g.Settings
	return NewBall(s.CourtWidth, s.CourtHeight, s.BallSize, s.BallVelocity, towardRight, g.rng)
}

func (g *Game) Phase() Phase {
	return g.phase
}

// CurrentPaddle is the paddle the ball is travelling toward
func (g *Game) CurrentPaddle() *Paddle {
	return g.current
}

func (g *Game) MatchID() string {
	return g.matchID
}

func (g *Game) MenuIndex() int {
	return g.menuIndex
}

// MenuNext moves the menu cursor down, wrapping around
func (g *Game) MenuNext() {
	g.menuIndex = (g.menuIndex + 1) % len(MenuModes)
}

// MenuPrev moves the menu cursor up, wrapping around
func (g *Game) MenuPrev() {
	g.menuIndex = (g.menuIndex + len(MenuModes) - 1) % len(MenuModes)
}

// MenuSelect starts the mode under the cursor
func (g *Game) MenuSelect() error {
	return g.SelectMode(MenuModes[g.menuIndex])
}

// SelectMode leaves the menu and starts playing
func (g *Game) SelectMode(mode Mode) error {
	if g.phase != PhaseMenu {
		return ErrNotInMenu
	}
	if !mode.Available() {
		return ErrModeUnavailable
	}

	g.matchID = uuid.NewString()
	g.log = g.log.With("match_id", g.matchID)
	g.log.Info("match started", "mode", mode.String(), "points_to_win", g.Settings.PointsToWin)
	g.phase = PhasePlay
	return nil
}

// Step runs one frame of the state machine; dt is the time since the
// previous frame
func (g *Game) Step(dt time.Duration) {
	g.Tick++

	switch g.phase {
	case PhaseMenu:
		// Idle until a mode is selected
	case PhasePlay:
		g.phase = g.play()
	case PhaseScore:
		g.phase = g.score(dt)
	case PhaseWin:
		// Terminal
	}

	g.Controls.Advance(dt)
}

// play advances the ball and reacts to at most one collision
func (g *Game) play() Phase {
	g.Ball.CalculateRebound()
	g.detectMovement()

	ball := g.Ball.Bounds()

	if hit, vy := PaddleCollision(g.current.Bounds(), ball); hit {
		g.paddleHit(vy)
		return PhasePlay
	}

	if WallCollision(ball, g.Settings.CourtHeight, VerticalDelta(g.Ball.Angle, g.Ball.TowardRight)) {
		g.audio.WallHit()
		g.Ball.InvertAngle()
		g.log.Debug("wall hit", "angle", g.Ball.Angle)
		return PhasePlay
	}

	if GoalCollision(ball, g.Settings.CourtWidth) {
		return g.goal()
	}

	return PhasePlay
}

func (g *Game) paddleHit(vy float64) {
	g.audio.PaddleHit()

	g.Ball.SetAngle(ReboundAngle(vy, g.Ball.TowardRight))

	// Skill shot: the receiving player was moving at contact
	if g.Controls.ActiveFor(g.current.Side) {
		g.Ball.SpeedUp()
	} else {
		g.Ball.SlowDown()
	}

	g.log.Debug("paddle hit", "side", g.current.Side.String(), "vy", vy,
		"angle", g.Ball.Angle, "boosted", g.Ball.Boosted())

	g.Ball.TowardRight = !g.Ball.TowardRight
	if g.Ball.TowardRight {
		g.current = g.Right
	} else {
		g.current = g.Left
	}
}

func (g *Game) goal() Phase {
	g.audio.Score()

	if g.Ball.TowardRight {
		g.PlayerOneScore++
	} else {
		g.PlayerTwoScore++
	}
	g.log.Info("goal", "player_one", g.PlayerOneScore, "player_two", g.PlayerTwoScore)

	if g.PlayerOneScore >= g.Settings.PointsToWin || g.PlayerTwoScore >= g.Settings.PointsToWin {
		winner, _ := g.Winner()
		g.countdown = nil
		g.log.Info("match won", "winner", winner.String())
		return PhaseWin
	}

	g.countdown = newScoreCountdown(g.Settings.RespawnDelay, g.Settings.BlinkInterval)
	return PhaseScore
}

// score blinks the ball until the respawn delay elapses.
// Paddles can still move while it plays.
func (g *Game) score(dt time.Duration) Phase {
	g.detectMovement()

	if g.countdown.advance(dt) {
		g.countdown = nil
		g.Ball = g.newBall(g.Ball.TowardRight)
		return PhasePlay
	}

	g.Ball.Visible = g.countdown.visible
	return PhaseScore
}

func (g *Game) detectMovement() {
	h := g.Settings.CourtHeight

	if g.Controls.IsDown(PlayerOneUp) && g.Left.CanMoveUp() {
		g.Left.MoveUp()
	}
	if g.Controls.IsDown(PlayerOneDown) && g.Left.CanMoveDown(h) {
		g.Left.MoveDown()
	}
	if g.Controls.IsDown(PlayerTwoUp) && g.Right.CanMoveUp() {
		g.Right.MoveUp()
	}
	if g.Controls.IsDown(PlayerTwoDown) && g.Right.CanMoveDown(h) {
		g.Right.MoveDown()
	}

	g.Left.Clamp(h)
	g.Right.Clamp(h)
}

// Player identifies a score owner
type Player int

const (
	PlayerOne Player = iota
	PlayerTwo
)

func (p Player) String() string {
	if p == PlayerOne {
		return "ONE"
	}
	return "TWO"
}

// Winner returns the winning player once the match is over
func (g *Game) Winner() (Player, bool) {
	switch {
	case g.PlayerOneScore >= g.Settings.PointsToWin:
		return PlayerOne, true
	case g.PlayerTwoScore >= g.Settings.PointsToWin:
		return PlayerTwo, true
	}
	return PlayerOne, false
}
