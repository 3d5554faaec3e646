package game

import "time"

// DefaultKeyHold is how long a key counts as held after its last press.
// Terminals report presses and auto-repeat but never releases.
const DefaultKeyHold = 150 * time.Millisecond

// KeyListener tracks whether one bound key is currently held down
type KeyListener struct {
	hold      time.Duration
	remaining time.Duration
}

func NewKeyListener(hold time.Duration) *KeyListener {
	return &KeyListener{hold: hold}
}

// Press marks the key as down and restarts the hold window
func (k *KeyListener) Press() {
	k.remaining = k.hold
}

func (k *KeyListener) Release() {
	k.remaining = 0
}

func (k *KeyListener) IsDown() bool {
	return k.remaining > 0
}

// Advance counts the hold window down by dt
func (k *KeyListener) Advance(dt time.Duration) {
	if k.remaining <= 0 {
		return
	}
	k.remaining -= dt
	if k.remaining < 0 {
		k.remaining = 0
	}
}

// Control names one movement key
type Control int

const (
	PlayerOneUp Control = iota
	PlayerOneDown
	PlayerTwoUp
	PlayerTwoDown
	numControls
)

// Controls holds the four movement keys of a two-player session
type Controls struct {
	keys [numControls]*KeyListener
}

func NewControls(hold time.Duration) *Controls {
	c := &Controls{}
	for i := range c.keys {
		c.keys[i] = NewKeyListener(hold)
	}
	return c
}

func (c *Controls) Key(ctl Control) *KeyListener {
	return c.keys[ctl]
}

func (c *Controls) Press(ctl Control) {
	c.keys[ctl].Press()
}

func (c *Controls) IsDown(ctl Control) bool {
	return c.keys[ctl].IsDown()
}

// PlayerOneActive reports whether player one holds any movement key
func (c *Controls) PlayerOneActive() bool {
	return c.IsDown(PlayerOneUp) || c.IsDown(PlayerOneDown)
}

// PlayerTwoActive reports whether player two holds any movement key
func (c *Controls) PlayerTwoActive() bool {
	return c.IsDown(PlayerTwoUp) || c.IsDown(PlayerTwoDown)
}

// ActiveFor reports whether the owner of the given side holds a movement key
func (c *Controls) ActiveFor(side Side) bool {
	if side == SideLeft {
		return c.PlayerOneActive()
	}
	return c.PlayerTwoActive()
}

func (c *Controls) Advance(dt time.Duration) {
	for _, k := range c.keys {
		k.Advance(dt)
	}
}

func (c *Controls) ReleaseAll() {
	for _, k := range c.keys {
		k.Release()
	}
}
