package ui

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/diegok/duopong/internal/game"
)

// namedKeys lists the key names accepted in bindings besides single runes
var namedKeys = map[string]tcell.Key{
	"up":    tcell.KeyUp,
	"down":  tcell.KeyDown,
	"left":  tcell.KeyLeft,
	"right": tcell.KeyRight,
	"pgup":  tcell.KeyPgUp,
	"pgdn":  tcell.KeyPgDn,
	"home":  tcell.KeyHome,
	"end":   tcell.KeyEnd,
}

type binding struct {
	key tcell.Key
	r   rune
}

// ParseKey turns a key name into a tcell key and rune.
// Single characters are matched case-insensitively.
func ParseKey(name string) (tcell.Key, rune, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if k, ok := namedKeys[name]; ok {
		return k, 0, nil
	}
	if utf8.RuneCountInString(name) == 1 {
		r, _ := utf8.DecodeRuneInString(name)
		if r == 'q' {
			return tcell.KeyNUL, 0, fmt.Errorf("key %q is reserved for quit", name)
		}
		return tcell.KeyRune, r, nil
	}
	return tcell.KeyNUL, 0, fmt.Errorf("unknown key %q", name)
}

// Bindings maps keyboard keys to paddle controls
type Bindings struct {
	controls map[binding]game.Control
}

// NewBindings parses the four movement keys in control order:
// player one up, player one down, player two up, player two down
func NewBindings(p1Up, p1Down, p2Up, p2Down string) (*Bindings, error) {
	b := &Bindings{controls: make(map[binding]game.Control)}

	names := []struct {
		name string
		ctl  game.Control
	}{
		{p1Up, game.PlayerOneUp},
		{p1Down, game.PlayerOneDown},
		{p2Up, game.PlayerTwoUp},
		{p2Down, game.PlayerTwoDown},
	}

	for _, n := range names {
		k, r, err := ParseKey(n.name)
		if err != nil {
			return nil, err
		}
		key := binding{key: k, r: r}
		if _, dup := b.controls[key]; dup {
			return nil, fmt.Errorf("key %q is bound twice", n.name)
		}
		b.controls[key] = n.ctl
	}

	return b, nil
}

// DefaultBindings are W/S for player one and the arrows for player two
func DefaultBindings() *Bindings {
	b, _ := NewBindings("w", "s", "up", "down")
	return b
}

// Lookup returns the control bound to a key event
func (b *Bindings) Lookup(key tcell.Key, r rune) (game.Control, bool) {
	if key == tcell.KeyRune {
		r = unicode.ToLower(r)
	} else {
		r = 0
	}
	ctl, ok := b.controls[binding{key: key, r: r}]
	return ctl, ok
}

// IsQuitKey returns true if the key should quit the application
func IsQuitKey(key tcell.Key, r rune) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC {
		return true
	}
	if key == tcell.KeyRune && (r == 'q' || r == 'Q') {
		return true
	}
	return false
}

// IsStartKey returns true if the key should start/confirm
func IsStartKey(key tcell.Key) bool {
	return key == tcell.KeyEnter
}

// MenuMove returns -1 or 1 for keys that move the menu cursor, 0 otherwise
func MenuMove(b *Bindings, key tcell.Key, r rune) int {
	switch key {
	case tcell.KeyUp:
		return -1
	case tcell.KeyDown:
		return 1
	}
	if ctl, ok := b.Lookup(key, r); ok {
		switch ctl {
		case game.PlayerOneUp, game.PlayerTwoUp:
			return -1
		case game.PlayerOneDown, game.PlayerTwoDown:
			return 1
		}
	}
	return 0
}
