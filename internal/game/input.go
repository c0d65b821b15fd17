package game

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"survivors/internal/system"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionJump
	ActionSlotMelee
	ActionSlotRanged
	ActionToggleSlot
	ActionMenuUp
	ActionMenuDown
	ActionConfirm
	ActionQuit
)

// holdWindow is how long a movement key counts as held after its last
// press. Terminals report key repeats, never releases.
const holdWindow = 150 * time.Millisecond

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyUp:
		return ActionJump
	case tcell.KeyDown:
		return ActionMenuDown
	case tcell.KeyTab:
		return ActionToggleSlot
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'a', 'A', 'h', 'H':
		return ActionLeft
	case 'd', 'D', 'l', 'L':
		return ActionRight
	case 'w', 'W', 'k', 'K', ' ':
		return ActionJump
	case 's', 'S', 'j', 'J':
		return ActionMenuDown
	case '1':
		return ActionSlotMelee
	case '2':
		return ActionSlotRanged
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// menuAction reinterprets a gameplay action inside a menu, where jump keys
// move the cursor up.
func menuAction(a Action) Action {
	if a == ActionJump {
		return ActionMenuUp
	}
	return a
}

// menuDigit returns the zero-based option picked by a digit key.
func menuDigit(ev *tcell.EventKey) (int, bool) {
	r := ev.Rune()
	if ev.Key() != tcell.KeyRune || r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}

// controls accumulates key presses between ticks.
type controls struct {
	left, right time.Time
	jump        bool
	slot        Action
}

func (c *controls) press(a Action, now time.Time) {
	switch a {
	case ActionLeft:
		c.left = now
	case ActionRight:
		c.right = now
	case ActionJump:
		c.jump = true
	case ActionSlotMelee, ActionSlotRanged, ActionToggleSlot:
		c.slot = a
	}
}

// input returns the intent for the tick at now and clears the one-shot jump
// and slot keys.
// When both directions are held the most recent press wins.
func (c *controls) input(now time.Time) system.Input {
	held := func(t time.Time) bool { return !t.IsZero() && now.Sub(t) < holdWindow }

	in := system.Input{Jump: c.jump}
	left, right := held(c.left), held(c.right)
	switch {
	case left && right:
		in.Left = c.left.After(c.right)
		in.Right = !in.Left
	default:
		in.Left, in.Right = left, right
	}

	switch c.slot {
	case ActionSlotMelee:
		in.SelectMelee = true
	case ActionSlotRanged:
		in.SelectRanged = true
	case ActionToggleSlot:
		in.ToggleSlot = true
	}
	c.jump, c.slot = false, ActionNone
	return in
}
