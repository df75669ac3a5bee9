package main

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/cosmicheat/ecs/component"
)

// Terminals report key presses, never releases. A key counts as held while
// its auto-repeat keeps arriving inside the hold window.
const holdWindow = 180 * time.Millisecond

type keyTracker struct {
	window time.Duration
	seen   map[component.Action]time.Time
	last   component.Input
}

func newKeyTracker(window time.Duration) *keyTracker {
	return &keyTracker{window: window, seen: make(map[component.Action]time.Time)}
}

func (k *keyTracker) press(a component.Action, now time.Time) {
	k.seen[a] = now
}

// snapshot builds the input for a frame at now.
func (k *keyTracker) snapshot(now time.Time) component.Input {
	var held component.ActionSet
	for a, t := range k.seen {
		if now.Sub(t) <= k.window {
			held = held.With(a)
		} else {
			delete(k.seen, a)
		}
	}

	var mx, my float64
	if held.Has(component.ActionLeft) {
		mx--
	}
	if held.Has(component.ActionRight) {
		mx++
	}
	if held.Has(component.ActionUp) {
		my--
	}
	if held.Has(component.ActionDown) {
		my++
	}

	k.last = k.last.Advance(held, mx, my)
	return k.last
}

// actionFor maps a key event to an action.
func actionFor(ev *tcell.EventKey) (component.Action, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return component.ActionLeft, true
	case tcell.KeyRight:
		return component.ActionRight, true
	case tcell.KeyUp:
		return component.ActionUp, true
	case tcell.KeyDown:
		return component.ActionDown, true
	case tcell.KeyEscape:
		return component.ActionPause, true
	case tcell.KeyCtrlC:
		return component.ActionQuit, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'a', 'A':
			return component.ActionLeft, true
		case 'd', 'D':
			return component.ActionRight, true
		case 'w', 'W':
			return component.ActionUp, true
		case 's', 'S':
			return component.ActionDown, true
		case ' ':
			return component.ActionShoot, true
		case 'p', 'P':
			return component.ActionPause, true
		case 'q', 'Q':
			return component.ActionQuit, true
		}
	}
	return 0, false
}
