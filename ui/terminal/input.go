package terminal

import (
	"github.com/gdamore/tcell/v2"

	"snake-arcade/game/types"
)

// Command is a frontend action that is not a game key.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandRestart
)

// KeyFromEvent maps a tcell key event to a game key code.
func KeyFromEvent(ev *tcell.EventKey) (types.KeyCode, bool) {
	return keyFor(ev.Key(), ev.Rune())
}

// CommandFromEvent maps a tcell key event to a frontend command.
func CommandFromEvent(ev *tcell.EventKey) Command {
	return commandFor(ev.Key(), ev.Rune())
}

func keyFor(key tcell.Key, ch rune) (types.KeyCode, bool) {
	switch key {
	case tcell.KeyUp:
		return types.KeyUp, true
	case tcell.KeyDown:
		return types.KeyDown, true
	case tcell.KeyLeft:
		return types.KeyLeft, true
	case tcell.KeyRight:
		return types.KeyRight, true
	case tcell.KeyRune:
		switch ch {
		case ' ':
			return types.KeyPause, true
		case 'r', 'R':
			return types.KeyResume, true
		case 'w', 'k':
			return types.KeyUp, true
		case 's', 'j':
			return types.KeyDown, true
		case 'a', 'h':
			return types.KeyLeft, true
		case 'd', 'l':
			return types.KeyRight, true
		}
	}
	return 0, false
}

func commandFor(key tcell.Key, ch rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CommandQuit
	case tcell.KeyRune:
		switch ch {
		case 'q', 'Q':
			return CommandQuit
		case 'n', 'N':
			return CommandRestart
		}
	}
	return CommandNone
}
