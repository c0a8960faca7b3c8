package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/closewatch/closewatch/internal/uievent"
)

// keyEventFromMsg translates a bubbletea key message into the neutral event
// model. Terminals report presses only, so Escape is emitted as a release:
// one gesture, one dismissal dispatch.
func keyEventFromMsg(msg tea.KeyMsg) uievent.KeyEvent {
	if msg.Type == tea.KeyEsc {
		return uievent.KeyEvent{Key: uievent.KeyEscape, Release: true, Trusted: true}
	}
	return uievent.KeyEvent{Key: msg.String(), Trusted: true}
}

// pointerEventFromMsg translates a bubbletea mouse message. Terminal
// pointers are always mouse-sourced, which is exactly the source that must
// not gain activation from its down transition.
func pointerEventFromMsg(msg tea.MouseMsg) uievent.PointerEvent {
	return uievent.PointerEvent{
		Source:  uievent.PointerMouse,
		Down:    msg.Action == tea.MouseActionPress,
		Trusted: true,
	}
}
