package keys

import (
	"testing"
	"unicode/utf8"
)

// bindings pins the string form of every key the app matches on, so a
// Bubble Tea upgrade that renames keys fails here first.
var bindings = map[string]string{
	"up": Up, "down": Down, "left": Left, "right": Right,
	"home": Home, "end": End, "pgup": PgUp, "pgdown": PgDown,
	"ctrl+left": CtrlLeft, "ctrl+right": CtrlRight,

	"enter": Enter, "tab": Tab, "shift+tab": ShiftTab, "space": Space,
	"backspace": Backspace, "delete": Delete, "esc": Escape,
	"f1": F1, "f2": F2,

	"ctrl+b": CtrlB, "ctrl+c": CtrlC, "ctrl+e": CtrlE, "ctrl+g": CtrlG,
	"ctrl+n": CtrlN, "ctrl+o": CtrlO, "ctrl+r": CtrlR, "ctrl+s": CtrlS,
	"ctrl+t": CtrlT, "ctrl+y": CtrlY, "ctrl+/": CtrlSlash,
}

func TestBindingNames(t *testing.T) {
	for want, got := range bindings {
		if got != want {
			t.Errorf("binding = %q, want %q", got, want)
		}
	}
}

func TestBindingsLeavePrintableKeysForTyping(t *testing.T) {
	for name := range bindings {
		if utf8.RuneCountInString(name) == 1 {
			t.Errorf("%q is a printable key and would never reach the grid editor", name)
		}
	}
}
