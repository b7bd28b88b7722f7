// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{Code: tea.KeyXxx}.String()
// so they always match the runtime values.
//
// Printable keys are deliberately absent: in the grid every printable key
// starts editing the selected cell, so all commands are bound to control or
// function keys.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up        = tea.KeyPressMsg{Code: tea.KeyUp}.String()                           // "up"
	Down      = tea.KeyPressMsg{Code: tea.KeyDown}.String()                         // "down"
	Left      = tea.KeyPressMsg{Code: tea.KeyLeft}.String()                         // "left"
	Right     = tea.KeyPressMsg{Code: tea.KeyRight}.String()                        // "right"
	Home      = tea.KeyPressMsg{Code: tea.KeyHome}.String()                         // "home"
	End       = tea.KeyPressMsg{Code: tea.KeyEnd}.String()                          // "end"
	PgUp      = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()                         // "pgup"
	PgDown    = tea.KeyPressMsg{Code: tea.KeyPgDown}.String()                       // "pgdown"
	CtrlLeft  = (tea.KeyPressMsg{Code: tea.KeyLeft, Mod: tea.ModCtrl}).String()    // "ctrl+left"
	CtrlRight = (tea.KeyPressMsg{Code: tea.KeyRight, Mod: tea.ModCtrl}).String()   // "ctrl+right"
)

// Action keys
var (
	Enter     = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                    // "enter"
	Tab       = tea.KeyPressMsg{Code: tea.KeyTab}.String()                      // "tab"
	ShiftTab  = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String() // "shift+tab"
	Space     = tea.KeyPressMsg{Code: tea.KeySpace}.String()                    // "space"
	Backspace = tea.KeyPressMsg{Code: tea.KeyBackspace}.String()                // "backspace"
	Delete    = tea.KeyPressMsg{Code: tea.KeyDelete}.String()                   // "delete"
	Escape    = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                   // "esc"
	F1        = tea.KeyPressMsg{Code: tea.KeyF1}.String()                       // "f1"
	F2        = tea.KeyPressMsg{Code: tea.KeyF2}.String()                       // "f2"
)

// Ctrl combinations
var (
	CtrlB     = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String() // "ctrl+b"
	CtrlC     = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String() // "ctrl+c"
	CtrlE     = (tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}).String() // "ctrl+e"
	CtrlG     = (tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}).String() // "ctrl+g"
	CtrlN     = (tea.KeyPressMsg{Code: 'n', Mod: tea.ModCtrl}).String() // "ctrl+n"
	CtrlO     = (tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}).String() // "ctrl+o"
	CtrlR     = (tea.KeyPressMsg{Code: 'r', Mod: tea.ModCtrl}).String() // "ctrl+r"
	CtrlS     = (tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}).String() // "ctrl+s"
	CtrlT     = (tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}).String() // "ctrl+t"
	CtrlY     = (tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}).String() // "ctrl+y"
	CtrlSlash = (tea.KeyPressMsg{Code: '/', Mod: tea.ModCtrl}).String() // "ctrl+/"
)
