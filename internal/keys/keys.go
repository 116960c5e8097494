// Package keys provides string constants for Bubble Tea v2 key press events.
//
// These constants are derived from tea.KeyPressMsg{...}.String() so they
// always match the runtime values. Single-character keys like "y" are not
// included because they cannot be misspelled in a meaningful way.
package keys

import tea "charm.land/bubbletea/v2"

// Navigation keys
var (
	Up     = tea.KeyPressMsg{Code: tea.KeyUp}.String()     // "up"
	Down   = tea.KeyPressMsg{Code: tea.KeyDown}.String()   // "down"
	Home   = tea.KeyPressMsg{Code: tea.KeyHome}.String()   // "home"
	End    = tea.KeyPressMsg{Code: tea.KeyEnd}.String()    // "end"
	PgUp   = tea.KeyPressMsg{Code: tea.KeyPgUp}.String()   // "pgup"
	PgDown = tea.KeyPressMsg{Code: tea.KeyPgDown}.String() // "pgdown"
)

// Action keys
var (
	Enter      = tea.KeyPressMsg{Code: tea.KeyEnter}.String()                      // "enter"
	ShiftEnter = (tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}).String() // "shift+enter"
	Tab        = tea.KeyPressMsg{Code: tea.KeyTab}.String()                        // "tab"
	ShiftTab   = (tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}).String()   // "shift+tab"
	Space      = tea.KeyPressMsg{Code: tea.KeySpace}.String()                      // "space"
	Escape     = tea.KeyPressMsg{Code: tea.KeyEscape}.String()                     // "esc"
)

// Function keys
var (
	F2 = tea.KeyPressMsg{Code: tea.KeyF2}.String() // "f2"
	F3 = tea.KeyPressMsg{Code: tea.KeyF3}.String() // "f3"
)

// Modifier combinations
var (
	CtrlC      = (tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}).String()                // "ctrl+c"
	CtrlB      = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl}).String()                // "ctrl+b"
	CtrlShiftB = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModCtrl | tea.ModShift}).String() // "ctrl+shift+b"
	SuperB     = (tea.KeyPressMsg{Code: 'b', Mod: tea.ModSuper}).String()               // "super+b"
)
