package core

// Color is a foreground color for a screen cell, in any notation lipgloss
// understands: an ANSI index ("9"), a 256-color index ("208") or a hex
// value ("#64FF64"). The empty Color keeps the terminal default.
type Color string

// ColorDefault leaves the cell in the terminal's default color.
const ColorDefault Color = ""
