package core

// Color represents a foreground color for a screen cell.
// Values are ANSI 256-color codes for terminal compatibility.
type Color uint8

// ColorDefault leaves the terminal's own foreground color.
const ColorDefault Color = 0
