package core

import "strconv"

// Color represents a foreground color for a tile accent or a screen element.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors for menu tiles.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorPurple
	ColorTeal

	colorCount
)

// ansiCodes maps each Color to its ANSI 256 palette index.
var ansiCodes = [colorCount]int{
	ColorDefault:       -1,
	ColorRed:           1,
	ColorGreen:         2,
	ColorYellow:        3,
	ColorBlue:          4,
	ColorMagenta:       5,
	ColorCyan:          6,
	ColorWhite:         7,
	ColorBrightRed:     9,
	ColorBrightGreen:   10,
	ColorBrightYellow:  11,
	ColorBrightBlue:    12,
	ColorBrightMagenta: 13,
	ColorBrightCyan:    14,
	ColorBrightWhite:   15,
	ColorOrange:        208,
	ColorGray:          245,
	ColorPink:          212,
	ColorPurple:        99,
	ColorTeal:          37,
}

// Valid reports whether c is one of the predefined colors.
func (c Color) Valid() bool {
	return c < colorCount
}

// Code returns the ANSI palette index as a string, or "" for the terminal default.
func (c Color) Code() string {
	if !c.Valid() || ansiCodes[c] < 0 {
		return ""
	}
	return strconv.Itoa(ansiCodes[c])
}
