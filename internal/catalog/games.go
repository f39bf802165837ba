package catalog

import (
	"github.com/vovakirdan/kids-arcade/internal/core"
	"github.com/vovakirdan/kids-arcade/internal/route"
)

// Glyph identifiers used by the built-in games.
const (
	IconCards      Icon = "cards"
	IconGrid       Icon = "grid"
	IconPuzzle     Icon = "puzzle"
	IconTicTacToe  Icon = "tictactoe"
	IconBrush      Icon = "brush"
	IconLetters    Icon = "letters"
	IconSnake      Icon = "snake"
	IconPiano      Icon = "piano"
	IconCalculator Icon = "calculator"
	IconHammer     Icon = "hammer"
)

// gameTable is the source for Games. Order is the on-screen order.
var gameTable = [...]MenuItem{
	{Label: "Memory Cards", Icon: IconCards, Route: route.MemoryCards, Accent: core.ColorPink},
	{Label: "Sudoku", Icon: IconGrid, Route: route.Sudoku, Accent: core.ColorBlue},
	{Label: "Puzzle", Icon: IconPuzzle, Route: route.Puzzle, Accent: core.ColorOrange},
	{Label: "Tic Tac Toe", Icon: IconTicTacToe, Route: route.TicTacToe, Accent: core.ColorGreen},
	{Label: "Drawing", Icon: IconBrush, Route: route.Drawing, Accent: core.ColorPurple},
	{Label: "Word Guess", Icon: IconLetters, Route: route.WordGuess, Accent: core.ColorTeal},
	{Label: "Snake", Icon: IconSnake, Route: route.Snake, Accent: core.ColorBrightGreen},
	{Label: "Piano", Icon: IconPiano, Route: route.Piano, Accent: core.ColorBrightMagenta},
	{Label: "Math Dash", Icon: IconCalculator, Route: route.MathDash, Accent: core.ColorBrightYellow},
	{Label: "Whack-a-Mole", Icon: IconHammer, Route: route.WhackAMole, Accent: core.ColorBrightRed},
}

// Games returns a freshly built catalog of the offline mini-games.
// Panics if the built-in table is invalid, so a bad edit fails at startup.
func Games() *Catalog {
	c, err := New(gameTable[:]...)
	if err != nil {
		panic(err)
	}
	return c
}
