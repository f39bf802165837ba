// Package route defines the closed set of navigation targets in the launcher.
// Presenters work with typed routes; the string token only appears at the
// dispatcher boundary, where Parse turns it back into a Route.
package route

import (
	"errors"
	"fmt"
)

// ErrUnknown is returned by Parse for tokens that name no route.
var ErrUnknown = errors.New("route: unknown route")

// Route identifies a screen the launcher can navigate to.
type Route int

const (
	None Route = iota
	Welcome
	GameMenu
	ParentLogin
	ChildLogin
	MemoryCards
	Sudoku
	Puzzle
	TicTacToe
	Drawing
	WordGuess
	Snake
	Piano
	MathDash
	WhackAMole

	routeCount // sentinel, keep last
)

// tokens holds the wire form of every route, indexed by Route.
var tokens = [routeCount]string{
	None:        "",
	Welcome:     "welcome",
	GameMenu:    "games",
	ParentLogin: "parentLogin",
	ChildLogin:  "childLogin",
	MemoryCards: "game/memory_cards",
	Sudoku:      "game/sudoku",
	Puzzle:      "game/puzzle",
	TicTacToe:   "game/tictactoe",
	Drawing:     "game/drawing",
	WordGuess:   "game/word_guess",
	Snake:       "game/snake",
	Piano:       "game/piano",
	MathDash:    "game/math_dash",
	WhackAMole:  "game/whack_a_mole",
}

var byToken = func() map[string]Route {
	m := make(map[string]Route, routeCount)
	for r := Welcome; r < routeCount; r++ {
		m[tokens[r]] = r
	}
	return m
}()

// String returns the wire token for the route.
func (r Route) String() string {
	if !r.Valid() {
		return fmt.Sprintf("route(%d)", int(r))
	}
	return tokens[r]
}

// Valid reports whether r is a real navigation target.
func (r Route) Valid() bool {
	return r > None && r < routeCount
}

// IsGame reports whether r points at one of the mini-games.
func (r Route) IsGame() bool {
	return r >= MemoryCards && r <= WhackAMole
}

// Parse converts a wire token into a Route.
func Parse(token string) (Route, error) {
	r, ok := byToken[token]
	if !ok {
		return None, fmt.Errorf("%w: %q", ErrUnknown, token)
	}
	return r, nil
}

// All returns every valid route in declaration order.
func All() []Route {
	out := make([]Route, 0, routeCount-1)
	for r := Welcome; r < routeCount; r++ {
		out = append(out, r)
	}
	return out
}

// Games returns the game routes in menu order.
func Games() []Route {
	out := make([]Route, 0, WhackAMole-MemoryCards+1)
	for r := MemoryCards; r <= WhackAMole; r++ {
		out = append(out, r)
	}
	return out
}
