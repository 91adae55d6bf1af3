package domain

import "fmt"

// Game identifies a game type. It is the routing key for persistence
// (each game maps to its own external database) and for per-game
// configuration such as win probability and daily limits.
type Game string

const (
	GameSpin  Game = "spin"
	GameWheel Game = "wheel"
)

// Games lists every known game type. Configuration loading iterates this
// so an unconfigured game is caught at startup, not per request.
var Games = []Game{GameSpin, GameWheel}

// ParseGame converts a string (e.g. a URL parameter) into a Game.
func ParseGame(s string) (Game, error) {
	switch Game(s) {
	case GameSpin:
		return GameSpin, nil
	case GameWheel:
		return GameWheel, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidGame, s)
}

// Valid reports whether g is a known game type.
func (g Game) Valid() bool {
	switch g {
	case GameSpin, GameWheel:
		return true
	}
	return false
}

func (g Game) String() string {
	return string(g)
}
