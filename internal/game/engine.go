// internal/game/engine.go
//
// Core game engine for a single Word Raider session.
// Responsibilities:
//   - Create new games around a fixed target word and turn budget.
//   - Validate guesses (length, alphabetic) without touching state.
//   - Evaluate guesses position by position and keep the cumulative
//     misplaced/wrong letter sets.
//   - Track state transitions: in progress → won/exhausted.
//
// Notes:
//   - Letter presence is a plain membership test against the whole target.
//     Repeated letters are not budgeted the way classic Wordle does; a guess
//     with two 'e's against a target with one marks both as present.
//   - A hit removes the letter from the misplaced set immediately, so later
//     positions in the same pass may add it back.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// DefaultMaxTurns is the turn budget when none is configured.
const DefaultMaxTurns = 5

var (
	ErrInvalidGuess  = errors.New("invalid guess")
	ErrGameOver      = errors.New("game finished")
	ErrInvalidTarget = errors.New("invalid target word")
	ErrInvalidTurns  = errors.New("turn budget must be at least 1")
)

// New constructs a new game for target with the given turn budget.
// The target is lowercased; it must be non-empty and alphabetic.
func New(target string, maxTurns int) (*Game, error) {
	t := strings.ToLower(strings.TrimSpace(target))
	if t == "" || !isAlpha(t) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	if maxTurns < 1 {
		return nil, ErrInvalidTurns
	}
	return &Game{
		id:       uuid.NewString(),
		target:   t,
		maxTurns: maxTurns,
	}, nil
}

// Validate lowercases guess and checks its format. Only a trailing line
// terminator is stripped; any other whitespace makes the guess invalid.
// The error wraps ErrInvalidGuess and names the required length.
func (g *Game) Validate(guess string) (string, error) {
	guess = strings.ToLower(strings.TrimRight(guess, "\r\n"))
	if len(guess) != len(g.target) || !isAlpha(guess) {
		return "", fmt.Errorf("%w: want a %d-letter word", ErrInvalidGuess, len(g.target))
	}
	return guess, nil
}

// Evaluate validates and scores a guess, mutating the game state.
//
// Invalid guesses and guesses after the game ended return an error and leave
// the state untouched. An accepted guess consumes exactly one turn.
//
// State transitions:
//   - guess == target → Won.
//   - else turns == maxTurns → Exhausted.
func (g *Game) Evaluate(guess string) (Feedback, error) {
	if g.outcome != InProgress {
		return Feedback{}, ErrGameOver
	}
	guess, err := g.Validate(guess)
	if err != nil {
		return Feedback{}, err
	}

	marks := make([]Mark, len(guess))
	for i := 0; i < len(guess); i++ {
		c := guess[i]
		switch {
		case c == g.target[i]:
			marks[i] = MarkHit
			g.misplaced.Remove(c)
		case strings.IndexByte(g.target, c) >= 0:
			marks[i] = MarkPresent
			g.misplaced.Add(c)
		default:
			marks[i] = MarkMiss
			g.wrong.Add(c)
		}
	}

	g.turns++
	if guess == g.target {
		g.outcome = Won
	} else if g.turns >= g.maxTurns {
		g.outcome = Exhausted
	}

	return Feedback{
		Guess:     guess,
		Marks:     marks,
		Misplaced: g.misplaced.Letters(),
		Wrong:     g.wrong.Letters(),
		Turn:      g.turns,
		Outcome:   g.outcome,
	}, nil
}

func (g *Game) ID() string           { return g.id }
func (g *Game) Target() string       { return g.target }
func (g *Game) Length() int          { return len(g.target) }
func (g *Game) Turns() int           { return g.turns }
func (g *Game) MaxTurns() int        { return g.maxTurns }
func (g *Game) Outcome() Outcome     { return g.outcome }
func (g *Game) Misplaced() LetterSet { return g.misplaced }
func (g *Game) Wrong() LetterSet     { return g.wrong }

// TurnsRemaining reports how many accepted guesses are still allowed.
func (g *Game) TurnsRemaining() int { return g.maxTurns - g.turns }

// isAlpha checks that a string consists only of lowercase a–z.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
