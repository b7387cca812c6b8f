// internal/game/types.go
//
// Core type definitions for the Word Raider game engine.
// Defines:
//   - Mark: per-letter result of a guess (hit/present/miss).
//   - Outcome: coarse session state (in progress / won / exhausted).
//   - Feedback: everything a single turn reports back to the player.
//   - Game: state for a single in-progress or finished session.

package game

import "strings"

// Mark represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "hit":     letter is correct and in the correct position.
//   - "present": letter exists in the target but in a different position.
//   - "miss":    letter does not exist in the target at all.
type Mark string

const (
	MarkHit     Mark = "hit"
	MarkPresent Mark = "present"
	MarkMiss    Mark = "miss"
)

// Outcome is the session state machine: InProgress → Won | Exhausted.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Exhausted
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Exhausted:
		return "exhausted"
	default:
		return "in_progress"
	}
}

// Placeholder renders every position that is not a hit.
const Placeholder = '_'

// Feedback is the result of evaluating one accepted guess.
type Feedback struct {
	Guess     string   // normalized (lowercase) guess
	Marks     []Mark   // one mark per position, len == word length
	Misplaced []string // sorted snapshot of the misplaced set after this turn
	Wrong     []string // sorted snapshot of the wrong set after this turn
	Turn      int      // 1-based turn number this guess consumed
	Outcome   Outcome  // session outcome after this turn
}

// Pattern renders the positional feedback: hit letters in place, Placeholder elsewhere.
func (f Feedback) Pattern() string {
	var sb strings.Builder
	sb.Grow(len(f.Marks))
	for i, m := range f.Marks {
		if m == MarkHit {
			sb.WriteByte(f.Guess[i])
		} else {
			sb.WriteByte(Placeholder)
		}
	}
	return sb.String()
}

// Game holds the state of a single Word Raider session.
type Game struct {
	id        string    // session identifier (uuid), for logs only
	target    string    // the secret word (always lowercase)
	maxTurns  int       // turn budget
	turns     int       // accepted guesses so far
	misplaced LetterSet // letters last seen in a wrong position
	wrong     LetterSet // letters confirmed absent; only grows
	outcome   Outcome
}
