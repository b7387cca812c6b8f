// internal/session/session.go
//
// Driver loop for one game played over a console.
//
// The loop is bounded: each iteration either rejects a malformed guess
// (no turn consumed, re-prompt) or consumes one of the game's turns, and it
// stops as soon as the game leaves InProgress. Running out of input or a
// cancelled context ends the session early with ErrAbandoned, including while
// the loop is blocked waiting for a guess.

package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordraider/internal/console"
	"github.com/robalobadob/wordraider/internal/game"
	"github.com/robalobadob/wordraider/internal/store"
)

// Title is shown in the session banner.
const Title = "Word Raider"

// ErrAbandoned is returned when the session ends before Won or Exhausted.
var ErrAbandoned = errors.New("session abandoned")

// Run plays g to completion over con, recording accepted turns in st.
// It returns the final outcome; err is non-nil only when the session did not
// finish (ErrAbandoned) or the console/store failed.
func Run(ctx context.Context, g *game.Game, con console.Console, st store.Store) (game.Outcome, error) {
	logger := log.With().Str("session", g.ID()).Logger()
	logger.Debug().Str("target", g.Target()).Int("max_turns", g.MaxTurns()).Msg("session started")

	con.Println("Welcome to " + Title)
	con.Printf("Try to guess the %d-letter word!\n", g.Length())
	con.Println(turnsLeft(g.TurnsRemaining()))

	for g.Outcome() == game.InProgress {
		if err := ctx.Err(); err != nil {
			return g.Outcome(), fmt.Errorf("%w: %v", ErrAbandoned, err)
		}

		line, err := readLine(ctx, con, "What's your guess? ")
		if errors.Is(err, console.ErrClosed) {
			logger.Info().Int("turns", g.Turns()).Msg("input closed before the game ended")
			return g.Outcome(), ErrAbandoned
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			logger.Info().Int("turns", g.Turns()).Msg("interrupted while waiting for a guess")
			return g.Outcome(), fmt.Errorf("%w: %v", ErrAbandoned, ctxErr)
		}
		if err != nil {
			return g.Outcome(), fmt.Errorf("read guess: %w", err)
		}
		con.Println()

		fb, err := g.Evaluate(line)
		if errors.Is(err, game.ErrInvalidGuess) {
			logger.Debug().Str("input", line).Msg("rejected guess")
			con.Printf("Incorrect input. Please make sure you write a %d-letter word!\n", g.Length())
			continue
		}
		if err != nil {
			return g.Outcome(), err
		}

		pattern := fb.Pattern()
		logger.Debug().Int("turn", fb.Turn).Str("pattern", pattern).
			Strs("misplaced", fb.Misplaced).Strs("wrong", fb.Wrong).Msg("guess evaluated")
		if err := st.Record(ctx, g.ID(), store.Turn{Number: fb.Turn, Guess: fb.Guess, Pattern: pattern}); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return g.Outcome(), fmt.Errorf("%w: %v", ErrAbandoned, err)
			}
			return g.Outcome(), fmt.Errorf("record turn: %w", err)
		}

		for _, l := range Render(fb) {
			con.Println(l)
		}
		con.Println()

		if fb.Outcome == game.Won {
			con.Printf("You got it! %q is the right word! Congratulations!\n", capitalize(fb.Guess))
			break
		}
		con.Println(turnsLeft(g.TurnsRemaining()))
		con.Println()
	}

	if g.Outcome() == game.Exhausted {
		con.Println("You ran out of turns. Better luck next time!")
	}
	summarize(ctx, g, st)
	return g.Outcome(), nil
}

type readResult struct {
	line string
	err  error
}

// readLine waits for the next line or for ctx to end, whichever comes first.
// A read abandoned by ctx finishes in the background; its result is dropped.
func readLine(ctx context.Context, con console.Console, prompt string) (string, error) {
	ch := make(chan readResult, 1)
	go func() {
		line, err := con.ReadLine(prompt)
		ch <- readResult{line: line, err: err}
	}()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-ch:
		return r.line, r.err
	}
}

// summarize logs the finished session's guesses.
func summarize(ctx context.Context, g *game.Game, st store.Store) {
	turns, err := st.History(ctx, g.ID())
	if err != nil {
		log.Warn().Err(err).Str("session", g.ID()).Msg("no turn history")
		return
	}
	patterns := make([]string, 0, len(turns))
	for _, t := range turns {
		patterns = append(patterns, t.Pattern)
	}
	log.Info().Str("session", g.ID()).Str("outcome", g.Outcome().String()).
		Int("turns", len(turns)).Strs("patterns", patterns).Msg("session finished")
}
