package session

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordraider/internal/console"
	"github.com/robalobadob/wordraider/internal/game"
	"github.com/robalobadob/wordraider/internal/store"
)

func play(t *testing.T, target, input string) (game.Outcome, string, *game.Game, store.Store, error) {
	t.Helper()
	g, err := game.New(target, game.DefaultMaxTurns)
	require.NoError(t, err)
	var out bytes.Buffer
	st := store.NewMemoryStore()
	outcome, err := Run(context.Background(), g, console.NewLine(strings.NewReader(input), &out), st)
	return outcome, out.String(), g, st, err
}

func TestRun_WinFirstTurn(t *testing.T) {
	outcome, out, _, _, err := play(t, "crane", "CRANE\n")
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)

	want := strings.Join([]string{
		"Welcome to Word Raider",
		"Try to guess the 5-letter word!",
		"You have 5 turns left!",
		"What's your guess? ",
		"crane",
		"Misplaced Letters: ",
		"Incorrect Letters: ",
		"",
		`You got it! "Crane" is the right word! Congratulations!`,
		"",
	}, "\n")
	assert.Equal(t, want, out)
}

func TestRun_InvalidThenFeedback(t *testing.T) {
	outcome, out, g, st, err := play(t, "crane", "ab\nnacre\ncrane\n")
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
	assert.Equal(t, 2, g.Turns())

	assert.Contains(t, out, "Incorrect input. Please make sure you write a 5-letter word!\n")
	assert.Contains(t, out, "____e\nMisplaced Letters: a, c, n, r\nIncorrect Letters: \n\nYou have 4 turns left!\n")
	assert.NotContains(t, out, "You ran out of turns")

	turns, err := st.History(context.Background(), g.ID())
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, store.Turn{Number: 1, Guess: "nacre", Pattern: "____e"}, turns[0])
	assert.Equal(t, store.Turn{Number: 2, Guess: "crane", Pattern: "crane"}, turns[1])
}

func TestRun_Exhausted(t *testing.T) {
	input := "tiger\nlemon\napple\nmangy\nghost\nmango\n"
	outcome, out, g, _, err := play(t, "mango", input)
	require.NoError(t, err)
	assert.Equal(t, game.Exhausted, outcome)
	assert.Equal(t, 5, g.Turns())

	assert.True(t, strings.HasSuffix(out, "You have 0 turns left!\n\nYou ran out of turns. Better luck next time!\n"))
	assert.NotContains(t, out, "You got it!")
	assert.Equal(t, 5, strings.Count(out, "What's your guess? "))
}

func TestRun_InputClosed(t *testing.T) {
	outcome, out, g, _, err := play(t, "mango", "tiger\n")
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.Equal(t, game.InProgress, outcome)
	assert.Equal(t, 1, g.Turns())
	assert.NotContains(t, out, "You ran out of turns")
}

func TestRun_CancelledContext(t *testing.T) {
	g, err := game.New("mango", game.DefaultMaxTurns)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err = Run(ctx, g, console.NewLine(strings.NewReader("mango\n"), &out), store.NewMemoryStore())
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.Equal(t, 0, g.Turns())
}

func TestRun_CancelWhileWaitingForInput(t *testing.T) {
	g, err := game.New("mango", game.DefaultMaxTurns)
	require.NoError(t, err)

	pr, pw := io.Pipe()
	t.Cleanup(func() { _ = pw.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	type result struct {
		outcome game.Outcome
		err     error
	}
	done := make(chan result, 1)
	go func() {
		outcome, err := Run(ctx, g, console.NewLine(pr, io.Discard), store.NewMemoryStore())
		done <- result{outcome, err}
	}()

	// Nothing is ever written, so Run stays blocked on the read until cancelled.
	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case r := <-done:
		assert.ErrorIs(t, r.err, ErrAbandoned)
		assert.Equal(t, game.InProgress, r.outcome)
		assert.Equal(t, 0, g.Turns())
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after the context was cancelled")
	}
}

// cancelledStore fails every Record the way a store does once ctx is done.
type cancelledStore struct{ store.Store }

func (cancelledStore) Record(context.Context, string, store.Turn) error { return context.Canceled }

func TestRun_RecordCancelledIsAbandoned(t *testing.T) {
	g, err := game.New("mango", game.DefaultMaxTurns)
	require.NoError(t, err)

	var out bytes.Buffer
	st := cancelledStore{Store: store.NewMemoryStore()}
	outcome, err := Run(context.Background(), g, console.NewLine(strings.NewReader("tiger\n"), &out), st)
	assert.ErrorIs(t, err, ErrAbandoned)
	assert.NotContains(t, err.Error(), "record turn")
	assert.Equal(t, game.InProgress, outcome)
}

func TestRun_WhitespaceGuessRejected(t *testing.T) {
	outcome, out, g, _, err := play(t, "crane", " crane\ncrane \ncrane\n")
	require.NoError(t, err)
	assert.Equal(t, game.Won, outcome)
	assert.Equal(t, 1, g.Turns())
	assert.Equal(t, 2, strings.Count(out, "Incorrect input. Please make sure you write a 5-letter word!\n"))
}

func TestRender(t *testing.T) {
	g, err := game.New("sheep", 5)
	require.NoError(t, err)
	fb, err := g.Evaluate("peeps")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"__e__",
		"Misplaced Letters: p, s",
		"Incorrect Letters: ",
	}, Render(fb))
}

func TestCapitalize(t *testing.T) {
	assert.Equal(t, "Crane", capitalize("crane"))
	assert.Equal(t, "", capitalize(""))
}
