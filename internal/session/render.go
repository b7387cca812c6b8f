package session

import (
	"fmt"
	"strings"

	"github.com/robalobadob/wordraider/internal/game"
)

// Render returns the three feedback lines printed after an accepted guess:
// the positional pattern and the two labeled letter lists.
func Render(fb game.Feedback) []string {
	return []string{
		fb.Pattern(),
		"Misplaced Letters: " + strings.Join(fb.Misplaced, ", "),
		"Incorrect Letters: " + strings.Join(fb.Wrong, ", "),
	}
}

// capitalize uppercases the first letter of an ASCII word.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}

func turnsLeft(n int) string {
	return fmt.Sprintf("You have %d turns left!", n)
}
