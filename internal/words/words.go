// internal/words/words.go
//
// Provides word list management for the game.
//
// Responsibilities:
//   - Load the candidate list from a plain-text file (one word per line).
//   - Fall back to the embedded default list when no file is configured.
//   - Normalize entries: trim, lowercase, skip blanks/comments/non-letters.
//
// A configured file that is missing or unreadable is an error; so is a list
// that ends up empty. Callers treat both as fatal at startup.

package words

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/wordraider/assets"
)

// ErrEmptyList is returned when no usable word survives normalization.
var ErrEmptyList = errors.New("words: word list is empty")

// Load reads the word list at path.
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("words: open %s: %w", path, err)
	}
	defer f.Close()

	list, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("words: read %s: %w", path, err)
	}
	return list, nil
}

// Parse reads one word per line from r and normalizes the result.
func Parse(r io.Reader) ([]string, error) {
	var raw []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		raw = append(raw, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return normalize(raw)
}

// Default returns the embedded word list.
func Default() ([]string, error) {
	f, err := assets.WordList()
	if err != nil {
		return nil, fmt.Errorf("words: embedded list: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// normalize lowercases and trims each entry, keeping only alphabetic words.
func normalize(lines []string) ([]string, error) {
	var out []string
	for _, line := range lines {
		w := strings.TrimSpace(strings.ToLower(line))
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		if isAlpha(w) {
			out = append(out, w)
		}
	}
	if len(out) == 0 {
		return nil, ErrEmptyList
	}
	return out, nil
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}
