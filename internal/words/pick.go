// internal/words/pick.go
//
// Target selection. A Picker makes a uniform choice over the loaded list using
// an injected math/rand/v2 source, so tests and seeded runs are reproducible.
//
// Sources:
//   • CryptoSource(): fresh ChaCha8 stream seeded from crypto/rand (default).
//   • PhraseSource(p): ChaCha8 keyed by BLAKE2b-256(p); same phrase, same word.
//   • DailyPhrase(t): UTC "YYYY-MM-DD", so everyone gets the same word per day.

package words

import (
	crand "crypto/rand"
	"math/rand/v2"
	"time"

	"golang.org/x/crypto/blake2b"
)

// Picker chooses the target word for a session.
type Picker interface {
	Pick(list []string) (string, error)
}

type randPicker struct {
	r *rand.Rand
}

// NewPicker returns a Picker that draws uniformly from src.
func NewPicker(src rand.Source) Picker {
	return &randPicker{r: rand.New(src)}
}

// Pick returns one element of list, or ErrEmptyList.
func (p *randPicker) Pick(list []string) (string, error) {
	if len(list) == 0 {
		return "", ErrEmptyList
	}
	return list[p.r.IntN(len(list))], nil
}

// CryptoSource returns a source seeded from the operating system's CSPRNG.
func CryptoSource() rand.Source {
	var seed [32]byte
	_, _ = crand.Read(seed[:])
	return rand.NewChaCha8(seed)
}

// PhraseSource returns a deterministic source derived from phrase.
func PhraseSource(phrase string) rand.Source {
	return rand.NewChaCha8(blake2b.Sum256([]byte(phrase)))
}

// DailyPhrase returns YYYY-MM-DD in UTC.
func DailyPhrase(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
