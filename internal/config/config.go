// internal/config/config.go
//
// Runtime configuration for Word Raider.
//
// Sources, lowest to highest precedence:
//   1. Built-in defaults.
//   2. Environment, after loading an optional `.env` file via godotenv.
//   3. Command-line flags (bound in main on top of FromEnv's result).
//
// Environment variables:
//   WORDS_FILE=/path/to/words.txt   word list; empty uses the embedded list
//   MAX_TURNS=5                     turn budget
//   WORD_SEED=phrase                deterministic word choice
//   LOG_LEVEL=warn                  zerolog level

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	defaultMaxTurns = 5
	defaultLogLevel = "warn"

	// MaxTurnsLimit caps the turn budget at one guess per letter of the
	// alphabet. Keep in sync with the lte rule on Config.MaxTurns.
	MaxTurnsLimit = 26
)

// Config is the resolved configuration for one run.
type Config struct {
	WordsFile string `validate:"omitempty,file"`
	MaxTurns  int    `validate:"gte=1,lte=26"`
	Seed      string
	Daily     bool   `validate:"excluded_with=Seed"`
	LogLevel  string `validate:"required,loglevel"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("loglevel", validLogLevel); err != nil {
		panic(fmt.Sprintf("config: register loglevel validation: %v", err))
	}
	return v
}

func validLogLevel(fl validator.FieldLevel) bool {
	_, err := zerolog.ParseLevel(fl.Field().String())
	return err == nil
}

// FromEnv loads `.env` if present and reads the environment over the defaults.
func FromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		WordsFile: os.Getenv("WORDS_FILE"),
		MaxTurns:  defaultMaxTurns,
		Seed:      os.Getenv("WORD_SEED"),
		LogLevel:  getEnv("LOG_LEVEL", defaultLogLevel),
	}
	if v := os.Getenv("MAX_TURNS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("config: MAX_TURNS=%q: %w", v, err)
		}
		cfg.MaxTurns = n
	}
	return cfg, nil
}

// Validate checks the resolved configuration and flattens validator errors
// into one readable message.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var details strings.Builder
	for _, fe := range verrs {
		if details.Len() > 0 {
			details.WriteString("; ")
		}
		switch fe.Tag() {
		case "file":
			fmt.Fprintf(&details, "word list %q does not exist or is not a file", c.WordsFile)
		case "gte", "lte":
			fmt.Fprintf(&details, "turns must be between 1 and %d, got %d", MaxTurnsLimit, c.MaxTurns)
		case "excluded_with":
			details.WriteString("daily mode cannot be combined with a seed")
		case "loglevel", "required":
			fmt.Fprintf(&details, "unknown log level %q", c.LogLevel)
		default:
			fmt.Fprintf(&details, "%s failed %s", fe.Field(), fe.Tag())
		}
	}
	return fmt.Errorf("config: %s", details.String())
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
