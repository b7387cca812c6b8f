package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordraider/internal/config"
	"github.com/robalobadob/wordraider/internal/console"
	"github.com/robalobadob/wordraider/internal/game"
	"github.com/robalobadob/wordraider/internal/session"
	"github.com/robalobadob/wordraider/internal/store"
	"github.com/robalobadob/wordraider/internal/words"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read configuration")
	}
	if err := newRootCmd(&cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wordraider",
		Short: session.Title + " - guess the hidden word",
		Long: `Word Raider picks a secret word and gives you a few turns to guess it.
After each guess you see the letters you placed correctly, plus the letters
that are in the word but misplaced and the letters that are not in it at all.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), *cfg)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&cfg.WordsFile, "words", "w", cfg.WordsFile, "word list file, one word per line (default: built-in list)")
	f.IntVarP(&cfg.MaxTurns, "turns", "t", cfg.MaxTurns, fmt.Sprintf("number of guesses allowed (1-%d)", config.MaxTurnsLimit))
	f.StringVar(&cfg.Seed, "seed", cfg.Seed, "phrase that fixes the word choice")
	f.BoolVar(&cfg.Daily, "daily", cfg.Daily, "use today's word (same for everyone, UTC)")
	f.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	return cmd
}

func run(parent context.Context, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	list, err := loadWords(cfg.WordsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	target, err := pickerFor(cfg).Pick(list)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to pick a word")
	}
	g, err := game.New(target, cfg.MaxTurns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	con, err := console.Open(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open console")
	}
	defer con.Close()

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	outcome, err := session.Run(ctx, g, con, store.NewMemoryStore())
	if errors.Is(err, session.ErrAbandoned) {
		log.Info().Str("outcome", outcome.String()).Msg("session ended early")
		return nil
	}
	if err != nil {
		log.Error().Err(err).Msg("session failed")
	}
	return err
}

func loadWords(path string) ([]string, error) {
	if path == "" {
		return words.Default()
	}
	return words.Load(path)
}

func pickerFor(cfg config.Config) words.Picker {
	switch {
	case cfg.Daily:
		return words.NewPicker(words.PhraseSource(words.DailyPhrase(time.Now())))
	case cfg.Seed != "":
		return words.NewPicker(words.PhraseSource(cfg.Seed))
	default:
		return words.NewPicker(words.CryptoSource())
	}
}
