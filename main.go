package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/evanofslack/hello-wordl/internal/challenge"
	"github.com/evanofslack/hello-wordl/internal/config"
	"github.com/evanofslack/hello-wordl/internal/daily"
	"github.com/evanofslack/hello-wordl/internal/game"
	"github.com/evanofslack/hello-wordl/internal/tui"
	"github.com/evanofslack/hello-wordl/internal/words"
)

func main() {
	cfg := config.Load()

	length := flag.Int("length", cfg.Game.WordLength, "word length (4-11)")
	guesses := flag.Int("guesses", cfg.Game.MaxGuesses, "guesses per game")
	hard := flag.Bool("hard", cfg.Game.Difficulty == game.Hard, "hard mode: revealed hints must be used")
	seed := flag.String("seed", cfg.Game.Seed, `seed for shared puzzles ("today" for the daily puzzle)`)
	token := flag.String("challenge", "", "challenge link or token to play")
	flag.Parse()

	cfg.Game.WordLength = game.ClampWordLength(*length)
	cfg.Game.MaxGuesses = *guesses
	cfg.Game.Seed = daily.ResolveSeed(*seed, time.Now())
	if *hard {
		cfg.Game.Difficulty = game.Hard
	}

	closeLog := setupLogging(cfg.LogLevel, cfg.LogFile)
	defer closeLog()

	pool, err := words.Load(cfg.TargetsFile, cfg.DictionaryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load word lists")
	}
	if err := pool.CheckCoverage(words.MinLength, words.MaxLength); err != nil {
		log.Fatal().Err(err).Msg("word pool does not cover every length")
	}
	targets, allowed := pool.Stats()
	log.Info().Int("targets", targets).Int("allowed", allowed).Msg("word lists loaded")

	codec := challenge.New(cfg.ChallengeKey, pool)
	sess, err := game.NewSession(cfg.Game, pool, codec, game.WithChallenge(*token))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}

	m := tui.New(sess, tui.ClipboardPublisher{}, cfg.ShareBaseURL)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if m.Err() != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", m.Err())
		os.Exit(1)
	}
}

// setupLogging points the global logger at path, since the terminal belongs
// to the game. "-" discards logs.
func setupLogging(level, path string) func() {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if path == "-" {
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open log file %s: %v\n", path, err)
		log.Logger = zerolog.New(io.Discard)
		return func() {}
	}
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
