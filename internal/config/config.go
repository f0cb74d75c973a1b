// internal/config/config.go
//
// Runtime configuration.
// Values come from the environment (optionally a .env file loaded with
// godotenv) and may be overridden by command-line flags in main.
//
// Environment variables:
//   WORD_LENGTH=5              4..11, anything else falls back to 5
//   MAX_GUESSES=6
//   DIFFICULTY=normal          normal | easy | hard
//   DAILY_SEED=                empty for random games, "today" for the date key
//   CHALLENGE_KEY=             shared key for challenge tokens
//   SHARE_BASE_URL=https://hellowordl.net/
//   GAME_NAME=hello wordl
//   WORDS_TARGETS_FILE=        optional target pool file
//   WORDS_DICTIONARY_FILE=     optional accepted-guess file
//   LOG_LEVEL=info
//   LOG_FILE=hello-wordl.log   "-" discards logs

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/evanofslack/hello-wordl/internal/daily"
	"github.com/evanofslack/hello-wordl/internal/game"
)

// Config is the resolved runtime configuration.
type Config struct {
	Game           game.Config
	ChallengeKey   string
	ShareBaseURL   string
	TargetsFile    string
	DictionaryFile string
	LogLevel       string
	LogFile        string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv(time.Now())
}

// FromEnv builds a Config from the current environment. now resolves the
// "today" seed.
func FromEnv(now time.Time) Config {
	mode, err := game.ParseDifficulty(getEnv("DIFFICULTY", "normal"))
	if err != nil {
		log.Warn().Err(err).Msg("falling back to normal difficulty")
	}
	return Config{
		Game: game.Config{
			Name:       getEnv("GAME_NAME", game.DefaultName),
			MaxGuesses: envInt("MAX_GUESSES", game.DefaultMaxGuesses),
			WordLength: game.ClampWordLength(envInt("WORD_LENGTH", game.DefaultWordLength)),
			Difficulty: mode,
			Seed:       daily.ResolveSeed(os.Getenv("DAILY_SEED"), now),
		},
		ChallengeKey:   os.Getenv("CHALLENGE_KEY"),
		ShareBaseURL:   getEnv("SHARE_BASE_URL", "https://hellowordl.net/"),
		TargetsFile:    os.Getenv("WORDS_TARGETS_FILE"),
		DictionaryFile: os.Getenv("WORDS_DICTIONARY_FILE"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFile:        getEnv("LOG_FILE", "hello-wordl.log"),
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, returning def when unset or invalid.
func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", k).Str("value", v).Msg("ignoring non-numeric setting")
		return def
	}
	return n
}
