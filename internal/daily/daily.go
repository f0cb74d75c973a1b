// internal/daily/daily.go
//
// Seed handling for shared puzzles.
// A seed (usually today's date key) plus the word length and game number
// fully determine the target, so every player with the same triple sees the
// same word.

package daily

import (
	"encoding/binary"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/blake2b"
)

// TodayKeyword is the config value that resolves to the current date key.
const TodayKeyword = "today"

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// ResolveSeed expands "today" to the date key for now; other values are
// returned trimmed. An empty result means no seed.
func ResolveSeed(raw string, now time.Time) string {
	s := strings.TrimSpace(raw)
	if strings.EqualFold(s, TodayKeyword) {
		return DateKey(now)
	}
	return s
}

// NewSource returns a deterministic generator for (seed, length, gameNumber).
// The PCG state comes from BLAKE2b-256 over "seed\x00length:game".
func NewSource(seed string, length, gameNumber int) *rand.Rand {
	msg := seed + "\x00" + strconv.Itoa(length) + ":" + strconv.Itoa(gameNumber)
	sum := blake2b.Sum256([]byte(msg))
	return rand.New(rand.NewPCG(
		binary.BigEndian.Uint64(sum[:8]),
		binary.BigEndian.Uint64(sum[8:16]),
	))
}
