// internal/game/session.go
//
// Game session controller.
// Responsibilities:
//   - Start games from the target selector, a daily seed, or a challenge token.
//   - Edit the in-progress guess from raw key presses.
//   - Validate and apply guesses (length, dictionary, hard mode).
//   - Track phase transitions playing → won/lost with a looplab/fsm machine.
//
// A Session is owned by one caller and is not safe for concurrent use.

package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/looplab/fsm"
	"github.com/rs/zerolog/log"

	"github.com/evanofslack/hello-wordl/internal/challenge"
	"github.com/evanofslack/hello-wordl/internal/daily"
	"github.com/evanofslack/hello-wordl/internal/words"
)

const (
	DefaultMaxGuesses = 6
	DefaultWordLength = 5
	DefaultName       = "hello wordl"
)

// Input rejections. They leave the session unchanged.
var (
	ErrTooShort = errors.New("too short")
	ErrTooLong  = errors.New("too long")
	ErrNotAWord = errors.New("not a valid word")
	ErrGameOver = errors.New("game is over")
)

const (
	hintFirstGuess       = "Make your first guess!"
	hintInvalidChallenge = "Invalid challenge string, playing random game."
)

// FSM events.
const (
	eventAccept = "accept"
	eventWin    = "win"
	eventLose   = "lose"
)

// Config is the session configuration.
type Config struct {
	Name       string // title used in shared results
	MaxGuesses int
	WordLength int
	Difficulty Difficulty
	Seed       string // optional; makes target selection deterministic
}

// ClampWordLength returns n if it is a supported word length, otherwise
// DefaultWordLength.
func ClampWordLength(n int) int {
	if n < words.MinLength || n > words.MaxLength {
		return DefaultWordLength
	}
	return n
}

func (c Config) normalized() Config {
	c.WordLength = ClampWordLength(c.WordLength)
	if c.MaxGuesses <= 0 {
		c.MaxGuesses = DefaultMaxGuesses
	}
	if c.Name == "" {
		c.Name = DefaultName
	}
	return c
}

// Option customizes a Session.
type Option func(*Session)

// WithChallenge makes the first game use the target named by token.
// The token is consumed by that game and not reused on restart.
func WithChallenge(token string) Option {
	return func(s *Session) { s.pending = token }
}

// WithAnnouncer registers a callback receiving the spoken description of
// each accepted, non-final guess.
func WithAnnouncer(fn func(string)) Option {
	return func(s *Session) { s.announce = fn }
}

// WithSource replaces the random source used when no seed is configured.
func WithSource(src words.Source) Option {
	return func(s *Session) { s.rng = src }
}

// Session holds the state of the current game and starts new ones.
type Session struct {
	cfg      Config
	pool     *words.Pool
	codec    *challenge.Codec
	rng      words.Source
	announce func(string)

	machine       *fsm.FSM
	target        string
	length        int
	guesses       []string
	rows          []Clues
	current       string
	gameNumber    int
	hint          string
	feedback      string
	pending       string
	fromChallenge bool
}

// NewSession creates a session and starts its first game.
// If codec is nil, a default codec validating against pool is used.
func NewSession(cfg Config, pool *words.Pool, codec *challenge.Codec, opts ...Option) (*Session, error) {
	if pool == nil {
		return nil, errors.New("game: nil word pool")
	}
	if codec == nil {
		codec = challenge.New("", pool)
	}
	s := &Session{
		cfg:   cfg.normalized(),
		pool:  pool,
		codec: codec,
		rng:   words.CryptoSource,
	}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.NewGame(""); err != nil {
		return nil, err
	}
	return s, nil
}

// NewGame resets the session and starts the next game.
//
// Target resolution, in order:
//  1. token, or the pending WithChallenge token: decoded and used as the
//     target. A bad token falls back to a random game with a warning hint.
//  2. the configured seed: deterministic pick for (seed, length, game number).
//  3. the random source.
//
// An error is returned only when the pool has no eligible target; the
// current game is then left untouched.
func (s *Session) NewGame(token string) error {
	if token == "" {
		token = s.pending
	}
	s.pending = ""

	gameNumber := s.gameNumber + 1
	length := s.cfg.WordLength
	hint := hintFirstGuess
	var target string

	if token != "" {
		w, err := s.codec.Decode(challenge.TokenFromLink(token))
		if err != nil {
			log.Warn().Err(err).Int("game", gameNumber).Msg("challenge rejected, starting random game")
			hint = hintInvalidChallenge
		} else {
			target = w
			length = len(w)
		}
	}
	fromChallenge := target != ""

	if !fromChallenge {
		var src words.Source = s.rng
		if s.cfg.Seed != "" {
			src = daily.NewSource(s.cfg.Seed, length, gameNumber)
		}
		t, err := s.pool.PickTarget(length, src)
		if err != nil {
			return fmt.Errorf("start game %d: %w", gameNumber, err)
		}
		target = t
	}

	s.gameNumber = gameNumber
	s.target = target
	s.length = length
	s.fromChallenge = fromChallenge
	s.hint = hint
	s.guesses = nil
	s.rows = nil
	s.current = ""
	s.feedback = ""
	s.machine = s.newMachine()

	log.Debug().
		Int("game", s.gameNumber).
		Int("length", s.length).
		Bool("challenge", s.fromChallenge).
		Bool("seeded", s.cfg.Seed != "" && !s.fromChallenge).
		Msg("new game")
	return nil
}

// newMachine builds the phase machine: playing loops on accepted guesses
// and ends in won or lost.
func (s *Session) newMachine() *fsm.FSM {
	return fsm.NewFSM(
		string(PhasePlaying),
		fsm.Events{
			{Name: eventAccept, Src: []string{string(PhasePlaying)}, Dst: string(PhasePlaying)},
			{Name: eventWin, Src: []string{string(PhasePlaying)}, Dst: string(PhaseWon)},
			{Name: eventLose, Src: []string{string(PhasePlaying)}, Dst: string(PhaseLost)},
		},
		fsm.Callbacks{
			"enter_" + string(PhaseWon): func(_ context.Context, e *fsm.Event) {
				s.hint = s.Summary()
				log.Info().Int("game", s.gameNumber).Int("guesses", len(s.guesses)).Msg("game won")
			},
			"enter_" + string(PhaseLost): func(_ context.Context, e *fsm.Event) {
				s.hint = s.Summary()
				log.Info().Int("game", s.gameNumber).Msg("game lost")
			},
		},
	)
}

// fire sends event to the machine. A playing → playing self-loop is not an
// error.
func (s *Session) fire(event string) error {
	err := s.machine.Event(context.Background(), event)
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return nil
	}
	return err
}

// Type appends a letter to the in-progress guess. Non-letters, a full guess
// and a finished game are ignored.
func (s *Session) Type(r rune) {
	if s.Phase().Over() || len(s.current) >= s.length {
		return
	}
	if r >= 'A' && r <= 'Z' {
		r += 'a' - 'A'
	}
	if r < 'a' || r > 'z' {
		return
	}
	s.current += string(r)
}

// Backspace removes the last letter of the in-progress guess.
func (s *Session) Backspace() {
	if s.Phase().Over() || s.current == "" {
		return
	}
	s.current = s.current[:len(s.current)-1]
}

// HandleKey dispatches a raw key name: a single letter, "backspace" or
// "enter". Enter on a finished game starts the next one. Rejected guesses
// only update the hint; the returned error is reserved for failures to start
// a new game.
func (s *Session) HandleKey(key string) error {
	switch strings.ToLower(key) {
	case "enter":
		if s.Phase().Over() {
			return s.NewGame("")
		}
		_, _ = s.Submit()
	case "backspace", "delete":
		s.Backspace()
	default:
		if len(key) == 1 {
			s.Type(rune(key[0]))
		}
	}
	return nil
}

// Submit plays the in-progress guess.
func (s *Session) Submit() (Clues, error) {
	return s.play(s.current)
}

// Guess plays word directly instead of the in-progress guess. An accepted
// guess still clears the in-progress guess.
func (s *Session) Guess(word string) (Clues, error) {
	return s.play(strings.ToLower(strings.TrimSpace(word)))
}

// play validates and applies a guess.
//
// Validation rules (any failure leaves the session unchanged):
//   - Game must still be playing.
//   - Guess must be exactly the word length.
//   - Guess must be in the dictionary.
//   - In hard mode, the guess must honour every earlier clue.
//
// State transitions:
//   - Guess equals the target → won.
//   - Else if the guess budget is used up → lost.
//   - Else stay playing and announce the clue.
func (s *Session) play(guess string) (Clues, error) {
	if s.Phase().Over() {
		return nil, ErrGameOver
	}
	switch {
	case len(guess) < s.length:
		return nil, s.reject(guess, ErrTooShort, "Too short")
	case len(guess) > s.length:
		return nil, s.reject(guess, ErrTooLong, "Too long")
	case !s.pool.IsValid(guess):
		return nil, s.reject(guess, ErrNotAWord, "Not a valid word")
	}
	if err := CheckAll(s.cfg.Difficulty, s.rows, guess); err != nil {
		return nil, s.reject(guess, err, capitalize(err.Error()))
	}

	clue := ComputeClue(guess, s.target)
	s.guesses = append(s.guesses, guess)
	s.rows = append(s.rows, clue)
	s.current = ""

	event := eventAccept
	switch {
	case guess == s.target:
		event = eventWin
	case len(s.guesses) >= s.cfg.MaxGuesses:
		event = eventLose
	}
	if err := s.fire(event); err != nil {
		return clue, fmt.Errorf("apply guess: %w", err)
	}

	log.Debug().Str("clue", clue.String()).Int("row", len(s.rows)).Msg("guess accepted")
	if event == eventAccept {
		s.hint = ""
		s.feedback = Describe(clue)
		if s.announce != nil {
			s.announce(s.feedback)
		}
	}
	return clue, nil
}

func (s *Session) reject(guess string, err error, hint string) error {
	s.hint = hint
	log.Debug().Str("guess", guess).Err(err).Msg("guess rejected")
	return err
}

func capitalize(msg string) string {
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}

// Summary describes a finished game, or returns "" while playing.
func (s *Session) Summary() string {
	switch s.Phase() {
	case PhaseWon:
		return "You won! (Enter to play again)"
	case PhaseLost:
		return fmt.Sprintf("You lost! The answer was %s. (Enter to play again)", strings.ToUpper(s.target))
	}
	return ""
}

// Phase reports the current phase.
func (s *Session) Phase() Phase {
	if s.machine == nil {
		return PhasePlaying
	}
	return Phase(s.machine.Current())
}

// Config returns the normalized configuration.
func (s *Session) Config() Config { return s.cfg }

// WordLength is the length of the current game's words. It differs from the
// configured length when the game came from a challenge.
func (s *Session) WordLength() int { return s.length }

// MaxGuesses is the guess budget per game.
func (s *Session) MaxGuesses() int { return s.cfg.MaxGuesses }

// Guesses returns a copy of the accepted guesses.
func (s *Session) Guesses() []string { return append([]string(nil), s.guesses...) }

// Rows returns the clues of the accepted guesses.
func (s *Session) Rows() []Clues { return append([]Clues(nil), s.rows...) }

// CurrentGuess is the in-progress guess.
func (s *Session) CurrentGuess() string { return s.current }

// Target is the answer. Presentation layers should only show it once the
// game is over.
func (s *Session) Target() string { return s.target }

// GameNumber counts games started by this session, starting at 1.
func (s *Session) GameNumber() int { return s.gameNumber }

// Hint is the transient status line.
func (s *Session) Hint() string { return s.hint }

// Feedback is the spoken description of the last accepted guess.
func (s *Session) Feedback() string { return s.feedback }

// FromChallenge reports whether the current game's target came from a token.
func (s *Session) FromChallenge() bool { return s.fromChallenge }
