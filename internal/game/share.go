package game

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/evanofslack/hello-wordl/internal/challenge"
)

// Publisher hands text to whatever share facility the platform offers
// (clipboard, share sheet, stdout). The session only looks at the error.
type Publisher interface {
	Publish(ctx context.Context, text string) error
}

// ErrNotFinished is returned when results are shared before the game ends.
var ErrNotFinished = errors.New("game is not finished")

var emoji = map[Clue]string{
	ClueCorrect: "🟩",
	CluePresent: "🟨",
	ClueAbsent:  "⬛",
}

// LetterInfo folds rows into the best clue seen for each letter, for the
// keyboard overlay. Letters never guessed are absent from the map.
func LetterInfo(rows []Clues) map[byte]Clue {
	return lo.Reduce(rows, func(acc map[byte]Clue, row Clues, _ int) map[byte]Clue {
		for _, lc := range row {
			acc[lc.Letter] = MaxClue(acc[lc.Letter], lc.Clue)
		}
		return acc
	}, map[byte]Clue{})
}

// EmojiGrid renders shareable results:
//
//	hello wordl 3/6
//	⬛🟨⬛⬛⬛
//	🟩⬛🟩⬛🟨
//	🟩🟩🟩🟩🟩
//
// The score is X for a loss; hard mode adds a '*'.
func EmojiGrid(name string, rows []Clues, won bool, maxGuesses int, mode Difficulty) string {
	score := "X"
	if won {
		score = fmt.Sprint(len(rows))
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s/%d", name, score, maxGuesses)
	if mode == Hard {
		b.WriteByte('*')
	}
	for _, row := range rows {
		b.WriteByte('\n')
		for _, lc := range row {
			b.WriteString(emoji[lc.Clue])
		}
	}
	return b.String()
}

// LetterInfo returns the keyboard overlay for the current game.
func (s *Session) LetterInfo() map[byte]Clue { return LetterInfo(s.rows) }

// Results returns the emoji grid for the current game.
func (s *Session) Results() string {
	return EmojiGrid(s.cfg.Name, s.rows, s.Phase() == PhaseWon, s.cfg.MaxGuesses, s.cfg.Difficulty)
}

// ChallengeLink returns a link to base that replays the current target.
func (s *Session) ChallengeLink(base string) (string, error) {
	token, err := s.codec.Encode(s.target)
	if err != nil {
		return "", err
	}
	return challenge.Link(base, token)
}

// ShareResults publishes the emoji grid of a finished game.
func (s *Session) ShareResults(ctx context.Context, pub Publisher) error {
	if !s.Phase().Over() {
		return ErrNotFinished
	}
	return s.publish(ctx, pub, s.Results(), "Copied results to clipboard!")
}

// ShareLink publishes a challenge link for the current target.
func (s *Session) ShareLink(ctx context.Context, pub Publisher, base string) error {
	link, err := s.ChallengeLink(base)
	if err != nil {
		s.hint = "Share failed: " + err.Error()
		return err
	}
	return s.publish(ctx, pub, link, "Copied link to clipboard!")
}

func (s *Session) publish(ctx context.Context, pub Publisher, text, okHint string) error {
	if err := pub.Publish(ctx, text); err != nil {
		s.hint = "Share failed: " + err.Error()
		return fmt.Errorf("publish: %w", err)
	}
	s.hint = okHint
	return nil
}
