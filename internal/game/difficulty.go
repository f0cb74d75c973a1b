package game

import (
	"fmt"
	"strings"
)

// ViolationKind says which hard-mode rule a guess broke.
type ViolationKind int

const (
	MustBeAt ViolationKind = iota
	MustContain
)

// Violation is returned when a hard-mode guess discards known information.
type Violation struct {
	Kind     ViolationKind
	Position int // 1-based, only for MustBeAt
	Letter   byte
}

func (v *Violation) Error() string {
	l := strings.ToUpper(string(v.Letter))
	if v.Kind == MustBeAt {
		return fmt.Sprintf("position %d must be %s", v.Position, l)
	}
	return "guess must contain " + l
}

// CheckViolation tests guess against one earlier scored row.
// Only Hard mode constrains guesses; Normal and Easy always pass.
// Correct positions are checked before present letters.
func CheckViolation(mode Difficulty, prior Clues, guess string) error {
	if mode != Hard {
		return nil
	}
	for i, lc := range prior {
		if lc.Clue != ClueCorrect {
			continue
		}
		if i >= len(guess) || guess[i] != lc.Letter {
			return &Violation{Kind: MustBeAt, Position: i + 1, Letter: lc.Letter}
		}
	}
	for _, lc := range prior {
		if lc.Clue == CluePresent && strings.IndexByte(guess, lc.Letter) < 0 {
			return &Violation{Kind: MustContain, Letter: lc.Letter}
		}
	}
	return nil
}

// CheckAll runs CheckViolation against every prior row in guess order and
// returns the first violation.
func CheckAll(mode Difficulty, priors []Clues, guess string) error {
	for _, prior := range priors {
		if err := CheckViolation(mode, prior, guess); err != nil {
			return err
		}
	}
	return nil
}
