// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Clue: per-letter verdict of a guess (correct/present/absent).
//   - LetterClue / Clues: a scored row.
//   - Difficulty: normal, easy or hard mode.
//   - Phase: playing, won or lost.

package game

import (
	"fmt"
	"strings"
)

// Clue represents the evaluation result for a single letter in a guess.
// Possible values:
//   - "correct": letter is in the target at this position.
//   - "present": letter is in the target but elsewhere.
//   - "absent":  letter is not in the target, or all its copies are used up.
//
// The zero value ClueUnknown marks a position that could not be scored.
type Clue string

const (
	ClueUnknown Clue = ""
	ClueAbsent  Clue = "absent"
	CluePresent Clue = "present"
	ClueCorrect Clue = "correct"
)

// Rank places clues on the total order Unknown < Absent < Present < Correct.
func (c Clue) Rank() int {
	switch c {
	case ClueAbsent:
		return 1
	case CluePresent:
		return 2
	case ClueCorrect:
		return 3
	default:
		return 0
	}
}

// Less reports whether c is strictly weaker than o.
func (c Clue) Less(o Clue) bool { return c.Rank() < o.Rank() }

// MaxClue returns the stronger of two clues.
func MaxClue(a, b Clue) Clue {
	if a.Less(b) {
		return b
	}
	return a
}

// LetterClue is one scored position of a guess.
type LetterClue struct {
	Letter byte `json:"letter"`
	Clue   Clue `json:"clue"`
}

// Clues is an ordered row of letter verdicts, one per guess letter.
type Clues []LetterClue

// Solved reports whether every letter of the row is correct.
func (cs Clues) Solved() bool {
	if len(cs) == 0 {
		return false
	}
	for _, c := range cs {
		if c.Clue != ClueCorrect {
			return false
		}
	}
	return true
}

// String renders the row as a g/y/b mask ("gbbyb"), '?' for unknown.
func (cs Clues) String() string {
	var b strings.Builder
	for _, c := range cs {
		switch c.Clue {
		case ClueCorrect:
			b.WriteByte('g')
		case CluePresent:
			b.WriteByte('y')
		case ClueAbsent:
			b.WriteByte('b')
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}

// Word returns the letters of the row.
func (cs Clues) Word() string {
	b := make([]byte, len(cs))
	for i, c := range cs {
		b[i] = c.Letter
	}
	return string(b)
}

// Difficulty selects how strictly later guesses must honour earlier clues.
type Difficulty int

const (
	Normal Difficulty = iota
	Easy
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "normal"
	}
}

// ParseDifficulty maps "normal", "easy" or "hard" (any case) to a Difficulty.
// An empty string is Normal.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "normal":
		return Normal, nil
	case "easy":
		return Easy, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// Phase is the coarse state of a game. The values double as FSM state names.
type Phase string

const (
	PhasePlaying Phase = "playing"
	PhaseWon     Phase = "won"
	PhaseLost    Phase = "lost"
)

// Over reports whether the phase is terminal.
func (p Phase) Over() bool { return p == PhaseWon || p == PhaseLost }
