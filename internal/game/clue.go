// internal/game/clue.go
//
// Clue engine and describer.
// Responsibilities:
//   - Score a guess against the target with the two-pass Wordle algorithm.
//   - Turn a scored row into a sentence for spoken / non-visual feedback.

package game

import (
	"strings"

	"github.com/samber/lo"
)

// ComputeClue scores guess against target, one entry per guess letter.
//
// Pass 1:
//   - Mark exact matches as Correct.
//   - Count the target letters that were not matched exactly.
//
// Pass 2:
//   - For each remaining guess letter: if the count for that letter is > 0,
//     mark Present and decrement; otherwise mark Absent.
//
// A letter occurring k times in the target therefore yields at most k
// non-absent marks, and exact matches always win over present ones.
// Guess positions past the end of the target are left ClueUnknown.
func ComputeClue(guess, target string) Clues {
	n := len(guess)
	res := make(Clues, n)
	counts := make(map[byte]int, len(target))

	for i := 0; i < len(target); i++ {
		if i < n && guess[i] == target[i] {
			res[i] = LetterClue{Letter: guess[i], Clue: ClueCorrect}
		} else {
			counts[target[i]]++
		}
	}

	for i := 0; i < n; i++ {
		if res[i].Clue == ClueCorrect {
			continue
		}
		c := guess[i]
		res[i].Letter = c
		if i >= len(target) {
			continue
		}
		if counts[c] > 0 {
			res[i].Clue = CluePresent
			counts[c]--
		} else {
			res[i].Clue = ClueAbsent
		}
	}
	return res
}

// Describe summarises a row for audio feedback, e.g.
//
//	"A is correct. E is elsewhere. D, I and U are not in the word."
//
// Letters are grouped by verdict in the order correct, elsewhere, absent.
func Describe(clues Clues) string {
	groups := []struct {
		clue  Clue
		label string
	}{
		{ClueCorrect, "correct"},
		{CluePresent, "elsewhere"},
		{ClueAbsent, "not in the word"},
	}

	var sentences []string
	for _, g := range groups {
		letters := lo.FilterMap(clues, func(lc LetterClue, _ int) (string, bool) {
			return strings.ToUpper(string(lc.Letter)), lc.Clue == g.clue
		})
		if len(letters) == 0 {
			continue
		}
		verb := "is"
		if len(letters) > 1 {
			verb = "are"
		}
		sentences = append(sentences, joinAnd(letters)+" "+verb+" "+g.label+".")
	}
	return strings.Join(sentences, " ")
}

// joinAnd joins items as "A", "A and B" or "A, B and C".
func joinAnd(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
}
