package game

import (
	"testing"

	"github.com/evanofslack/hello-wordl/internal/words"
)

func TestComputeClue(t *testing.T) {
	testCases := []struct {
		guess, target string
		expected      string
	}{
		{"adieu", "apple", "gbbyb"},
		{"apple", "apple", "ggggg"},
		{"sassy", "mushy", "bbgbg"}, // one s in target, the exact match wins
		{"speed", "abide", "bbyby"}, // second e has no copy left
		{"eerie", "there", "ybybg"}, // exact e at the end consumed first
		{"lolly", "hello", "byggb"}, // both l's exact, first l absent
		{"xyzzy", "apple", "bbbbb"},
		{"abcdef", "abcde", "ggggg?"}, // past the target is unknown
	}

	for _, tc := range testCases {
		got := ComputeClue(tc.guess, tc.target)
		if got.String() != tc.expected {
			t.Errorf("ComputeClue(%q, %q) = %s, expected %s", tc.guess, tc.target, got, tc.expected)
		}
		if got.Word() != tc.guess {
			t.Errorf("ComputeClue(%q, %q) letters = %q", tc.guess, tc.target, got.Word())
		}
	}
}

func TestComputeClue_FrequencyBound(t *testing.T) {
	pool, err := words.Embedded()
	if err != nil {
		t.Fatalf("Embedded: %v", err)
	}
	var fives []string
	for _, e := range pool.Candidates(5) {
		fives = append(fives, e.Word)
	}
	fives = append(fives, "sassy", "eerie", "lolly", "speed")

	for _, target := range fives {
		for _, guess := range fives {
			clue := ComputeClue(guess, target)
			if len(clue) != len(guess) {
				t.Fatalf("len(ComputeClue(%q, %q)) = %d", guess, target, len(clue))
			}
			marked := map[byte]int{}
			for i, lc := range clue {
				if lc.Clue == ClueUnknown {
					t.Fatalf("ComputeClue(%q, %q)[%d] is unknown", guess, target, i)
				}
				if lc.Clue == ClueCorrect && guess[i] != target[i] {
					t.Errorf("ComputeClue(%q, %q)[%d] correct on a mismatch", guess, target, i)
				}
				if lc.Clue != ClueAbsent {
					marked[lc.Letter]++
				}
			}
			for letter, n := range marked {
				if occ := countByte(target, letter); n > occ {
					t.Errorf("ComputeClue(%q, %q) marks %c %d times, target has %d", guess, target, letter, n, occ)
				}
			}
		}
	}
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}

func TestClues_Solved(t *testing.T) {
	if !ComputeClue("apple", "apple").Solved() {
		t.Error("Expected exact guess to be solved")
	}
	if ComputeClue("adieu", "apple").Solved() {
		t.Error("Expected adieu not to solve apple")
	}
	if (Clues{}).Solved() {
		t.Error("Empty row should not count as solved")
	}
}

func TestClueOrder(t *testing.T) {
	order := []Clue{ClueUnknown, ClueAbsent, CluePresent, ClueCorrect}
	for i := range order {
		for j := range order {
			if got := order[i].Less(order[j]); got != (i < j) {
				t.Errorf("%q.Less(%q) = %v", order[i], order[j], got)
			}
		}
	}
	if MaxClue(CluePresent, ClueAbsent) != CluePresent {
		t.Error("MaxClue(present, absent) should be present")
	}
	if MaxClue(ClueUnknown, ClueCorrect) != ClueCorrect {
		t.Error("MaxClue(unknown, correct) should be correct")
	}
}

func TestDescribe(t *testing.T) {
	testCases := []struct {
		guess, target string
		expected      string
	}{
		{"adieu", "apple", "A is correct. E is elsewhere. D, I and U are not in the word."},
		{"apple", "apple", "A, P, P, L and E are correct."},
		{"xyzzy", "apple", "X, Y, Z, Z and Y are not in the word."},
		{"leapt", "apple", "L, E, A and P are elsewhere. T is not in the word."},
	}
	for _, tc := range testCases {
		if got := Describe(ComputeClue(tc.guess, tc.target)); got != tc.expected {
			t.Errorf("Describe(%s vs %s) = %q, expected %q", tc.guess, tc.target, got, tc.expected)
		}
	}
}
