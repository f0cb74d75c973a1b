// internal/words/words.go
//
// Provides the word pool and dictionary for the game engine.
//
// Responsibilities:
//   - Load the target pool and accepted-guess list from files or fall back to
//     the embedded defaults in the assets package.
//   - Maintain a set for O(1) "is this a valid guess" lookups.
//   - Index the target pool by length for the target selector.
//
// Word Lists:
//   - "targets":    candidate answers of length 4..11. A leading '*' marks a
//                   reserved entry that is never picked at random but is still
//                   a valid guess and challenge target.
//   - "dictionary": extra accepted guesses. Targets are always accepted.
//
// Constraints:
//   • Words must be MinLength..MaxLength lowercase letters (a–z).
//   • Lists are normalized to lowercase; blank lines and '#' comments skipped.
//   • The embedded pool is parsed once (sync.Once).

package words

import (
	"bufio"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/evanofslack/hello-wordl/assets"
)

const (
	MinLength = 4
	MaxLength = 11

	// ReservedMarker prefixes pool entries that must never be picked at random.
	ReservedMarker = '*'
)

// Entry is one word of the target pool.
type Entry struct {
	Word     string
	Reserved bool
}

// Pool holds the target pool and the accepted-guess set.
// It is read-only after construction.
type Pool struct {
	targets  []Entry
	byLength map[int][]Entry
	allowed  map[string]struct{} // dictionary ∪ targets
}

// NewPool builds a pool from raw target and dictionary lines.
// Invalid lines (wrong length, non-letters) are dropped.
func NewPool(targets, dictionary []string) *Pool {
	p := &Pool{
		byLength: make(map[int][]Entry),
		allowed:  make(map[string]struct{}, len(targets)+len(dictionary)),
	}
	for _, raw := range targets {
		e, ok := parseEntry(raw)
		if !ok {
			continue
		}
		p.targets = append(p.targets, e)
		p.byLength[len(e.Word)] = append(p.byLength[len(e.Word)], e)
		p.allowed[e.Word] = struct{}{}
	}
	for _, raw := range dictionary {
		e, ok := parseEntry(raw)
		if !ok {
			continue
		}
		p.allowed[e.Word] = struct{}{}
	}
	return p
}

// parseEntry normalizes one list line into an Entry.
func parseEntry(raw string) (Entry, bool) {
	w := strings.ToLower(strings.TrimSpace(raw))
	reserved := strings.HasPrefix(w, string(ReservedMarker))
	w = strings.TrimPrefix(w, string(ReservedMarker))
	if len(w) < MinLength || len(w) > MaxLength || !IsAlpha(w) {
		return Entry{}, false
	}
	return Entry{Word: w, Reserved: reserved}, true
}

// IsValid reports whether w is an accepted guess.
func (p *Pool) IsValid(w string) bool {
	_, ok := p.allowed[strings.ToLower(w)]
	return ok
}

// Candidates returns the pool entries of exactly length letters,
// reserved ones included.
func (p *Pool) Candidates(length int) []Entry {
	return p.byLength[length]
}

// Words returns every accepted guess in alphabetical order.
func (p *Pool) Words() []string {
	ws := lo.Keys(p.allowed)
	slices.Sort(ws)
	return ws
}

// Stats returns counts of loaded words: (targets, accepted guesses).
func (p *Pool) Stats() (targetCount int, allowedCount int) {
	return len(p.targets), len(p.allowed)
}

// CheckCoverage returns an error naming the first length in [min, max] that
// has no eligible target. The game cannot start without full coverage.
func (p *Pool) CheckCoverage(min, max int) error {
	for n := min; n <= max; n++ {
		if !lo.ContainsBy(p.byLength[n], func(e Entry) bool { return !e.Reserved }) {
			return fmt.Errorf("%w: length %d", ErrNoTargets, n)
		}
	}
	return nil
}

// IsAlpha reports whether s is all lowercase ASCII letters.
func IsAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

var (
	embeddedOnce sync.Once
	embeddedPool *Pool
	embeddedErr  error
)

// Embedded returns the pool built from the embedded lists.
func Embedded() (*Pool, error) {
	embeddedOnce.Do(func() {
		embeddedPool, embeddedErr = load(
			listSource{fsys: assets.FS, name: assets.TargetsFile},
			listSource{fsys: assets.FS, name: assets.DictionaryFile},
		)
	})
	return embeddedPool, embeddedErr
}

// Load builds a pool.
//  1. If targetsPath is set, targets come from that file, otherwise from the
//     embedded list.
//  2. If dictionaryPath is set, extra guesses come from that file, otherwise
//     from the embedded list.
func Load(targetsPath, dictionaryPath string) (*Pool, error) {
	if targetsPath == "" && dictionaryPath == "" {
		return Embedded()
	}
	return load(sourceFor(targetsPath, assets.TargetsFile), sourceFor(dictionaryPath, assets.DictionaryFile))
}

// listSource names one word list inside a file system.
type listSource struct {
	fsys fs.FS
	name string
}

// sourceFor points at path on disk, or at the embedded list when path is empty.
func sourceFor(path, embedded string) listSource {
	if path == "" {
		return listSource{fsys: assets.FS, name: embedded}
	}
	return listSource{fsys: os.DirFS(filepath.Dir(path)), name: filepath.Base(path)}
}

func load(targets, dictionary listSource) (*Pool, error) {
	t, err := targets.read()
	if err != nil {
		return nil, err
	}
	d, err := dictionary.read()
	if err != nil {
		return nil, err
	}
	return NewPool(t, d), nil
}

// read returns the list's lines, skipping blanks and '#' comments.
// Normalization and validation happen in NewPool.
func (s listSource) read() ([]string, error) {
	f, err := s.fsys.Open(s.name)
	if err != nil {
		return nil, fmt.Errorf("open word list: %w", err)
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if w := strings.TrimSpace(line); w != "" && w[0] != '#' {
			out = append(out, w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word list %s: %w", s.name, err)
	}
	return out, nil
}
