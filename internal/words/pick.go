package words

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrNoTargets means the pool has no eligible target of the requested length.
// This is a configuration error in the word lists, not a player error.
var ErrNoTargets = errors.New("words: no eligible target")

// Source yields uniform integers in [0, n).
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// CryptoSource draws from crypto/rand; used for session-random games.
var CryptoSource Source = cryptoSource{}

type cryptoSource struct{}

func (cryptoSource) IntN(n int) int {
	nBig, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(nBig.Int64())
}

// PickTarget selects a target of exactly length letters using rng.
// Reserved entries are skipped by drawing again, so a seeded rng always
// produces the same sequence of draws and the same result.
func (p *Pool) PickTarget(length int, rng Source) (string, error) {
	cands := p.Candidates(length)
	eligible := 0
	for _, e := range cands {
		if !e.Reserved {
			eligible++
		}
	}
	if eligible == 0 {
		return "", fmt.Errorf("%w: length %d", ErrNoTargets, length)
	}
	for i := 0; i < maxDraws; i++ {
		e := cands[rng.IntN(len(cands))]
		if !e.Reserved {
			return e.Word, nil
		}
	}
	// A stuck source (e.g. crypto/rand failing) must not hang the game.
	for _, e := range cands {
		if !e.Reserved {
			return e.Word, nil
		}
	}
	return "", fmt.Errorf("%w: length %d", ErrNoTargets, length)
}

const maxDraws = 1000
