// internal/challenge/challenge.go
//
// Challenge codec: turns a target word into a short URL-safe token and back,
// so a puzzle can be shared as a link without printing the answer in it.
//
// Token layout (before base64url, no padding):
//
//	word XOR keystream | tag[2]
//
// The keystream and tag come from BLAKE2b-256 over the codec key. This hides
// the word from casual inspection and catches edits to the token. It is not
// meant to be secure.

package challenge

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/crypto/blake2b"

	"github.com/evanofslack/hello-wordl/internal/words"
)

// DefaultKey is used when no CHALLENGE_KEY is configured. Everyone sharing
// links must use the same key.
const DefaultKey = "hello wordl"

// QueryParam is the link parameter carrying the token.
const QueryParam = "challenge"

const tagSize = 2

var (
	// ErrInvalidChallenge is wrapped by every decode failure.
	ErrInvalidChallenge = errors.New("invalid challenge")

	ErrMalformed   = fmt.Errorf("%w: malformed token", ErrInvalidChallenge)
	ErrTampered    = fmt.Errorf("%w: token does not verify", ErrInvalidChallenge)
	ErrUnknownWord = fmt.Errorf("%w: not a known word", ErrInvalidChallenge)

	// ErrInvalidWord is returned by Encode for words outside a–z or the
	// supported lengths.
	ErrInvalidWord = errors.New("challenge: word cannot be encoded")
)

// Dictionary is the membership check a decoded word must pass.
type Dictionary interface {
	IsValid(word string) bool
}

// Codec encodes and decodes challenge tokens.
type Codec struct {
	key  [blake2b.Size256]byte
	dict Dictionary
}

// New returns a codec for key. If dict is non-nil, Decode only accepts words
// it contains.
func New(key string, dict Dictionary) *Codec {
	if key == "" {
		key = DefaultKey
	}
	return &Codec{key: blake2b.Sum256([]byte(key)), dict: dict}
}

// Encode returns the token for target.
func (c *Codec) Encode(target string) (string, error) {
	w := strings.ToLower(target)
	if len(w) < words.MinLength || len(w) > words.MaxLength || !words.IsAlpha(w) {
		return "", fmt.Errorf("%w: %q", ErrInvalidWord, target)
	}
	payload := make([]byte, 0, len(w)+tagSize)
	payload = append(payload, c.xor([]byte(w))...)
	payload = append(payload, c.tag(w)...)
	return base64.RawURLEncoding.EncodeToString(payload), nil
}

// Decode returns the target named by token. Failures wrap
// ErrInvalidChallenge and never return a word.
func (c *Codec) Decode(token string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	n := len(raw) - tagSize
	if n < words.MinLength || n > words.MaxLength {
		return "", fmt.Errorf("%w: length %d", ErrMalformed, len(raw))
	}
	w := string(c.xor(raw[:n]))
	if !words.IsAlpha(w) {
		return "", ErrMalformed
	}
	if !bytes.Equal(raw[n:], c.tag(w)) {
		return "", ErrTampered
	}
	if c.dict != nil && !c.dict.IsValid(w) {
		return "", ErrUnknownWord
	}
	return w, nil
}

// xor applies the length-dependent keystream; it is its own inverse.
func (c *Codec) xor(b []byte) []byte {
	ks := c.digest("stream:" + strconv.Itoa(len(b)))
	out := make([]byte, len(b))
	for i := range b {
		out[i] = b[i] ^ ks[i%len(ks)]
	}
	return out
}

func (c *Codec) tag(word string) []byte {
	sum := c.digest("tag:" + word)
	return sum[:tagSize]
}

func (c *Codec) digest(msg string) []byte {
	buf := make([]byte, 0, len(c.key)+len(msg))
	buf = append(buf, c.key[:]...)
	buf = append(buf, msg...)
	sum := blake2b.Sum256(buf)
	return sum[:]
}

// Link appends the token to base as ?challenge=<token>, keeping any other
// query parameters.
func Link(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse share base url: %w", err)
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TokenFromLink extracts the challenge token from a shared link. Input that
// carries no challenge parameter is treated as a bare token.
func TokenFromLink(link string) string {
	link = strings.TrimSpace(link)
	if u, err := url.Parse(link); err == nil {
		if t := u.Query().Get(QueryParam); t != "" {
			return t
		}
	}
	return link
}
