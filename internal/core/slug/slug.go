// Package slug derives unique, URL-safe identifiers from post titles.
package slug

import (
	"context"
	"crypto/rand"
	"fmt"
	"strconv"
	"strings"
)

const defaultMaxAttempts = 50

// ExistsFunc reports whether a post other than excludeID already uses the
// candidate slug. excludeID is empty on create and the post's own id on
// update, so a post never collides with itself.
type ExistsFunc func(ctx context.Context, candidate string, excludeID string) (bool, error)

// Make normalizes a title into a lowercase, hyphen-separated ASCII token.
// Runs of non-alphanumeric characters collapse into a single hyphen.
// Degenerate titles (all punctuation, no ASCII letters or digits) produce
// an empty string; callers must handle that case.
func Make(title string) string {
	var b strings.Builder
	b.Grow(len(title))
	prevHyphen := false
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
			prevHyphen = false
		default:
			if !prevHyphen && b.Len() > 0 {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// Generator resolves slug collisions against a persisted set of posts.
type Generator struct {
	maxAttempts int
}

// NewGenerator returns a Generator probing at most maxAttempts suffixed
// candidates before falling back to a random suffix. Zero or negative means
// the default of 50.
func NewGenerator(maxAttempts int) *Generator {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Generator{maxAttempts: maxAttempts}
}

// Generate returns the lexicographically-first free candidate in the sequence
// base, base-1, base-2, … so the result is deterministic for a fixed title
// and a fixed set of existing slugs. Each probe is one store round trip.
//
// Probing is capped at maxAttempts; past the cap a random 8-hex-char suffix
// is appended instead of walking the sequence further. Titles that normalize
// to an empty base use a random token as the base.
func (g *Generator) Generate(ctx context.Context, title string, excludeID string, exists ExistsFunc) (string, error) {
	base := Make(title)
	if base == "" {
		base = randomToken()
	}

	candidate := base
	for i := 1; i <= g.maxAttempts; i++ {
		taken, err := exists(ctx, candidate, excludeID)
		if err != nil {
			return "", fmt.Errorf("slug: existence check: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}

	return base + "-" + randomToken(), nil
}

// randomToken returns 8 hex characters from a crypto/rand source.
func randomToken() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return fmt.Sprintf("%08x", b)
}
