package slug

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
)

func TestMake(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Hello World", "hello-world"},
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Already-Slugged", "already-slugged"},
		{"Mixed CASE Title 42", "mixed-case-title-42"},
		{"punct!!!between???words", "punct-between-words"},
		{"---", ""},
		{"!!!", ""},
		{"", ""},
		{"números y acentos", "n-meros-y-acentos"},
	}
	for _, tc := range cases {
		if got := Make(tc.title); got != tc.want {
			t.Errorf("Make(%q) = %q, want %q", tc.title, got, tc.want)
		}
	}
}

// existsIn returns an ExistsFunc backed by a static slug set.
func existsIn(taken ...string) ExistsFunc {
	set := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		set[s] = struct{}{}
	}
	return func(_ context.Context, candidate, _ string) (bool, error) {
		_, ok := set[candidate]
		return ok, nil
	}
}

func TestGenerate_NoCollision(t *testing.T) {
	g := NewGenerator(0)
	got, err := g.Generate(context.Background(), "Hello World", "", existsIn())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello-world" {
		t.Fatalf("expected base slug unchanged, got %q", got)
	}
}

func TestGenerate_SuffixSequence(t *testing.T) {
	g := NewGenerator(0)

	// base taken → base-1
	got, err := g.Generate(context.Background(), "Hello World", "", existsIn("hello-world"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello-world-1" {
		t.Fatalf("expected hello-world-1, got %q", got)
	}

	// base, base-1, base-2 taken → base-3
	got, err = g.Generate(context.Background(), "Hello World", "",
		existsIn("hello-world", "hello-world-1", "hello-world-2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello-world-3" {
		t.Fatalf("expected hello-world-3, got %q", got)
	}
}

func TestGenerate_ExcludeSelf(t *testing.T) {
	g := NewGenerator(0)
	exists := func(_ context.Context, candidate, excludeID string) (bool, error) {
		// The only post using "hello-world" is the one being updated.
		return candidate == "hello-world" && excludeID != "p1", nil
	}
	got, err := g.Generate(context.Background(), "Hello World", "p1", exists)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello-world" {
		t.Fatalf("expected own slug to be reusable, got %q", got)
	}
}

func TestGenerate_BoundedFallback(t *testing.T) {
	g := NewGenerator(5)
	calls := 0
	allTaken := func(_ context.Context, _, _ string) (bool, error) {
		calls++
		return true, nil
	}
	got, err := g.Generate(context.Background(), "Hello", "", allTaken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 5 {
		t.Fatalf("expected 5 probes, got %d", calls)
	}
	if !regexp.MustCompile(`^hello-[0-9a-f]{8}$`).MatchString(got) {
		t.Fatalf("expected random fallback suffix, got %q", got)
	}
}

func TestGenerate_EmptyBaseUsesRandomToken(t *testing.T) {
	g := NewGenerator(0)
	got, err := g.Generate(context.Background(), "!!!", "", existsIn())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !regexp.MustCompile(`^[0-9a-f]{8}$`).MatchString(got) {
		t.Fatalf("expected random token base, got %q", got)
	}
}

func TestGenerate_PropagatesStoreError(t *testing.T) {
	g := NewGenerator(0)
	boom := errors.New("store down")
	_, err := g.Generate(context.Background(), "Hello", "", func(_ context.Context, _, _ string) (bool, error) {
		return false, boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if !strings.Contains(err.Error(), "existence check") {
		t.Fatalf("expected context in error, got %q", err.Error())
	}
}
