package service

import (
	"strings"
	"testing"
)

func TestNewSlug_Format(t *testing.T) {
	s := newSlug("Phalaenopsis Bella")

	if !strings.HasPrefix(s, "phalaenopsis-bella-") {
		t.Fatalf("unexpected slug prefix: %s", s)
	}

	suffix := s[strings.LastIndex(s, "-")+1:]
	if len(suffix) != slugSuffixLength {
		t.Fatalf("expected %d-char suffix, got %q", slugSuffixLength, suffix)
	}
	for _, r := range suffix {
		if r < 'a' || r > 'z' {
			t.Fatalf("suffix must be lowercase letters, got %q", suffix)
		}
	}
}

func TestNewSlug_DistinctForEqualNames(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		s := newSlug("Cattleya")
		if _, dup := seen[s]; dup {
			t.Fatalf("duplicate slug generated: %s", s)
		}
		seen[s] = struct{}{}
	}
}

func TestSearchSlug_NormalizesLikeNames(t *testing.T) {
	if got := searchSlug("Phalaenopsis Bella"); got != "phalaenopsis-bella" {
		t.Fatalf("unexpected search slug: %s", got)
	}
	if got := searchSlug("  CATTLEYA  "); got != "cattleya" {
		t.Fatalf("unexpected search slug: %s", got)
	}
}
