package team

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pfrederiksen/hockey-stats/internal/logger"
)

func TestNormalize(t *testing.T) {
	candidates := []string{"Skellefteå AIK", "Boo HC", "Västerås IK", "Brynäs IF", "IF Björklöven"}

	tests := []struct {
		name  string
		short string
		want  string
	}{
		{"word prefix", "SKE", "Skellefteå AIK"},
		{"name prefix", "BOO", "Boo HC"},
		{"lower case code", "väs", "Västerås IK"},
		{"diacritics in code", "BRYNÄS", "Brynäs IF"},
		{"exact match", "boo hc", "Boo HC"},
		{"second word", "BJÖ", "IF Björklöven"},
		{"unmatched code unchanged", "ZZZ", "ZZZ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NewNormalizer(nil)
			if got := n.Normalize(tt.short, candidates); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.short, got, tt.want)
			}
		})
	}
}

func TestNormalize_PrefixBeatsWordPrefix(t *testing.T) {
	n := NewNormalizer(nil)

	// "AIK" is a word prefix of the first candidate and a name prefix of the second
	got := n.Normalize("AIK", []string{"Skellefteå AIK", "AIK IF"})
	if got != "AIK IF" {
		t.Errorf("Normalize(AIK) = %q, want %q", got, "AIK IF")
	}
}

func TestNormalize_ExactShortCircuits(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Normalize("MODO", []string{"MODO Hockey", "Modo"})
	if got != "Modo" {
		t.Errorf("Normalize(MODO) = %q, want exact match %q", got, "Modo")
	}
}

func TestNormalize_FirstCandidateWinsTie(t *testing.T) {
	n := NewNormalizer(nil)

	got := n.Normalize("HV", []string{"HV71", "HV Juniors"})
	if got != "HV71" {
		t.Errorf("Normalize(HV) = %q, want first-seen %q", got, "HV71")
	}
}

func TestNormalize_CachedResolutionIsStable(t *testing.T) {
	n := NewNormalizer(nil)

	first := n.Normalize("SKE", []string{"Skellefteå AIK", "Boo HC"})
	if first != "Skellefteå AIK" {
		t.Fatalf("Normalize(SKE) = %q, want Skellefteå AIK", first)
	}

	// A later candidate list with a better match must not change the mapping
	second := n.Normalize("ske", []string{"SKE", "Skövde IK"})
	if second != "Skellefteå AIK" {
		t.Errorf("Normalize(ske) after caching = %q, want Skellefteå AIK", second)
	}

	if n.Cache().Size() != 1 {
		t.Errorf("cache size = %d, want 1", n.Cache().Size())
	}
}

func TestNormalize_UnmatchedWarnsAndIsNotCached(t *testing.T) {
	previous := logger.Default()
	defer logger.SetDefault(previous)

	var buf bytes.Buffer
	logger.SetDefault(logger.New(logger.LevelWarn, &buf))

	n := NewNormalizer(nil)
	if got := n.Normalize("ZZZ", []string{"Skellefteå AIK", "Boo HC"}); got != "ZZZ" {
		t.Errorf("Normalize(ZZZ) = %q, want ZZZ", got)
	}

	if !strings.Contains(buf.String(), "Could not map team") {
		t.Errorf("expected warning, got %q", buf.String())
	}
	if n.Cache().Size() != 0 {
		t.Errorf("unmatched code was cached")
	}

	// Once a candidate appears the code resolves
	if got := n.Normalize("ZZZ", []string{"Zzz Hockey"}); got != "Zzz Hockey" {
		t.Errorf("Normalize(ZZZ) = %q, want Zzz Hockey", got)
	}
}

func TestNormalize_SeededCache(t *testing.T) {
	n := NewNormalizer(NewSeededCache(map[string]string{"lhf": "Luleå HF"}))

	if got := n.Normalize("LHF", nil); got != "Luleå HF" {
		t.Errorf("Normalize(LHF) = %q, want seeded Luleå HF", got)
	}
}

func TestCache(t *testing.T) {
	c := NewCache()
	c.Set(" ske ", "Skellefteå AIK")

	if full, ok := c.Get("SKE"); !ok || full != "Skellefteå AIK" {
		t.Errorf("Get(SKE) = %q, %v", full, ok)
	}
	if _, ok := c.Get("BOO"); ok {
		t.Error("Get(BOO) found a value in an empty slot")
	}

	m := c.Mappings()
	m["BOO"] = "Boo HC"
	if c.Size() != 1 {
		t.Error("Mappings() must return a copy")
	}
}
