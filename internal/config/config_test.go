package config

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestLoadDefaultLeagueSize(t *testing.T) {
	t.Setenv("LEAGUE_SIZE", "")

	cfg, err := Load(zerolog.Nop())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// A 16-club double round robin fills the 30-week season exactly.
	if cfg.LeagueSize != 16 {
		t.Fatalf("default league size %d, want 16", cfg.LeagueSize)
	}
}

func TestLoadRejectsTinyLeague(t *testing.T) {
	t.Setenv("LEAGUE_SIZE", "1")

	if _, err := Load(zerolog.Nop()); err == nil {
		t.Fatal("expected an error for a one-club league")
	}
}
