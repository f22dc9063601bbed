package logger

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestApplyLevelSetsConfiguredLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	ApplyLevel(zerolog.Nop(), "debug")
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("global level %v after applying debug", got)
	}

	// Unknown values leave the current level untouched.
	ApplyLevel(zerolog.Nop(), "shouting")
	if got := zerolog.GlobalLevel(); got != zerolog.DebugLevel {
		t.Fatalf("global level %v after bogus value, want debug kept", got)
	}
}
