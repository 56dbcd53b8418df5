package config

import (
	"os"
	"path/filepath"
	"testing"
)

func withConfig(t *testing.T, c *GameConfig) {
	t.Helper()
	previous := cfg
	cfg = c
	t.Cleanup(func() { cfg = previous })
}

func TestGetBaseBet(t *testing.T) {
	withConfig(t, &GameConfig{
		DefaultTier: "casual",
		Tiers: []BetTier{
			{ID: "casual", BaseBet: 100},
			{ID: "high", BaseBet: 1000},
		},
	})

	tests := []struct {
		name string
		tier string
		want int64
	}{
		{name: "NamedTier", tier: "high", want: 1000},
		{name: "EmptyUsesDefault", tier: "", want: 100},
		{name: "UnknownFallsBackToDefault", tier: "nope", want: 100},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if got := GetBaseBet(test.tier); got != test.want {
				t.Fatalf("GetBaseBet(%q) = %d, want %d", test.tier, got, test.want)
			}
		})
	}
}

func TestGetBaseBet_NoConfigLoaded(t *testing.T) {
	withConfig(t, nil)
	if got := GetBaseBet("high"); got != 100 {
		t.Fatalf("GetBaseBet without config = %d, want safe default 100", got)
	}
}

func TestGetTargetTricks(t *testing.T) {
	withConfig(t, nil)
	if got := GetTargetTricks(); got != 7 {
		t.Fatalf("GetTargetTricks without config = %d, want 7", got)
	}

	withConfig(t, &GameConfig{DefaultTargetTricks: 5})
	if got := GetTargetTricks(); got != 5 {
		t.Fatalf("GetTargetTricks = %d, want 5", got)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("HOKM_TEST_INT", "42")
	if got := EnvInt("HOKM_TEST_INT", 7); got != 42 {
		t.Fatalf("EnvInt = %d, want 42", got)
	}
	t.Setenv("HOKM_TEST_INT", "not-a-number")
	if got := EnvInt("HOKM_TEST_INT", 7); got != 7 {
		t.Fatalf("EnvInt with garbage = %d, want fallback 7", got)
	}
	if got := EnvInt("HOKM_TEST_UNSET", 7); got != 7 {
		t.Fatalf("EnvInt unset = %d, want fallback 7", got)
	}
}

func TestLoadEnv_MissingFileIsFine(t *testing.T) {
	if err := LoadEnv(filepath.Join(t.TempDir(), "no-such.env")); err != nil {
		t.Fatalf("LoadEnv on missing file = %v, want nil", err)
	}
}

func TestLoadEnv_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("HOKM_TEST_ENVFILE=loaded\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("HOKM_TEST_ENVFILE", "") // restore after the test
	os.Unsetenv("HOKM_TEST_ENVFILE")

	if err := LoadEnv(path); err != nil {
		t.Fatalf("LoadEnv error: %v", err)
	}
	if got := os.Getenv("HOKM_TEST_ENVFILE"); got != "loaded" {
		t.Fatalf("HOKM_TEST_ENVFILE = %q, want %q", got, "loaded")
	}
}
