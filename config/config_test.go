package config

import "testing"

func TestLoadMissingFileFallsBack(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *cfg != *Default() {
		t.Fatalf("config = %+v, want defaults", cfg)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.TabSize = 8
	cfg.Theme = "ocean"
	cfg.LineNumbers = false
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if *got != *cfg {
		t.Fatalf("config = %+v, want %+v", got, cfg)
	}
}

func TestGetThemeUnknownName(t *testing.T) {
	cfg := Default()
	cfg.Theme = "no-such-theme"
	if cfg.GetTheme() != themes["default"] {
		t.Fatalf("unknown theme should fall back to default")
	}
}

func TestLoadClampsInvalidValues(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Default()
	cfg.TabSize = -2
	cfg.ScrollPadding = -1
	if err := cfg.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.TabSize != 4 || got.ScrollPadding != 0 {
		t.Fatalf("tab_size=%d scroll_padding=%d, want 4 and 0", got.TabSize, got.ScrollPadding)
	}
}
