package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	got, err := Load(filepath.Join(t.TempDir(), "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	if got != want {
		t.Fatalf("Load(missing) = %+v, want Default() = %+v", got, want)
	}
}

func TestWriteThenLoadRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mangband.toml")
	opt := Default()
	opt.Diving.Mode = DivingDungeonsOnly
	opt.Diving.LimitStairs = StairsOnePerLevel
	opt.Character.RetireTimer = 5000
	opt.Dungeon.ExtraMonsters = 9
	opt.Social.PvPHostility = true

	if err := Write(path, opt); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != opt {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, opt)
	}
}

func TestLoadPartialFileKeepsDefaultsForOmittedFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.toml")
	const body = "[Dungeon]\nExtraMonsters = 7\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write partial config: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	want := Default()
	want.Dungeon.ExtraMonsters = 7
	if got != want {
		t.Fatalf("Load(partial) = %+v, want %+v", got, want)
	}
}
