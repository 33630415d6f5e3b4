package bootstrap

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"gitea.knapp/jacoknapp/launcher/internal/catalog"
	"gitea.knapp/jacoknapp/launcher/internal/config"
	"gitea.knapp/jacoknapp/launcher/internal/settings"
)

func TestEnsureFirstRunCreatesConfigAndStore(t *testing.T) {
	tdir := t.TempDir()
	cfgPath := filepath.Join(tdir, "launcher.yaml")
	dataDir := filepath.Join(tdir, "data")

	app, err := EnsureFirstRun(cfgPath, dataDir, Options{LogOut: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("EnsureFirstRun: %v", err)
	}
	if app.Config.Data.Dir != dataDir || app.Config.HTTP.Listen == "" {
		t.Fatalf("config not initialized: %+v", app.Config)
	}
	if _, err := os.Stat(cfgPath); err != nil {
		t.Fatalf("config not written: %v", err)
	}
	if st, err := os.Stat(dataDir); err != nil || !st.IsDir() {
		t.Fatalf("data dir not created: %v", err)
	}
	if got := app.Settings.Outcome().State; got != settings.Missing {
		t.Fatalf("fresh install should report missing settings, got %v", got)
	}
	if app.Settings.Get(settings.KeyTheme) != "normal" {
		t.Fatalf("first-run defaults not applied")
	}
}

func TestEnsureFirstRunReadsExistingSettings(t *testing.T) {
	tdir := t.TempDir()
	cfgPath := filepath.Join(tdir, "launcher.yaml")
	if err := os.WriteFile(filepath.Join(tdir, settings.FileName), []byte(`{"theme":"noir"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	app, err := EnsureFirstRun(cfgPath, tdir, Options{LogOut: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("EnsureFirstRun: %v", err)
	}
	if got := app.Settings.Get(settings.KeyTheme); got != "noir" {
		t.Fatalf("want noir got %q", got)
	}

	app.Settings.Set(settings.KeyShuffle, "true")
	b, err := os.ReadFile(filepath.Join(tdir, settings.FileName))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if m[settings.KeyShuffle] != "true" || m[settings.KeyTheme] != "noir" {
		t.Fatalf("unexpected file content: %v", m)
	}
}

func TestEnsureFirstRunDataDirOverrideIsSaved(t *testing.T) {
	tdir := t.TempDir()
	cfgPath := filepath.Join(tdir, "launcher.yaml")
	if err := config.Save(cfgPath, config.Default(filepath.Join(tdir, "old"))); err != nil {
		t.Fatalf("save: %v", err)
	}
	newDir := filepath.Join(tdir, "new")
	if _, err := EnsureFirstRun(cfgPath, newDir, Options{LogOut: &bytes.Buffer{}}); err != nil {
		t.Fatalf("EnsureFirstRun: %v", err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Data.Dir != newDir {
		t.Fatalf("override not saved: %q", cfg.Data.Dir)
	}
}

func TestEnsureFirstRunCatalogManifest(t *testing.T) {
	tdir := t.TempDir()
	cfgPath := filepath.Join(tdir, "launcher.yaml")
	manifest := filepath.Join(tdir, "catalog.yaml")

	var buf bytes.Buffer
	c := &catalog.Catalog{Tracks: []catalog.Track{{Title: "Snowfall", Resource: "snowfall", ID: 42}}}
	if err := c.Write(&buf); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	if err := os.WriteFile(manifest, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := config.Default(tdir)
	cfg.Catalog.Manifest = manifest
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}

	app, err := EnsureFirstRun(cfgPath, "", Options{LogOut: &bytes.Buffer{}})
	if err != nil {
		t.Fatalf("EnsureFirstRun: %v", err)
	}
	if got := app.Settings.Get(settings.KeyOrderedSongs); got != `["Snowfall"]` {
		t.Fatalf("ordered songs: %s", got)
	}
	if got := app.Settings.Get(settings.KeySongs); got != `{"Snowfall":"42"}` {
		t.Fatalf("songs: %s", got)
	}
}

func TestEnsureFirstRunBadManifest(t *testing.T) {
	tdir := t.TempDir()
	cfgPath := filepath.Join(tdir, "launcher.yaml")
	cfg := config.Default(tdir)
	cfg.Catalog.Manifest = filepath.Join(tdir, "missing.yaml")
	if err := config.Save(cfgPath, cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := EnsureFirstRun(cfgPath, "", Options{LogOut: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for missing manifest")
	}
}
