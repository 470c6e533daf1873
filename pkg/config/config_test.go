package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Render.Width != 640 || cfg.Render.Height != 480 {
		t.Errorf("Expected 640x480 default frame, got %dx%d", cfg.Render.Width, cfg.Render.Height)
	}
	if cfg.Render.SampleCount != 1 {
		t.Errorf("Expected 1 sample per pixel by default, got %d", cfg.Render.SampleCount)
	}
	if cfg.Render.LightSamples != 10 {
		t.Errorf("Expected 10 light samples by default, got %d", cfg.Render.LightSamples)
	}
	if !cfg.Render.Shadows {
		t.Error("Expected shadows on by default")
	}
	if cfg.Render.LightMode != "combined" {
		t.Errorf("Expected combined light mode, got %q", cfg.Render.LightMode)
	}
	if cfg.Scene.Name != "reference" {
		t.Errorf("Expected reference scene by default, got %q", cfg.Scene.Name)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Expected info log level, got %q", cfg.Logging.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Render.Width = 800
	cfg.Render.SampleCount = 16
	cfg.Scene.Name = "bunny"
	cfg.Scene.AssetPath = "assets/bunny.obj"

	path := filepath.Join(t.TempDir(), "raytracer.yaml")
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if loaded.Render.Width != 800 || loaded.Render.SampleCount != 16 {
		t.Errorf("Render settings not round-tripped: %+v", loaded.Render)
	}
	if loaded.Scene.Name != "bunny" || loaded.Scene.AssetPath != "assets/bunny.obj" {
		t.Errorf("Scene settings not round-tripped: %+v", loaded.Scene)
	}
}

func TestLoadFromFile_PartialOverridesKeepDefaults(t *testing.T) {
	cfg := Default()

	path := filepath.Join(t.TempDir(), "raytracer.yaml")
	partial := []byte("render:\n  width: 320\n")
	if err := os.WriteFile(path, partial, 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("loadFromFile failed: %v", err)
	}

	if cfg.Render.Width != 320 {
		t.Errorf("Expected width override to 320, got %d", cfg.Render.Width)
	}
	if cfg.Render.Height != 480 {
		t.Errorf("Expected default height preserved, got %d", cfg.Render.Height)
	}
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	cfg := Default()

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("render: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := loadFromFile(cfg, path); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}
