package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning_CoversEveryGroup(t *testing.T) {
	d := DefaultTuning()
	if d.Swim.Power != 8.0 || d.Swim.Resistance != 0.88 || d.Swim.MaxSpeed != 6.0 {
		t.Fatalf("unexpected swim defaults: %+v", d.Swim)
	}
	if d.Crawl.Power != 2.5 || d.Crawl.MaxSpeed != 3.0 {
		t.Fatalf("unexpected crawl defaults: %+v", d.Crawl)
	}
	if d.Transition.Delay != 0.5 || d.Transition.SinkThreshold != -0.15 {
		t.Fatalf("unexpected transition defaults: %+v", d.Transition)
	}
	if d.Camera.MaxPitch != 1.2 || d.Camera.ArmLength != 4.0 {
		t.Fatalf("unexpected camera defaults: %+v", d.Camera)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	content := []byte("swim:\n  power: 12\ncamera:\n  arm_length: 7.5\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("writing temp tuning: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if got.Swim.Power != 12 {
		t.Fatalf("file value should win, got power %.2f", got.Swim.Power)
	}
	if got.Camera.ArmLength != 7.5 {
		t.Fatalf("file value should win, got arm length %.2f", got.Camera.ArmLength)
	}
	if got.Swim.Resistance != 0.88 {
		t.Fatalf("omitted field should keep its default, got resistance %.2f", got.Swim.Resistance)
	}
	if got.Transition.SinkThreshold != -0.15 {
		t.Fatalf("omitted negative default should survive, got %.2f", got.Transition.SinkThreshold)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("loading a missing file should error")
	}
}

func TestWatcher_CloseIsIdempotentAndReleasesChannels(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte("swim:\n  power: 9\n"), 0o644); err != nil {
		t.Fatalf("writing temp tuning: %v", err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("starting watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close must be a no-op, got: %v", err)
	}

	// The run goroutine owns both channels and closes them on its way out,
	// so a consumer blocked on either always unblocks after Close.
	for range w.Updates {
	}
	for range w.Errors {
	}
}

func TestWatcher_MissingDirectoryErrors(t *testing.T) {
	if _, err := NewWatcher(filepath.Join(t.TempDir(), "absent", "tuning.yaml")); err == nil {
		t.Fatal("watching a missing directory should error")
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("swim: [unclosed"), 0o644); err != nil {
		t.Fatalf("writing temp tuning: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("loading a malformed file should error")
	}
}
