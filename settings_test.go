package grove

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "grove.toml")
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if s.IdleTime != 5 || s.FileDiameter != 8 || s.NameTime != 4 || s.FileSpeed != 5 {
		t.Errorf("DefaultSettings = %+v", s)
	}
	if s.ShowExtensions {
		t.Error("ShowExtensions should default to false")
	}
	if s.FadeEase == nil {
		t.Error("FadeEase should default to linear")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	p := writeSettings(t, `
idle_time = 3.5
show_extensions = true
`)
	s, err := LoadSettings(p)
	if err != nil {
		t.Fatal(err)
	}
	if s.IdleTime != 3.5 {
		t.Errorf("IdleTime = %v, want 3.5", s.IdleTime)
	}
	if !s.ShowExtensions {
		t.Error("ShowExtensions should be true")
	}
	if s.FileDiameter != 8 {
		t.Errorf("FileDiameter = %v, want default 8", s.FileDiameter)
	}
	if s.FadeEase == nil {
		t.Error("FadeEase should keep its default")
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	p := writeSettings(t, "idle_time = -1\nfile_diameter = 0\n")
	_, err := LoadSettings(p)
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "idle_time") || !strings.Contains(msg, "file_diameter") {
		t.Errorf("error should name both fields: %v", err)
	}
}

func TestLoadSettingsNonFinite(t *testing.T) {
	tests := []struct {
		content string
		field   string
	}{
		{"idle_time = nan\n", "idle_time"},
		{"idle_time = inf\n", "idle_time"},
		{"file_diameter = -inf\n", "file_diameter"},
		{"name_time = nan\n", "name_time"},
		{"file_speed = inf\n", "file_speed"},
	}
	for _, tt := range tests {
		_, err := LoadSettings(writeSettings(t, tt.content))
		if err == nil {
			t.Errorf("%q: expected validation error", tt.content)
			continue
		}
		if !strings.Contains(err.Error(), tt.field+" must be finite") {
			t.Errorf("%q: error = %v, want %s must be finite", tt.content, err, tt.field)
		}
	}
}

func TestLoadSettingsSyntaxError(t *testing.T) {
	p := writeSettings(t, "idle_time = = 3")
	if _, err := LoadSettings(p); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	if _, err := LoadSettings(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing file")
	}
}
