package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/wavelayout/internal/layout"
	"github.com/iburimskiy/wavelayout/internal/wave"
)

func TestParseEmptySceneUsesDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error: %v", err)
	}
	cfg, err := s.WaveConfig()
	if err != nil {
		t.Fatal(err)
	}
	want := wave.DefaultConfig()
	if cfg != want {
		t.Errorf("WaveConfig() = %+v, want %+v", cfg, want)
	}
	if cfg.Color != (color.NRGBA{R: 255, G: 255, B: 255, A: 128}) {
		t.Errorf("default color = %v", cfg.Color)
	}
	if cfg.OriginX.Fixed || cfg.OriginY.Fixed {
		t.Error("default origin should be centred")
	}
}

func TestParseFullScene(t *testing.T) {
	data := []byte(`
wave:
  startX: 40
  startY: 60
  startSize: 12
  startColor: "#40102030"
  animDuration: 1500
  wavesCount: 4
elements:
  - id: mic
    x: 10
    y: 10
    width: 20
    height: 20
pulse:
  enabled: false
  frequency: 440
`)
	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	cfg, err := s.WaveConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OriginX != wave.At(40) || cfg.OriginY != wave.At(60) {
		t.Errorf("origin = %+v %+v", cfg.OriginX, cfg.OriginY)
	}
	if cfg.BaseSize != 12 || cfg.Count != 4 || cfg.Duration != 1500*time.Millisecond {
		t.Errorf("unexpected config %+v", cfg)
	}
	if cfg.Color != (color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Errorf("color = %v", cfg.Color)
	}

	p := s.PulseSettings()
	if p.Enabled || p.Frequency != 440 || p.Length != defaultPulseLength {
		t.Errorf("pulse = %+v", p)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"zero waves", "wave:\n  wavesCount: 0\n"},
		{"negative waves", "wave:\n  wavesCount: -1\n"},
		{"zero size", "wave:\n  startSize: 0\n"},
		{"zero duration", "wave:\n  animDuration: 0\n"},
		{"bad color", "wave:\n  startColor: \"white\"\n"},
		{"unknown anchor", "wave:\n  relativeTo: nowhere\n"},
		{"duplicate element", "elements:\n  - id: a\n  - id: a\n"},
		{"element without id", "elements:\n  - x: 1\n"},
		{"loud pulse", "pulse:\n  volume: 2\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("err = %v, want ErrInvalidScene", err)
			}
		})
	}
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	if _, err := Parse([]byte("wave:\n  waveCount: 3\n")); err == nil {
		t.Error("misspelled key was accepted")
	}
}

func TestDefaultScene(t *testing.T) {
	s := Default()
	cfg, err := s.WaveConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Anchor != "record" {
		t.Errorf("anchor = %q, want record", cfg.Anchor)
	}

	c := layout.NewContainer()
	s.Populate(c)
	el, ok := c.FindByID("record")
	if !ok {
		t.Fatal("record element not populated")
	}
	if x, y := el.Center(); x != WindowWidth/2 || y != WindowHeight/2 {
		t.Errorf("record centre = %v,%v, want window centre", x, y)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte("wave:\n  wavesCount: 5\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	cfg, _ := s.WaveConfig()
	if cfg.Count != 5 {
		t.Errorf("Count = %d, want 5", cfg.Count)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file succeeded")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 255}, false},
		{"#80FFFFFF", color.NRGBA{R: 255, G: 255, B: 255, A: 128}, false},
		{" #00ff0080 ", color.NRGBA{R: 0xff, G: 0x00, B: 0x80, A: 0x00}, false},
		{"FFFFFF", color.NRGBA{}, true},
		{"#FFF", color.NRGBA{}, true},
		{"#GG000000", color.NRGBA{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}

	c := color.NRGBA{R: 1, G: 2, B: 3, A: 4}
	if back, err := ParseColor(FormatColor(c)); err != nil || back != c {
		t.Errorf("FormatColor round trip = %v, %v", back, err)
	}
}
