package config

import (
	"bytes"
	_ "embed"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/wavelayout/internal/layout"
	"github.com/iburimskiy/wavelayout/internal/wave"
)

// ErrInvalidScene is wrapped by every scene validation failure.
var ErrInvalidScene = errors.New("invalid scene")

//go:embed default.yaml
var defaultScene []byte

// WaveAttrs is the attribute surface of the wave layout. Unset fields take the
// widget defaults.
type WaveAttrs struct {
	StartX       *float64 `yaml:"startX,omitempty"`
	StartY       *float64 `yaml:"startY,omitempty"`
	StartSize    *float64 `yaml:"startSize,omitempty"`
	StartColor   string   `yaml:"startColor,omitempty"`
	AnimDuration *int     `yaml:"animDuration,omitempty"` // milliseconds
	WavesCount   *int     `yaml:"wavesCount,omitempty"`
	RelativeTo   string   `yaml:"relativeTo,omitempty"`
}

// ElementSpec is a static scene element the waves can be anchored to.
type ElementSpec struct {
	ID     string  `yaml:"id"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Color  string  `yaml:"color,omitempty"`
	Round  bool    `yaml:"round,omitempty"`
}

// PulseSpec configures the audible cue played when a ring restarts.
type PulseSpec struct {
	Enabled   *bool   `yaml:"enabled,omitempty"`
	Frequency float64 `yaml:"frequency,omitempty"`
	LengthMs  int     `yaml:"lengthMs,omitempty"`
	Volume    float64 `yaml:"volume,omitempty"`
}

type Scene struct {
	Wave     WaveAttrs     `yaml:"wave"`
	Elements []ElementSpec `yaml:"elements,omitempty"`
	Pulse    PulseSpec     `yaml:"pulse,omitempty"`
}

// Pulse is a PulseSpec with defaults applied.
type Pulse struct {
	Enabled   bool
	Frequency float64
	Length    time.Duration
	Volume    float64
}

const (
	defaultPulseFrequency = 660
	defaultPulseLength    = 60 * time.Millisecond
	defaultPulseVolume    = 0.3
	defaultElementColor   = "#FF3C4A5E"
)

// Parse decodes and validates a scene. Unknown keys are rejected.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "decode scene")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads a scene file from disk.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read scene %s", path)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "scene %s", path)
	}
	return s, nil
}

// Default returns the embedded scene.
func Default() *Scene {
	s, err := Parse(defaultScene)
	if err != nil {
		panic("embedded default scene is invalid: " + err.Error())
	}
	return s
}

// Validate checks the wave attributes and that relativeTo names an element.
func (s *Scene) Validate() error {
	if _, err := s.WaveConfig(); err != nil {
		return err
	}
	seen := map[string]bool{}
	for i, el := range s.Elements {
		if el.ID == "" {
			return errors.Wrapf(ErrInvalidScene, "element %d has no id", i)
		}
		if seen[el.ID] {
			return errors.Wrapf(ErrInvalidScene, "duplicate element id %q", el.ID)
		}
		seen[el.ID] = true
		if el.Width < 0 || el.Height < 0 {
			return errors.Wrapf(ErrInvalidScene, "element %q has negative size", el.ID)
		}
		if el.Color != "" {
			if _, err := ParseColor(el.Color); err != nil {
				return errors.Wrapf(ErrInvalidScene, "element %q: %v", el.ID, err)
			}
		}
	}
	if ref := s.Wave.RelativeTo; ref != "" && !seen[ref] {
		return errors.Wrapf(ErrInvalidScene, "relativeTo %q: %v", ref, wave.ErrAnchorNotFound)
	}
	if p := s.Pulse; p.Frequency < 0 || p.LengthMs < 0 || p.Volume < 0 || p.Volume > 1 {
		return errors.Wrap(ErrInvalidScene, "pulse frequency, length and volume must be non-negative and volume at most 1")
	}
	return nil
}

// WaveConfig converts the attributes into an emitter configuration.
func (s *Scene) WaveConfig() (wave.Config, error) {
	a := s.Wave
	cfg := wave.DefaultConfig()
	if a.StartX != nil {
		cfg.OriginX = wave.At(*a.StartX)
	}
	if a.StartY != nil {
		cfg.OriginY = wave.At(*a.StartY)
	}
	if a.StartSize != nil {
		cfg.BaseSize = *a.StartSize
	}
	if a.StartColor != "" {
		c, err := ParseColor(a.StartColor)
		if err != nil {
			return wave.Config{}, errors.Wrapf(ErrInvalidScene, "startColor: %v", err)
		}
		cfg.Color = c
	}
	if a.AnimDuration != nil {
		cfg.Duration = time.Duration(*a.AnimDuration) * time.Millisecond
	}
	if a.WavesCount != nil {
		cfg.Count = *a.WavesCount
	}
	cfg.Anchor = a.RelativeTo

	if err := cfg.Validate(); err != nil {
		return wave.Config{}, errors.Wrapf(ErrInvalidScene, "%v", err)
	}
	return cfg, nil
}

// Populate adds the scene elements to c in declaration order.
func (s *Scene) Populate(c *layout.Container) {
	for _, spec := range s.Elements {
		fill, err := ParseColor(spec.Color)
		if err != nil {
			fill, _ = ParseColor(defaultElementColor)
		}
		c.Add(&layout.Element{
			ID:     spec.ID,
			X:      spec.X,
			Y:      spec.Y,
			Width:  spec.Width,
			Height: spec.Height,
			ScaleX: 1,
			ScaleY: 1,
			Fill:   layout.Gradient{Center: fill, Edge: fill},
			Round:  spec.Round,
		})
	}
}

// PulseSettings applies the cue defaults.
func (s *Scene) PulseSettings() Pulse {
	p := Pulse{
		Enabled:   true,
		Frequency: defaultPulseFrequency,
		Length:    defaultPulseLength,
		Volume:    defaultPulseVolume,
	}
	if s.Pulse.Enabled != nil {
		p.Enabled = *s.Pulse.Enabled
	}
	if s.Pulse.Frequency > 0 {
		p.Frequency = s.Pulse.Frequency
	}
	if s.Pulse.LengthMs > 0 {
		p.Length = time.Duration(s.Pulse.LengthMs) * time.Millisecond
	}
	if s.Pulse.Volume > 0 {
		p.Volume = s.Pulse.Volume
	}
	return p
}
