package wave

import (
	"image/color"
	"time"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure.
	ErrInvalidConfig = errors.New("invalid wave config")
	// ErrAnchorNotFound means the configured anchor is not a child of the host.
	ErrAnchorNotFound = errors.New("wave anchor not found")
)

const (
	DefaultDuration = 3000 * time.Millisecond
	DefaultCount    = 3
	DefaultBaseSize = 1.0
)

// DefaultColor is translucent white.
var DefaultColor = color.NRGBA{R: 255, G: 255, B: 255, A: 128}

// Coord is one origin coordinate, either fixed or centred in the container.
type Coord struct {
	Value float64
	Fixed bool
}

// Auto centres the origin on this axis.
func Auto() Coord { return Coord{} }

// At pins the origin at v on this axis.
func At(v float64) Coord { return Coord{Value: v, Fixed: true} }

func (c Coord) resolve(extent float64) float64 {
	if c.Fixed {
		return c.Value
	}
	return extent / 2
}

// Config describes the rings an Emitter draws.
type Config struct {
	OriginX  Coord
	OriginY  Coord
	Anchor   string // id of a host element whose centre overrides the origin
	BaseSize float64
	Color    color.NRGBA
	Duration time.Duration
	Count    int
}

func DefaultConfig() Config {
	return Config{
		OriginX:  Auto(),
		OriginY:  Auto(),
		BaseSize: DefaultBaseSize,
		Color:    DefaultColor,
		Duration: DefaultDuration,
		Count:    DefaultCount,
	}
}

// Validate rejects configurations that cannot be animated.
func (c Config) Validate() error {
	if c.Count < 1 {
		return errors.Wrapf(ErrInvalidConfig, "wave count must be at least 1, got %d", c.Count)
	}
	if c.BaseSize <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "base size must be positive, got %v", c.BaseSize)
	}
	if c.Duration <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "duration must be positive, got %v", c.Duration)
	}
	return nil
}
