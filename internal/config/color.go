package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ParseColor accepts "#RRGGBB" (opaque) or "#AARRGGBB".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, errors.Errorf("color %q: missing leading #", s)
	}
	alpha := uint8(255)
	rgb := s
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[1:3], 16, 8)
		if err != nil {
			return color.NRGBA{}, errors.Wrapf(err, "color %q: alpha", s)
		}
		alpha = uint8(a)
		rgb = "#" + s[3:]
	default:
		return color.NRGBA{}, errors.Errorf("color %q: want #RRGGBB or #AARRGGBB", s)
	}

	c, err := colorful.Hex(strings.ToLower(rgb))
	if err != nil {
		return color.NRGBA{}, errors.Wrapf(err, "color %q", s)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor is the inverse of ParseColor, always emitting the alpha channel.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}
