package core

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB value packed as 0xRRGGBB.
// Two colors are equal when all three channels match.
type Color uint32

// MaxColor is the largest valid Color (#FFFFFF).
const MaxColor Color = 0xFFFFFF

// RGB builds a Color from its channels.
func RGB(r, g, b uint8) Color {
	return Color(uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// Hex returns the canonical "#RRGGBB" form with upper-case digits.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c&MaxColor))
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#RRGGBB" or "RRGGBB" in either case.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return 0, fmt.Errorf("core: invalid color %q: want 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

// RandomColor picks a color uniformly from the full RGB space.
func RandomColor(rng *rand.Rand) Color {
	return Color(rng.Int31n(int32(MaxColor) + 1))
}

// Luminance returns the perceived brightness in [0, 1].
// Renderers use it to pick readable text on top of a swatch.
func (c Color) Luminance() float64 {
	return (0.299*float64(c.R()) + 0.587*float64(c.G()) + 0.114*float64(c.B())) / 255
}
