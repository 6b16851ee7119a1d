package qrcode

import (
	"fmt"
	"image/color"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

// Level selects the QR error-correction level, trading data capacity for
// resilience to partial damage.
type Level string

const (
	LevelL Level = "L" // ~7% recovery
	LevelM Level = "M" // ~15% recovery, the default
	LevelQ Level = "Q" // ~25% recovery
	LevelH Level = "H" // ~30% recovery
)

// recoveryLevel maps the level to the upstream library's constant. The empty
// level counts as the default M.
func (l Level) recoveryLevel() (skipqrcode.RecoveryLevel, bool) {
	switch l {
	case LevelL:
		return skipqrcode.Low, true
	case "", LevelM:
		return skipqrcode.Medium, true
	case LevelQ:
		return skipqrcode.High, true
	case LevelH:
		return skipqrcode.Highest, true
	}
	return 0, false
}

// Default render values used when an Options field is left zero.
const (
	DefaultWidth      = 256
	DefaultMargin     = 16
	DefaultForeground = "#000000"
	DefaultBackground = "#ffffff"
)

// Options controls the visual rendering of a QR code. Zero fields fall back
// to the package defaults; start from DefaultOptions when building options
// incrementally.
type Options struct {
	Foreground string // hex color "#RRGGBB" or "#RGB" for dark modules
	Background string // hex color for light modules and the margin
	Level      Level  // error-correction level, defaults to M
	Margin     int    // quiet zone around the code in pixels, >= 0
	Width      int    // output edge length in pixels
}

// DefaultOptions returns the standard rendering: black on white, level M,
// 16px margin at 256px width.
func DefaultOptions() Options {
	return Options{
		Foreground: DefaultForeground,
		Background: DefaultBackground,
		Level:      LevelM,
		Margin:     DefaultMargin,
		Width:      DefaultWidth,
	}
}

// parseHexColor accepts "#RGB" and "#RRGGBB" notations, case-insensitive.
func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	if !strings.HasPrefix(s, "#") {
		return c, fmt.Errorf("%w: color %q must start with '#'", ErrInvalidOptions, s)
	}

	hexByte := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		}
		return 0, false
	}

	hex := s[1:]
	switch len(hex) {
	case 6:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			hi, ok1 := hexByte(hex[i*2])
			lo, ok2 := hexByte(hex[i*2+1])
			if !ok1 || !ok2 {
				return c, fmt.Errorf("%w: invalid hex color %q", ErrInvalidOptions, s)
			}
			*dst = hi<<4 | lo
		}
	case 3:
		for i, dst := range []*uint8{&c.R, &c.G, &c.B} {
			v, ok := hexByte(hex[i])
			if !ok {
				return c, fmt.Errorf("%w: invalid hex color %q", ErrInvalidOptions, s)
			}
			*dst = v<<4 | v
		}
	default:
		return c, fmt.Errorf("%w: invalid hex color %q", ErrInvalidOptions, s)
	}
	return c, nil
}
