package randomart

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var ErrPaletteTooSmall = errors.New("randomart: palette too small")

type Color struct {
	R, G, B uint8
}

// RGBA implements color.Color. Colors are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// String returns the CSS notation of the color.
func (c Color) String() string { return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B) }

// Hex returns the color as #rrggbb.
func (c Color) Hex() string { return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B) }

func (c Color) MarshalText() ([]byte, error) { return []byte(c.Hex()), nil }

// UnmarshalText accepts #rrggbb, #rgb and rgb(r,g,b).
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	switch {
	case strings.HasPrefix(s, "#"):
		hex := s[1:]
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return fmt.Errorf("randomart: invalid color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return fmt.Errorf("randomart: invalid color %q: %w", s, err)
		}
		*c = Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
		return nil

	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		parts := strings.Split(s[4:len(s)-1], ",")
		if len(parts) != 3 {
			return fmt.Errorf("randomart: invalid color %q", s)
		}
		var ch [3]uint8
		for i, p := range parts {
			v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
			if err != nil {
				return fmt.Errorf("randomart: invalid color %q: %w", s, err)
			}
			ch[i] = uint8(v)
		}
		*c = Color{R: ch[0], G: ch[1], B: ch[2]}
		return nil

	default:
		return fmt.Errorf("randomart: invalid color %q", s)
	}
}

// DefaultColors is used by RenderImage when no palette is given.
// Entry 0 is the background.
var DefaultColors = []Color{
	{0, 0, 0},
	{32, 128, 128},
	{128, 128, 255},
	{255, 255, 0},
	{0, 0, 255},
	{200, 0, 255},
	{128, 128, 0},
	{128, 0, 0},
	{128, 0, 128},
	{0, 128, 128},
	{0, 0, 128},
	{128, 69, 69},
	{64, 192, 192},
	{0, 64, 192},
	{128, 64, 192},
	{160, 64, 255},
}

// DefaultCharacters is used by RenderText when no palette is given.
const DefaultCharacters = " .o+=*BO"

// PaletteError is returned when a cell value has no entry in the palette
// used to render it.
type PaletteError struct {
	Palette string // "color" or "character"
	Level   int
	Size    int
}

func (e *PaletteError) Error() string {
	return fmt.Sprintf("randomart: %s palette too small: level %d requested, %d entries available", e.Palette, e.Level, e.Size)
}

func (e *PaletteError) Unwrap() error { return ErrPaletteTooSmall }
