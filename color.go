package masume

import (
	"fmt"
	"strconv"
)

// Color is an 8-bit RGBA color.
//
// Tiled writes colors as "#RRGGBB" or "#AARRGGBB"; note that in the
// 8-digit form the alpha channel is the leading byte pair.
type Color struct {
	R uint8
	G uint8
	B uint8
	A uint8
}

// ParseColor converts a Tiled color string into a Color. The leading
// "#" is optional. A 6-digit value is fully opaque; an 8-digit value
// carries alpha in the first byte pair.
func ParseColor(s string) (Color, error) {
	orig := s
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	parse := func(part string) (uint8, error) {
		v, err := strconv.ParseUint(part, 16, 8)
		return uint8(v), err
	}

	var channels [4]uint8
	var err error
	switch len(s) {
	case 6:
		channels[3] = 255
		for i := 0; i < 3; i++ {
			if channels[i], err = parse(s[i*2 : i*2+2]); err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", orig, err)
			}
		}
	case 8:
		// Alpha first, then RGB.
		if channels[3], err = parse(s[0:2]); err != nil {
			return Color{}, fmt.Errorf("invalid color %q: %w", orig, err)
		}
		for i := 0; i < 3; i++ {
			if channels[i], err = parse(s[2+i*2 : 4+i*2]); err != nil {
				return Color{}, fmt.Errorf("invalid color %q: %w", orig, err)
			}
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", orig)
	}

	return Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]}, nil
}

// String formats the color the way Tiled writes it, "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.A, c.R, c.G, c.B)
}
