// Package palette defines the dashboard colors and the built-in legend.
package palette

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a hex color value in "#RRGGBB" form. The zero value renders as
// an uncolored (white) cell.
type Color string

const (
	White Color = "#FFFFFF"

	AC225RunEVG Color = "#A2EBCD"
	IN111RunEVG Color = "#F1E183"
	AC225RunSRX Color = "#F3B48F"
	IN111RunSRX Color = "#EC712A"
	Partner     Color = "#0ABB21" // Cardinal / TPI / Niowave site activities
	NMCTG       Color = "#BCA6CA"
	Placeholder Color = "#F1E429"
	Shutdown    Color = "#F5253A"
	Confirmed   Color = "#5F65BB"
	Maintenance Color = "#D10D96"
	PV          Color = "#3CD63C"
	SRX         Color = "#3ACCC0"
	Perceptive  Color = "#75A06B"
	BWXT        Color = "#3D6E34"

	Weekend   Color = "#BFBFBF"
	Holiday   Color = "#E07A5F"
	Cancelled Color = "#7A7A7A"
	Unmatched Color = "#D9D9D9"
)

// RGB decomposes the color. Malformed values come back as white so a bad
// user-picked legend color never breaks rendering.
func (c Color) RGB() (r, g, b int) {
	s := strings.TrimPrefix(string(c), "#")
	if len(s) != 6 {
		return 255, 255, 255
	}
	rv, err1 := strconv.ParseInt(s[0:2], 16, 32)
	gv, err2 := strconv.ParseInt(s[2:4], 16, 32)
	bv, err3 := strconv.ParseInt(s[4:6], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return 255, 255, 255
	}
	return int(rv), int(gv), int(bv)
}

// Luminance is the perceptual brightness 0.299R + 0.587G + 0.114B.
func (c Color) Luminance() float64 {
	r, g, b := c.RGB()
	return 0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)
}

// luminanceThreshold splits backgrounds that want black label text from
// those that want white. Custom legend colors are user-chosen, so this has
// to be computed per color rather than kept as an allow-list.
const luminanceThreshold = 140

// TextColor returns black or white, whichever contrasts with c.
func (c Color) TextColor() Color {
	if c == "" || c == White {
		return "#000000"
	}
	if c.Luminance() >= luminanceThreshold {
		return "#000000"
	}
	return White
}

func (c Color) String() string {
	if c == "" {
		return string(White)
	}
	return string(c)
}

// Parse validates a "#RRGGBB" string.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") || len(s) != 7 {
		return "", fmt.Errorf("palette: invalid color %q", s)
	}
	if _, err := strconv.ParseInt(s[1:], 16, 64); err != nil {
		return "", fmt.Errorf("palette: invalid color %q", s)
	}
	return Color(strings.ToUpper(s)), nil
}
