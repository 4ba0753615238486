package formula

import (
	"strings"

	"github.com/fatih/color"
)

// Palette holds one color per greeting line. A nil color prints plain text.
type Palette struct {
	Name       *color.Color
	Experience *color.Color
	Automate   *color.Color
	Secret     *color.Color
}

// DefaultPalette leaves the decision to color, which turns escapes off for
// non-terminals and when NO_COLOR is set.
func DefaultPalette() Palette {
	return Palette{
		Name:       color.New(color.FgGreen),
		Experience: color.New(color.FgBlue),
		Automate:   color.New(color.FgYellow),
		Secret:     color.New(color.FgCyan),
	}
}

func ForcedPalette() Palette {
	p := DefaultPalette()
	for _, c := range p.colors() {
		c.EnableColor()
	}
	return p
}

func PlainPalette() Palette {
	p := DefaultPalette()
	for _, c := range p.colors() {
		c.DisableColor()
	}
	return p
}

// PaletteByMode maps "always" and "never" to the forced and plain palettes.
// Anything else is treated as "auto".
func PaletteByMode(mode string) Palette {
	switch strings.ToLower(mode) {
	case "always":
		return ForcedPalette()
	case "never":
		return PlainPalette()
	default:
		return DefaultPalette()
	}
}

func (p Palette) colors() []*color.Color {
	return []*color.Color{p.Name, p.Experience, p.Automate, p.Secret}
}

func paint(c *color.Color, s string) string {
	if c == nil {
		return s
	}
	return c.Sprint(s)
}
