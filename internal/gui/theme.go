package gui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette is a complete colour scheme for the window and profile cards.
type Palette struct {
	Name    string
	Base    color.NRGBA
	Card    color.NRGBA
	Border  color.NRGBA
	Text    color.NRGBA
	Subtext color.NRGBA
	Primary color.NRGBA
	Danger  color.NRGBA
	Success color.NRGBA
}

var (
	Light = Palette{
		Name:    "light",
		Base:    mustHex("#FFFFFF"),
		Card:    mustHex("#F5F5F5"),
		Border:  mustHex("#E6E6E6"),
		Text:    mustHex("#202020"),
		Subtext: mustHex("#555555"),
		Primary: mustHex("#0078D7"),
		Danger:  mustHex("#E81123"),
		Success: mustHex("#107C10"),
	}
	Dark = Palette{
		Name:    "dark",
		Base:    mustHex("#1E1E1E"),
		Card:    mustHex("#2C2C2C"),
		Border:  mustHex("#3A3A3A"),
		Text:    mustHex("#E0E0E0"),
		Subtext: mustHex("#A0A0A0"),
		Primary: mustHex("#2F7DD7"),
		Danger:  mustHex("#E81123"),
		Success: mustHex("#2EA043"),
	}
)

// PaletteByName returns Dark for "dark" and Light for anything else.
func PaletteByName(name string) Palette {
	if name == Dark.Name {
		return Dark
	}
	return Light
}

func (p Palette) Toggled() Palette {
	if p.Name == Dark.Name {
		return Light
	}
	return Dark
}

func (p Palette) Variant() fyne.ThemeVariant {
	if p.Name == Dark.Name {
		return theme.VariantDark
	}
	return theme.VariantLight
}

// ParseHexColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func mustHex(s string) color.NRGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

type launchTheme struct {
	palette Palette
}

// NewTheme overlays p on fyne's default theme.
func NewTheme(p Palette) fyne.Theme {
	return &launchTheme{palette: p}
}

func (t *launchTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return t.palette.Base
	case theme.ColorNameForeground:
		return t.palette.Text
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return t.palette.Primary
	case theme.ColorNameError:
		return t.palette.Danger
	case theme.ColorNameSuccess:
		return t.palette.Success
	case theme.ColorNameInputBackground, theme.ColorNameMenuBackground, theme.ColorNameOverlayBackground:
		return t.palette.Card
	case theme.ColorNameInputBorder, theme.ColorNameSeparator:
		return t.palette.Border
	case theme.ColorNamePlaceHolder:
		return t.palette.Subtext
	}
	return theme.DefaultTheme().Color(name, t.palette.Variant())
}

func (t *launchTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

func (t *launchTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

func (t *launchTheme) Size(name fyne.ThemeSizeName) float32 {
	return theme.DefaultTheme().Size(name)
}
