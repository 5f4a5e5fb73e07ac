package ui

import (
	"image/color"
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
)

// The Light theme must ignore the variant the system asks for.
func TestThemeByNamePinsVariant(t *testing.T) {
	light := themeByName("Light")
	want := theme.DefaultTheme().Color(theme.ColorNameBackground, theme.VariantLight)
	if got := light.Color(theme.ColorNameBackground, theme.VariantDark); got != want {
		t.Errorf("Light background = %v, want %v for any requested variant", got, want)
	}
}

func TestSolarizedPalette(t *testing.T) {
	solarized := themeByName("Solarized")
	if got := solarized.Color(theme.ColorNameBackground, theme.VariantDark); got != (color.NRGBA{R: 0x00, G: 0x2b, B: 0x36, A: 0xff}) {
		t.Errorf("Solarized background = %v", got)
	}
	if got := solarized.Color(theme.ColorNamePrimary, theme.VariantLight); got != (color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 0xff}) {
		t.Errorf("Solarized primary = %v", got)
	}
}

func TestSetThemePersists(t *testing.T) {
	a := test.NewApp()

	SetTheme(a, "Solarized")
	if got := CurrentThemeName(a); got != "Solarized" {
		t.Errorf("CurrentThemeName() = %q, want Solarized", got)
	}
	if got := a.Preferences().String(themePrefKey); got != "Solarized" {
		t.Errorf("stored preference = %q, want Solarized", got)
	}
}

func TestCurrentThemeNameFallback(t *testing.T) {
	a := test.NewApp()

	if got := CurrentThemeName(a); got != defaultThemeName {
		t.Errorf("CurrentThemeName() with no preference = %q, want %q", got, defaultThemeName)
	}

	a.Preferences().SetString(themePrefKey, "neon")
	if got := CurrentThemeName(a); got != defaultThemeName {
		t.Errorf("CurrentThemeName() with unknown preference = %q, want %q", got, defaultThemeName)
	}
}
