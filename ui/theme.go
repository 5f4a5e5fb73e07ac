package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	themePrefKey     = "ui.theme"
	defaultThemeName = "Dark"
)

// ThemeNames lists the selectable themes in menu order.
func ThemeNames() []string {
	return []string{"Dark", "Light", "Solarized"}
}

// variantTheme pins the default theme to one variant so the selection works
// regardless of the system setting.
type variantTheme struct {
	base    fyne.Theme
	variant fyne.ThemeVariant
}

func newVariantTheme(variant fyne.ThemeVariant) *variantTheme {
	return &variantTheme{base: theme.DefaultTheme(), variant: variant}
}

func (t *variantTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	return t.base.Color(name, t.variant)
}

func (t *variantTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *variantTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *variantTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

// solarizedTheme overrides the main colors with the dark Solarized palette
// and keeps the default theme's fonts, icons and sizes.
type solarizedTheme struct {
	base fyne.Theme
}

func newSolarizedTheme() *solarizedTheme {
	return &solarizedTheme{base: theme.DefaultTheme()}
}

func (t *solarizedTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x00, G: 0x2b, B: 0x36, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0x93, G: 0xa1, B: 0xa1, A: 0xff}
	case theme.ColorNameButton, theme.ColorNameInputBackground:
		return color.NRGBA{R: 0x07, G: 0x36, B: 0x42, A: 0xff}
	case theme.ColorNamePrimary:
		return color.NRGBA{R: 0x26, G: 0x8b, B: 0xd2, A: 0xff}
	case theme.ColorNameSelection:
		return color.NRGBA{R: 0x58, G: 0x6e, B: 0x75, A: 0xff}
	case theme.ColorNamePlaceHolder, theme.ColorNameDisabled:
		return color.NRGBA{R: 0x58, G: 0x6e, B: 0x75, A: 0xff}
	}
	return t.base.Color(name, theme.VariantDark)
}

func (t *solarizedTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *solarizedTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

func (t *solarizedTheme) Size(name fyne.ThemeSizeName) float32 {
	return t.base.Size(name)
}

func themeByName(name string) fyne.Theme {
	switch name {
	case "Light":
		return newVariantTheme(theme.VariantLight)
	case "Solarized":
		return newSolarizedTheme()
	}
	return newVariantTheme(theme.VariantDark)
}

// CurrentThemeName returns the persisted theme selection, falling back to
// the default for unknown or missing values.
func CurrentThemeName(a fyne.App) string {
	name := a.Preferences().StringWithFallback(themePrefKey, defaultThemeName)
	for _, n := range ThemeNames() {
		if n == name {
			return name
		}
	}
	return defaultThemeName
}

// ApplyTheme sets the theme saved in preferences.
func ApplyTheme(a fyne.App) {
	a.Settings().SetTheme(themeByName(CurrentThemeName(a)))
}

// SetTheme applies the named theme and persists the choice.
func SetTheme(a fyne.App, name string) {
	a.Preferences().SetString(themePrefKey, name)
	a.Settings().SetTheme(themeByName(name))
}
