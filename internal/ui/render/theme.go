package render

import "github.com/gdamore/tcell/v2"

// ColorTheme defines application colors.
type ColorTheme struct {
	Background    tcell.Color
	Foreground    tcell.Color
	LabelFg       tcell.Color
	FocusLabelBg  tcell.Color
	FocusLabelFg  tcell.Color
	InputFg       tcell.Color
	LiteralFg     tcell.Color
	AffixFg       tcell.Color
	PlaceholderFg tcell.Color
	ValidFg       tcell.Color
	InvalidFg     tcell.Color
	FooterBg      tcell.Color
	FooterFg      tcell.Color
}

// GetColorTheme returns the default color scheme.
func GetColorTheme() ColorTheme {
	return ColorTheme{
		Background:    tcell.ColorDefault,
		Foreground:    tcell.ColorDefault,
		LabelFg:       tcell.ColorDefault,
		FocusLabelBg:  tcell.Color33,
		FocusLabelFg:  tcell.ColorWhite,
		InputFg:       tcell.ColorDefault,
		LiteralFg:     tcell.ColorLightSlateGray,
		AffixFg:       tcell.Color44, // cyan so affixes read as fixed text
		PlaceholderFg: tcell.Color244,
		ValidFg:       tcell.ColorGreen,
		InvalidFg:     tcell.ColorRed,
		FooterBg:      tcell.ColorDefault,
		FooterFg:      tcell.ColorDefault,
	}
}
