package render

import (
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the device body and LCD
var (
	RgbBody       = tcell.NewRGBColor(214, 211, 204) // Warm plastic gray
	RgbBodyShadow = tcell.NewRGBColor(156, 153, 146) // Body edge
	RgbBodyText   = tcell.NewRGBColor(107, 107, 107) // Embossed labels
	RgbBezel      = tcell.NewRGBColor(72, 76, 84)    // Screen surround

	RgbLcd     = tcell.NewRGBColor(158, 167, 146) // Backlit LCD
	RgbLcdDim  = tcell.NewRGBColor(104, 112, 96)  // Backlight off
	RgbLcdInk  = tcell.NewRGBColor(44, 51, 39)    // Pixel on
	RgbLcdHalf = tcell.NewRGBColor(139, 150, 128) // Grid lines, inactive borders

	RgbDpad      = tcell.NewRGBColor(249, 115, 22)  // Orange cross
	RgbDpadHub   = tcell.NewRGBColor(234, 88, 12)   // Cross centre
	RgbButton    = tcell.NewRGBColor(229, 231, 235) // Gray face buttons
	RgbButtonA   = tcell.NewRGBColor(249, 115, 22)  // Orange A
	RgbStart     = tcell.NewRGBColor(31, 41, 55)    // Dark start bar
	RgbButtonTxt = tcell.NewRGBColor(107, 114, 128)

	RgbLanyard = tcell.NewRGBColor(85, 85, 85)    // Keychain string
	RgbRing    = tcell.NewRGBColor(156, 163, 175) // Keychain ring
	RgbTag     = tcell.NewRGBColor(250, 204, 21)  // Keychain tag
	RgbHeart   = tcell.NewRGBColor(249, 115, 22)

	RgbOverlayBg = tcell.NewRGBColor(20, 20, 28)
	RgbOverlayFg = tcell.NewRGBColor(200, 200, 200)
)

// Styles derived from the palette
var (
	styleBody    = tcell.StyleDefault.Background(RgbBody).Foreground(RgbBodyText)
	styleShadow  = tcell.StyleDefault.Background(RgbBodyShadow).Foreground(RgbBodyText)
	styleBezel   = tcell.StyleDefault.Background(RgbBezel).Foreground(RgbLcdHalf)
	styleDpad    = tcell.StyleDefault.Background(RgbDpad).Foreground(tcell.ColorBlack)
	styleHub     = tcell.StyleDefault.Background(RgbDpadHub).Foreground(tcell.ColorBlack)
	styleButton  = tcell.StyleDefault.Background(RgbButton).Foreground(RgbButtonTxt).Bold(true)
	styleButtonA = tcell.StyleDefault.Background(RgbButtonA).Foreground(tcell.ColorWhite).Bold(true)
	styleStart   = tcell.StyleDefault.Background(RgbStart).Foreground(RgbButtonTxt)
	styleOverlay = tcell.StyleDefault.Background(RgbOverlayBg).Foreground(RgbOverlayFg)
)

// lcdStyles are the screen styles for one backlight state
type lcdStyles struct {
	bg     tcell.Style // Empty LCD
	ink    tcell.Style // Text and pixels
	inv    tcell.Style // Inverted, highlighted tile and operator keys
	faint  tcell.Style // Borders and grid
	filled tcell.Style // Solid pixel block
}

func newLcdStyles(backlight bool) lcdStyles {
	bg := RgbLcd
	if !backlight {
		bg = RgbLcdDim
	}
	base := tcell.StyleDefault.Background(bg)
	return lcdStyles{
		bg:     base.Foreground(RgbLcdInk),
		ink:    base.Foreground(RgbLcdInk).Bold(true),
		inv:    tcell.StyleDefault.Background(RgbLcdInk).Foreground(bg).Bold(true),
		faint:  base.Foreground(RgbLcdHalf),
		filled: tcell.StyleDefault.Background(RgbLcdInk).Foreground(RgbLcdInk),
	}
}
