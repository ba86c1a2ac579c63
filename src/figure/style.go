// Package figure renders the two stacked log-scale panels and writes them as one PNG.
//
// Pipeline: NewPanel -> Render{Transistor,Storage}Panel -> Compose -> Save.
// Generator wires the steps together for the CLI.
package figure

import (
	"math"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Style carries every visual default. It replaces process-wide chart settings:
// each render call gets the style it should use.
type Style struct {
	// figure geometry, inches and dots per inch
	WidthIn  float64
	HeightIn float64
	DPI      float64

	// font sizes in points
	TitleFontSize float64
	LabelFontSize float64
	TickFontSize  float64

	// series geometry in points
	LineWidth  float64
	MarkerSize float64

	GridAlpha float64

	Foreground      drawing.Color
	Background      drawing.Color
	TransistorColor drawing.Color
	StorageColor    drawing.Color

	// shared x domain
	XMin, XMax float64
	XTickStep  float64

	// tight bbox padding, inches
	PadIn float64
}

// DarkStyle returns the default dark-background style: white ink on a transparent figure.
func DarkStyle() Style {
	return Style{
		WidthIn:         12,
		HeightIn:        16,
		DPI:             300,
		TitleFontSize:   24,
		LabelFontSize:   24,
		TickFontSize:    20,
		LineWidth:       4,
		MarkerSize:      12,
		GridAlpha:       0.2,
		Foreground:      drawing.ColorWhite,
		Background:      drawing.ColorTransparent,
		TransistorColor: drawing.Color{R: 0, G: 0, B: 255, A: 255},
		StorageColor:    drawing.Color{R: 0, G: 128, B: 0, A: 255},
		XMin:            1970,
		XMax:            2025,
		XTickStep:       10,
		PadIn:           0.1,
	}
}

// Pixels converts a size in points to pixels at the style's DPI.
func (s Style) Pixels(points float64) float64 {
	return points * s.DPI / 72
}

// FigureSize returns the uncropped figure size in pixels.
func (s Style) FigureSize() (int, int) {
	return int(math.Round(s.WidthIn * s.DPI)), int(math.Round(s.HeightIn * s.DPI))
}

// PanelSize returns the size of one of the two stacked panels.
func (s Style) PanelSize() (int, int) {
	w, h := s.FigureSize()
	return w, h / 2
}

// gridColor is the foreground at the grid opacity.
func (s Style) gridColor() drawing.Color {
	return s.Foreground.WithAlpha(uint8(math.Round(s.GridAlpha * 255)))
}
