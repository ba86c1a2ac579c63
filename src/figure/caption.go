package figure

import (
	"image"
	"image/color"
	"math"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawCaption stamps a one-line caption with its lower-left corner at pt.
// The bitmap face is drawn at native size and scaled up so it stays legible at high DPI.
func drawCaption(dst *image.NRGBA, pt image.Point, text string, st Style) {
	text = strings.TrimSpace(text)
	if dst == nil || text == "" {
		return
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{Face: face}
	tw := dr.MeasureString(text).Ceil()
	th := face.Metrics().Height.Ceil()
	pad := 2

	// render small: shadow then text, transparent elsewhere
	small := image.NewNRGBA(image.Rect(0, 0, tw+2*pad+1, th+2*pad+1))
	baseline := pad + face.Metrics().Ascent.Ceil()
	shadow := &font.Drawer{Dst: small, Src: image.NewUniform(color.NRGBA{A: 180}), Face: face,
		Dot: fixed.Point26_6{X: fixed.I(pad + 1), Y: fixed.I(baseline + 1)}}
	shadow.DrawString(text)
	fg := st.Foreground
	ink := &font.Drawer{Dst: small, Src: image.NewUniform(color.NRGBA{R: fg.R, G: fg.G, B: fg.B, A: fg.A}), Face: face,
		Dot: fixed.Point26_6{X: fixed.I(pad), Y: fixed.I(baseline)}}
	ink.DrawString(text)

	scale := st.Pixels(st.TickFontSize*0.6) / float64(th)
	if scale < 1 {
		scale = 1
	}
	sw := int(math.Round(float64(small.Bounds().Dx()) * scale))
	sh := int(math.Round(float64(small.Bounds().Dy()) * scale))
	r := image.Rect(pt.X, pt.Y-sh, pt.X+sw, pt.Y)
	if r.Intersect(dst.Bounds()).Empty() {
		return
	}
	xdraw.NearestNeighbor.Scale(dst, r, small, small.Bounds(), xdraw.Over, nil)
}
