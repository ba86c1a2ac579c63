package figure

import (
	"bytes"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
)

// Compose stacks two panels (top over bottom, one column) into one figure sharing
// the x domain [st.XMin, st.XMax], then crops it to the drawn content plus st.PadIn.
// caption, when not empty, is stamped under the lower panel.
func Compose(top, bottom *Panel, st Style, caption string) (*image.NRGBA, error) {
	if top == nil || bottom == nil {
		return nil, errors.New("compose: both panels are required")
	}
	top.setXDomain(st, true)
	bottom.setXDomain(st, false)
	if err := alignCanvases(top, bottom); err != nil {
		return nil, err
	}

	topImg, err := rasterize(top)
	if err != nil {
		return nil, errors.Wrap(err, "render upper panel")
	}
	bottomImg, err := rasterize(bottom)
	if err != nil {
		return nil, errors.Wrap(err, "render lower panel")
	}

	fw, fh := st.FigureSize()
	capH := 0
	if caption != "" {
		capH = int(st.Pixels(st.TickFontSize))
	}
	fig := image.NewNRGBA(image.Rect(0, 0, fw, fh+capH))
	tb := topImg.Bounds()
	draw.Draw(fig, image.Rect(0, 0, tb.Dx(), tb.Dy()), topImg, tb.Min, draw.Over)
	bb := bottomImg.Bounds()
	draw.Draw(fig, image.Rect(0, tb.Dy(), bb.Dx(), tb.Dy()+bb.Dy()), bottomImg, bb.Min, draw.Over)

	if caption != "" {
		drawCaption(fig, image.Pt(int(st.Pixels(12)), fh+capH), caption, st)
	}
	return tightCrop(fig, int(math.Round(st.PadIn*st.DPI))), nil
}

// alignCanvases grows the background padding of each panel so all plot areas share
// the same edges, the way stacked subplots with a shared x axis line up.
// go-chart sizes each canvas from its own axis labels, which differ per panel.
func alignCanvases(panels ...*Panel) error {
	boxes := make([]chart.Box, len(panels))
	for i, p := range panels {
		b, err := measureCanvas(p)
		if err != nil {
			return errors.Wrapf(err, "measure panel %d", i+1)
		}
		boxes[i] = b
	}
	want := boxes[0]
	for _, b := range boxes[1:] {
		want.Left = max(want.Left, b.Left)
		want.Top = max(want.Top, b.Top)
		want.Right = min(want.Right, b.Right)
		want.Bottom = min(want.Bottom, b.Bottom)
	}
	for i, p := range panels {
		pad := p.Chart.Background.Padding
		pad.Left += want.Left - boxes[i].Left
		pad.Top += want.Top - boxes[i].Top
		pad.Right += boxes[i].Right - want.Right
		pad.Bottom += boxes[i].Bottom - want.Bottom
		p.Chart.Background.Padding = pad
	}
	return nil
}

// measureCanvas renders p once and reports the plot area go-chart laid out.
func measureCanvas(p *Panel) (chart.Box, error) {
	var canvas chart.Box
	saved := p.Chart.Elements
	defer func() { p.Chart.Elements = saved }()
	p.Chart.Elements = append(saved[:len(saved):len(saved)], func(_ chart.Renderer, box chart.Box, _ chart.Style) {
		canvas = box
	})
	if err := p.Chart.Render(chart.PNG, io.Discard); err != nil {
		return chart.Box{}, err
	}
	return canvas, nil
}

// rasterize renders a panel through go-chart's PNG renderer.
func rasterize(p *Panel) (image.Image, error) {
	var buf bytes.Buffer
	if err := p.Chart.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decode rendered panel")
	}
	return img, nil
}

// tightCrop returns the sub-image holding every non-transparent pixel, grown by pad
// on each side and clamped to the image. A fully transparent image is returned as is.
func tightCrop(img *image.NRGBA, pad int) *image.NRGBA {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride:]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}
	}
	if maxX < minX {
		return img
	}
	r := image.Rect(minX-pad, minY-pad, maxX+1+pad, maxY+1+pad).Intersect(b)
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out
}
