package figure

import (
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/iafilius/MooresLaw/src/dataset"
)

// Panel is the drawing surface for one of the two stacked charts.
// Render*Panel fills it in; Compose fixes the shared x axis and rasterizes it.
type Panel struct {
	Chart chart.Chart
}

// NewPanel creates an empty panel sized to half the figure on a transparent background.
func NewPanel(st Style) *Panel {
	w, h := st.PanelSize()
	pad := int(st.Pixels(12))
	return &Panel{Chart: chart.Chart{
		Width:  w,
		Height: h,
		DPI:    st.DPI,
		TitleStyle: chart.Style{
			FontSize:  st.TitleFontSize,
			FontColor: st.Foreground,
		},
		Background: chart.Style{
			FillColor:   st.Background,
			StrokeColor: st.Background,
			Padding:     chart.Box{Top: pad, Left: pad, Right: pad * 2, Bottom: pad},
		},
		Canvas: chart.Style{
			FillColor:   st.Background,
			StrokeColor: st.Background,
		},
	}}
}

// panelSpec is what differs between the transistor and storage panels.
type panelSpec struct {
	name   string
	color  drawing.Color
	yLabel string
	xLabel string
	format TickFormatter
}

// RenderTransistorPanel draws the transistor counts as a log-scale line with markers.
func RenderTransistorPanel(t dataset.Table, p *Panel, st Style, l Labels, annotate bool) {
	renderLogPanel(t, p, st, panelSpec{
		name:   t.Name,
		color:  st.TransistorColor,
		yLabel: l.TransistorCount,
		format: FormatTransistorTick,
	}, annotate)
}

// RenderStoragePanel draws storage capacity (GB) as a log-scale line with markers.
// It is the bottom panel, so it also carries the x-axis label.
func RenderStoragePanel(t dataset.Table, p *Panel, st Style, l Labels, annotate bool) {
	renderLogPanel(t, p, st, panelSpec{
		name:   t.Name,
		color:  st.StorageColor,
		yLabel: l.StorageCapacity,
		xLabel: l.Year,
		format: FormatStorageTick,
	}, annotate)
}

func renderLogPanel(t dataset.Table, p *Panel, st Style, spec panelSpec, annotate bool) {
	min, max := t.Bounds()

	axisStyle := chart.Style{
		StrokeColor: st.Foreground,
		StrokeWidth: st.Pixels(1),
		FontColor:   st.Foreground,
		FontSize:    st.TickFontSize,
	}
	nameStyle := chart.Style{
		FontColor: st.Foreground,
		FontSize:  st.LabelFontSize,
	}
	grid := chart.Style{
		StrokeColor: st.gridColor(),
		StrokeWidth: st.Pixels(1),
	}

	// left-hand axis as in a conventional semilog plot; go-chart puts the
	// primary y axis on the right, so the series live on the secondary one
	// and the primary mirrors it but stays hidden.
	// go-chart v2 derives the secondary range from the primary axis ticks when
	// the secondary has ticks, so the primary must carry the same ticks.
	yRange := logRange(min, max)
	yTicks := logTicks(min, max, spec.format)
	p.Chart.YAxis = chart.YAxis{
		Style: chart.Style{Hidden: true},
		Range: &chart.ContinuousRange{Min: yRange.Min, Max: yRange.Max},
		Ticks: yTicks,
	}
	p.Chart.YAxisSecondary = chart.YAxis{
		Name:           spec.yLabel,
		NameStyle:      nameStyle,
		Style:          axisStyle,
		Range:          yRange,
		Ticks:          yTicks,
		GridLines:      logGridLines(min, max),
		GridMajorStyle: grid,
		GridMinorStyle: grid,
	}
	p.Chart.XAxis = chart.XAxis{
		Name:           spec.xLabel,
		NameStyle:      nameStyle,
		Style:          axisStyle,
		GridMajorStyle: grid,
		GridMinorStyle: grid,
	}

	p.Chart.Series = []chart.Series{chart.ContinuousSeries{
		Name:    spec.name,
		YAxis:   chart.YAxisSecondary,
		XValues: t.Years(),
		YValues: log10All(t.Values()),
		Style: chart.Style{
			StrokeColor: spec.color,
			StrokeWidth: st.Pixels(st.LineWidth),
			DotColor:    spec.color,
			DotWidth:    st.Pixels(st.MarkerSize) / 2,
		},
	}}
	if annotate {
		p.Chart.Series = append(p.Chart.Series, annotations(t, st, spec))
	}
}

// annotations labels every point with its device name.
func annotations(t dataset.Table, st Style, spec panelSpec) chart.AnnotationSeries {
	ys := log10All(t.Values())
	vals := make([]chart.Value2, 0, t.Len())
	for i, r := range t.Records {
		vals = append(vals, chart.Value2{XValue: float64(r.Year), YValue: ys[i], Label: r.Device})
	}
	return chart.AnnotationSeries{
		Name:  spec.name + " devices",
		YAxis: chart.YAxisSecondary,
		Style: chart.Style{
			FontSize:    st.TickFontSize / 2,
			FontColor:   st.Foreground,
			FillColor:   drawing.Color{R: 0, G: 0, B: 0, A: 160},
			StrokeColor: spec.color,
			StrokeWidth: st.Pixels(0.5),
		},
		Annotations: vals,
	}
}

// setXDomain fixes the x range and year ticks; hideLabels suppresses tick text
// on the upper panel of a shared x axis.
func (p *Panel) setXDomain(st Style, hideLabels bool) {
	p.Chart.XAxis.Range = &chart.ContinuousRange{Min: st.XMin, Max: st.XMax}
	p.Chart.XAxis.Ticks = yearTicks(st.XMin, st.XMax, st.XTickStep, hideLabels)
	p.Chart.XAxis.GridLines = yearGridLines(st.XMin, st.XMax, st.XTickStep)
}
