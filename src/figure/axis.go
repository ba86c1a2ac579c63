package figure

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
)

// logMargin pads the log range by this share of the data span on each side,
// matching matplotlib's default autoscale margins.
const logMargin = 0.05

// logBounds returns the plotted range in log10 units: the data span padded by
// logMargin, or half a decade either side of a single value.
func logBounds(min, max float64) (float64, float64) {
	if !(min > 0) || !(max > 0) || math.IsInf(max, 0) {
		return 0, 1
	}
	if max < min {
		min, max = max, min
	}
	lo, hi := math.Log10(min), math.Log10(max)
	span := hi - lo
	if span < 1e-9 {
		return lo - 0.5, hi + 0.5
	}
	return lo - span*logMargin, hi + span*logMargin
}

// logDecades returns the decade exponents [lo, hi] inside the plotted range.
// hi < lo when the range lies between two decades.
func logDecades(min, max float64) (int, int) {
	bLo, bHi := logBounds(min, max)
	return int(math.Ceil(bLo - 1e-9)), int(math.Floor(bHi + 1e-9))
}

// logRange is the continuous range, in log10 units, covering the padded data.
func logRange(min, max float64) *chart.ContinuousRange {
	lo, hi := logBounds(min, max)
	return &chart.ContinuousRange{Min: lo, Max: hi}
}

// logTicks places a major tick on every decade of the plotted range, labeled with
// format(10^k), plus unlabeled ticks at the range ends. Tick values are in log10
// units to match the plotted series.
// go-chart takes the axis range from the outermost ticks, so the end ticks are
// what keeps the range padded. When no decade falls inside, the ends carry labels.
func logTicks(min, max float64, format TickFormatter) []chart.Tick {
	bLo, bHi := logBounds(min, max)
	lo, hi := logDecades(min, max)
	label := func(v float64) string {
		if hi < lo {
			return format(math.Pow(10, v))
		}
		return ""
	}
	ticks := make([]chart.Tick, 0, hi-lo+3)
	if float64(lo)-bLo > 1e-9 || hi < lo {
		ticks = append(ticks, chart.Tick{Value: bLo, Label: label(bLo)})
	}
	for k := lo; k <= hi; k++ {
		ticks = append(ticks, chart.Tick{Value: float64(k), Label: format(math.Pow10(k))})
	}
	if bHi-float64(hi) > 1e-9 || hi < lo {
		ticks = append(ticks, chart.Tick{Value: bHi, Label: label(bHi)})
	}
	return ticks
}

// logGridLines returns major lines at each decade and minor lines at 2..9 x 10^k,
// all inside the plotted range.
func logGridLines(min, max float64) []chart.GridLine {
	bLo, bHi := logBounds(min, max)
	lines := []chart.GridLine{}
	for k := int(math.Floor(bLo)); float64(k) <= bHi; k++ {
		if v := float64(k); v >= bLo-1e-9 {
			lines = append(lines, chart.GridLine{Value: v})
		}
		for m := 2; m <= 9; m++ {
			v := float64(k) + math.Log10(float64(m))
			if v > bLo && v < bHi {
				lines = append(lines, chart.GridLine{IsMinor: true, Value: v})
			}
		}
	}
	return lines
}

// log10All maps positive values into log10 space; non-positive values become NaN
// and are skipped by the renderer.
func log10All(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if v > 0 {
			out[i] = math.Log10(v)
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// yearTicks generates ticks at every multiple of step within [min,max], plus
// unlabeled ticks at unaligned domain ends.
// With hideLabels the ticks keep their grid positions but carry no text,
// which is how the upper panel shares the lower panel's x axis.
func yearTicks(min, max, step float64, hideLabels bool) []chart.Tick {
	if step <= 0 || max <= min {
		return nil
	}
	ticks := []chart.Tick{{Value: min}}
	for v := math.Ceil(min/step) * step; v <= max+1e-9; v += step {
		label := ""
		if !hideLabels {
			label = fmt.Sprintf("%.0f", v)
		}
		if v <= min+1e-9 {
			ticks = ticks[:0]
		}
		ticks = append(ticks, chart.Tick{Value: v, Label: label})
	}
	// go-chart derives the axis range from explicit ticks, so both domain ends
	// need a tick even when they are not multiples of step.
	if last := ticks[len(ticks)-1].Value; last < max-1e-9 {
		ticks = append(ticks, chart.Tick{Value: max})
	}
	return ticks
}

// yearGridLines returns a major grid line at each year tick and a minor one halfway between.
func yearGridLines(min, max, step float64) []chart.GridLine {
	lines := []chart.GridLine{}
	for _, tk := range yearTicks(min, max, step, true) {
		if tk.Value >= max {
			break
		}
		lines = append(lines, chart.GridLine{Value: tk.Value})
		if half := tk.Value + step/2; half < max {
			lines = append(lines, chart.GridLine{IsMinor: true, Value: half})
		}
	}
	return lines
}
