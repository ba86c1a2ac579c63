package figure

import (
	"math"
	"strconv"
	"strings"
	"testing"
)

func TestFormatTransistorTickBoundaries(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1, "1"},
		{999, "999"},
		{999.9, "999"},
		{1000, "1.0K"},
		{2300, "2.3K"},
		{999999, "1000.0K"},
		{1000000, "1.0M"},
		{42000000, "42.0M"},
		{1000000000, "1.0B"},
		{80000000000, "80.0B"},
	}
	for _, c := range cases {
		if got := FormatTransistorTick(c.in); got != c.want {
			t.Fatalf("FormatTransistorTick(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

func TestFormatStorageTickBoundaries(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{1000, "1.0TB"},
		{999, "999.0GB"},
		{26000, "26.0TB"},
		{2.52, "2.5GB"},
		{1, "1.0GB"},
		{0.5, "500MB"},
		{0.1, "100MB"},
		{0.001, "1MB"},
	}
	for _, c := range cases {
		if got := FormatStorageTick(c.in); got != c.want {
			t.Fatalf("FormatStorageTick(%v) = %q want %q", c.in, got, c.want)
		}
	}
}

// TestFormatTransistorTickBands checks suffix and rounded prefix over a sweep of magnitudes.
func TestFormatTransistorTickBands(t *testing.T) {
	bands := []struct {
		lo, hi, div float64
		suffix      string
	}{
		{1e3, 1e6, 1e3, "K"},
		{1e6, 1e9, 1e6, "M"},
		{1e9, 1e12, 1e9, "B"},
	}
	for _, b := range bands {
		for v := b.lo; v < b.hi; v *= 1.37 {
			got := FormatTransistorTick(v)
			if !strings.HasSuffix(got, b.suffix) {
				t.Fatalf("%v: %q lacks suffix %s", v, got, b.suffix)
			}
			prefix, err := strconv.ParseFloat(strings.TrimSuffix(got, b.suffix), 64)
			if err != nil {
				t.Fatalf("%v: %q prefix not numeric: %v", v, got, err)
			}
			if math.Abs(prefix-v/b.div) > 0.05+1e-9 {
				t.Fatalf("%v: prefix %v too far from %v", v, prefix, v/b.div)
			}
		}
	}
	for v := 0.0; v < 1000; v += 7.3 {
		got := FormatTransistorTick(v)
		if got != strconv.Itoa(int(v)) {
			t.Fatalf("%v: got %q want plain integer", v, got)
		}
	}
}

func TestFormattersHandleNonFinite(t *testing.T) {
	for _, f := range []TickFormatter{FormatTransistorTick, FormatStorageTick} {
		if got := f(math.NaN()); got != "NaN" {
			t.Fatalf("NaN formatted as %q", got)
		}
		if got := f(math.Inf(1)); got != "+Inf" {
			t.Fatalf("+Inf formatted as %q", got)
		}
	}
}
