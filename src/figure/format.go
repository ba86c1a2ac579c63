package figure

import (
	"fmt"
	"math"
	"strconv"
)

// TickFormatter maps an axis value to its label.
type TickFormatter func(v float64) string

// FormatTransistorTick labels a transistor count with a K/M/B suffix.
// Each band includes its lower bound, so 1000 is "1.0K" and 999 is "999".
func FormatTransistorTick(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprint(v)
	case v >= 1e9:
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	}
	return strconv.FormatInt(int64(v), 10)
}

// FormatStorageTick labels a capacity given in GB as TB, GB or MB.
func FormatStorageTick(v float64) string {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return fmt.Sprint(v)
	case v >= 1000:
		return fmt.Sprintf("%.1fTB", v/1000)
	case v >= 1:
		return fmt.Sprintf("%.1fGB", v)
	}
	return fmt.Sprintf("%.0fMB", v*1000)
}
