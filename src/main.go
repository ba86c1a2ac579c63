// Moore's Law figure generator.
//
// Renders historical CPU transistor counts (upper panel) and storage capacity
// (lower panel) on log-scale axes over a shared 1970-2025 year axis, and writes a
// transparent PNG tagged at 300 DPI.
//
// Running without arguments draws the built-in data and writes moores_law.png into
// the directory holding this source file. `mooreslaw table` prints the datasets.
//
// Design notes:
//   - Style, labels and data are values handed to figure.Generator; nothing is process-global.
//   - Output write failures are not retried: the error is logged and the exit status is 1.
package main

func main() {
	Execute()
}
