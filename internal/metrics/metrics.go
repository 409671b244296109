// Package metrics records what a generation run wrote and prints the
// end-of-run summary.
package metrics

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
)

// IconMetric describes one emitted file.
type IconMetric struct {
	Name  string
	Path  string
	Bytes int
}

// Run accumulates IconMetrics in emission order.
type Run struct {
	Icons      []IconMetric
	TotalBytes int
}

// Record appends an IconMetric and updates TotalBytes.
func (r *Run) Record(name, path string, bytes int) {
	r.Icons = append(r.Icons, IconMetric{Name: name, Path: path, Bytes: bytes})
	r.TotalBytes += bytes
}

// Largest returns the biggest emitted icon. ok is false for an empty run.
func (r *Run) Largest() (m IconMetric, ok bool) {
	for i, ic := range r.Icons {
		if i == 0 || ic.Bytes > m.Bytes {
			m = ic
		}
	}
	return m, len(r.Icons) > 0
}

// PrintSummary writes a box-draw table summarizing r to w.
func PrintSummary(w io.Writer, r *Run) {
	const line = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"
	fmt.Fprintf(w, "\n%s\n", line)
	fmt.Fprintln(w, "ICON SUMMARY")
	fmt.Fprintf(w, "%s\n", line)
	fmt.Fprintf(w, "  %-22s %d\n", "Icons Written:", len(r.Icons))
	fmt.Fprintf(w, "  %-22s %s\n", "Total Size:", humanize.Bytes(uint64(r.TotalBytes)))
	if largest, ok := r.Largest(); ok {
		fmt.Fprintf(w, "  %-22s %s (%s)\n", "Largest:", largest.Name, humanize.Bytes(uint64(largest.Bytes)))
	}
	fmt.Fprintf(w, "%s\n\n", line)
}
