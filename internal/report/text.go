package report

import (
	"fmt"
	"strings"
)

// Text renders the console summary of a load plan.
func (s Summary) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "container volume:  %.2f m3\n", s.ContainerVolume)
	fmt.Fprintf(&b, "used volume:       %.2f m3\n", s.UsedVolume)
	fmt.Fprintf(&b, "available volume:  %.2f m3\n", s.AvailableVolume)
	fmt.Fprintf(&b, "utilization:       %.1f%%\n", s.Utilization*100)

	if len(s.Cargo) > 0 {
		b.WriteString("\nloaded cargo:\n")
		for _, c := range s.Cargo {
			fmt.Fprintf(&b, "  %-16s %4d unit(s)  %8.2f m3  %5.1f%%\n", c.Name, c.Count, c.Volume, c.Share*100)
		}
	}

	if len(s.Rejected) > 0 {
		fmt.Fprintf(&b, "\nrejected (%d unit(s) did not fit):\n", len(s.Rejected))
		for _, item := range s.Rejected {
			fmt.Fprintf(&b, "  %s (%s): %.2f x %.2f x %.2f\n", item.Name, item.ID, item.Length, item.Width, item.Height)
		}
	}

	if s.FillerName != "" {
		fmt.Fprintf(&b, "\nfiller %s: %d additional unit(s) fit (%.2f m3)\n", s.FillerName, s.FillerCount, s.FillerVolume)
	}

	return b.String()
}
