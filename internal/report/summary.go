// Package report turns a finished loading session into render-ready
// summaries: a per-cargo breakdown for console output, an HTML report with
// placement detail tables, and a volume chart.
package report

import (
	"sort"

	"github.com/nkarpenko/cargohold/internal/packing"
)

// CargoStats aggregates the placements of one cargo name.
type CargoStats struct {
	Name   string
	Count  int
	Volume float64
	// Share is this cargo's fraction of the used volume, in [0, 1].
	Share      float64
	Placements []packing.Placement
}

// Summary is the render-ready view of one load plan.
type Summary struct {
	ContainerVolume float64
	UsedVolume      float64
	AvailableVolume float64
	// Utilization is UsedVolume / ContainerVolume, in [0, 1].
	Utilization float64

	// Cargo is sorted by name for stable output.
	Cargo    []CargoStats
	Rejected []packing.Item

	FillerName   string
	FillerCount  int
	FillerVolume float64
}

// Build aggregates the container's final state into a Summary. The container
// must hold every accepted placement, filler units included; rejected items
// come from the packing result. fillerName and fillerCount describe the
// capacity probe outcome and may be zero-valued when no probe ran.
func Build(c *packing.Container, rejected []packing.Item, fillerName string, fillerCount int) Summary {
	s := Summary{
		ContainerVolume: c.Volume(),
		UsedVolume:      c.UsedVolume(),
		AvailableVolume: c.AvailableVolume(),
		Rejected:        rejected,
		FillerName:      fillerName,
		FillerCount:     fillerCount,
	}
	if s.ContainerVolume > 0 {
		s.Utilization = s.UsedVolume / s.ContainerVolume
	}

	byName := make(map[string]*CargoStats)
	var names []string
	for _, p := range c.Placements() {
		stats, ok := byName[p.ItemName]
		if !ok {
			stats = &CargoStats{Name: p.ItemName}
			byName[p.ItemName] = stats
			names = append(names, p.ItemName)
		}
		stats.Count++
		stats.Volume += p.Volume()
		stats.Placements = append(stats.Placements, p)
		if p.ItemName == fillerName && fillerCount > 0 {
			s.FillerVolume += p.Volume()
		}
	}

	sort.Strings(names)
	for _, name := range names {
		stats := byName[name]
		if s.UsedVolume > 0 {
			stats.Share = stats.Volume / s.UsedVolume
		}
		s.Cargo = append(s.Cargo, *stats)
	}
	return s
}
