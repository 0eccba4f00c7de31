package packing

import "sort"

// Result summarises one packing run.
type Result struct {
	// Placed holds the accepted placements in the order they were committed.
	Placed []Placement
	// Rejected holds the items that fit in no orientation at no candidate
	// position, in their sorted processing order. Rejection is the normal
	// outcome for a full container, not an error.
	Rejected []Item

	ContainerVolume float64
	UsedVolume      float64
	AvailableVolume float64
	// Utilization is UsedVolume / ContainerVolume, in [0, 1].
	Utilization float64
}

// Packer arranges a batch of item units inside a container.
type Packer interface {
	Pack(c *Container, items []Item) Result
}

type greedyPacker struct{}

// New creates a Packer using the largest-volume-first heuristic: items are
// attempted in descending canonical volume, ties kept in input order. A
// rejected item is never retried within the same run.
func New() Packer {
	return &greedyPacker{}
}

func (g *greedyPacker) Pack(c *Container, items []Item) Result {
	units := make([]Item, len(items))
	copy(units, items)
	sort.SliceStable(units, func(i, j int) bool {
		return units[i].Volume() > units[j].Volume()
	})

	result := Result{ContainerVolume: c.Volume()}
	for _, item := range units {
		if p, ok := c.Place(item); ok {
			result.Placed = append(result.Placed, p)
		} else {
			result.Rejected = append(result.Rejected, item)
		}
	}

	result.UsedVolume = c.UsedVolume()
	result.AvailableVolume = c.AvailableVolume()
	if result.ContainerVolume > 0 {
		result.Utilization = result.UsedVolume / result.ContainerVolume
	}
	return result
}
