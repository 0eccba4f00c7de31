package packing

import "sort"

// Container is the mutable packing state for one loading session: fixed
// dimensions plus the insertion-ordered sequence of accepted placements.
// It is not safe for concurrent use; sessions that need parallelism must use
// independent containers.
type Container struct {
	length float64
	width  float64
	height float64

	placed []Placement
}

// NewContainer creates an empty container with the given dimensions.
func NewContainer(length, width, height float64) (*Container, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Container{length: length, width: width, height: height}, nil
}

// Dimensions returns the container's fixed dimensions.
func (c *Container) Dimensions() Dimensions {
	return Dimensions{Length: c.length, Width: c.width, Height: c.height}
}

// Volume returns the container's total volume.
func (c *Container) Volume() float64 {
	return c.length * c.width * c.height
}

// UsedVolume returns the sum of placed oriented volumes.
func (c *Container) UsedVolume() float64 {
	var used float64
	for _, p := range c.placed {
		used += p.Volume()
	}
	return used
}

// AvailableVolume returns the remaining unplaced volume.
func (c *Container) AvailableVolume() float64 {
	return c.Volume() - c.UsedVolume()
}

// Count returns the number of accepted placements.
func (c *Container) Count() int {
	return len(c.placed)
}

// Placements returns a defensive copy of the accepted placements in insertion order.
func (c *Container) Placements() []Placement {
	out := make([]Placement, len(c.placed))
	copy(out, c.placed)
	return out
}

// canPlace reports whether an oriented box may sit at (x, y, z): it must stay
// inside the container bounds and be separated from every accepted placement
// on at least one axis, both within Epsilon.
func (c *Container) canPlace(x, y, z float64, d Dimensions) bool {
	if x+d.Length > c.length+Epsilon {
		return false
	}
	if y+d.Width > c.width+Epsilon {
		return false
	}
	if z+d.Height > c.height+Epsilon {
		return false
	}

	for i := range c.placed {
		if intersects(x, y, z, d, c.placed[i]) {
			return false
		}
	}
	return true
}

// intersects reports whether the candidate box overlaps a placement. Boxes are
// treated as separated when one near face clears the other's far face by
// Epsilon on any axis.
func intersects(x, y, z float64, d Dimensions, p Placement) bool {
	return !(x+d.Length <= p.X+Epsilon ||
		p.X+p.Length <= x+Epsilon ||
		y+d.Width <= p.Y+Epsilon ||
		p.Y+p.Width <= y+Epsilon ||
		z+d.Height <= p.Z+Epsilon ||
		p.Z+p.Height <= z+Epsilon)
}

type point struct {
	x, y, z float64
}

// findPlacement searches for an origin where the oriented box fits. Candidates
// are the container origin plus, for every accepted placement, the three
// points immediately to its right, in front of it, and on top of it. They are
// tried in ascending (z, x, y) order, filling low and near the origin before
// extending into free space, and the first feasible candidate wins. Duplicates
// are harmless and are not pruned.
func (c *Container) findPlacement(d Dimensions) (point, bool) {
	candidates := make([]point, 0, 3*len(c.placed)+1)
	candidates = append(candidates, point{})
	for _, p := range c.placed {
		candidates = append(candidates,
			point{p.X + p.Length, p.Y, p.Z},
			point{p.X, p.Y + p.Width, p.Z},
			point{p.X, p.Y, p.Z + p.Height},
		)
	}

	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.z != b.z {
			return a.z < b.z
		}
		if a.x != b.x {
			return a.x < b.x
		}
		return a.y < b.y
	})

	for _, cand := range candidates {
		if c.canPlace(cand.x, cand.y, cand.z, d) {
			return cand, true
		}
	}
	return point{}, false
}

// Place tries the item's orientations in their fixed order and commits the
// first orientation/position pair that fits. The commit is all-or-nothing:
// either exactly one placement is appended, or the container is unchanged and
// false is returned.
func (c *Container) Place(item Item) (Placement, bool) {
	for _, d := range item.Orientations() {
		at, ok := c.findPlacement(d)
		if !ok {
			continue
		}
		p := Placement{
			X:        at.x,
			Y:        at.y,
			Z:        at.z,
			Length:   d.Length,
			Width:    d.Width,
			Height:   d.Height,
			ItemName: item.Name,
			ItemID:   item.ID,
		}
		c.placed = append(c.placed, p)
		return p, true
	}
	return Placement{}, false
}
