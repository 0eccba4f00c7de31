package packing

// Placement fixes one item unit at an origin and orientation inside the
// container frame. It is immutable once committed: the container never moves
// or removes an accepted placement.
type Placement struct {
	X float64
	Y float64
	Z float64

	// Oriented dimensions, already permuted for the chosen orientation.
	Length float64
	Width  float64
	Height float64

	ItemName string
	ItemID   string
}

// Volume returns the oriented volume. Orientation only permutes axes, so this
// equals the originating item's canonical volume.
func (p Placement) Volume() float64 {
	return p.Length * p.Width * p.Height
}
