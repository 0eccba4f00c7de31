package packing

// Epsilon is the tolerance, in container units, used by the bounds and overlap
// tests to absorb floating-point error at shared faces.
const Epsilon = 1e-3

// Dimensions is an oriented (length, width, height) triple in the container frame.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Volume returns length * width * height.
func (d Dimensions) Volume() float64 {
	return d.Length * d.Width * d.Height
}

// Item describes one cargo unit: a named box with canonical dimensions, a
// stable identity token, and a quantity advisory. The engine places one unit
// per Item; callers expand quantities into individual units beforehand.
type Item struct {
	Name     string
	ID       string
	Length   float64
	Width    float64
	Height   float64
	Quantity int
}

// NewItem validates dimensions and quantity before any geometry is attempted.
func NewItem(name, id string, length, width, height float64, quantity int) (Item, error) {
	if length <= 0 || width <= 0 || height <= 0 {
		return Item{}, ErrInvalidDimensions
	}
	if quantity < 1 {
		return Item{}, ErrInvalidQuantity
	}
	return Item{
		Name:     name,
		ID:       id,
		Length:   length,
		Width:    width,
		Height:   height,
		Quantity: quantity,
	}, nil
}

// Volume returns the canonical volume of one unit.
func (i Item) Volume() float64 {
	return i.Length * i.Width * i.Height
}

// Dimensions returns the canonical dimensions of one unit.
func (i Item) Dimensions() Dimensions {
	return Dimensions{Length: i.Length, Width: i.Width, Height: i.Height}
}

// Orientations returns the distinct axis permutations of the item's dimensions
// in a fixed order, duplicates removed in first-seen order. The result has
// between 1 and 6 entries: exactly 1 for a cube, exactly 3 when two dimensions
// are equal. Equality is exact; the values are caller-supplied, not computed.
func (i Item) Orientations() []Dimensions {
	l, w, h := i.Length, i.Width, i.Height
	all := [6]Dimensions{
		{l, w, h},
		{l, h, w},
		{w, l, h},
		{w, h, l},
		{h, l, w},
		{h, w, l},
	}

	out := make([]Dimensions, 0, 6)
	for _, d := range all {
		seen := false
		for _, u := range out {
			if u == d {
				seen = true
				break
			}
		}
		if !seen {
			out = append(out, d)
		}
	}
	return out
}
