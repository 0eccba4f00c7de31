package packing

import "strconv"

// MaxAdditional repeatedly places fresh units of the filler item into the
// container until it refuses one, and returns the number of successes. The
// accepted filler units stay in the container. Each unit consumes at least the
// filler's positive volume, so the loop is bounded by the container volume.
func MaxAdditional(c *Container, filler Item) int {
	count := 0
	for {
		unit := filler
		if filler.ID != "" {
			unit.ID = filler.ID + "-" + strconv.Itoa(count+1)
		}
		if _, ok := c.Place(unit); !ok {
			return count
		}
		count++
	}
}
