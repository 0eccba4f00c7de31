package packing

import "testing"

func TestMaxAdditionalOnFullContainer(t *testing.T) {
	t.Parallel()

	c := mustContainer(t, 4, 4, 4)
	if _, ok := c.Place(mustItem(t, "block", "b-1", 4, 4, 4)); !ok {
		t.Fatalf("expected the exact-fit block to be placed")
	}

	filler := mustItem(t, "filler", "f", 1, 1, 1)
	if got := MaxAdditional(c, filler); got != 0 {
		t.Fatalf("expected 0 additional units, got %d", got)
	}
	if c.Count() != 1 {
		t.Fatalf("probe on a full container must not add placements, have %d", c.Count())
	}
}

func TestMaxAdditionalFillsEmptyContainer(t *testing.T) {
	t.Parallel()

	c := mustContainer(t, 2, 2, 2)
	filler := mustItem(t, "filler", "f", 1, 1, 1)

	if got := MaxAdditional(c, filler); got != 8 {
		t.Fatalf("expected 8 additional units, got %d", got)
	}
	if !almostEqual(c.UsedVolume(), c.Volume()) {
		t.Fatalf("expected the probe to fill the container, used %f of %f", c.UsedVolume(), c.Volume())
	}
}

func TestMaxAdditionalAfterPartialLoad(t *testing.T) {
	t.Parallel()

	c := mustContainer(t, 2, 2, 2)
	if _, ok := c.Place(mustItem(t, "half", "h-1", 2, 2, 1)); !ok {
		t.Fatalf("expected the half-height slab to be placed")
	}

	filler := mustItem(t, "filler", "f", 1, 1, 1)
	if got := MaxAdditional(c, filler); got != 4 {
		t.Fatalf("expected 4 additional units above the slab, got %d", got)
	}
}

func TestMaxAdditionalStampsUnitIDs(t *testing.T) {
	t.Parallel()

	c := mustContainer(t, 2, 1, 1)
	filler := mustItem(t, "filler", "f", 1, 1, 1)

	if got := MaxAdditional(c, filler); got != 2 {
		t.Fatalf("expected 2 units, got %d", got)
	}

	placed := c.Placements()
	if placed[0].ItemID != "f-1" || placed[1].ItemID != "f-2" {
		t.Fatalf("expected sequential unit IDs, got %s and %s", placed[0].ItemID, placed[1].ItemID)
	}
}
