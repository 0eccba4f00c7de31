// Package manifest describes loading jobs: the container, the cargo list with
// per-type quantities, and an optional filler cargo probed after the main
// load. Manifests are read from YAML files or XLSX workbooks and expand into
// the individually placeable units the packing engine consumes.
package manifest

import (
	"fmt"
	"math"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/nkarpenko/cargohold/internal/packing"
)

// Cargo is one manifest line: a cargo type with uniform unit dimensions and a count.
type Cargo struct {
	Name     string  `yaml:"name"`
	Length   float64 `yaml:"length"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Quantity int     `yaml:"quantity"`
}

// UnitVolume returns the volume of a single unit.
func (c Cargo) UnitVolume() float64 {
	return c.Length * c.Width * c.Height
}

// TotalVolume returns the combined volume of all units.
func (c Cargo) TotalVolume() float64 {
	return c.UnitVolume() * float64(c.Quantity)
}

// ContainerSpec holds the container dimensions declared by a manifest.
type ContainerSpec struct {
	Length float64 `yaml:"length"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Manifest describes a full loading job.
type Manifest struct {
	Container ContainerSpec `yaml:"container"`
	Cargo     []Cargo       `yaml:"cargo"`
	Filler    *Cargo        `yaml:"filler,omitempty"`
}

// Load reads and validates a YAML manifest.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Validate checks the manifest against the engine's construction rules before
// any placement is attempted.
func (m Manifest) Validate() error {
	if m.Container.Length <= 0 || m.Container.Width <= 0 || m.Container.Height <= 0 {
		return fmt.Errorf("container: %w", packing.ErrInvalidDimensions)
	}
	if len(m.Cargo) == 0 {
		return fmt.Errorf("manifest declares no cargo")
	}
	for i, c := range m.Cargo {
		if err := validateCargo(c); err != nil {
			return fmt.Errorf("cargo %d (%q): %w", i, c.Name, err)
		}
	}
	if m.Filler != nil {
		if m.Filler.Length <= 0 || m.Filler.Width <= 0 || m.Filler.Height <= 0 {
			return fmt.Errorf("filler (%q): %w", m.Filler.Name, packing.ErrInvalidDimensions)
		}
	}
	return nil
}

func validateCargo(c Cargo) error {
	if c.Length <= 0 || c.Width <= 0 || c.Height <= 0 {
		return packing.ErrInvalidDimensions
	}
	if c.Quantity < 1 {
		return packing.ErrInvalidQuantity
	}
	return nil
}

// Expand converts cargo lines into individually placeable units, one item per
// unit of quantity, each with a fresh identity token.
func Expand(cargo []Cargo) ([]packing.Item, error) {
	var units []packing.Item
	for _, c := range cargo {
		if err := validateCargo(c); err != nil {
			return nil, fmt.Errorf("cargo %q: %w", c.Name, err)
		}
		for n := 0; n < c.Quantity; n++ {
			item, err := packing.NewItem(c.Name, uuid.NewString(), c.Length, c.Width, c.Height, 1)
			if err != nil {
				return nil, fmt.Errorf("cargo %q: %w", c.Name, err)
			}
			units = append(units, item)
		}
	}
	return units, nil
}

// EstimateBulk derives per-unit dimensions for cargo known only by total
// volume, unit length, and count, assuming a square cross-section. This covers
// manifests that state "N rolls, total V cubic metres, each L long" without
// per-unit width and height.
func EstimateBulk(name string, totalVolume, unitLength float64, count int) (Cargo, error) {
	if totalVolume <= 0 || unitLength <= 0 {
		return Cargo{}, packing.ErrInvalidDimensions
	}
	if count < 1 {
		return Cargo{}, packing.ErrInvalidQuantity
	}

	unitVolume := totalVolume / float64(count)
	side := math.Sqrt(unitVolume / unitLength)
	return Cargo{
		Name:     name,
		Length:   unitLength,
		Width:    side,
		Height:   side,
		Quantity: count,
	}, nil
}
