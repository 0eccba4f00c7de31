package storage

import (
	"errors"
	"sync"
	"time"

	"github.com/nkarpenko/cargohold/internal/packing"
	"github.com/nkarpenko/cargohold/internal/report"
)

var (
	// ErrInvalidContainerSpec indicates the provided container dimensions violate validation rules.
	ErrInvalidContainerSpec = errors.New("container dimensions must be positive")
	// ErrNoPlan indicates no load plan has been computed yet.
	ErrNoPlan = errors.New("no load plan available")
)

// 40ft high-cube trailer interior, metres.
var defaultContainerSpec = ContainerSpec{Length: 11.9, Width: 2.34, Height: 2.67}

// ContainerSpec holds the dimensions of the active container.
type ContainerSpec struct {
	Length float64
	Width  float64
	Height float64
}

// Plan is the most recent loading session's outcome.
type Plan struct {
	Spec      ContainerSpec
	Summary   report.Summary
	CreatedAt time.Time
}

// Storage provides access to the active container spec and the latest plan.
type Storage interface {
	GetContainerSpec() (ContainerSpec, error)
	SetContainerSpec(spec ContainerSpec) error
	GetPlan() (Plan, error)
	SetPlan(plan Plan) error
}

// MemoryStorage keeps the container spec and latest plan in-memory and guards
// access with an RWMutex.
type MemoryStorage struct {
	mu   sync.RWMutex
	spec ContainerSpec
	plan *Plan
}

// NewMemoryStorage initialises storage with the default container spec and no plan.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{spec: defaultContainerSpec}
}

// DefaultContainerSpec returns the default container spec.
func DefaultContainerSpec() ContainerSpec {
	return defaultContainerSpec
}

// GetContainerSpec returns the currently configured container spec.
func (s *MemoryStorage) GetContainerSpec() (ContainerSpec, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.spec, nil
}

// SetContainerSpec validates and stores the provided container spec.
func (s *MemoryStorage) SetContainerSpec(spec ContainerSpec) error {
	if spec.Length <= 0 || spec.Width <= 0 || spec.Height <= 0 {
		return ErrInvalidContainerSpec
	}

	s.mu.Lock()
	s.spec = spec
	s.mu.Unlock()

	return nil
}

// GetPlan returns a defensive copy of the latest plan, or ErrNoPlan when no
// packing run has completed yet.
func (s *MemoryStorage) GetPlan() (Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.plan == nil {
		return Plan{}, ErrNoPlan
	}
	return clonePlan(*s.plan), nil
}

// SetPlan stores a defensive copy of the plan as the latest.
func (s *MemoryStorage) SetPlan(plan Plan) error {
	cloned := clonePlan(plan)

	s.mu.Lock()
	s.plan = &cloned
	s.mu.Unlock()

	return nil
}

func clonePlan(p Plan) Plan {
	out := p
	out.Summary.Cargo = make([]report.CargoStats, len(p.Summary.Cargo))
	for i, c := range p.Summary.Cargo {
		cc := c
		cc.Placements = make([]packing.Placement, len(c.Placements))
		copy(cc.Placements, c.Placements)
		out.Summary.Cargo[i] = cc
	}
	if p.Summary.Rejected != nil {
		out.Summary.Rejected = make([]packing.Item, len(p.Summary.Rejected))
		copy(out.Summary.Rejected, p.Summary.Rejected)
	}
	return out
}
