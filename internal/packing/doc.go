// Package packing implements a deterministic first-fit-decreasing heuristic for
// loading rectangular items into a single rectangular container. Items may be
// rotated into any of their axis permutations; placements are axis-aligned and
// never overlap. The search is greedy and non-backtracking: once a unit is
// placed it is never moved, and a rejected unit is never retried, so the result
// is an approximation rather than an optimal loading.
package packing
