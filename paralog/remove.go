// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paralog

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Removal is a set of terminal names
// marked for removal.
type Removal map[string]bool

// Has returns true if the name is marked for removal.
func (r Removal) Has(name string) bool {
	return r[name]
}

// Len returns the number of names marked for removal.
func (r Removal) Len() int {
	return len(r)
}

// Names returns the sorted list of names
// marked for removal.
func (r Removal) Names() []string {
	names := make([]string, 0, len(r))
	for n := range r {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// A Decision is the resolution taken
// for a group of paralogs.
type Decision struct {
	Group Group
	Class Class

	// Keeper is the retained terminal
	// of a monophyletic group.
	// It is empty for non-monophyletic groups.
	Keeper string

	// Distances from the root of each group member,
	// in the group order.
	// Only defined for monophyletic groups.
	Distances []float64

	// Removed terminals.
	Removed []string
}

// Removals returns the set of terminals
// that must be removed from the tree.
//
// For a monophyletic group,
// the member with the smallest distance from the root is kept
// (on ties, the first one in the group),
// and the other members are removed.
// For a non-monophyletic group,
// all members are removed.
//
// Monophyletic groups are resolved first,
// so the decisions are returned
// with the monophyletic groups first.
func Removals(t Tree, cls []Classified) (Removal, []Decision, error) {
	rm := make(Removal)
	decisions := make([]Decision, 0, len(cls))

	for _, c := range cls {
		if c.Class != Monophyletic {
			continue
		}
		d, err := keepClosest(t, c.Group)
		if err != nil {
			return nil, nil, err
		}
		for _, n := range d.Removed {
			rm[n] = true
		}
		decisions = append(decisions, d)
	}

	for _, c := range cls {
		if c.Class == Monophyletic {
			continue
		}
		d := Decision{
			Group:   c.Group,
			Class:   c.Class,
			Removed: slices.Clone(c.Group),
		}
		for _, n := range d.Removed {
			rm[n] = true
		}
		decisions = append(decisions, d)
	}

	return rm, decisions, nil
}

func keepClosest(t Tree, g Group) (Decision, error) {
	d := Decision{
		Group:     g,
		Class:     Monophyletic,
		Distances: make([]float64, len(g)),
	}
	if len(g) == 0 {
		return d, nil
	}

	for i, n := range g {
		dist, err := t.DistanceFromRoot(n)
		if err != nil {
			return Decision{}, &DistanceError{Name: n, Err: err}
		}
		d.Distances[i] = dist
	}

	// MinIdx returns the first index
	// in case of ties.
	k := floats.MinIdx(d.Distances)
	d.Keeper = g[k]
	for i, n := range g {
		if i == k {
			continue
		}
		d.Removed = append(d.Removed, n)
	}
	return d, nil
}
