// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package paralog implements the detection
// and resolution of in-paralogs in gene trees.
//
// The terminals of a gene tree are grouped
// by a species identifier
// (a fixed number of characters at the start of the terminal name).
// Groups with more than one member
// are candidate in-paralogs.
// If the group is monophyletic
// (in an unrooted sense)
// only the member closest to the root is kept,
// otherwise,
// all members of the group are removed.
package paralog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// A Tree is a gene tree
// that can answer the topological and distance queries
// required to resolve paralogs.
type Tree interface {
	// Leaves returns the names of the terminals of the tree.
	Leaves() []string

	// IsMonophyletic returns true
	// if the given terminals form a clade
	// when the tree is interpreted as unrooted.
	IsMonophyletic(names []string) (bool, error)

	// DistanceFromRoot returns the sum of branch lengths
	// from the root to the given terminal.
	DistanceFromRoot(name string) (float64, error)
}

// A Group is a sorted set of terminal names
// that share a species identifier.
type Group []string

// Key returns a string that can be used
// to identify the group
// (for example as a map key).
func (g Group) Key() string {
	return strings.Join(g, "\t")
}

// Class is the classification of a group of paralogs.
type Class int

// Valid classifications.
const (
	Monophyletic Class = iota
	NonMonophyletic
)

func (c Class) String() string {
	switch c {
	case Monophyletic:
		return "monophyletic"
	case NonMonophyletic:
		return "non-monophyletic"
	}
	return fmt.Sprintf("Class(%d)", int(c))
}

// ErrInvalidGroup is the error returned
// when a group contains a name
// that is not a terminal of the tree.
var ErrInvalidGroup = errors.New("invalid paralog group")

// InvalidGroupError is the error produced
// when a group member is not found in a tree.
type InvalidGroupError struct {
	Group Group
	Name  string
}

func (e *InvalidGroupError) Error() string {
	return fmt.Sprintf("group [%s]: terminal %q not in tree", strings.Join(e.Group, " "), e.Name)
}

func (e *InvalidGroupError) Unwrap() error { return ErrInvalidGroup }

// ErrDistance is the error returned
// when the distance from the root to a terminal
// can not be calculated.
var ErrDistance = errors.New("distance query failed")

// DistanceError is the error produced
// when a tree fails to calculate the distance
// from the root of a terminal.
type DistanceError struct {
	Name string
	Err  error
}

func (e *DistanceError) Error() string {
	return fmt.Sprintf("distance of terminal %q: %v", e.Name, e.Err)
}

func (e *DistanceError) Is(target error) bool { return target == ErrDistance }

func (e *DistanceError) Unwrap() error { return e.Err }

// Resolve groups the terminals of a tree,
// classifies the groups,
// and returns the terminals that must be removed,
// as well as the decision taken for each group.
func Resolve(t Tree, g Grouper) (Removal, []Decision, error) {
	groups := g.Groups(t.Leaves())
	cls, err := Classify(t, groups)
	if err != nil {
		return nil, nil, err
	}
	return Removals(t, cls)
}

func sortedCopy(s []string) []string {
	c := slices.Clone(s)
	slices.Sort(c)
	return c
}
