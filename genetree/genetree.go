// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package genetree implements a gene tree
// that answers the topological and distance queries
// used to resolve paralogs.
//
// Trees can be read from newick files,
// or from PhyGeo tab-delimited tree files.
package genetree

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownTerm is the error returned
// when a terminal name is not found in the tree.
var ErrUnknownTerm = errors.New("unknown terminal")

// A Tree is a rooted gene tree with branch lengths.
// The tree can be interpreted as unrooted
// when testing monophyly.
type Tree struct {
	name  string
	nodes []node
	terms map[string]int
}

type node struct {
	parent   int
	children []int
	length   float64
	taxon    string
}

// builder accumulates nodes
// before building a tree.
type builder struct {
	nodes []node
}

// add adds a node to the builder
// and returns its ID.
// The parent must be already added,
// or -1 for the root.
func (b *builder) add(parent int, length float64, taxon string) int {
	id := len(b.nodes)
	b.nodes = append(b.nodes, node{
		parent: parent,
		length: length,
		taxon:  taxon,
	})
	if parent >= 0 {
		b.nodes[parent].children = append(b.nodes[parent].children, id)
	}
	return id
}

// tree returns a tree from the builder.
// The node IDs must be assigned in pre-order
// (i.e. parents before children).
func (b *builder) tree(name string) (*Tree, error) {
	if len(b.nodes) == 0 {
		return nil, fmt.Errorf("tree %q: empty tree", name)
	}
	t := &Tree{
		name:  name,
		nodes: b.nodes,
		terms: make(map[string]int),
	}
	for id, n := range t.nodes {
		if len(n.children) > 0 {
			continue
		}
		if n.taxon == "" {
			return nil, fmt.Errorf("tree %q: terminal node %d without name", name, id)
		}
		if _, dup := t.terms[n.taxon]; dup {
			return nil, fmt.Errorf("tree %q: repeated terminal %q", name, n.taxon)
		}
		t.terms[n.taxon] = id
	}
	return t, nil
}

// Name returns the name of the tree.
func (t *Tree) Name() string {
	return t.name
}

// Leaves returns the names of the terminals,
// in pre-order.
func (t *Tree) Leaves() []string {
	leaves := make([]string, 0, len(t.terms))
	for _, n := range t.nodes {
		if len(n.children) > 0 {
			continue
		}
		leaves = append(leaves, n.taxon)
	}
	return leaves
}

// Len returns the number of terminals in the tree.
func (t *Tree) Len() int {
	return len(t.terms)
}

// DistanceFromRoot returns the sum of the branch lengths
// from the root to the given terminal.
func (t *Tree) DistanceFromRoot(name string) (float64, error) {
	id, ok := t.terms[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTerm, name)
	}

	var d float64
	for ; t.nodes[id].parent >= 0; id = t.nodes[id].parent {
		l := t.nodes[id].length
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return 0, fmt.Errorf("invalid branch length of node %d", id)
		}
		d += l
	}
	return d, nil
}

// IsMonophyletic returns true if the given terminals
// form a clade,
// when the tree is interpreted as unrooted.
//
// In an unrooted tree a set of terminals is monophyletic
// if there is a branch
// that separates the set
// from the rest of the terminals.
func (t *Tree) IsMonophyletic(names []string) (bool, error) {
	set := make(map[int]bool, len(names))
	for _, n := range names {
		id, ok := t.terms[n]
		if !ok {
			return false, fmt.Errorf("%w: %q", ErrUnknownTerm, n)
		}
		set[id] = true
	}

	size := len(set)
	total := len(t.terms)
	if size <= 1 || size == total {
		return true, nil
	}

	// As nodes are stored in pre-order,
	// a reverse traversal visits the children
	// before their parents.
	terms := make([]int, len(t.nodes))
	in := make([]int, len(t.nodes))
	for id := len(t.nodes) - 1; id >= 0; id-- {
		n := t.nodes[id]
		if len(n.children) == 0 {
			terms[id] = 1
			if set[id] {
				in[id] = 1
			}
		}
		if n.parent < 0 {
			continue
		}

		// the set is at one side of the branch
		// that connects the node with its parent
		if in[id] == size && terms[id] == size {
			return true, nil
		}
		if in[id] == 0 && terms[id] == total-size {
			return true, nil
		}
		terms[n.parent] += terms[id]
		in[n.parent] += in[id]
	}
	return false, nil
}
