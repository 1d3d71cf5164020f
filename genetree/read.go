// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genetree

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	"github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/timetree"
)

// Format is the format of a tree file.
type Format string

// Valid tree file formats.
const (
	// Newick (parenthetical) trees,
	// with branch lengths.
	Newick Format = "newick"

	// PhyGeo tab-delimited time-calibrated trees.
	TSV Format = "tsv"
)

// ParseFormat returns a tree file format
// from its name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Newick, TSV:
		return f, nil
	case "nwk", "tre", "tree":
		return Newick, nil
	case "tab":
		return TSV, nil
	}
	return "", fmt.Errorf("unknown tree format %q", s)
}

// MillionYears is the number of years
// used as the branch length unit
// of time-calibrated trees.
const MillionYears = 1_000_000

// DefaultLength is the length assigned to branches
// without a defined length in a newick tree.
const DefaultLength = 1.0

// ReadFile reads a tree from a file
// with the given format.
// The name of the tree will be the base name of the file.
func ReadFile(name string, format Format) (*Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var t *Tree
	switch format {
	case Newick:
		t, err = ReadNewick(f, filepath.Base(name))
	case TSV:
		t, err = ReadTSV(f)
	default:
		return nil, fmt.Errorf("on file %q: unknown tree format %q", name, format)
	}
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return t, nil
}

// ReadNewick reads a single tree in newick format.
func ReadNewick(r io.Reader, name string) (*Tree, error) {
	nt, err := newick.NewParser(r).Parse()
	if err != nil {
		return nil, fmt.Errorf("while parsing newick tree: %v", err)
	}

	var b builder
	ids := make(map[*tree.Node]int)
	nt.PreOrder(func(cur, prev *tree.Node, e *tree.Edge) bool {
		parent := -1
		length := 0.0
		if prev != nil {
			parent = ids[prev]
			length = DefaultLength
			if l := e.Length(); l != tree.NIL_LENGTH {
				length = l
			}
		}

		var taxon string
		if cur.Tip() && prev != nil {
			taxon = cur.Name()
		} else if len(cur.Neigh()) == 0 {
			// single node tree
			taxon = cur.Name()
		}
		ids[cur] = b.add(parent, length, taxon)
		return true
	})

	return b.tree(name)
}

// ReadTSV reads a tree from a PhyGeo tab-delimited tree file.
// Only the first tree of the file
// (in alphabetical order)
// will be read.
//
// Branch lengths are the difference of node ages,
// in million years.
func ReadTSV(r io.Reader) (*Tree, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, err
	}
	ls := c.Names()
	if len(ls) == 0 {
		return nil, fmt.Errorf("no trees defined")
	}
	return FromTimeTree(c.Tree(ls[0]))
}

// FromTimeTree returns a gene tree
// from a time-calibrated tree.
func FromTimeTree(tt *timetree.Tree) (*Tree, error) {
	var b builder
	var visit func(id, parent int)
	visit = func(id, parent int) {
		length := 0.0
		if parent >= 0 {
			length = float64(tt.Age(tt.Parent(id))-tt.Age(id)) / MillionYears
		}
		var taxon string
		if tt.IsTerm(id) {
			taxon = tt.Taxon(id)
		}
		nID := b.add(parent, length, taxon)
		for _, c := range tt.Children(id) {
			visit(c, nID)
		}
	}
	visit(tt.Root(), -1)

	return b.tree(tt.Name())
}
