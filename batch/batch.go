// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package batch implements the filtering of paralogs
// over a set of gene families.
//
// Each gene family is defined by a pair of files:
// a gene tree,
// and a sequence file with the sequences of the tree terminals.
package batch

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DefaultSuffix is the suffix added
// to the filtered sequence files.
const DefaultSuffix = ".new"

// ErrMismatch is the error returned
// when the list of trees
// and the list of sequence files
// have different lengths.
var ErrMismatch = errors.New("tree and sequence lists differ in length")

// A Pair is a gene family:
// a tree file and its sequence file.
type Pair struct {
	Tree string
	Seqs string
}

// ReadList reads a list of file names,
// one per line.
// Spaces around names are ignored,
// as well as empty lines
// and lines starting with '#'.
func ReadList(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := readList(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ls, nil
}

func readList(r io.Reader) ([]string, error) {
	var ls []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		ln := strings.TrimSpace(sc.Text())
		if ln == "" || strings.HasPrefix(ln, "#") {
			continue
		}
		ls = append(ls, ln)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ls, nil
}

// Pairs returns the gene families
// from a list of trees
// and a list of sequence files,
// matched by their position in the list.
// The dir is prepended to each file name.
func Pairs(trees, seqs []string, dir string) ([]Pair, error) {
	if len(trees) != len(seqs) {
		return nil, fmt.Errorf("%w: %d trees, %d sequence files", ErrMismatch, len(trees), len(seqs))
	}

	pairs := make([]Pair, 0, len(trees))
	for i, t := range trees {
		pairs = append(pairs, Pair{
			Tree: filepath.Join(dir, t),
			Seqs: filepath.Join(dir, seqs[i]),
		})
	}
	return pairs, nil
}

// PairError is the error produced
// when a gene family can not be processed.
type PairError struct {
	Index int
	Pair  Pair
	Err   error
}

func (e *PairError) Error() string {
	return fmt.Sprintf("pair %d [tree %q, sequences %q]: %v", e.Index+1, e.Pair.Tree, e.Pair.Seqs, e.Err)
}

func (e *PairError) Unwrap() error { return e.Err }
