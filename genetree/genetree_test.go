// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package genetree_test

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"slices"
	"strings"
	"testing"

	"github.com/js-arias/parafilter/genetree"
)

const geneTree = "((A:1,B:1):1,(C:1,(D:1,E:2):1):1);"

func TestNewick(t *testing.T) {
	tr, err := genetree.ReadNewick(strings.NewReader(geneTree), "test")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	if tr.Name() != "test" {
		t.Errorf("name: got %q, want %q", tr.Name(), "test")
	}
	leaves := tr.Leaves()
	slices.Sort(leaves)
	want := []string{"A", "B", "C", "D", "E"}
	if !reflect.DeepEqual(leaves, want) {
		t.Errorf("leaves: got %v, want %v", leaves, want)
	}
	if tr.Len() != len(want) {
		t.Errorf("len: got %d, want %d", tr.Len(), len(want))
	}

	dist := map[string]float64{
		"A": 2,
		"B": 2,
		"C": 2,
		"D": 3,
		"E": 4,
	}
	testDistances(t, "newick", tr, dist)
}

func TestMonophyly(t *testing.T) {
	tr, err := genetree.ReadNewick(strings.NewReader(geneTree), "test")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	tests := []struct {
		names []string
		want  bool
	}{
		{[]string{"A"}, true},
		{[]string{"A", "B"}, true},
		{[]string{"D", "E"}, true},
		{[]string{"C", "D", "E"}, true},
		{[]string{"A", "C"}, false},
		{[]string{"A", "D"}, false},
		{[]string{"B", "C", "D"}, false},

		// only monophyletic
		// if the tree is unrooted
		{[]string{"A", "B", "C"}, true},
		{[]string{"B", "C", "D", "E"}, true},

		{[]string{"A", "B", "C", "D", "E"}, true},
	}

	for _, test := range tests {
		got, err := tr.IsMonophyletic(test.names)
		if err != nil {
			t.Errorf("%v: unexpected error: %v", test.names, err)
			continue
		}
		if got != test.want {
			t.Errorf("%v: got %v, want %v", test.names, got, test.want)
		}
	}

	if _, err := tr.IsMonophyletic([]string{"A", "Z"}); !errors.Is(err, genetree.ErrUnknownTerm) {
		t.Errorf("unknown terminal: got error %v, want %v", err, genetree.ErrUnknownTerm)
	}
	if _, err := tr.DistanceFromRoot("Z"); !errors.Is(err, genetree.ErrUnknownTerm) {
		t.Errorf("unknown terminal: got error %v, want %v", err, genetree.ErrUnknownTerm)
	}
}

func TestNewickWithoutLengths(t *testing.T) {
	tr, err := genetree.ReadNewick(strings.NewReader("((A,B),(C,(D,E)));"), "nolen")
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	dist := map[string]float64{
		"A": 2 * genetree.DefaultLength,
		"C": 2 * genetree.DefaultLength,
		"E": 3 * genetree.DefaultLength,
	}
	testDistances(t, "no lengths", tr, dist)
}

func TestNewickRepeatedTerminal(t *testing.T) {
	_, err := genetree.ReadNewick(strings.NewReader("((A:1,B:1):1,A:1);"), "repeated")
	if err == nil {
		t.Errorf("repeated terminal: expecting error")
	}
}

const timeTree = `# time calibrated phylogenetic tree
tree	node	parent	age	taxon
dinosaurs	0	-1	235000000	
dinosaurs	1	0	230000000	Eoraptor lunensis
dinosaurs	2	0	170000000	
dinosaurs	3	2	145000000	Ceratosaurus nasicornis
dinosaurs	4	2	71000000	Carnotaurus sastrei
`

func TestTSV(t *testing.T) {
	tr, err := genetree.ReadTSV(strings.NewReader(timeTree))
	if err != nil {
		t.Fatalf("unable to read tree: %v", err)
	}

	if tr.Name() != "dinosaurs" {
		t.Errorf("name: got %q, want %q", tr.Name(), "dinosaurs")
	}
	dist := map[string]float64{
		"Eoraptor lunensis":       5,
		"Ceratosaurus nasicornis": 90,
		"Carnotaurus sastrei":     164,
	}
	testDistances(t, "tsv", tr, dist)

	mono, err := tr.IsMonophyletic([]string{"Carnotaurus sastrei", "Ceratosaurus nasicornis"})
	if err != nil {
		t.Fatalf("monophyly: unexpected error: %v", err)
	}
	if !mono {
		t.Errorf("monophyly: got %v, want %v", mono, true)
	}

	// the root is ignored:
	// in an unrooted three terminal tree
	// any pair is a clade
	mono, err = tr.IsMonophyletic([]string{"Eoraptor lunensis", "Ceratosaurus nasicornis"})
	if err != nil {
		t.Fatalf("unrooted monophyly: unexpected error: %v", err)
	}
	if !mono {
		t.Errorf("unrooted monophyly: got %v, want %v", mono, true)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "OG0001.tre")
	if err := os.WriteFile(name, []byte(geneTree+"\n"), 0o644); err != nil {
		t.Fatalf("unable to write tree file: %v", err)
	}

	tr, err := genetree.ReadFile(name, genetree.Newick)
	if err != nil {
		t.Fatalf("unable to read tree file: %v", err)
	}
	if tr.Name() != "OG0001.tre" {
		t.Errorf("name: got %q, want %q", tr.Name(), "OG0001.tre")
	}

	_, err = genetree.ReadFile(filepath.Join(dir, "missing.tre"), genetree.Newick)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got error %v, want %v", err, os.ErrNotExist)
	}
}

func TestParseFormat(t *testing.T) {
	tests := map[string]genetree.Format{
		"newick": genetree.Newick,
		"NWK":    genetree.Newick,
		"tsv":    genetree.TSV,
		" tab ":  genetree.TSV,
	}
	for s, want := range tests {
		got, err := genetree.ParseFormat(s)
		if err != nil {
			t.Errorf("format %q: unexpected error: %v", s, err)
			continue
		}
		if got != want {
			t.Errorf("format %q: got %q, want %q", s, got, want)
		}
	}
	if _, err := genetree.ParseFormat("nexus"); err == nil {
		t.Errorf("format %q: expecting error", "nexus")
	}
}

func testDistances(t testing.TB, name string, tr *genetree.Tree, dist map[string]float64) {
	t.Helper()

	for tx, want := range dist {
		got, err := tr.DistanceFromRoot(tx)
		if err != nil {
			t.Errorf("%s: distance of %q: unexpected error: %v", name, tx, err)
			continue
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: distance of %q: got %.6f, want %.6f", name, tx, got, want)
		}
	}
}
