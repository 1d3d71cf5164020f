// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package filter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/js-arias/parafilter/batch"
	"github.com/js-arias/parafilter/genetree"
)

type flags struct {
	seqs   string
	trees  string
	n      int
	dir    string
	suffix string
}

func setTestFlags(f flags) {
	seqList = f.seqs
	treeList = f.trees
	idChars = f.n
	workDir = f.dir
	formatFlag = string(genetree.Newick)
	prefixFlag = false
	stopFlag = false
	suffixFlag = f.suffix
	reportFile = ""
}

func writeTestFile(t testing.TB, name, data string) {
	t.Helper()
	if err := os.WriteFile(name, []byte(data), 0o644); err != nil {
		t.Fatalf("unable to write %q: %v", name, err)
	}
}

func TestRunInvalidFlags(t *testing.T) {
	dir := t.TempDir()
	writeTestFile(t, filepath.Join(dir, "OG1.tre"), "((SpA_1:0.1,SpA_2:0.3):0.1,SpB_1:0.2);\n")
	writeTestFile(t, filepath.Join(dir, "OG1.fa"), ">SpA_1\nMK\n>SpA_2\nMR\n>SpB_1\nML\n")
	writeTestFile(t, filepath.Join(dir, "OG2.fa"), ">SpA_1\nMK\n")

	trees := filepath.Join(dir, "trees.txt")
	writeTestFile(t, trees, "OG1.tre\n")
	seqs := filepath.Join(dir, "seqs.txt")
	writeTestFile(t, seqs, "OG1.fa\n")
	longSeqs := filepath.Join(dir, "long-seqs.txt")
	writeTestFile(t, longSeqs, "OG1.fa\nOG2.fa\n")

	valid := flags{
		seqs:   seqs,
		trees:  trees,
		n:      4,
		dir:    dir,
		suffix: batch.DefaultSuffix,
	}

	tests := map[string]func(f *flags){
		"no sequence list": func(f *flags) { f.seqs = "" },
		"no tree list":     func(f *flags) { f.trees = "" },
		"no id width":      func(f *flags) { f.n = 0 },
		"negative width":   func(f *flags) { f.n = -1 },
		"no directory":     func(f *flags) { f.dir = "" },
		"empty suffix":     func(f *flags) { f.suffix = "" },
		"list mismatch":    func(f *flags) { f.seqs = longSeqs },
	}

	for name, change := range tests {
		f := valid
		change(&f)
		setTestFlags(f)

		if err := run(Command, nil); err == nil {
			t.Errorf("%s: expecting error", name)
		}
		for _, out := range []string{"OG1.fa", "OG2.fa"} {
			if _, err := os.Stat(filepath.Join(dir, out+batch.DefaultSuffix)); err == nil {
				t.Errorf("%s: output %q written", name, out+batch.DefaultSuffix)
			}
		}
	}
}
