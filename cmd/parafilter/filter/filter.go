// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package filter implements a command to remove paralogs
// from the sequence files of a set of gene families.
package filter

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/parafilter/batch"
	"github.com/js-arias/parafilter/genetree"
	"github.com/js-arias/parafilter/paralog"
	"github.com/js-arias/parafilter/report"
)

var Command = &command.Command{
	Usage: `filter -f <file> -t <file> -n <number> -w <directory>
	[--format <format>] [--prefix] [--stop]
	[--suffix <suffix>] [--report <file>]`,
	Short: "filter paralogs from sequence files",
	Long: `
Command filter reads a set of gene trees and their sequence files, and writes
new sequence files in which in-paralogs are resolved.

The terminals of each gene tree are grouped by a species identifier: the
first characters of the terminal name. The number of characters used as the
species identifier is set with the flag -n. It is required. Terminals of a
species with more than one terminal are a group of candidate paralogs. If the
group is monophyletic, treating the tree as unrooted, the terminal with the
shortest distance to the root is kept, and all other members of the group are
removed. If two or more terminals have the same distance, the first one, in
alphabetical order, is kept. If the group is not monophyletic, all the
members of the group are removed.

By default, a terminal is assigned to a group if the species identifier is
found anywhere in the terminal name. Use the flag --prefix to only assign
terminals whose name starts with the species identifier.

The flag -t is required, and it indicates a file with the list of tree files,
one per line. The flag -f is required, and it indicates a file with the list
of sequence files, one per line. Both lists must be of the same length, as the
first tree is paired with the first sequence file, the second tree with the
second sequence file, and so on. The flag -w is required and it sets the
directory that contains the tree and sequence files. See
'parafilter help list-files'.

By default, trees are expected in newick format. Use the flag --format to
define a different format. Valid formats are:

	newick  parenthetical trees with branch lengths
	tsv     PhyGeo tab-delimited time calibrated trees

Sequence files are FASTA files in which each sequence is in a single line.
See 'parafilter help sequence-files'.

For each sequence file, a new file will be created in the same directory,
with the suffix '.new'. Use the flag --suffix to define a different suffix.

If there is an error when processing a gene family, the error will be
printed and no output file will be created for that family, and the command
continues with the next family. If the flag --stop is set, the command stops
at the first error.

If the flag --report is defined, a tab-delimited file with the number of
sequences retained and removed in each gene family will be written in the
indicated file. See 'parafilter help report-files'.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var seqList string
var treeList string
var idChars int
var workDir string
var formatFlag string
var prefixFlag bool
var stopFlag bool
var suffixFlag string
var reportFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&seqList, "f", "", "")
	c.Flags().StringVar(&treeList, "t", "", "")
	c.Flags().IntVar(&idChars, "n", 0, "")
	c.Flags().StringVar(&workDir, "w", "", "")
	c.Flags().StringVar(&formatFlag, "format", string(genetree.Newick), "")
	c.Flags().BoolVar(&prefixFlag, "prefix", false, "")
	c.Flags().BoolVar(&stopFlag, "stop", false, "")
	c.Flags().StringVar(&suffixFlag, "suffix", batch.DefaultSuffix, "")
	c.Flags().StringVar(&reportFile, "report", "", "")
}

func run(c *command.Command, args []string) error {
	if seqList == "" {
		return c.UsageError("flag -f must be defined")
	}
	if treeList == "" {
		return c.UsageError("flag -t must be defined")
	}
	if idChars <= 0 {
		return c.UsageError("flag -n must be defined, with a value greater than 0")
	}
	if workDir == "" {
		return c.UsageError("flag -w must be defined")
	}
	if suffixFlag == "" {
		return c.UsageError("flag --suffix must not be empty")
	}
	format, err := genetree.ParseFormat(formatFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	seqs, err := batch.ReadList(seqList)
	if err != nil {
		return err
	}
	trees, err := batch.ReadList(treeList)
	if err != nil {
		return err
	}
	pairs, err := batch.Pairs(trees, seqs, workDir)
	if errors.Is(err, batch.ErrMismatch) {
		msg := fmt.Sprintf("files %q and %q: %v", treeList, seqList, err)
		return c.UsageError(msg)
	}
	if err != nil {
		return err
	}

	opt := batch.Options{
		Grouper: paralog.Grouper{
			Width:  idChars,
			Prefix: prefixFlag,
		},
		Format: format,
		Suffix: suffixFlag,
		Stop:   stopFlag,
		Log:    c.Stderr(),
	}
	results, runErr := batch.Run(pairs, opt)

	if reportFile != "" {
		fams := make([]report.Family, 0, len(results))
		for _, r := range results {
			fams = append(fams, r.Family())
		}
		if err := writeReport(reportFile, fams); err != nil {
			return err
		}
	}

	if runErr != nil {
		return fmt.Errorf("%d of %d gene families processed", len(results), len(pairs))
	}
	return nil
}

func writeReport(name string, fams []report.Family) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := report.Write(f, fams); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
