// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package batch

import (
	"errors"
	"fmt"
	"io"

	"github.com/js-arias/parafilter/genetree"
	"github.com/js-arias/parafilter/paralog"
	"github.com/js-arias/parafilter/report"
	"github.com/js-arias/parafilter/seqfile"
)

// Options are the options
// used to process the gene families.
type Options struct {
	// Grouper defines the species identifier.
	Grouper paralog.Grouper

	// Format of the tree files.
	// By default, newick.
	Format genetree.Format

	// Suffix of the output files.
	// By default, DefaultSuffix.
	Suffix string

	// If Stop is true,
	// processing stops at the first failed pair.
	Stop bool

	// Log receives a line for each processed pair.
	// If nil, nothing is logged.
	Log io.Writer
}

// A Result is the outcome
// of the processing of a gene family.
type Result struct {
	Index int
	Pair  Pair

	// Out is the name of the filtered sequence file.
	Out string

	// Number of input and retained sequences.
	Total int
	Kept  int

	Decisions []paralog.Decision
}

// Family returns the report of the result.
func (r Result) Family() report.Family {
	f := report.Family{
		Tree:  r.Pair.Tree,
		Seqs:  r.Pair.Seqs,
		Total: r.Total,
		Kept:  r.Kept,
	}
	for _, d := range r.Decisions {
		if d.Class == paralog.Monophyletic {
			f.Mono++
			continue
		}
		f.NonMono++
	}
	return f
}

// Run process all gene families.
// It returns the results of the successfully processed pairs,
// and the errors of the failed pairs,
// joined as a single error.
func Run(pairs []Pair, opt Options) ([]Result, error) {
	var results []Result
	var errs []error
	for i, p := range pairs {
		r, err := Process(i, p, opt)
		if err != nil {
			if opt.Log != nil {
				fmt.Fprintf(opt.Log, "error: %v\n", err)
			}
			errs = append(errs, err)
			if opt.Stop {
				break
			}
			continue
		}
		if opt.Log != nil {
			fmt.Fprintf(opt.Log, "pair %d: %q: %d of %d sequences retained\n", i+1, r.Out, r.Kept, r.Total)
		}
		results = append(results, r)
	}
	return results, errors.Join(errs...)
}

// Process filters the paralogs of a single gene family.
// Errors are returned as a *PairError.
func Process(index int, p Pair, opt Options) (Result, error) {
	format := opt.Format
	if format == "" {
		format = genetree.Newick
	}
	suffix := opt.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}

	fail := func(err error) (Result, error) {
		return Result{}, &PairError{Index: index, Pair: p, Err: err}
	}

	t, err := genetree.ReadFile(p.Tree, format)
	if err != nil {
		return fail(err)
	}
	rm, ds, err := paralog.Resolve(t, opt.Grouper)
	if err != nil {
		return fail(fmt.Errorf("on tree %q: %w", p.Tree, err))
	}

	recs, err := seqfile.ReadFile(p.Seqs)
	if err != nil {
		return fail(err)
	}
	kept := seqfile.Filter(recs, rm)

	out := p.Seqs + suffix
	if err := seqfile.WriteFile(out, kept); err != nil {
		return fail(err)
	}

	return Result{
		Index:     index,
		Pair:      p,
		Out:       out,
		Total:     len(recs),
		Kept:      len(kept),
		Decisions: ds,
	}, nil
}
