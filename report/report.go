// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements reading and writing
// of paralog filtering reports.
//
// A report is a tab-delimited file (TSV)
// with the number of sequences retained and removed
// for each gene family.
package report

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gonum.org/v1/gonum/stat"
)

// A Family is the summary of the filtering
// of a gene family.
type Family struct {
	// Tree and sequence files.
	Tree string
	Seqs string

	// Number of sequences in the input,
	// and retained in the output.
	Total int
	Kept  int

	// Number of paralog groups,
	// by classification.
	Mono    int
	NonMono int
}

// Removed returns the number of removed sequences.
func (f Family) Removed() int {
	return f.Total - f.Kept
}

var header = []string{
	"tree",
	"sequences",
	"total",
	"kept",
	"removed",
	"monophyletic",
	"non-monophyletic",
}

// Read reads a report from a TSV file.
//
// The TSV must contain the following fields:
//
//   - tree, the tree file
//   - sequences, the sequence file
//   - total, the number of input sequences
//   - kept, the number of retained sequences
//   - monophyletic, the number of monophyletic paralog groups
//   - non-monophyletic, the number of non-monophyletic paralog groups
//
// The field "removed" is optional,
// and ignored as it is calculated from total and kept.
//
// Here is an example file:
//
//	# parafilter report
//	tree	sequences	total	kept	removed	monophyletic	non-monophyletic
//	OG0001.tre	OG0001.fa	24	21	3	2	0
//	OG0002.tre	OG0002.fa	30	25	5	1	2
func Read(r io.Reader) ([]Family, error) {
	tsv := csv.NewReader(r)
	tsv.Comma = '\t'
	tsv.Comment = '#'

	head, err := tsv.Read()
	if err != nil {
		return nil, fmt.Errorf("header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range header {
		if h == "removed" {
			continue
		}
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var fams []Family
	for {
		row, err := tsv.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tsv.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		fam := Family{
			Tree: row[fields["tree"]],
			Seqs: row[fields["sequences"]],
		}
		ints := []struct {
			field string
			v     *int
		}{
			{"total", &fam.Total},
			{"kept", &fam.Kept},
			{"monophyletic", &fam.Mono},
			{"non-monophyletic", &fam.NonMono},
		}
		for _, f := range ints {
			v, err := strconv.Atoi(row[fields[f.field]])
			if err != nil {
				return nil, fmt.Errorf("on row %d: field %q: %v", ln, f.field, err)
			}
			*f.v = v
		}
		if fam.Kept > fam.Total {
			return nil, fmt.Errorf("on row %d: kept sequences (%d) greater than total (%d)", ln, fam.Kept, fam.Total)
		}
		fams = append(fams, fam)
	}
	return fams, nil
}

// Write writes a report into a TSV file.
func Write(w io.Writer, fams []Family) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# parafilter report\n")
	fmt.Fprintf(bw, "# data save on: %s\n", time.Now().Format(time.RFC3339))
	tsv := csv.NewWriter(bw)
	tsv.Comma = '\t'
	tsv.UseCRLF = true

	if err := tsv.Write(header); err != nil {
		return fmt.Errorf("while writing header: %v", err)
	}

	for _, f := range fams {
		row := []string{
			f.Tree,
			f.Seqs,
			strconv.Itoa(f.Total),
			strconv.Itoa(f.Kept),
			strconv.Itoa(f.Removed()),
			strconv.Itoa(f.Mono),
			strconv.Itoa(f.NonMono),
		}
		if err := tsv.Write(row); err != nil {
			return err
		}
	}

	tsv.Flush()
	if err := tsv.Error(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing data: %v", err)
	}
	return nil
}

// Summary is a summary of a report.
type Summary struct {
	Families int
	Total    int
	Kept     int

	// MeanRemoved is the mean proportion
	// of removed sequences per family.
	MeanRemoved float64
}

// Summarize returns the summary of a report.
func Summarize(fams []Family) Summary {
	s := Summary{
		Families: len(fams),
	}
	prop := make([]float64, 0, len(fams))
	for _, f := range fams {
		s.Total += f.Total
		s.Kept += f.Kept
		if f.Total == 0 {
			prop = append(prop, 0)
			continue
		}
		prop = append(prop, float64(f.Removed())/float64(f.Total))
	}
	if len(prop) > 0 {
		s.MeanRemoved = stat.Mean(prop, nil)
	}
	return s
}
