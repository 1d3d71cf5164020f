// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package seqfile implements reading, filtering and writing
// of sequence files.
//
// A sequence file is a FASTA file
// in which each record is made of exactly two lines:
// a header line,
// starting with the '>' marker
// and followed by the identifier of the sequence,
// and a sequence line.
package seqfile

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/seq/linear"
)

// Marker is the character that starts a header line.
const Marker = '>'

// A Record is a sequence with its identifier.
type Record struct {
	ID  string
	Seq string
}

// ErrMalformed is the error returned
// when a sequence file is not
// a valid two-line per record file.
var ErrMalformed = errors.New("malformed sequence file")

// MalformedError is the error produced
// when a sequence file is structurally invalid.
type MalformedError struct {
	Line int
	Msg  string
}

func (e *MalformedError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("on line %d: %s", e.Line, e.Msg)
	}
	return e.Msg
}

func (e *MalformedError) Unwrap() error { return ErrMalformed }

// Read reads the records of a sequence file.
// Leading and trailing spaces of each line are ignored,
// as well as empty lines at the end of the file
// that are not the sequence of the last record.
// Sequences must be made of ASCII characters.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<30)

	var lines []string
	for sc.Scan() {
		lines = append(lines, strings.TrimSpace(sc.Text()))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		// an empty line after a header
		// is an empty sequence
		if len(lines)%2 == 0 && lines[len(lines)-2] != "" {
			break
		}
		lines = lines[:len(lines)-1]
	}

	if len(lines)%2 != 0 {
		return nil, &MalformedError{Msg: fmt.Sprintf("odd number of lines (%d): header without sequence", len(lines))}
	}

	recs := make([]Record, 0, len(lines)/2)
	for i := 0; i < len(lines); i += 2 {
		h := lines[i]
		if len(h) == 0 || h[0] != Marker {
			return nil, &MalformedError{Line: i + 1, Msg: fmt.Sprintf("expecting header line starting with %q", Marker)}
		}
		sq := lines[i+1]
		if p := nonASCII(sq); p >= 0 {
			return nil, &MalformedError{Line: i + 2, Msg: fmt.Sprintf("non-ASCII character at position %d", p+1)}
		}
		recs = append(recs, Record{
			ID:  h[1:],
			Seq: sq,
		})
	}
	return recs, nil
}

func nonASCII(s string) int {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return i
		}
	}
	return -1
}

// ReadFile reads the records of a sequence file.
func ReadFile(name string) ([]Record, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %w", name, err)
	}
	return recs, nil
}

// A Set is a set of sequence identifiers.
type Set interface {
	Has(id string) bool
}

// Filter returns the records sorted by identifier,
// without the records whose identifier is in the removal set.
// Records with the same identifier keep their input order.
func Filter(recs []Record, rm Set) []Record {
	sorted := slices.Clone(recs)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		return cmp.Compare(a.ID, b.ID)
	})

	kept := make([]Record, 0, len(sorted))
	for _, r := range sorted {
		if rm != nil && rm.Has(r.ID) {
			continue
		}
		kept = append(kept, r)
	}
	return kept
}

// Write writes records in FASTA format,
// one line per sequence.
func Write(w io.Writer, recs []Record) error {
	bw := bufio.NewWriter(w)
	for _, r := range recs {
		s := linear.NewSeq(r.ID, alphabet.BytesToLetters([]byte(r.Seq)), alphabet.Protein)
		if _, err := fmt.Fprintf(bw, "%a\n", s); err != nil {
			return fmt.Errorf("while writing %q: %v", r.ID, err)
		}
	}
	return bw.Flush()
}

// WriteFile writes records into a file.
// The data is written in a temporary file
// that is renamed once all data is written,
// so the file is never left incomplete.
func WriteFile(name string, recs []Record) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			os.Remove(tmp)
		}
	}()

	if err := Write(f, recs); err != nil {
		f.Close()
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("on file %q: %v", name, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, name)
}
