// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plotcmd implements a command to draw
// the number of retained and removed sequences
// of a paralog filtering report.
package plotcmd

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/parafilter/report"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: "plot [-o|--output <file>] <report-file>",
	Short: "plot retained and removed sequences",
	Long: `
Command plot reads a report produced by 'parafilter filter' and draws a
stacked bar chart with the number of retained (gray) and removed (black)
sequences of each gene family. A summary of the report is printed in the
standard output.

The argument of the command is the name of the report file.

By default, the plot will be saved as a PNG file with the name of the report
file. Use the flag --output, or -o, to define a different file name. The
format of the plot is set by the file extension (for example, svg, pdf, or
png).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting report file")
	}

	fams, err := readReport(args[0])
	if err != nil {
		return err
	}
	if len(fams) == 0 {
		return fmt.Errorf("on file %q: no gene families", args[0])
	}

	s := report.Summarize(fams)
	fmt.Fprintf(c.Stdout(), "families\t%d\n", s.Families)
	fmt.Fprintf(c.Stdout(), "sequences\t%d\n", s.Total)
	fmt.Fprintf(c.Stdout(), "retained\t%d\n", s.Kept)
	fmt.Fprintf(c.Stdout(), "removed\t%d\n", s.Total-s.Kept)
	fmt.Fprintf(c.Stdout(), "mean-removed\t%.4f\n", s.MeanRemoved)

	if output == "" {
		output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
	}
	if err := makePlot(fams, output); err != nil {
		return fmt.Errorf("while plotting %q: %v", output, err)
	}
	return nil
}

func readReport(name string) ([]report.Family, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	fams, err := report.Read(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return fams, nil
}

func makePlot(fams []report.Family, name string) error {
	p := plot.New()
	p.Y.Label.Text = "sequences"

	names := make([]string, 0, len(fams))
	var kept, removed plotter.Values
	for _, f := range fams {
		names = append(names, familyName(f.Seqs))
		kept = append(kept, float64(f.Kept))
		removed = append(removed, float64(f.Removed()))
	}

	w := vg.Points(8)
	kb, err := plotter.NewBarChart(kept, w)
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	kb.LineStyle.Width = vg.Length(0)
	kb.Color = color.Gray{200}

	rb, err := plotter.NewBarChart(removed, w)
	if err != nil {
		return fmt.Errorf("while building chart: %v", err)
	}
	rb.LineStyle.Width = vg.Length(0)
	rb.Color = color.Gray{0}
	rb.StackOn(kb)

	p.Add(kb, rb)
	p.NominalX(names...)
	p.X.Tick.Label.Rotation = math.Pi / 2
	p.X.Tick.Label.XAlign = -1 // right
	p.X.Tick.Label.YAlign = -0.5

	width := vg.Points(float64(12*len(fams))) + 2*vg.Inch
	return p.Save(width, 4*vg.Inch, name)
}

// familyName returns the name of a gene family
// from its sequence file.
func familyName(seqs string) string {
	base := filepath.Base(seqs)
	if i := strings.IndexByte(base, '.'); i > 0 {
		return base[:i]
	}
	return base
}
