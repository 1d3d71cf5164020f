// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package groups implements a command to print
// the paralog groups of a gene tree.
package groups

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/js-arias/command"
	"github.com/js-arias/parafilter/genetree"
	"github.com/js-arias/parafilter/paralog"
)

var Command = &command.Command{
	Usage: `groups -n <number> [--format <format>] [--prefix]
	<tree-file>`,
	Short: "print the paralog groups of a gene tree",
	Long: `
Command groups reads a gene tree and prints the groups of candidate paralogs,
and how they are resolved.

The argument of the command is the name of the tree file.

The flag -n is required, and it sets the number of characters at the start of
a terminal name that are used as the species identifier. By default, a
terminal is assigned to a group if the species identifier is found anywhere in
the terminal name. Use the flag --prefix to only assign terminals whose name
starts with the species identifier.

By default, the tree is expected in newick format. Use the flag --format to
define a different format (newick or tsv).

The output is a tab-delimited table with the following columns:

	group     the number of the group
	terminal  the name of the terminal
	class     either monophyletic or non-monophyletic
	distance  the distance from the root (only for monophyletic groups)
	status    either keep or remove
	`,
	SetFlags: setFlags,
	Run:      run,
}

var idChars int
var formatFlag string
var prefixFlag bool

func setFlags(c *command.Command) {
	c.Flags().IntVar(&idChars, "n", 0, "")
	c.Flags().StringVar(&formatFlag, "format", string(genetree.Newick), "")
	c.Flags().BoolVar(&prefixFlag, "prefix", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting tree file")
	}
	if idChars <= 0 {
		return c.UsageError("flag -n must be defined, with a value greater than 0")
	}
	format, err := genetree.ParseFormat(formatFlag)
	if err != nil {
		return c.UsageError(err.Error())
	}

	t, err := genetree.ReadFile(args[0], format)
	if err != nil {
		return err
	}

	g := paralog.Grouper{
		Width:  idChars,
		Prefix: prefixFlag,
	}
	_, ds, err := paralog.Resolve(t, g)
	if err != nil {
		return fmt.Errorf("on tree %q: %v", args[0], err)
	}

	tsv := csv.NewWriter(c.Stdout())
	tsv.Comma = '\t'
	if err := tsv.Write([]string{"group", "terminal", "class", "distance", "status"}); err != nil {
		return err
	}
	for i, d := range ds {
		for j, n := range d.Group {
			dist := ""
			if d.Class == paralog.Monophyletic {
				dist = strconv.FormatFloat(d.Distances[j], 'f', 6, 64)
			}
			status := "remove"
			if n == d.Keeper {
				status = "keep"
			}
			row := []string{
				strconv.Itoa(i + 1),
				n,
				d.Class.String(),
				dist,
				status,
			}
			if err := tsv.Write(row); err != nil {
				return err
			}
		}
	}
	tsv.Flush()
	return tsv.Error()
}
