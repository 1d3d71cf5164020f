// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// ParaFilter is a tool to filter paralogs
// from gene trees and their sequence files.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/parafilter/cmd/parafilter/filter"
	"github.com/js-arias/parafilter/cmd/parafilter/groups"
	"github.com/js-arias/parafilter/cmd/parafilter/plotcmd"
)

var app = &command.Command{
	Usage: "parafilter <command> [<argument>...]",
	Short: "a tool to filter paralogs from gene trees",
}

func init() {
	app.Add(filter.Command)
	app.Add(groups.Command)
	app.Add(plotcmd.Command)
}

func main() {
	app.Main()
}
