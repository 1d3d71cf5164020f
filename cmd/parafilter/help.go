// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(listFilesGuide)
	app.Add(reportFilesGuide)
	app.Add(sequenceFilesGuide)
	app.Add(treeFilesGuide)
}

var listFilesGuide = &command.Command{
	Usage: "list-files",
	Short: "about tree and sequence list files",
	Long: `
ParaFilter processes many gene families in a single run. Each gene family is
made of a gene tree and a sequence file. The files are defined in two list
files: one for the trees and another for the sequence files.

A list file is a plain text file with a file name on each line. Spaces at the
start and end of each line are ignored, as well as empty lines, and lines
starting with '#'. Both lists must have the same number of files, as the
files are paired by their position in the list.

Here is an example of a tree list file:

	# gene trees
	trees/OG0001.tre
	trees/OG0002.tre
	trees/OG0003.tre

and its sequence list file:

	# sequence files
	seqs/OG0001.fa
	seqs/OG0002.fa
	seqs/OG0003.fa

The file names are relative to the working directory defined with the flag
-w of the command 'parafilter filter'.
	`,
}

var reportFilesGuide = &command.Command{
	Usage: "report-files",
	Short: "about report files",
	Long: `
The command 'parafilter filter' can write a report of the filtering in a
tab-delimited file with the following columns:

	- tree              the tree file
	- sequences         the sequence file
	- total             number of sequences in the input
	- kept              number of retained sequences
	- removed           number of removed sequences
	- monophyletic      number of monophyletic paralog groups
	- non-monophyletic  number of non-monophyletic paralog groups

Here is an example file:

	# parafilter report
	tree	sequences	total	kept	removed	monophyletic	non-monophyletic
	trees/OG0001.tre	seqs/OG0001.fa	24	21	3	2	0
	trees/OG0002.tre	seqs/OG0002.fa	30	25	5	1	2

A report file can be plotted with the command 'parafilter plot'.
	`,
}

var sequenceFilesGuide = &command.Command{
	Usage: "sequence-files",
	Short: "about sequence files",
	Long: `
In ParaFilter, sequence files are FASTA files in which each record is made of
exactly two lines. The first one is the header, that starts with the '>'
character and followed by the identifier of the sequence, and the second one
is the sequence. The identifier must be identical to the name of a terminal
in the gene tree.

Here is an example file:

	>hsap_ENSP00000269305
	MEEPQSDPSVEPPLSQETFSDLWKLLPENNVLSPLPSQAMDDLMLSPDDIEQWFTEDPGP
	>mmus_ENSMUSP00000104298
	MTAMEESQSDISLELPLSQETFSGLWKLLPPEDILPSPHCMDDLLLPQDVEEFFEGPSEA

A file with an odd number of lines, or in which a header line does not start
with '>', is invalid. Sequences split over several lines are not supported.
Empty lines at the end of the file are ignored, but an empty line after the
last header is read as an empty sequence. Sequences must be made of ASCII
characters.

Filtered files are written with the same format, sorted by the sequence
identifier.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "tree-files",
	Short: "about tree files",
	Long: `
In ParaFilter, gene trees are read from newick (parenthetical) files. Each
file must contain a single tree, and branch lengths are used to calculate the
distance from the root to each terminal. Branches without a length are
assumed to have a length of 1.

Here is an example file:

	((hsap_1:0.12,hsap_2:0.30):0.05,(mmus_1:0.20,drer_1:0.41):0.08);

Trees can also be read from PhyGeo tab-delimited files, with the following
columns:

	-tree    for the name of the tree.
	-node    for the ID of the node.
	-parent  for of ID of the parent node (-1 is used for the root).
	-age     the age of the node (in years).
	-taxon   the taxonomic name of the node.

Here is an example file:

	# time calibrated phylogenetic tree
	tree	node	parent	age	taxon
	dinosaurs	0	-1	235000000	
	dinosaurs	1	0	230000000	Eoraptor lunensis
	dinosaurs	2	0	170000000	
	dinosaurs	3	2	145000000	Ceratosaurus nasicornis
	dinosaurs	4	2	71000000	Carnotaurus sastrei

In this format, branch lengths are the difference between the age of a node
and the age of its parent, in million years. Only the first tree of the file
is used.

To read trees in tab-delimited format, use the flag --format with the value
'tsv' in the commands 'parafilter filter' and 'parafilter groups'.
	`,
}
