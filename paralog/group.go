// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paralog

import (
	"slices"
	"strings"
)

// A Grouper builds groups of candidate paralogs
// from the terminal names of a tree.
type Grouper struct {
	// Width is the number of characters
	// at the start of a terminal name
	// used as the species identifier.
	Width int

	// If Prefix is true,
	// a terminal is assigned to a group
	// only if the species identifier is a prefix
	// of the terminal name.
	// By default a terminal is assigned to any group
	// whose identifier is found in the name.
	Prefix bool
}

// Groups returns the groups of paralogs
// using a species identifier of n characters.
func Groups(leaves []string, n int) []Group {
	return Grouper{Width: n}.Groups(leaves)
}

// ID returns the species identifier of a terminal.
func (g Grouper) ID(name string) string {
	if g.Width <= 0 {
		return ""
	}
	if len(name) <= g.Width {
		return name
	}
	return name[:g.Width]
}

// Groups returns the groups of candidate paralogs.
// Only terminals whose species identifier
// is shared with other terminals are grouped.
// The groups are sorted,
// as well as the terminals in each group.
func (g Grouper) Groups(leaves []string) []Group {
	names := sortedCopy(leaves)

	count := make(map[string]int)
	var ids []string
	for _, n := range names {
		id := g.ID(n)
		if count[id] == 0 {
			ids = append(ids, id)
		}
		count[id]++
	}

	var paralogs []string
	for _, n := range names {
		for _, id := range ids {
			if count[id] > 1 && strings.HasPrefix(n, id) {
				paralogs = append(paralogs, n)
				break
			}
		}
	}

	var groups []Group
	for _, id := range ids {
		var gr Group
		for _, n := range paralogs {
			if g.match(n, id) {
				gr = append(gr, n)
			}
		}
		if len(gr) == 0 {
			continue
		}
		groups = append(groups, gr)
	}
	slices.SortFunc(groups, func(a, b Group) int {
		return slices.Compare(a, b)
	})
	return groups
}

func (g Grouper) match(name, id string) bool {
	if g.Prefix {
		return strings.HasPrefix(name, id)
	}
	return strings.Contains(name, id)
}
