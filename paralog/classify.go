// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package paralog

import (
	"fmt"
	"strings"
)

// Classified is a group of paralogs
// with its classification.
type Classified struct {
	Group Group
	Class Class
}

// Classify returns the classification of each group
// in the given tree.
// The classifications are returned
// in the same order as the groups.
func Classify(t Tree, groups []Group) ([]Classified, error) {
	leaves := make(map[string]bool)
	for _, n := range t.Leaves() {
		leaves[n] = true
	}

	cls := make([]Classified, 0, len(groups))
	for _, g := range groups {
		for _, n := range g {
			if !leaves[n] {
				return nil, &InvalidGroupError{Group: g, Name: n}
			}
		}

		mono, err := t.IsMonophyletic(g)
		if err != nil {
			return nil, fmt.Errorf("group [%s]: %w", strings.Join(g, " "), err)
		}
		c := NonMonophyletic
		if mono {
			c = Monophyletic
		}
		cls = append(cls, Classified{Group: g, Class: c})
	}
	return cls, nil
}
