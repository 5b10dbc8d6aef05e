// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package view

// Transition is the result of replaying an Install's increments: the view
// an observer starts from, the view it ends at, and whether the
// destination still has further pending churn. The frame package only
// ever needs the source/destination heights and the Tailless bit, so
// Transition carries exactly that rather than a full lineage.
type Transition struct {
	Source      View
	Destination View
	Tailless    bool
}

// SourceHeight returns the transition's starting height.
func (t Transition) SourceHeight() uint64 { return t.Source.Height() }

// DestinationHeight returns the transition's ending height.
func (t Transition) DestinationHeight() uint64 { return t.Destination.Height() }
