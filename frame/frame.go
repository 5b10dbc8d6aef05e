// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package frame implements the discovery highway: a per-replica,
// value-semantic structure that tells any observer at height h the
// minimum list of Installs needed to advance to the current top. It
// keeps the highway of installs sorted and finds positions in it by
// binary search; Update rebuilds the highway and its lookup table in
// time linear in the highway's length, and Lookup copies the suffix of
// installs it returns.
package frame

import "github.com/luxfi/carbon/view"

// metadata is the per-install bookkeeping the highway indexes on: the
// source and destination heights the install spans, and whether it is
// tailless.
type metadata struct {
	sourceHeight      uint64
	destinationHeight uint64
	tailless          bool
}

// Frame is value-semantic: every Update either returns a brand new Frame
// or leaves the caller with nothing to apply. It is never mutated in
// place.
type Frame struct {
	base     uint64
	highway  []view.Install
	metadata []metadata
	lookup   []int
}

// Genesis creates the empty frame anchored at genesis's height.
func Genesis(genesis view.View) Frame {
	return Frame{base: genesis.Height()}
}

// Base returns the frame's genesis height.
func (f Frame) Base() uint64 { return f.base }

// Top returns the highest height any install in this frame reaches.
func (f Frame) Top() uint64 {
	if len(f.metadata) == 0 {
		return f.base
	}
	return f.metadata[len(f.metadata)-1].destinationHeight
}

// Lookup returns the minimal suffix of the highway an observer at height
// needs to replay to reach Top().
func (f Frame) Lookup(height uint64) []view.Install {
	if height < f.base {
		height = f.base
	}
	top := f.Top()
	if height >= top {
		return nil
	}

	idx := f.lookup[height-f.base]
	out := make([]view.Install, len(f.highway)-idx)
	copy(out, f.highway[idx:])
	return out
}

// Update attempts to fold install into the frame, consulting store to
// compute its Transition. It returns the new frame and true if install
// either grows the top or improves an existing highway entry; otherwise
// it returns the zero Frame and false, leaving the receiver untouched.
func (f Frame) Update(store *view.Store, install view.Install) (Frame, bool) {
	transition, err := install.IntoTransition(store)
	if err != nil {
		return Frame{}, false
	}

	if f.canGrowBy(transition) || f.canImproveBy(transition) {
		return f.acquire(install, transition), true
	}

	return Frame{}, false
}

func (f Frame) canGrowBy(t view.Transition) bool {
	return t.DestinationHeight() > f.Top()
}

func (f Frame) canImproveBy(t view.Transition) bool {
	source, sourceOK := f.locateBySource(t.SourceHeight())
	destination, destOK := f.locateByDestination(t.DestinationHeight())
	if !sourceOK || !destOK {
		return false
	}

	return source < destination || (t.Tailless && !f.metadata[destination].tailless)
}

// acquire rebuilds the highway around install: the existing prefix ending
// at the install's source height, the install itself, and the existing
// suffix starting at the install's destination height — then recomputes
// the lookup table by scanning the merged metadata left to right,
// tracking the index just past the most recent tailless install.
func (f Frame) acquire(install view.Install, transition view.Transition) Frame {
	base := f.base

	var highway []view.Install
	var meta []metadata

	if to, ok := f.locateByDestination(transition.SourceHeight()); ok {
		highway = append(highway, f.highway[:to+1]...)
		meta = append(meta, f.metadata[:to+1]...)
	}

	highway = append(highway, install)
	meta = append(meta, metadata{
		sourceHeight:      transition.SourceHeight(),
		destinationHeight: transition.DestinationHeight(),
		tailless:          transition.Tailless,
	})

	if from, ok := f.locateBySource(transition.DestinationHeight()); ok {
		highway = append(highway, f.highway[from:]...)
		meta = append(meta, f.metadata[from:]...)
	}

	lookup := make([]int, 0, meta[len(meta)-1].destinationHeight-base)
	lastTailless := 0

	for index, m := range meta {
		if m.tailless {
			for uint64(len(lookup)) < m.destinationHeight-base {
				lookup = append(lookup, lastTailless)
			}
			lastTailless = index + 1
		}
	}

	top := meta[len(meta)-1].destinationHeight
	for uint64(len(lookup)) < top-base {
		lookup = append(lookup, lastTailless)
	}

	return Frame{base: base, highway: highway, metadata: meta, lookup: lookup}
}

// locateBySource finds the metadata entry whose sourceHeight equals
// height, via binary search — the metadata slice is kept sorted by both
// columns as an invariant of acquire.
func (f Frame) locateBySource(height uint64) (int, bool) {
	return locateBy(f.metadata, height, func(m metadata) uint64 { return m.sourceHeight })
}

// locateByDestination finds the metadata entry whose destinationHeight
// equals height, via binary search.
func (f Frame) locateByDestination(height uint64) (int, bool) {
	return locateBy(f.metadata, height, func(m metadata) uint64 { return m.destinationHeight })
}

func locateBy(xs []metadata, height uint64, key func(metadata) uint64) (int, bool) {
	lo, hi := 0, len(xs)
	for lo < hi {
		mid := (lo + hi) / 2
		v := key(xs[mid])
		switch {
		case v == height:
			return mid, true
		case v < height:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return -1, false
}
