// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import "github.com/luxfi/carbon/crypto"

// Handle is where a Consistent id's committed proof currently lives: a
// location inside a batch this replica already holds (Batched), or an
// already-exported, self-contained proof this replica obtained some
// other way (Standalone).
type Handle struct {
	// Root and Index are set for a Batched handle.
	Root  crypto.Hash
	Index int

	// Extract is set instead of Root/Index for a Standalone handle.
	Extract *Extract
}

// Batched builds a handle pointing into a locally held batch.
func Batched(root crypto.Hash, index int) Handle {
	return Handle{Root: root, Index: index}
}

// Standalone builds a handle around an already-exported Extract.
func Standalone(extract Extract) Handle {
	return Handle{Extract: &extract}
}

// IsStandalone reports whether h holds a Standalone extract rather than a
// Batched location.
func (h Handle) IsStandalone() bool { return h.Extract != nil }
