// Copyright (C) 2020-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package prepare

import (
	"crypto/sha256"
	"errors"

	"github.com/luxfi/carbon/crypto"
	merkle "github.com/xsleonard/go-merkle"
)

// ErrEmptyBatch is returned by MerkleRoot and ProveInclusionBytes for an
// empty leaf set.
var ErrEmptyBatch = errors.New("prepare: empty batch")

// ErrIndexOutOfRange is returned by ProveInclusionBytes for an index
// outside the leaf set.
var ErrIndexOutOfRange = errors.New("prepare: index out of range")

// MerkleRoot computes the Merkle root committing an ordered set of
// leaves, the way a SignedBatch commits its Prepares. The root itself is
// computed by go-merkle; Proof below walks the same leaf-hash/
// pairwise-hash convention directly, since
// go-merkle v1.1.0 exposes only whole-tree Generate/Root, not a public
// per-leaf proof API. Exported at the byte-slice level (rather than tied
// to Prepare) so the commit pipeline's Payload batches can reuse the same
// commitment scheme (see BatchRoot below for the Prepare-specific form).
func MerkleRoot(leaves [][]byte) (crypto.Hash, error) {
	if len(leaves) == 0 {
		return crypto.Hash{}, ErrEmptyBatch
	}

	tree := merkle.NewTree()
	if err := tree.Generate(leaves, sha256.New); err != nil {
		return crypto.Hash{}, err
	}

	var out crypto.Hash
	copy(out[:], tree.Root().Hash)
	return out, nil
}

// Proof is a standalone Merkle inclusion proof for one leaf of an ordered
// set, used when a leaf's membership must be proven outside the session
// that originally built the tree (an Extract's standalone Handle, a
// completion's CompletionProof).
type Proof struct {
	Index    int
	Siblings []crypto.Hash
}

// ProveInclusionBytes builds the inclusion proof for the leaf at index
// within leaves.
func ProveInclusionBytes(leaves [][]byte, index int) (Proof, error) {
	if len(leaves) == 0 {
		return Proof{}, ErrEmptyBatch
	}
	if index < 0 || index >= len(leaves) {
		return Proof{}, ErrIndexOutOfRange
	}

	level := make([]crypto.Hash, len(leaves))
	for i, leaf := range leaves {
		level[i] = crypto.HashOf(leaf)
	}

	var siblings []crypto.Hash
	idx := index
	for len(level) > 1 {
		if len(level)%2 == 1 {
			level = append(level, level[len(level)-1])
		}

		siblings = append(siblings, level[idx^1])

		next := make([]crypto.Hash, len(level)/2)
		for i := range next {
			next[i] = pairHash(level[2*i], level[2*i+1])
		}
		level = next
		idx /= 2
	}

	return Proof{Index: index, Siblings: siblings}, nil
}

// VerifyBytes checks that leaf is included under root at the proof's
// recorded index.
func (p Proof) VerifyBytes(root crypto.Hash, leaf []byte) bool {
	h := crypto.HashOf(leaf)
	idx := p.Index
	for _, sibling := range p.Siblings {
		if idx%2 == 0 {
			h = pairHash(h, sibling)
		} else {
			h = pairHash(sibling, h)
		}
		idx /= 2
	}
	return h == root
}

func pairHash(left, right crypto.Hash) crypto.Hash {
	buf := make([]byte, 0, len(left)+len(right))
	buf = append(buf, left[:]...)
	buf = append(buf, right[:]...)
	return crypto.HashOf(buf)
}

// BatchRoot computes the Merkle root of an ordered batch of Prepares.
func BatchRoot(prepares []Prepare) (crypto.Hash, error) {
	leaves := make([][]byte, len(prepares))
	for i, p := range prepares {
		leaves[i] = p.Encode()
	}
	return MerkleRoot(leaves)
}

// ProveInclusion builds the inclusion proof for the prepare at index
// within prepares.
func ProveInclusion(prepares []Prepare, index int) (Proof, error) {
	leaves := make([][]byte, len(prepares))
	for i, p := range prepares {
		leaves[i] = p.Encode()
	}
	return ProveInclusionBytes(leaves, index)
}

// Verify checks that leaf is included under root at the proof's recorded
// index.
func (p Proof) Verify(root crypto.Hash, leaf Prepare) bool {
	return p.VerifyBytes(root, leaf.Encode())
}
