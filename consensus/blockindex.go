// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

// BlockIndexNode is a minimal concrete HeaderCtx: a singly-linked node
// pointing toward genesis. It's what tests and cmd/powcheck build chains
// out of; real callers with a richer block index satisfy HeaderCtx with
// their own type instead.
type BlockIndexNode struct {
	height int32
	bits   uint32
	time   uint32
	prev   *BlockIndexNode
}

// NewBlockIndexNode builds a node linked to prev. Passing a nil prev marks
// the node as genesis.
func NewBlockIndexNode(height int32, bits uint32, time uint32, prev *BlockIndexNode) *BlockIndexNode {
	return &BlockIndexNode{height: height, bits: bits, time: time, prev: prev}
}

// Height implements HeaderCtx.
func (n *BlockIndexNode) Height() int32 {
	return n.height
}

// Bits implements HeaderCtx.
func (n *BlockIndexNode) Bits() uint32 {
	return n.bits
}

// Timestamp implements HeaderCtx.
func (n *BlockIndexNode) Timestamp() uint32 {
	return n.time
}

// Parent implements HeaderCtx. It returns nil (the untyped interface nil,
// not merely a nil *BlockIndexNode) at genesis so callers can compare
// directly against nil.
func (n *BlockIndexNode) Parent() HeaderCtx {
	if n.prev == nil {
		return nil
	}
	return n.prev
}

// RelativeAncestorCtx implements HeaderCtx, walking distance steps toward
// genesis. A distance of 0 returns n itself; walking past genesis returns
// nil.
func (n *BlockIndexNode) RelativeAncestorCtx(distance int32) HeaderCtx {
	node := n
	for i := int32(0); i < distance; i++ {
		if node == nil {
			return nil
		}
		node = node.prev
	}
	if node == nil {
		return nil
	}
	return node
}

// candidateTime adapts a bare uint32 timestamp to CandidateHeader for
// tests and callers that don't otherwise have a header type handy.
type candidateTime uint32

// Timestamp implements CandidateHeader.
func (c candidateTime) Timestamp() uint32 {
	return uint32(c)
}

// NewCandidateHeader wraps a bare timestamp as a CandidateHeader.
func NewCandidateHeader(t uint32) CandidateHeader {
	return candidateTime(t)
}
