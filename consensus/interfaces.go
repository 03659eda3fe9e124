// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

// HeaderCtx describes the information the difficulty engine and verifier
// need about a block already linked into the caller's chain index. It lets
// callers provide their own block-index representation instead of
// requiring a concrete type from this package.
type HeaderCtx interface {
	// Height returns the block's height. Genesis is height 0.
	Height() int32

	// Bits returns the block's compact-encoded target.
	Bits() uint32

	// Timestamp returns the block's time, as UNIX seconds.
	Timestamp() uint32

	// Parent returns the block's parent, or nil at genesis.
	Parent() HeaderCtx

	// RelativeAncestorCtx returns the ancestor distance blocks before
	// this one, or nil if the chain doesn't extend that far back.
	RelativeAncestorCtx(distance int32) HeaderCtx
}

// CandidateHeader describes the only field of a not-yet-linked header the
// difficulty engine consults: its timestamp.
type CandidateHeader interface {
	Timestamp() uint32
}
