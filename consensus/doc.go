// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus implements the proof-of-work difficulty engine and
// proof-of-work verifier: the two pure, chain-parameter-driven functions
// that decide what target the next block must meet and whether a
// candidate hash meets it.
//
// Both the Kimoto Gravity Well and DigiShield retarget algorithms live
// here, selected by candidate height (DiffChangeTarget) and by the chain's
// AllowMinDifficultyBlocks flag. Neither algorithm nor the verifier perform I/O or retain
// any of the chain-index nodes they're handed; the caller owns storage.
package consensus
