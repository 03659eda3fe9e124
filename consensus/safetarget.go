// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// DecodeCompactTarget decodes a compact target, returning a RuleError
// instead of silently folding malformed input into a false verification
// result. Callers outside the hot validation path — CLI tools, RPC
// handlers — that want to report why a target was rejected use this
// instead of arith256.FromCompact directly.
func DecodeCompactTarget(bits uint32) (arith256.Uint256, error) {
	value, negative, overflow := arith256.FromCompact(bits)
	if negative || overflow || value.IsZero() {
		return arith256.Uint256{}, ruleError(ErrInvalidCompactTarget,
			"compact target decodes as negative, zero, or overflowing")
	}
	return value, nil
}

// SafeRequiredTarget calls RequiredTarget, converting the AssertError it
// panics with on a corrupt chain index into a RuleError instead. Use this
// at a boundary — a CLI entry point or an RPC handler — that would rather
// report ErrNoPrevTip than crash on caller-supplied chain data it can't
// fully trust.
func SafeRequiredTarget(prevTip HeaderCtx, header CandidateHeader, params *chaincfg.ConsensusParams) (bits uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(AssertError); ok {
				err = ruleError(ErrNoPrevTip, "required ancestor missing from supplied chain index")
				return
			}
			panic(r)
		}
	}()
	return RequiredTarget(prevTip, header, params), nil
}
