// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// digiShieldRetarget computes the required target for candidate height h
// using the damped, amplitude-filtered retarget that replaced Kimoto
// Gravity Well at the chain's hard-fork height. prevTip is nil only when
// h is the first block after genesis.
func digiShieldRetarget(prevTip HeaderCtx, header CandidateHeader, h int32, params *chaincfg.ConsensusParams) uint32 {
	limitCompact := params.PowLimit.ToCompact()

	if prevTip == nil {
		return limitCompact
	}

	interval := params.DifficultyAdjustmentInterval()
	if int64(h)%interval != 0 {
		if params.AllowMinDifficultyBlocks &&
			int64(header.Timestamp()) > int64(prevTip.Timestamp())+2*params.PowTargetSpacing {
			return limitCompact
		}
		if params.AllowMinDifficultyBlocks {
			node := prevTip
			for int64(node.Height())%interval != 0 && node.Bits() == limitCompact {
				parent := node.Parent()
				if parent == nil {
					break
				}
				node = parent
			}
			return node.Bits()
		}
		return prevTip.Bits()
	}

	walkBack := interval
	if int64(h) == interval {
		walkBack--
	}
	first := prevTip.RelativeAncestorCtx(int32(walkBack))
	if first == nil {
		panic(AssertError("digiShieldRetarget: retarget boundary reached without a first-block ancestor"))
	}

	return calculateNextWork(prevTip, first.Timestamp(), params)
}

// calculateNextWork applies the amplitude filter and the multiply/divide
// retarget step to prevTip's target, given the timestamp of the first
// block in its retarget window.
func calculateNextWork(prevTip HeaderCtx, firstTime uint32, params *chaincfg.ConsensusParams) uint32 {
	if params.NoRetargeting {
		return prevTip.Bits()
	}

	targetTimespan := params.PowTargetTimespan
	actual := int64(prevTip.Timestamp()) - int64(firstTime)

	// C-style truncating division toward zero; Go's native integer
	// division already truncates toward zero, matching the original.
	actual = targetTimespan + (actual-targetTimespan)/8

	low := targetTimespan - targetTimespan/4
	high := targetTimespan + targetTimespan/2
	if actual < low {
		actual = low
	}
	if actual > high {
		actual = high
	}

	bn, _, _ := arith256.FromCompact(prevTip.Bits())
	bn = bn.MulUint64(uint64(actual)).DivUint64(uint64(targetTimespan))
	bn = bn.Clamp(params.PowLimit)

	return bn.ToCompact()
}
