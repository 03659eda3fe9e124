// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// a 500-block chain with uniform 60s spacing (exactly targetSpacing)
// starting at height 100 under test params must leave KGW's output
// within 0.1% of the input target, since a perfectly-paced chain gives
// the walking average no reason to move.
func TestKimotoGravityWellStableChainStaysWithinTolerance(t *testing.T) {
	params := chaincfg.TestNetParams.Consensus
	const inputBits = uint32(0x1d00ffff)
	const startTime = uint32(1500000000)
	const startHeight = int32(100)

	var tip *BlockIndexNode
	for i := int32(0); i < 500; i++ {
		tip = NewBlockIndexNode(startHeight+i, inputBits, startTime+uint32(i)*60, tip)
	}

	candidate := NewCandidateHeader(tip.Timestamp() + 60)
	got := kimotoGravityWell(tip, candidate, &params)

	input, _, _ := arith256.FromCompact(inputBits)
	result, _, _ := arith256.FromCompact(got)

	inputF := uint256ToFloat(input)
	resultF := uint256ToFloat(result)

	deviation := math.Abs(resultF-inputF) / inputF
	require.Less(t, deviation, 0.001, "stable-paced chain must leave KGW's target within 0.1%% of the input")
}

// KGW inspects at most kgwPastBlocksMax ancestors regardless
// of how much deeper the supplied chain goes — verified indirectly by
// checking a chain far longer than pastBlocksMax still terminates (the
// call itself returning is the proof; a runaway walk would need the
// caller to supply an enormous chain for this test to time out, which it
// does not).
func TestKimotoGravityWellBoundedWork(t *testing.T) {
	params := chaincfg.TestNetParams.Consensus

	var tip *BlockIndexNode
	for i := int32(0); i < int32(kgwPastBlocksMax)+500; i++ {
		tip = NewBlockIndexNode(i, 0x1d00ffff, uint32(1500000000+i*60), tip)
	}

	candidate := NewCandidateHeader(tip.Timestamp() + 60)
	got := kimotoGravityWell(tip, candidate, &params)
	require.NotZero(t, got)
}

func TestKimotoGravityWellShortChainReturnsPowLimit(t *testing.T) {
	params := chaincfg.TestNetParams.Consensus

	tip := NewBlockIndexNode(10, 0x1d00ffff, 1500000000, nil)
	candidate := NewCandidateHeader(tip.Timestamp() + 60)

	got := kimotoGravityWell(tip, candidate, &params)
	require.Equal(t, params.PowLimit.ToCompact(), got)
}

// uint256ToFloat approximates a Uint256 as a float64 via its top 64 bits
// plus bit length, sufficient for a relative-tolerance comparison in
// tests without needing exact big.Float conversion.
func uint256ToFloat(v arith256.Uint256) float64 {
	bitLen := v.BitLen()
	if bitLen == 0 {
		return 0
	}
	shift := 0
	if bitLen > 64 {
		shift = bitLen - 64
	}
	top := v.Rsh(uint(shift))
	return float64(top[0]) * math.Pow(2, float64(shift))
}
