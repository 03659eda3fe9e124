// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDifficultyAdjustmentInterval(t *testing.T) {
	require.Equal(t, int64(1), MainNetParams.Consensus.DifficultyAdjustmentInterval())
	require.Equal(t, int64(1), TestNetParams.Consensus.DifficultyAdjustmentInterval())
	require.Equal(t, int64(2016), RegressionNetParams.Consensus.DifficultyAdjustmentInterval())
}

// Main and test net mine their genesis block at a compact target
// stricter than their documented PowLimit, so PowLimit must be pinned
// against the absolute 256-bit literal, not derived from (and compared
// back against) the genesis bits.
func TestPowLimitMatchesDocumentedLiteral(t *testing.T) {
	want := mustUint256("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")
	require.Equal(t, want, MainNetParams.Consensus.PowLimit)
	require.Equal(t, want, TestNetParams.Consensus.PowLimit)
}

// Regtest's genesis bits are the compact form of its PoW limit, so the
// limit encodes back to them through ToCompact, unlike main and test net.
func TestRegtestPowLimitMatchesGenesisBits(t *testing.T) {
	require.Equal(t, RegressionNetParams.GenesisBlock.Bits, RegressionNetParams.Consensus.PowLimit.ToCompact())
}

func TestConsensusHashGenesisBlockMatchesGenesisBlock(t *testing.T) {
	require.Equal(t, MainNetParams.GenesisBlock.Hash, MainNetParams.Consensus.HashGenesisBlock)
	require.Equal(t, TestNetParams.GenesisBlock.Hash, TestNetParams.Consensus.HashGenesisBlock)
	require.Equal(t, RegressionNetParams.GenesisBlock.Hash, RegressionNetParams.Consensus.HashGenesisBlock)
}

func TestCheckpointZeroMatchesGenesisHash(t *testing.T) {
	for _, cp := range []ChainParams{MainNetParams, TestNetParams, RegressionNetParams} {
		require.Equal(t, cp.GenesisBlock.Hash, cp.CheckpointData.Checkpoints[0].Hash,
			"network %s must list its genesis hash as the height-0 checkpoint", cp.NetworkID)
	}
}

func TestBIP34HeightSentinelOnTestAndRegtest(t *testing.T) {
	require.Negative(t, TestNetParams.Consensus.BIP34Height)
	require.Negative(t, RegressionNetParams.Consensus.BIP34Height)
	require.Equal(t, int32(1), MainNetParams.Consensus.BIP34Height)
}

func TestNetworkStringValues(t *testing.T) {
	require.Equal(t, "main", string(Main))
	require.Equal(t, "test", string(Test))
	require.Equal(t, "regtest", string(Regtest))
}
