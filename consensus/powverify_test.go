// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// a hash of 1, interpreted as a 256-bit integer, is far below any
// realistic target and must pass verification against main's genesis
// bits.
func TestCheckProofOfWorkLowHashPasses(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus

	var hash [32]byte
	hash[31] = 1

	require.True(t, CheckProofOfWork(hash, 0x1e0ffff0, params))
}

// bits = 0x00800000 carries a zero mantissa byte but the sign bit
// set in the exponent-adjacent byte; arith256.FromCompact reports this
// pair as carrying no negative flag (mantissa is zero, so the "negative"
// condition is vacuous) but the decoded target itself is zero, which
// CheckProofOfWork must still reject since nothing satisfies a zero
// target.
func TestCheckProofOfWorkZeroMantissaFails(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus

	var hash [32]byte
	require.False(t, CheckProofOfWork(hash, 0x00800000, params))
}

// A genuinely negative-flagged encoding (nonzero mantissa, sign bit set)
// must also fail regardless of the hash.
func TestCheckProofOfWorkNegativeEncodingFails(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus

	var hash [32]byte
	require.False(t, CheckProofOfWork(hash, 0x04923456, params))
}

// A target above the chain's PoW limit is rejected even though it would
// otherwise decode cleanly.
func TestCheckProofOfWorkAbovePowLimitFails(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus

	var hash [32]byte
	// 0x2100ffff decodes to a target far larger (easier) than main's
	// PoW limit.
	require.False(t, CheckProofOfWork(hash, 0x2100ffff, params))
}

// Monotonicity: a hash exactly equal to the target passes, and
// incrementing it by one past the target fails.
func TestCheckProofOfWorkMonotonicAtBoundary(t *testing.T) {
	params := &chaincfg.RegressionNetParams.Consensus
	bits := params.PowLimit.ToCompact()
	target, _, _ := arith256.FromCompact(bits)

	atLimit := target.BytesBE()
	require.True(t, CheckProofOfWork(atLimit, bits, params))

	aboveLimit := target.BytesBE()
	incrementBytesBE(&aboveLimit)
	require.False(t, CheckProofOfWork(aboveLimit, bits, params))
}

// CheckProofOfWork has no internal cache; calling it twice on the same
// input must still be idempotent since it's a pure function of its
// arguments.
func TestCheckProofOfWorkRepeatedCallIsIdempotent(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus

	var hash [32]byte
	hash[31] = 2

	first := CheckProofOfWork(hash, 0x1e0ffff0, params)
	second := CheckProofOfWork(hash, 0x1e0ffff0, params)
	require.Equal(t, first, second)
	require.True(t, first)
}

// CachedCheckProofOfWork must agree with CheckProofOfWork on both a
// first call (cache miss) and a repeated call (cache hit), and must not
// cache a failing result.
func TestCachedCheckProofOfWorkAgreesWithUncached(t *testing.T) {
	params := &chaincfg.MainNetParams.Consensus
	cache := NewVerifiedPoWCache()

	var hash [32]byte
	hash[31] = 3

	first := cache.CachedCheckProofOfWork(hash, 0x1e0ffff0, params)
	second := cache.CachedCheckProofOfWork(hash, 0x1e0ffff0, params)
	require.True(t, first)
	require.True(t, second)

	require.False(t, cache.CachedCheckProofOfWork(hash, 0x00800000, params))
	require.False(t, cache.CachedCheckProofOfWork(hash, 0x00800000, params))
}

func incrementBytesBE(b *[32]byte) {
	for i := 31; i >= 0; i-- {
		b[i]++
		if b[i] != 0 {
			return
		}
	}
}
