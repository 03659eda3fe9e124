// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"github.com/decred/dcrd/lru"

	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// CheckProofOfWork reports whether hash, interpreted as a big-endian
// 256-bit unsigned integer, satisfies the target encoded by bits under
// params. It never panics: a malformed compact encoding (negative, zero,
// overflowing, or above the chain's PoW limit) simply fails verification
// rather than signaling an error — decoding trouble here is a consensus
// signal, not a programmer error. It has no side effects and performs no
// I/O: every call recomputes the answer from scratch.
func CheckProofOfWork(hash [32]byte, bits uint32, params *chaincfg.ConsensusParams) bool {
	target, negative, overflow := arith256.FromCompact(bits)
	if negative || overflow || target.IsZero() {
		return false
	}
	if target.Cmp(params.PowLimit) > 0 {
		return false
	}

	var h arith256.Uint256
	h.SetBytesBE(hash)
	if h.Cmp(target) > 0 {
		be := target.BytesBE()
		log.Tracef("hash %x does not satisfy target %x", hash, be)
		return false
	}

	return true
}

// verifiedPoWCacheLimit bounds VerifiedPoWCache the way recently-seen
// inventory caches are usually bounded: a fixed item count, not a
// byte budget.
const verifiedPoWCacheLimit = 50000

// powCacheKey identifies one (hash, bits, params) verification result.
type powCacheKey struct {
	hash   [32]byte
	bits   uint32
	params *chaincfg.ConsensusParams
}

// VerifiedPoWCache is an explicit, opt-in membership cache a caller may
// use in front of CheckProofOfWork to skip re-verifying headers it has
// already seen pass — useful during reorg walks or repeated sync
// retries, where the same header is checked more than once. It is not
// used by CheckProofOfWork itself, which stays a pure, total function per
// its documented contract; wiring the cache in is the caller's choice.
// lru.Cache is a pure membership set (Contains/Add/Delete, no stored
// value), so eviction only changes how often CachedCheckProofOfWork calls
// through to CheckProofOfWork, never the answer it returns.
type VerifiedPoWCache struct {
	seen lru.Cache
}

// NewVerifiedPoWCache creates a VerifiedPoWCache bounded at
// verifiedPoWCacheLimit entries.
func NewVerifiedPoWCache() *VerifiedPoWCache {
	return &VerifiedPoWCache{seen: lru.NewCache(verifiedPoWCacheLimit)}
}

// CachedCheckProofOfWork behaves exactly like CheckProofOfWork, except a
// (hash, bits, params) triple that previously verified true is returned
// immediately from c without re-running the arith256 decode. A false
// result is never cached, so a borderline or malformed encoding is always
// fully re-evaluated.
func (c *VerifiedPoWCache) CachedCheckProofOfWork(hash [32]byte, bits uint32, params *chaincfg.ConsensusParams) bool {
	key := powCacheKey{hash: hash, bits: bits, params: params}
	if c.seen.Contains(key) {
		return true
	}

	if !CheckProofOfWork(hash, bits, params) {
		return false
	}

	c.seen.Add(key)
	return true
}
