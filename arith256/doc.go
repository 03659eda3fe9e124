// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package arith256 implements fixed-width 256-bit unsigned integer
// arithmetic with the overflow behavior of Bitcoin's arith_uint256: no
// panics, truncating multiplication and division, and the compact
// ("nBits") floating-point-style encoding used for proof-of-work targets.
//
// Values are stored as four 64-bit limbs, least-significant first, rather
// than built on top of math/big. A general-purpose bignum type would
// normalize away the exact overflow and truncation semantics that the
// difficulty retarget algorithms depend on bit-for-bit.
package arith256
