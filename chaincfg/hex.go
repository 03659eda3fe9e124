// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"encoding/hex"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/testcoin-project/tstd/arith256"
)

// mustPowLimitFromBits decodes a genesis-style compact target into a
// Uint256, panicking if it decodes as negative or overflowing. No network
// in this package builds its PowLimit this way: a compact target keeps
// only a 23-bit mantissa and cannot express an all-ones limit, so main,
// test and regtest all use mustUint256 against their absolute PowLimit
// literal (see DESIGN.md).
func mustPowLimitFromBits(bits uint32) arith256.Uint256 {
	value, negative, overflow := arith256.FromCompact(bits)
	if negative || overflow {
		panic("chaincfg: genesis bits decode as negative or overflowing")
	}
	return value
}

// mustHash parses a hex string into a chainhash.Hash, panicking on a
// malformed constant — these are compile-time-fixed values, so a parse
// failure here is a bug in this file, not a runtime condition.
func mustHash(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic("chaincfg: malformed hash constant " + s + ": " + err.Error())
	}
	return *h
}

// mustUint256 parses a plain big-endian hex number (as Bitcoin-lineage
// uint256S literals are written) into an arith256.Uint256, left-padding
// with zeroes and stripping an optional "0x" prefix. Unlike mustHash,
// this never reverses byte order: it's used for powLimit and
// minimumChainWork constants, which are read as ordinary numbers rather
// than displayed as reversed hashes.
func mustUint256(s string) arith256.Uint256 {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		s = "0" + s
	}
	for len(s) < 64 {
		s = "0" + s
	}
	if len(s) > 64 {
		panic("chaincfg: uint256 constant " + s + " exceeds 256 bits")
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		panic("chaincfg: malformed uint256 constant " + s + ": " + err.Error())
	}
	var be [32]byte
	copy(be[:], raw)
	var v arith256.Uint256
	v.SetBytesBE(be)
	return v
}
