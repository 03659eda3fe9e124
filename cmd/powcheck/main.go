// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command powcheck is a small diagnostic tool over this module's
// difficulty engine and proof-of-work verifier: given a chain identity and
// a candidate height, it builds a synthetic ancestor chain at uniform
// spacing and reports the compact target required at that height, and
// optionally verifies a hash against a supplied target.
package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/testcoin-project/tstd/chaincfg"
	"github.com/testcoin-project/tstd/consensus"
	tlog "github.com/testcoin-project/tstd/internal/log"
)

// buildSyntheticChain links height nodes of the given spacing (in
// seconds), each holding params.PowLimit's compact form as a stand-in
// target, and returns the tip.
func buildSyntheticChain(height int32, spacing int64, params *chaincfg.ChainParams) *consensus.BlockIndexNode {
	if height <= 0 {
		return nil
	}

	bits := params.Consensus.PowLimit.ToCompact()
	var tip *consensus.BlockIndexNode
	for h := int32(0); h < height; h++ {
		tip = consensus.NewBlockIndexNode(h, bits, uint32(int64(params.GenesisBlock.Time)+int64(h)*spacing), tip)
	}
	return tip
}

func realMain() error {
	cfg, params, err := loadConfig()
	if err != nil {
		return err
	}

	if !cfg.NoFileLogs {
		tlog.InitLogRotator(cfg.LogFile)
	}
	tlog.SetLogLevels(cfg.LogLevel)
	log := tlog.PwckLog

	spacing := cfg.Spacing
	if spacing <= 0 {
		spacing = params.Consensus.PowTargetSpacing
	}

	tip := buildSyntheticChain(cfg.Height, spacing, params)
	candidateTime := params.GenesisBlock.Time + uint32(int64(cfg.Height)*spacing)
	candidate := consensus.NewCandidateHeader(candidateTime)

	// tip is a typed nil *BlockIndexNode at height 0; RequiredTarget
	// checks its HeaderCtx argument against the untyped nil, so a typed
	// nil must be normalized to a true nil interface first.
	var prevTip consensus.HeaderCtx
	if tip != nil {
		prevTip = tip
	}

	requiredBits, err := consensus.SafeRequiredTarget(prevTip, candidate, &params.Consensus)
	if err != nil {
		log.Errorf("computing required target: %v", err)
		return err
	}

	fmt.Printf("chain=%s height=%d requiredBits=0x%08x\n", params.NetworkID, cfg.Height, requiredBits)

	if cfg.Bits == "" {
		return nil
	}

	bitsVal, err := strconv.ParseUint(cfg.Bits, 16, 32)
	if err != nil {
		log.Errorf("invalid --bits %q: %v", cfg.Bits, err)
		return err
	}

	if _, err := consensus.DecodeCompactTarget(uint32(bitsVal)); err != nil {
		fmt.Printf("bits=0x%08x: %v\n", bitsVal, err)
		return nil
	}

	if cfg.Hash == "" {
		return nil
	}

	hashBytes, err := hex.DecodeString(cfg.Hash)
	if err != nil || len(hashBytes) != 32 {
		err := fmt.Errorf("--hash must be 32 bytes of hex, got %d bytes", len(hashBytes))
		log.Errorf("%v", err)
		return err
	}

	var hash [32]byte
	copy(hash[:], hashBytes)

	valid := consensus.CheckProofOfWork(hash, uint32(bitsVal), &params.Consensus)
	fmt.Printf("hash=%s bits=0x%08x valid=%t\n", cfg.Hash, bitsVal, valid)
	return nil
}

func main() {
	if err := realMain(); err != nil {
		os.Exit(1)
	}
}
