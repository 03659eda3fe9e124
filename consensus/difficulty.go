// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "github.com/testcoin-project/tstd/chaincfg"

// DiffChangeTarget is the candidate height at which this chain switched
// from Kimoto Gravity Well to DigiShield retargeting. It is fixed across
// every chain identity and is not a ConsensusParams field.
const DiffChangeTarget int32 = 56000

// RequiredTarget returns the compact target the candidate block after
// prevTip must meet. prevTip is nil only when the candidate is the first
// block after genesis. header supplies the candidate's timestamp; every
// other header field is irrelevant to this decision.
//
// RequiredTarget is total: given a well-formed chain prefix it always
// returns a valid compact target. A missing ancestor at a point the
// chosen algorithm requires one indicates caller-supplied chain-index
// corruption and panics with an AssertError rather than returning an
// error, matching the source this was derived from.
func RequiredTarget(prevTip HeaderCtx, header CandidateHeader, params *chaincfg.ConsensusParams) uint32 {
	h := int32(1)
	if prevTip != nil {
		h = prevTip.Height() + 1
	}

	if h >= DiffChangeTarget || params.AllowMinDifficultyBlocks {
		bits := digiShieldRetarget(prevTip, header, h, params)
		log.Debugf("height %d retargeted via DigiShield: %08x", h, bits)
		return bits
	}
	bits := kimotoGravityWell(prevTip, header, params)
	log.Debugf("height %d retargeted via Kimoto Gravity Well: %08x", h, bits)
	return bits
}
