// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"math"

	"github.com/testcoin-project/tstd/arith256"
	"github.com/testcoin-project/tstd/chaincfg"
)

// Kimoto Gravity Well constants. These are consensus-critical and fixed
// across every chain identity — unlike powTargetSpacing, kgwTargetSpacing
// is not a ConsensusParams field, since KGW predates (and is superseded
// by) the per-chain DigiShield parameters.
const (
	kgwTargetSpacing int64 = 60
	kgwPastBlocksMin int64 = 360   // (86400 * 0.25) / 60
	kgwPastBlocksMax int64 = 10080 // (86400 * 7) / 60
)

// kimotoGravityWell computes the required target using the walking,
// self-adjusting-window retarget algorithm used before the chain's
// hard-fork height. The floating-point deviation calculation and the
// ratio it's compared against are IEEE-754 binary64 by requirement: any
// substitution changes the chain.
func kimotoGravityWell(prevTip HeaderCtx, header CandidateHeader, params *chaincfg.ConsensusParams) uint32 {
	limitCompact := params.PowLimit.ToCompact()

	if prevTip == nil || prevTip.Height() == 0 || int64(prevTip.Height()) < kgwPastBlocksMin {
		return limitCompact
	}

	var (
		mass         int64
		avg, avgPrev arith256.Uint256
		actualSec    int64
		targetSec    int64
	)

	reading := prevTip
	for i := int64(1); reading != nil && reading.Height() > 0; i++ {
		if kgwPastBlocksMax > 0 && i > kgwPastBlocksMax {
			break
		}
		mass++

		cur, _, _ := arith256.FromCompact(reading.Bits())
		if i == 1 {
			avg = cur
		} else if cur.Cmp(avgPrev) >= 0 {
			avg = avgPrev.Add(cur.Sub(avgPrev).DivUint64(uint64(i)))
		} else {
			avg = avgPrev.Sub(avgPrev.Sub(cur).DivUint64(uint64(i)))
		}
		avgPrev = avg

		actualSec = int64(prevTip.Timestamp()) - int64(reading.Timestamp())
		if actualSec < 0 {
			actualSec = 0
		}
		targetSec = kgwTargetSpacing * mass

		ratio := 1.0
		if actualSec != 0 && targetSec != 0 {
			ratio = float64(targetSec) / float64(actualSec)
		}

		deviation := 1 + 0.7084*math.Pow(float64(mass)/144.0, -1.228)
		fast := deviation
		slow := 1 / deviation

		if mass >= kgwPastBlocksMin && (ratio <= slow || ratio >= fast) {
			break
		}

		parent := reading.Parent()
		if parent == nil {
			break
		}
		reading = parent
	}

	bn := avg
	if actualSec != 0 && targetSec != 0 {
		bn = bn.MulUint64(uint64(actualSec)).DivUint64(uint64(targetSec))
	}
	bn = bn.Clamp(params.PowLimit)

	return bn.ToCompact()
}
