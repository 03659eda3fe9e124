// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/testcoin-project/tstd/arith256"
)

// Deployment identifies one of the fixed set of soft-fork version-bit
// deployments this core tracks.
type Deployment int

const (
	// DeploymentTestDummy defines the test dummy soft-fork deployment
	// used to test the deployment infrastructure itself.
	DeploymentTestDummy Deployment = iota

	// DeploymentCSV defines the relative lock-time (CSV) soft-fork
	// deployment.
	DeploymentCSV

	// DeploymentSegwit defines the segregated witness soft-fork
	// deployment.
	DeploymentSegwit

	// DefinedDeployments is the number of defined deployments and must
	// always come last so new deployments can be appended above it.
	DefinedDeployments
)

// ConsensusDeployment describes the activation schedule of one soft-fork
// deployment: the version bit it's signaled on and the window of time
// during which signaling is meaningful.
type ConsensusDeployment struct {
	// BitNumber is the bit position, 0-28, in the block version used to
	// signal the deployment.
	BitNumber uint8

	// StartTime is the median block time, in UNIX seconds, at which
	// signaling for this deployment is first recognized.
	StartTime uint64

	// Timeout is the median block time, in UNIX seconds, after which the
	// deployment is considered failed if it hasn't locked in.
	Timeout uint64
}

// ConsensusParams holds every consensus-relevant constant for one chain
// identity. It is immutable once constructed; the sole exception is
// regtest's Deployments array, which UpdateRegtestDeployment may rewrite
// from single-threaded test setup.
type ConsensusParams struct {
	// SubsidyHalvingInterval is the number of blocks between halvings of
	// the block subsidy.
	SubsidyHalvingInterval int32

	// MajorityEnforceBlockUpgrade is the number of blocks, out of
	// MajorityWindow, that must signal a new block version before it's
	// enforced.
	MajorityEnforceBlockUpgrade uint32

	// MajorityRejectBlockOutdated is the number of blocks, out of
	// MajorityWindow, that must signal a new block version before
	// outdated blocks are rejected.
	MajorityRejectBlockOutdated uint32

	// MajorityWindow is the number of recent blocks inspected to
	// determine block version majority.
	MajorityWindow uint32

	// BIP34Height is the height at which BIP34 height-in-coinbase
	// enforcement began. A negative value means the rule was never
	// assigned a concrete activation height on this chain and must be
	// treated as "never activated", not as a large unsigned height.
	BIP34Height int32

	// BIP34Hash is the hash of the block at BIP34Height, used as an
	// additional cross-check. It is the zero hash when unused.
	BIP34Hash chainhash.Hash

	// PowLimit is the highest (easiest) target permitted on this chain.
	PowLimit arith256.Uint256

	// CharityPubKey is an opaque, chain-specific hex-encoded value baked
	// into this chain's identity. Its interpretation belongs to the
	// coinbase payout policy, which is outside this core; it is carried
	// here only as an inert value.
	CharityPubKey []byte

	// PowTargetTimespan is the retarget window length, in seconds.
	PowTargetTimespan int64

	// PowTargetSpacing is the intended time between blocks, in seconds.
	PowTargetSpacing int64

	// AllowMinDifficultyBlocks permits blocks at the PoW limit after a
	// spacing gap, used by test networks to keep mining cheap.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables the DigiShield retarget entirely, holding
	// the target fixed at whatever the previous block used.
	NoRetargeting bool

	// RuleChangeActivationThreshold is the number of blocks, out of
	// MinerConfirmationWindow, that must signal a deployment before it
	// locks in.
	RuleChangeActivationThreshold uint32

	// MinerConfirmationWindow is the number of blocks in one deployment
	// signaling window.
	MinerConfirmationWindow uint32

	// Deployments holds the activation schedule for each tracked
	// soft-fork, indexed by Deployment.
	Deployments [DefinedDeployments]ConsensusDeployment

	// MinimumChainWork is the lowest cumulative proof-of-work a valid
	// chain on this network may have; used to reject low-work chains
	// outright. Not enforced by this core directly, but carried as part
	// of the chain identity.
	MinimumChainWork arith256.Uint256

	// HashGenesisBlock is the expected hash of this chain's genesis
	// block, checked against the constructed GenesisBlock at init time.
	HashGenesisBlock chainhash.Hash
}

// DifficultyAdjustmentInterval returns the number of blocks between
// DigiShield retarget boundaries.
func (p *ConsensusParams) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// Base58PrefixKind names one of the fixed set of address-encoding prefix
// bytes a chain carries. Interpreting these bytes into addresses is
// outside this core; they're stored only as data.
type Base58PrefixKind int

const (
	PubKeyAddrPrefix Base58PrefixKind = iota
	ScriptAddrPrefix
	ScriptAddrPrefix2
	SecretKeyPrefix
	ExtPubKeyPrefix
	ExtSecretKeyPrefix
)

// Checkpoint is a single trusted (height, hash) pair.
type Checkpoint struct {
	Height int32
	Hash   chainhash.Hash
}

// CheckpointData bundles a chain's checkpoint list with the bookkeeping
// values used to estimate sync progress against it.
type CheckpointData struct {
	Checkpoints             []Checkpoint
	TimeLastCheckpoint      int64
	TxCountAtLastCheckpoint int64
	TxPerDayEstimate        int64
}

// Network identifies one of the three supported chain identities.
type Network string

const (
	Main    Network = "main"
	Test    Network = "test"
	Regtest Network = "regtest"
)

// ChainParams wraps a ConsensusParams with the network-identity data that
// sits above pure consensus rules: magic bytes, address prefixes,
// checkpoints, seed data, and policy flags.
type ChainParams struct {
	NetworkID        Network
	MessageStart     [4]byte
	DefaultPort      uint16
	PruneAfterHeight uint32
	Base58Prefixes   map[Base58PrefixKind][]byte
	CheckpointData   CheckpointData
	FixedSeeds       []string

	MiningRequiresPeers           bool
	DefaultConsistencyChecks      bool
	RequireStandard               bool
	MineBlocksOnDemand            bool
	TestnetToBeDeprecatedFieldRPC bool

	GenesisBlock Genesis
	Consensus    ConsensusParams
}
