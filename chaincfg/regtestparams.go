// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

// regtestGenesisPubKey is the raw uncompressed public key regtest's
// simulated-Litecoin genesis pays to directly, rather than to a P2PKH
// hash — this chain reuses Litecoin's historical genesis verbatim so
// regtest can exercise the same validation fixtures.
var regtestGenesisPubKey = []byte{
	0x04, 0x01, 0x84, 0x71, 0x0f, 0xa6, 0x89, 0xad, 0x50, 0x23,
	0x69, 0x0c, 0x80, 0xf3, 0xa4, 0x9c, 0x8f, 0x13, 0xf8, 0xd4,
	0x5b, 0x8c, 0x85, 0x7f, 0xbc, 0xbc, 0x8b, 0xc4, 0xa8, 0xe4,
	0xd3, 0xeb, 0x4b, 0x10, 0xf4, 0xd4, 0x60, 0x4f, 0xa0, 0x8d,
	0xce, 0x60, 0x1a, 0xaf, 0x0f, 0x47, 0x02, 0x16, 0xfe, 0x1b,
	0x51, 0x85, 0x0b, 0x4a, 0xcf, 0x21, 0xb1, 0x79, 0xc4, 0x50,
	0x70, 0xac, 0x7b, 0x03, 0xa9,
}

var regtestGenesisMessage = "NY Times 05/Oct/2011 Steve Jobs, Apple’s Visionary, Dies at 56"

var regtestGenesis = mustGenesis(
	Regtest,
	regtestGenesisMessage,
	pubKeyScript(regtestGenesisPubKey),
	1296688602, 0, 0x207fffff, 1, 50*100000000,
	"530827f38f93b43ed12af0b3ad25a288dc02ed74d6d7857862df51fc56c416f9",
	"97ddfbbae6be97fd6cdf3e7ca13232a3afff2353e29badfab7f73011edd4ced9",
)

// RegressionNetParams defines the network parameters for the regression
// test network. RegressionNetParams.Consensus.Deployments is the one
// mutable field in this package: UpdateRegtestDeployment rewrites it from
// test setup.
var RegressionNetParams = ChainParams{
	NetworkID:        Regtest,
	MessageStart:     [4]byte{0xaf, 0xfb, 0x5b, 0xad},
	DefaultPort:      31826,
	PruneAfterHeight: 1000,
	Base58Prefixes: map[Base58PrefixKind][]byte{
		PubKeyAddrPrefix:   {111},
		ScriptAddrPrefix:   {196},
		ScriptAddrPrefix2:  {58},
		SecretKeyPrefix:    {239},
		ExtPubKeyPrefix:    {0x04, 0x35, 0x87, 0xCF},
		ExtSecretKeyPrefix: {0x04, 0x35, 0x83, 0x94},
	},
	CheckpointData: CheckpointData{
		Checkpoints: []Checkpoint{
			{Height: 0, Hash: regtestGenesis.Hash},
		},
	},
	FixedSeeds: nil,

	MiningRequiresPeers:           false,
	DefaultConsistencyChecks:      true,
	RequireStandard:               false,
	MineBlocksOnDemand:            true,
	TestnetToBeDeprecatedFieldRPC: false,

	GenesisBlock: regtestGenesis,
	Consensus: ConsensusParams{
		SubsidyHalvingInterval:        150,
		MajorityEnforceBlockUpgrade:   750,
		MajorityRejectBlockOutdated:   950,
		MajorityWindow:                1000,
		BIP34Height:                   -1,
		PowLimit:                      mustUint256("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		CharityPubKey:                 []byte("0377ba3117d776b40b49a910e869cd32adee4d33578f7bf52e1879ea739c9796ca"),
		PowTargetTimespan:             302400,
		PowTargetSpacing:              150,
		AllowMinDifficultyBlocks:      true,
		NoRetargeting:                 true,
		RuleChangeActivationThreshold: 108,
		MinerConfirmationWindow:       144,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 0, Timeout: 999999999999},
			DeploymentCSV:       {BitNumber: 0, StartTime: 0, Timeout: 999999999999},
			DeploymentSegwit:    {BitNumber: 1, StartTime: 0, Timeout: 999999999999},
		},
		MinimumChainWork: mustUint256("00"),
		HashGenesisBlock: regtestGenesis.Hash,
	},
}
