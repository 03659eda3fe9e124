// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

var testGenesisMessage = mainGenesisMessage

var testGenesis = mustGenesis(
	Test,
	testGenesisMessage,
	p2pkhScript(mainGenesisPubKeyHash),
	1494757042, 2231829, 0x1e0ffff0, 1, 50*100000000,
	"a4271888b5e60092c3e7183a76d454741e9a7a55f2b4afbe574615829e406bee",
	"b3e47e8776012ee4352acf603e6b9df005445dcba85c606697f422be3cc26f9b",
)

// TestNetParams defines the network parameters for the test network.
var TestNetParams = ChainParams{
	NetworkID:        Test,
	MessageStart:     [4]byte{0xaf, 0x2a, 0x0f, 0x1c},
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
			{Height: 0, Hash: mustHash("a4271888b5e60092c3e7183a76d454741e9a7a55f2b4afbe574615829e406bee")},
			{Height: 6, Hash: mustHash("8618a815ad94f918a7d3d4df7ebc4df5f14da1ea25d0eb156b6a32f9621c2ce4")},
		},
		TimeLastCheckpoint:      1494590578,
		TxCountAtLastCheckpoint: 7,
		TxPerDayEstimate:        1500,
	},
	FixedSeeds: nil,

	MiningRequiresPeers:           true,
	DefaultConsistencyChecks:      false,
	RequireStandard:               false,
	MineBlocksOnDemand:            false,
	TestnetToBeDeprecatedFieldRPC: true,

	GenesisBlock: testGenesis,
	Consensus: ConsensusParams{
		SubsidyHalvingInterval:        840000,
		MajorityEnforceBlockUpgrade:   180,
		MajorityRejectBlockOutdated:   228,
		MajorityWindow:                240,
		BIP34Height:                   -1,
		PowLimit:                      mustUint256("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		CharityPubKey:                 []byte("02bde17927d1340113fa6f795cac7ffee4c9364ba55f7e7b97413b48e69817baa6"),
		PowTargetTimespan:             60,
		PowTargetSpacing:              60,
		AllowMinDifficultyBlocks:      true,
		NoRetargeting:                 false,
		RuleChangeActivationThreshold: 1512,
		MinerConfirmationWindow:       2016,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, Timeout: 1230767999},
			DeploymentCSV:       {BitNumber: 0, StartTime: 1483228800, Timeout: 1517356801},
			DeploymentSegwit:    {BitNumber: 1, StartTime: 1483228800, Timeout: 1517356801},
		},
		MinimumChainWork: mustUint256("00"),
		HashGenesisBlock: testGenesis.Hash,
	},
}
