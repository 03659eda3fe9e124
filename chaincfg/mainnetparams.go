// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

var mainGenesisMessage = "NY Times 19/Feb/2014 North Korea Arrests Christian Missionary From Australia"

var mainGenesisPubKeyHash = []byte{
	0x1c, 0xec, 0x44, 0xc9, 0xf9, 0xb7, 0x69, 0xae, 0x08, 0xeb,
	0xf9, 0xd6, 0x94, 0xc7, 0x61, 0x1a, 0x16, 0xed, 0xf6, 0x15,
}

var mainGenesis = mustGenesis(
	Main,
	mainGenesisMessage,
	p2pkhScript(mainGenesisPubKeyHash),
	1392841423, 3236648, 0x1e0ffff0, 1, 50*100000000,
	"4e56204bb7b8ac06f860ff1c845f03f984303b5b97eb7b42868f714611aed94b",
	"b3e47e8776012ee4352acf603e6b9df005445dcba85c606697f422be3cc26f9b",
)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = ChainParams{
	NetworkID:        Main,
	MessageStart:     [4]byte{0xee, 0xcb, 0x4c, 0xca},
	DefaultPort:      41826,
	PruneAfterHeight: 100000,
	Base58Prefixes: map[Base58PrefixKind][]byte{
		PubKeyAddrPrefix:   {33},
		ScriptAddrPrefix:   {5},
		ScriptAddrPrefix2:  {55},
		SecretKeyPrefix:    {176},
		ExtPubKeyPrefix:    {0x04, 0x88, 0xB2, 0x1E},
		ExtSecretKeyPrefix: {0x04, 0x88, 0xAD, 0xE4},
	},
	CheckpointData: CheckpointData{
		Checkpoints: []Checkpoint{
			{Height: 0, Hash: mustHash("4e56204bb7b8ac06f860ff1c845f03f984303b5b97eb7b42868f714611aed94b")},
			{Height: 14871, Hash: mustHash("5dedc3dd860f008c717d69b8b00f0476de8bc6bdac8d543fb58c946f32f982fa")},
			{Height: 36032, Hash: mustHash("ff37468190b2801f2e72eb1762ca4e53cda6c075af48343f28a32b649512e9a8")},
			{Height: 51365, Hash: mustHash("702b407c68091f3c97a587a8d92684666bb622f6821944424b850964b366e42c")},
			{Height: 621000, Hash: mustHash("e2bf6d219cff9d6d7661b7964a05bfea3128265275c3673616ae71fed7072981")},
			{Height: 1410100, Hash: mustHash("f6736ff2a7743014ab1902e442328f5c9928ce7f4edb2b4fd0130010cb4cebc4")},
		},
		TimeLastCheckpoint:      1494147472,
		TxCountAtLastCheckpoint: 2147811,
		TxPerDayEstimate:        2000,
	},
	FixedSeeds: nil,

	MiningRequiresPeers:           true,
	DefaultConsistencyChecks:      false,
	RequireStandard:               true,
	MineBlocksOnDemand:            false,
	TestnetToBeDeprecatedFieldRPC: false,

	GenesisBlock: mainGenesis,
	Consensus: ConsensusParams{
		SubsidyHalvingInterval:        840000,
		MajorityEnforceBlockUpgrade:   1875,
		MajorityRejectBlockOutdated:   2375,
		MajorityWindow:                2500,
		BIP34Height:                   1,
		BIP34Hash:                     mustHash("d1c175570320d4d6388a4525385b8f20460d340f621cfeebb9824712b9e593c5"),
		PowLimit:                      mustUint256("00000fffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"),
		CharityPubKey:                 []byte("1cec44c9f9b769ae08ebf9d694c7611a16edf615"),
		PowTargetTimespan:             60,
		PowTargetSpacing:              60,
		AllowMinDifficultyBlocks:      false,
		NoRetargeting:                 false,
		RuleChangeActivationThreshold: 15120,
		MinerConfirmationWindow:       20160,
		Deployments: [DefinedDeployments]ConsensusDeployment{
			DeploymentTestDummy: {BitNumber: 28, StartTime: 1199145601, Timeout: 1230767999},
			DeploymentCSV:       {BitNumber: 0, StartTime: 1485561600, Timeout: 1517356801},
			DeploymentSegwit:    {BitNumber: 1, StartTime: 1485561600, Timeout: 1517356801},
		},
		MinimumChainWork: mustUint256("00000000000000000000000000000000000000000000000000c77bc63bfadbd1"),
		HashGenesisBlock: mainGenesis.Hash,
	},
}
