// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParamsRegistryActiveBeforeSelect(t *testing.T) {
	var r ParamsRegistry
	_, err := r.Active()
	require.ErrorIs(t, err, NotInitialized{})
}

func TestParamsRegistrySelectUnknownChain(t *testing.T) {
	var r ParamsRegistry
	err := r.Select(Network("nonexistent"))
	require.EqualError(t, err, `chaincfg: unknown chain "nonexistent"`)
}

func TestParamsRegistrySelectEachNetwork(t *testing.T) {
	cases := []struct {
		name Network
		want *ChainParams
	}{
		{Main, &MainNetParams},
		{Test, &TestNetParams},
		{Regtest, &RegressionNetParams},
	}

	for _, tc := range cases {
		var r ParamsRegistry
		require.NoError(t, r.Select(tc.name))

		active, err := r.Active()
		require.NoError(t, err)
		require.Same(t, tc.want, active)
		require.Equal(t, tc.name, active.NetworkID)
	}
}

func TestUpdateRegtestDeploymentOverridesSchedule(t *testing.T) {
	var r ParamsRegistry
	require.NoError(t, r.Select(Regtest))

	r.UpdateRegtestDeployment(DeploymentCSV, 1000, 2000)

	active, err := r.Active()
	require.NoError(t, err)
	require.Equal(t, uint64(1000), active.Consensus.Deployments[DeploymentCSV].StartTime)
	require.Equal(t, uint64(2000), active.Consensus.Deployments[DeploymentCSV].Timeout)

	// Main and test are unaffected.
	require.NotEqual(t, uint64(1000), MainNetParams.Consensus.Deployments[DeploymentCSV].StartTime)

	// Restore so other tests observe the documented default.
	r.UpdateRegtestDeployment(DeploymentCSV, 0, 999999999999)
}

func TestGenesisInvariantViolatedError(t *testing.T) {
	err := &GenesisInvariantViolated{Network: Main, Reason: "hash mismatch"}
	require.EqualError(t, err, "chaincfg: genesis invariant violated for main: hash mismatch")
}
