// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "fmt"

// UnknownChain is returned by Select when asked for a network name that
// isn't one of "main", "test", or "regtest".
type UnknownChain string

// Error satisfies the error interface.
func (e UnknownChain) Error() string {
	return fmt.Sprintf("chaincfg: unknown chain %q", string(e))
}

// NotInitialized is returned by Active when called before Select.
type NotInitialized struct{}

// Error satisfies the error interface.
func (NotInitialized) Error() string {
	return "chaincfg: params requested before Select was called"
}

// ParamsRegistry is a process-wide selector binding one of the three
// named chains as the active parameter set. It is publish-once: after
// Select returns, the referenced ChainParams is treated as immutable and
// may be read concurrently without further synchronization. The single
// carve-out is UpdateRegtestDeployment, expected to run only from
// single-threaded test setup.
type ParamsRegistry struct {
	active *ChainParams
}

// Select binds name as the active chain. It fails with UnknownChain if
// name isn't one of "main", "test", or "regtest".
func (r *ParamsRegistry) Select(name Network) error {
	switch name {
	case Main:
		r.active = &MainNetParams
	case Test:
		r.active = &TestNetParams
	case Regtest:
		r.active = &RegressionNetParams
	default:
		return UnknownChain(name)
	}
	log.Infof("selected chain %q", name)
	return nil
}

// Active returns the currently selected ChainParams, or NotInitialized
// if Select was never called.
func (r *ParamsRegistry) Active() (*ChainParams, error) {
	if r.active == nil {
		return nil, NotInitialized{}
	}
	return r.active, nil
}

// UpdateRegtestDeployment overrides one deployment's start/timeout on
// RegressionNetParams. It has no effect on main or test, is idempotent,
// and must not be called concurrently with consensus validation — it
// exists only for test harnesses that need a deployment active
// immediately.
func (r *ParamsRegistry) UpdateRegtestDeployment(kind Deployment, start, timeout uint64) {
	RegressionNetParams.Consensus.Deployments[kind].StartTime = start
	RegressionNetParams.Consensus.Deployments[kind].Timeout = timeout
}
