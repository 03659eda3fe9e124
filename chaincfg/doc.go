// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the network and consensus parameters for the
// three supported chain identities — main, test, and regtest — and the
// ParamsRegistry that selects one of them as the process-wide active set.
//
// Every ChainParams value is constructed once, at package init, and is
// safe to share across goroutines without further synchronization; the
// single carve-out is regtest's UpdateRegtestDeployment, a test-only
// escape hatch that must not run concurrently with consensus validation.
package chaincfg
