// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "github.com/btcsuite/btclog"

// log is the package-level logger used by this package. It defaults to a
// no-op implementation so it's usable without a dependency on a specific
// concrete logger implementation until the caller wires one in with
// UseLogger.
var log = btclog.Disabled

// DisableLog disables all logging output for this package. This should
// normally only be used during development since it blocks callers from
// observing retargeting decisions they may want logged.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger sets the package-level logger to the passed logger.
func UseLogger(logger btclog.Logger) {
	log = logger
}
