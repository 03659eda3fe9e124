// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import "github.com/btcsuite/btclog"

var log = btclog.Disabled

// DisableLog disables all logging output for this package.
func DisableLog() {
	log = btclog.Disabled
}

// UseLogger sets the package-level logger to the passed logger.
func UseLogger(logger btclog.Logger) {
	log = logger
}
