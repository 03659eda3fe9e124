// Copyright (c) 2013-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"

	"github.com/testcoin-project/tstd/chaincfg"
)

const (
	defaultChain       = "main"
	defaultLogLevel    = "info"
	defaultLogFilename = "powcheck.log"
)

// config defines the configuration options for powcheck.
//
// See loadConfig for details on the configuration load process.
type config struct {
	Chain      string `short:"c" long:"chain" description:"Chain to check against: main, test, or regtest"`
	Height     int32  `long:"height" description:"Candidate block height to compute the required target for; 0 means the first block after genesis"`
	Spacing    int64  `long:"spacing" description:"Seconds between each synthetic ancestor block used to build the chain prefix up to --height"`
	Hash       string `long:"hash" description:"32-byte big-endian hex block hash to verify against --bits"`
	Bits       string `long:"bits" description:"32-bit hex compact target (nBits) to verify --hash against, or to decode on its own"`
	LogLevel   string `long:"loglevel" description:"Logging level: trace, debug, info, warn, error, critical, off"`
	LogFile    string `long:"logfile" description:"File to write rotated logs to"`
	NoFileLogs bool   `long:"nofilelogs" description:"Disable writing logs to --logfile, stdout only"`
}

// loadConfig parses the command line into a config, applying defaults and
// resolving the selected chain's parameters.
func loadConfig() (*config, *chaincfg.ChainParams, error) {
	cfg := config{
		Chain:    defaultChain,
		LogLevel: defaultLogLevel,
		LogFile:  defaultLogFilename,
	}

	parser := flags.NewParser(&cfg, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if e, ok := err.(*flags.Error); !ok || e.Type != flags.ErrHelp {
			parser.WriteHelp(os.Stderr)
		}
		return nil, nil, err
	}

	var registry chaincfg.ParamsRegistry
	if err := registry.Select(chaincfg.Network(cfg.Chain)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil, nil, err
	}

	params, err := registry.Active()
	if err != nil {
		return nil, nil, err
	}

	return &cfg, params, nil
}
