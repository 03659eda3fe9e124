// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/testcoin-project/tstd/chaincfg"
	"github.com/testcoin-project/tstd/consensus"
)

// logWriter implements an io.Writer that outputs to standard output and,
// once InitLogRotator has run, to the write-end pipe of the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if LogRotator != nil {
		LogRotator.Write(p)
	}
	return len(p), nil
}

// Loggers per subsystem. A single backend logger is created and all
// subsystem loggers created from it write to the backend. Until
// InitLogRotator is called with a log file, they write to standard output
// only.
var (
	backendLog = btclog.NewBackend(logWriter{})

	// LogRotator is one of the logging outputs. It should be closed on
	// application shutdown.
	LogRotator *rotator.Rotator

	// CfgLog is the chaincfg subsystem's logger: registry selection and
	// genesis construction.
	CfgLog = backendLog.Logger("CCFG")

	// CnsLog is the consensus subsystem's logger: difficulty retargets
	// and proof-of-work verification.
	CnsLog = backendLog.Logger("CNSS")

	// PwckLog is cmd/powcheck's own logger.
	PwckLog = backendLog.Logger("PWCK")
)

func init() {
	chaincfg.UseLogger(CfgLog)
	consensus.UseLogger(CnsLog)
}

// SubsystemLoggers maps each subsystem identifier to its associated logger.
var SubsystemLoggers = map[string]btclog.Logger{
	"CCFG": CfgLog,
	"CNSS": CnsLog,
	"PWCK": PwckLog,
}

// InitLogRotator initializes the logging rotator to write logs to logFile
// and create roll files in the same directory. It must be called before the
// package-global log rotator variables are used.
func InitLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
		os.Exit(1)
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create file rotator: %v\n", err)
		os.Exit(1)
	}

	LogRotator = r
}

// SetLogLevel sets the logging level for the given subsystem. Invalid
// subsystems are ignored.
func SetLogLevel(subsystemID string, logLevel string) {
	logger, ok := SubsystemLoggers[subsystemID]
	if !ok {
		return
	}

	level, _ := btclog.LevelFromString(logLevel)
	logger.SetLevel(level)
}

// SetLogLevels sets the log level for every subsystem logger.
func SetLogLevels(logLevel string) {
	for subsystemID := range SubsystemLoggers {
		SetLogLevel(subsystemID, logLevel)
	}
}
