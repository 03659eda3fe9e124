// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import "fmt"

// AssertError identifies an error that indicates an internal consistency
// issue, such as a missing ancestor the algorithm requires, and should be
// treated as a critical and unrecoverable error rather than a consensus
// signal.
type AssertError string

// Error satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}

// ErrorCode identifies a kind of RuleError.
type ErrorCode int

const (
	// ErrNoPrevTip indicates the difficulty engine was asked to retarget
	// at a point that requires an ancestor the caller didn't supply.
	ErrNoPrevTip ErrorCode = iota

	// ErrInvalidCompactTarget indicates a compact target decodes as
	// negative, zero, or flags overflow.
	ErrInvalidCompactTarget
)

var errorCodeStrings = map[ErrorCode]string{
	ErrNoPrevTip:            "ErrNoPrevTip",
	ErrInvalidCompactTarget: "ErrInvalidCompactTarget",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// RuleError identifies a consensus rule violation surfaced to the caller
// rather than asserted away.
type RuleError struct {
	ErrorCode   ErrorCode
	Description string
}

// Error satisfies the error interface.
func (e RuleError) Error() string {
	return e.Description
}

func ruleError(c ErrorCode, desc string) RuleError {
	return RuleError{ErrorCode: c, Description: desc}
}
