// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2017 The Testcoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrorCodeStringKnown(t *testing.T) {
	require.Equal(t, "ErrNoPrevTip", ErrNoPrevTip.String())
	require.Equal(t, "ErrInvalidCompactTarget", ErrInvalidCompactTarget.String())
}

func TestErrorCodeStringUnknown(t *testing.T) {
	require.Equal(t, "Unknown ErrorCode (99)", ErrorCode(99).String())
}

func TestRuleErrorMessage(t *testing.T) {
	err := ruleError(ErrInvalidCompactTarget, "boom")
	require.Equal(t, "boom", err.Error())
	require.Equal(t, ErrInvalidCompactTarget, err.ErrorCode)
}

func TestAssertErrorMessage(t *testing.T) {
	err := AssertError("missing ancestor")
	require.Equal(t, "assertion failed: missing ancestor", err.Error())
}
