// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package testutils

import (
	"bytes"
	"testing"

	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

// SetupTest returns a user log writing into a buffer the test can inspect.
func SetupTest(t *testing.T) (*require.Assertions, *ux.UserLog, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return require.New(t), ux.New(zaptest.NewLogger(t), out), out
}

// NopLogger is a logger for components whose log output is irrelevant to the test.
func NopLogger() *zap.Logger {
	return zap.NewNop()
}
