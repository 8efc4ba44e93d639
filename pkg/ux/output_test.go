// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"bytes"
	"testing"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestPrintToUserMirrorsToLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	out := &bytes.Buffer{}
	ul := New(zap.New(core), out)

	ul.PrintToUser("%s contract: %s", "Counter", "0x01")

	require.Equal(t, "Counter contract: 0x01\n", out.String())
	require.Equal(t, 1, logs.Len())
	require.Equal(t, "Counter contract: 0x01", logs.All()[0].Message)
}

func TestRedToUserKeepsPercentSigns(t *testing.T) {
	out := &bytes.Buffer{}
	ul := New(nil, out)
	ul.RedToUser("100%% sure: %s", "yes")
	require.Contains(t, out.String(), "100% sure: yes")
}

func TestPrintTable(t *testing.T) {
	out := &bytes.Buffer{}
	ul := New(nil, out)
	tbl := DefaultTable("deployments", table.Row{"Name", "Address"})
	tbl.AppendRow(table.Row{"Counter", "0x01"})
	ul.PrintTable(tbl)
	require.Contains(t, out.String(), "Counter")
	require.Contains(t, out.String(), "DEPLOYMENTS")
}

func TestNilUserLogDoesNotPanic(t *testing.T) {
	var ul *UserLog
	require.NotPanics(t, func() {
		ul.Error("nothing")
	})
}
