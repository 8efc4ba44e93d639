// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"testing"

	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func TestMutuallyExclusive(t *testing.T) {
	require := require.New(t)
	tests := []struct {
		flags    []bool
		expected bool
	}{
		{flags: []bool{false, false, false}, expected: true},
		{flags: []bool{true, false, false}, expected: true},
		{flags: []bool{false, false, true}, expected: true},
		{flags: []bool{true, false, true}, expected: false},
		{flags: []bool{true, true, true}, expected: false},
	}
	for _, tt := range tests {
		require.Equal(tt.expected, EnsureMutuallyExclusive(tt.flags), tt.flags)
	}
}

func TestNetworkName(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
		err      bool
	}{
		{name: "none", args: nil, expected: ""},
		{name: "named", args: []string{"--network", "staging"}, expected: "staging"},
		{name: "local", args: []string{"-l"}, expected: constants.LocalTestNetworkName},
		{name: "testnet", args: []string{"--testnet"}, expected: constants.TestnetNetworkName},
		{name: "conflict", args: []string{"--local", "--network", "staging"}, err: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			var networkFlags NetworkFlags
			cmd := &cobra.Command{Use: "test"}
			AddNetworkFlagsToCmd(cmd, &networkFlags)
			require.NoError(cmd.ParseFlags(tt.args))

			name, err := networkFlags.NetworkName()
			if tt.err {
				require.ErrorContains(err, "mutually exclusive")
				return
			}
			require.NoError(err)
			require.Equal(tt.expected, name)
		})
	}
}

func TestGetPrivateKey(t *testing.T) {
	require := require.New(t)
	conf := config.New(afero.NewMemMapFs())

	t.Setenv(constants.PrivateKeyEnvVar, "")
	_, err := KeyFlags{}.GetPrivateKey(conf)
	require.ErrorIs(err, clierrors.ErrNoDeployerKey)

	t.Setenv(constants.PrivateKeyEnvVar, " 0xabc ")
	key, err := KeyFlags{}.GetPrivateKey(conf)
	require.NoError(err)
	require.Equal("0xabc", key)

	key, err = KeyFlags{PrivateKey: "0xdef"}.GetPrivateKey(conf)
	require.NoError(err)
	require.Equal("0xdef", key)
}
