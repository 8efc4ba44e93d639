// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"testing"

	"github.com/fhe-devkit/deployer/internal/testutils"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

const root = "/project/artifacts"

func TestStoreGet(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteArtifact(fs, root, "WrappingERC20", testutils.WrappingERC20ABI, testutils.DummyBytecode))
	// debug file with the same prefix must not shadow the artifact
	require.NoError(afero.WriteFile(fs, root+"/contracts/WrappingERC20.sol/WrappingERC20.dbg.json", []byte(`{"buildInfo":"x"}`), 0o644))

	a, err := NewStore(fs, root).Get("WrappingERC20")
	require.NoError(err)
	require.Equal("WrappingERC20", a.Name)
	require.Equal("contracts/WrappingERC20.sol", a.SourceName)
	require.True(a.Deployable())
	_, ok := a.ABI.Methods["name"]
	require.True(ok)
	require.Len(a.ABI.Constructor.Inputs, 2)
}

func TestStoreGetSkipsBuildInfo(t *testing.T) {
	require := require.New(t)
	fs := afero.NewMemMapFs()
	require.NoError(fs.MkdirAll(root+"/build-info", 0o755))
	require.NoError(afero.WriteFile(fs, root+"/build-info/Counter.json", []byte(`not an artifact`), 0o644))
	require.NoError(testutils.WriteArtifact(fs, root, "Counter", testutils.CounterABI, testutils.DummyBytecode))

	a, err := NewStore(fs, root).Get("Counter")
	require.NoError(err)
	require.Equal("Counter", a.Name)
}

func TestStoreGetMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := NewStore(fs, root).Get("Vault")
	require.ErrorIs(t, err, clierrors.ErrArtifactNotFound)

	require.NoError(t, testutils.WriteArtifact(fs, root, "Counter", testutils.CounterABI, testutils.DummyBytecode))
	_, err = NewStore(fs, root).Get("Vault")
	require.ErrorIs(t, err, clierrors.ErrArtifactNotFound)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{"},
		{name: "no contract name", data: `{"abi":[]}`},
		{name: "no abi", data: `{"contractName":"Counter"}`},
		{name: "bad abi", data: `{"contractName":"Counter","abi":[{"type":"function","inputs":[{"type":"foo"}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}
}

func TestInterfaceIsNotDeployable(t *testing.T) {
	a, err := Parse([]byte(`{"contractName":"IERC20","abi":[],"bytecode":"0x"}`))
	require.NoError(t, err)
	require.False(t, a.Deployable())
}
