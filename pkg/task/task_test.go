// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package task

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/internal/mocks"
	"github.com/fhe-devkit/deployer/internal/testutils"
	"github.com/fhe-devkit/deployer/pkg/artifacts"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/registry"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const artifactsRoot = "/project/artifacts"

type fixture struct {
	require  *require.Assertions
	fs       afero.Fs
	registry *registry.FileRegistry
	caller   *mocks.MockCaller
	output   fmt.Stringer
	invoker  *Invoker
}

func newFixture(t *testing.T) fixture {
	require, out, buf := testutils.SetupTest(t)
	fs := afero.NewMemMapFs()
	require.NoError(testutils.WriteArtifact(fs, artifactsRoot, "WrappingERC20", testutils.WrappingERC20ABI, testutils.DummyBytecode))
	reg := registry.NewFileRegistry(fs, "/project/deployments")
	caller := mocks.NewMockCaller(gomock.NewController(t))
	return fixture{
		require:  require,
		fs:       fs,
		registry: reg,
		caller:   caller,
		output:   buf,
		invoker:  NewInvoker(reg, artifacts.NewStore(fs, artifactsRoot), caller, out, testutils.NopLogger()),
	}
}

func tokenABI(t *testing.T) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(testutils.WrappingERC20ABI))
	require.NoError(t, err)
	return parsed
}

func getName(t *testing.T) Task {
	task, ok := Lookup("getName")
	require.True(t, ok)
	return task
}

func TestRunGetName(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	address := testutils.Address(0xbeef)
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: address}))

	parsed := tokenABI(t)
	input, err := parsed.Pack("name")
	f.require.NoError(err)
	encoded, err := parsed.Methods["name"].Outputs.Pack("Test Token")
	f.require.NoError(err)
	f.caller.EXPECT().Call(gomock.Any(), address, input).Return(encoded, nil).Times(1)

	result, err := f.invoker.Run(context.Background(), network, getName(t))
	f.require.NoError(err)
	f.require.Equal("Test Token", result)
	f.require.Equal(
		fmt.Sprintf("Running getName, targeting contract at: %s\ngot : Test Token\n", address.Hex()),
		f.output.String(),
	)
}

func TestRunNotDeployed(t *testing.T) {
	f := newFixture(t)
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.invoker.Run(context.Background(), models.NewLocalTestNetwork(), getName(t))
	f.require.ErrorIs(err, clierrors.ErrNotDeployed)
	var taskErr *TaskError
	f.require.ErrorAs(err, &taskErr)
	f.require.Equal("getName", taskErr.Task)
	f.require.Equal("WrappingERC20", taskErr.Contract)
	f.require.Empty(f.output.String())
}

func TestRunDeployedOnOtherNetwork(t *testing.T) {
	f := newFixture(t)
	f.require.NoError(f.registry.Save(models.NewTestnetNetwork().Name, models.DeploymentRecord{Name: "WrappingERC20", Address: testutils.Address(1)}))
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.invoker.Run(context.Background(), models.NewLocalTestNetwork(), getName(t))
	f.require.ErrorIs(err, clierrors.ErrNotDeployed)
}

func TestRunCallFailed(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: testutils.Address(2)}))
	rpcErr := errors.New("dial tcp 127.0.0.1:42069: connection refused")
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, rpcErr)

	_, err := f.invoker.Run(context.Background(), network, getName(t))
	f.require.ErrorIs(err, clierrors.ErrCallFailed)
	f.require.ErrorIs(err, rpcErr)
}

func TestRunDecodeFailed(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: testutils.Address(3)}))
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Return([]byte{0x01, 0x02, 0x03}, nil)
	f.caller.EXPECT().ContractAlreadyDeployed(gomock.Any(), gomock.Any()).Times(0)

	_, err := f.invoker.Run(context.Background(), network, getName(t))
	f.require.ErrorIs(err, clierrors.ErrDecodeFailed)
	f.require.NotContains(f.output.String(), "got :")
}

func TestRunEmptyResponse(t *testing.T) {
	tests := []struct {
		name     string
		deployed bool
		codeErr  error
		message  string
	}{
		{name: "no code", deployed: false, message: "no code at " + testutils.Address(3).Hex() + " on localfhenix"},
		{name: "code present", deployed: true, message: "empty response from " + testutils.Address(3).Hex()},
		{name: "code check failed", codeErr: errors.New("rpc unavailable"), message: "empty response from"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			network := models.NewLocalTestNetwork()
			address := testutils.Address(3)
			f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: address}))
			f.caller.EXPECT().Call(gomock.Any(), address, gomock.Any()).Return(nil, nil)
			f.caller.EXPECT().ContractAlreadyDeployed(gomock.Any(), address).Return(tt.deployed, tt.codeErr).Times(1)

			_, err := f.invoker.Run(context.Background(), network, getName(t))
			f.require.ErrorIs(err, clierrors.ErrDecodeFailed)
			f.require.ErrorContains(err, tt.message)
			f.require.NotContains(f.output.String(), "got :")
		})
	}
}

func TestRunFallsBackToRecordedABI(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	f.require.NoError(f.fs.RemoveAll(artifactsRoot))
	address := testutils.Address(4)
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{
		Name:    "WrappingERC20",
		Address: address,
		ABI:     json.RawMessage(testutils.WrappingERC20ABI),
	}))
	encoded, err := tokenABI(t).Methods["name"].Outputs.Pack("Recorded")
	f.require.NoError(err)
	f.caller.EXPECT().Call(gomock.Any(), address, gomock.Any()).Return(encoded, nil)

	result, err := f.invoker.Run(context.Background(), network, getName(t))
	f.require.NoError(err)
	f.require.Equal("Recorded", result)
}

func TestRunWithoutABI(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	f.require.NoError(f.fs.RemoveAll(artifactsRoot))
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: testutils.Address(5)}))
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.invoker.Run(context.Background(), network, getName(t))
	f.require.ErrorIs(err, clierrors.ErrArtifactNotFound)
}

func TestRunUnknownMethod(t *testing.T) {
	f := newFixture(t)
	network := models.NewLocalTestNetwork()
	f.require.NoError(f.registry.Save(network.Name, models.DeploymentRecord{Name: "WrappingERC20", Address: testutils.Address(6)}))
	f.caller.EXPECT().Call(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.invoker.Run(context.Background(), network, Task{Name: "decimals", Contract: "WrappingERC20", Method: "decimals"})
	f.require.ErrorContains(err, "has no method decimals")
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)
	task, ok := Lookup("task:getName")
	assert.True(ok)
	assert.Equal("WrappingERC20", task.Contract)
	assert.Equal("name", task.Method)
	assert.Equal("task:getName", task.ID())

	_, ok = Lookup("getSymbol")
	assert.False(ok)
}

func TestFormatValues(t *testing.T) {
	assert := assert.New(t)
	address := common.HexToAddress("0x00000000000000000000000000000000000000aA")
	assert.Equal("", FormatValues(nil))
	assert.Equal("Test Token", FormatValues([]interface{}{"Test Token"}))
	assert.Equal("1000000, "+address.Hex(), FormatValues([]interface{}{big.NewInt(1000000), address}))
	assert.Equal("0x0102, true", FormatValues([]interface{}{[]byte{1, 2}, true}))
}
