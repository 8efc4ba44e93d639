// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"testing"
	"time"

	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	globalConfig  = "/home/user/.fhe-deployer/config.json"
	projectConfig = "/work/project/deployer.json"
)

func newTestConfig(t *testing.T, files map[string]string) *Config {
	fs := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fs, path, []byte(content), constants.WriteReadReadPerms))
	}
	return load(fs)
}

func load(fs afero.Fs) *Config {
	c := New(fs)
	c.SetConfig(zap.NewNop(), globalConfig)
	c.MergeConfig(zap.NewNop(), projectConfig)
	return c
}

func TestDefaults(t *testing.T) {
	assert := assert.New(t)
	c := newTestConfig(t, nil)

	assert.False(c.ConfigFileExists())
	assert.Equal(constants.LocalTestNetworkName, c.DefaultNetwork())
	assert.Equal(constants.DefaultConfirmationTimeout, c.ConfirmationTimeout())
	assert.Equal(constants.ArtifactsDir, c.ArtifactsDir())
	assert.Equal(constants.DeploymentsDir, c.DeploymentsDir())

	network, err := c.GetNetwork("")
	assert.NoError(err)
	assert.Equal(constants.LocalTestNetworkRPCURL, network.RPCURL)
	assert.True(network.IsLocalTest())

	testnet, err := c.GetNetwork(constants.TestnetNetworkName)
	assert.NoError(err)
	assert.EqualValues(constants.TestnetNetworkChainID, testnet.ChainID)
	assert.False(testnet.IsLocalTest())
}

func TestUnknownNetwork(t *testing.T) {
	c := newTestConfig(t, nil)
	_, err := c.GetNetwork("mainnet")
	require.ErrorIs(t, err, clierrors.ErrUnknownNetwork)
	require.ErrorContains(t, err, "localfhenix, testnet")
}

func TestConfiguredNetworks(t *testing.T) {
	assert := assert.New(t)
	c := newTestConfig(t, map[string]string{
		globalConfig: `{
  "default-network": "testnet",
  "confirmation-timeout": "90s",
  "networks": {
    "localfhenix": {"rpc-url": "http://10.0.0.5:42069"},
    "staging": {"rpc-url": "https://staging.example.org", "chain-id": 77, "funding-url": "https://funds.example.org"}
  }
}`,
	})

	assert.True(c.ConfigFileExists())
	assert.Equal(constants.TestnetNetworkName, c.DefaultNetwork())
	assert.Equal(90*time.Second, c.ConfirmationTimeout())

	local, err := c.GetNetwork(constants.LocalTestNetworkName)
	assert.NoError(err)
	assert.Equal("http://10.0.0.5:42069", local.RPCURL)
	assert.EqualValues(constants.LocalTestNetworkChainID, local.ChainID)
	assert.Equal(constants.LocalFaucetEndpoint, local.FaucetEndpoint)

	staging, err := c.GetNetwork("staging")
	assert.NoError(err)
	assert.Equal("staging", staging.Name)
	assert.EqualValues(77, staging.ChainID)
	assert.Equal("https://funds.example.org", staging.RemediationURL())
	assert.False(staging.IsLocalTest())
}

func TestConfiguredNetworkWithoutRPC(t *testing.T) {
	c := newTestConfig(t, map[string]string{
		globalConfig: `{"networks": {"broken": {"chain-id": 5}}}`,
	})
	_, err := c.Networks()
	require.ErrorContains(t, err, "has no rpc url")
}

func TestConfiguredNetworkBadFundingURL(t *testing.T) {
	c := newTestConfig(t, map[string]string{
		globalConfig: `{"networks": {"staging": {"rpc-url": "http://staging:8545", "funding-url": "faucet please"}}}`,
	})
	_, err := c.GetNetwork("staging")
	require.ErrorContains(t, err, "invalid url")
}

func TestProjectConfigOverridesGlobal(t *testing.T) {
	assert := assert.New(t)
	c := newTestConfig(t, map[string]string{
		globalConfig:  `{"default-network": "testnet", "artifacts-dir": "out"}`,
		projectConfig: `{"default-network": "localfhenix"}`,
	})
	assert.Equal(constants.LocalTestNetworkName, c.DefaultNetwork())
	assert.Equal("out", c.ArtifactsDir())
	assert.Equal(globalConfig, c.GetConfigPath())
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DEPLOYER_DEFAULT_NETWORK", "staging")
	c := newTestConfig(t, map[string]string{
		globalConfig: `{"default-network": "testnet"}`,
	})
	assert.Equal(t, "staging", c.DefaultNetwork())
}

func TestSetConfigValue(t *testing.T) {
	require := require.New(t)
	c := newTestConfig(t, map[string]string{
		projectConfig: `{"artifacts-dir": "build"}`,
	})
	require.NoError(c.SetConfigValue(constants.ConfigDefaultNetworkKey, "testnet"))
	require.Equal("testnet", c.DefaultNetwork())

	require.NoError(c.fs.Remove(projectConfig))
	reloaded := load(c.fs)
	require.Equal("testnet", reloaded.DefaultNetwork())
	// project values stay out of the main config file
	require.Equal(constants.ArtifactsDir, reloaded.ArtifactsDir())
}

func TestPrivateKeyFromEnv(t *testing.T) {
	assert := assert.New(t)
	t.Setenv(constants.PrivateKeyEnvVar, "")
	c := newTestConfig(t, nil)
	assert.Empty(c.PrivateKey())

	t.Setenv(constants.PrivateKeyEnvVar, " 0xabc ")
	assert.Equal("0xabc", c.PrivateKey())
}
