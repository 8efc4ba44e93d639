// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/utils"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	v  *viper.Viper
	fs afero.Fs
}

func New(fs afero.Fs) *Config {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &Config{v: newViper(fs), fs: fs}
}

func newViper(fs afero.Fs) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigType("json")
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv() // read in environment variables that match
	// the deployer key keeps the unprefixed name hardhat projects use in .env
	_ = v.BindEnv(constants.ConfigPrivateKeyKey, constants.PrivateKeyEnvVar)
	v.SetDefault(constants.ConfigDefaultNetworkKey, constants.LocalTestNetworkName)
	v.SetDefault(constants.ConfigConfirmationTimeoutKey, constants.DefaultConfirmationTimeout)
	v.SetDefault(constants.ConfigArtifactsDirKey, constants.ArtifactsDir)
	v.SetDefault(constants.ConfigDeploymentsDirKey, constants.DeploymentsDir)
	return v
}

func (c *Config) SetConfig(log *zap.Logger, s string) {
	c.v.SetConfigFile(s)
	// If a config file is found, read it in.
	if err := c.v.ReadInConfig(); err == nil {
		log.Info("Using config file", zap.String("config-file", s))
	} else {
		log.Info("No config file found", zap.String("config-file", s))
	}
}

// MergeConfig layers s on top of the configuration read so far. A missing
// file is not an error.
func (c *Config) MergeConfig(log *zap.Logger, s string) {
	if !utils.FileExists(c.fs, s) {
		return
	}
	prevS := c.v.ConfigFileUsed()
	c.v.SetConfigFile(s)
	log.Info("Merging configuration file", zap.String("config-file", s))
	if err := c.v.MergeInConfig(); err != nil {
		log.Info("Error loading configuration file", zap.String("config-file", s), zap.Error(err))
	}
	c.v.SetConfigFile(prevS)
}

func (c *Config) GetConfigPath() string {
	return c.v.ConfigFileUsed()
}

func (c *Config) ConfigFileExists() bool {
	return utils.FileExists(c.fs, c.GetConfigPath())
}

// SetConfigValue persists key into the main config file only, so values
// merged from a project file never leak into it.
func (c *Config) SetConfigValue(key string, value interface{}) error {
	path := c.GetConfigPath()
	if path == "" {
		return fmt.Errorf("no config file set")
	}
	own := viper.New()
	own.SetFs(c.fs)
	own.SetConfigType("json")
	own.SetConfigFile(path)
	if c.ConfigFileExists() {
		if err := own.ReadInConfig(); err != nil {
			return fmt.Errorf("failed reading %s: %w", path, err)
		}
	}
	if err := c.fs.MkdirAll(filepath.Dir(path), constants.DefaultPerms755); err != nil {
		return err
	}
	own.Set(key, value)
	if err := own.WriteConfig(); err != nil {
		return err
	}
	c.v.Set(key, value)
	return nil
}

func (c *Config) ConfigValueIsSet(key string) bool {
	return c.v.IsSet(key)
}

func (c *Config) GetConfigStringValue(key string) string {
	return c.v.GetString(key)
}

func (c *Config) DefaultNetwork() string {
	return c.v.GetString(constants.ConfigDefaultNetworkKey)
}

func (c *Config) ConfirmationTimeout() time.Duration {
	timeout := c.v.GetDuration(constants.ConfigConfirmationTimeoutKey)
	if timeout <= 0 {
		return constants.DefaultConfirmationTimeout
	}
	return timeout
}

// PrivateKey is the deployer key from the environment, which includes the
// project .env file once loaded.
func (c *Config) PrivateKey() string {
	return strings.TrimSpace(c.v.GetString(constants.ConfigPrivateKeyKey))
}

func (c *Config) ArtifactsDir() string {
	return c.v.GetString(constants.ConfigArtifactsDirKey)
}

func (c *Config) DeploymentsDir() string {
	return c.v.GetString(constants.ConfigDeploymentsDirKey)
}

// Networks returns the built in networks with the configured ones layered on
// top. Configured fields override built in ones field by field.
func (c *Config) Networks() (map[string]models.Network, error) {
	networks := models.DefaultNetworks()
	configured := map[string]models.Network{}
	if err := c.v.UnmarshalKey(constants.ConfigNetworksKey, &configured); err != nil {
		return nil, fmt.Errorf("invalid %q configuration: %w", constants.ConfigNetworksKey, err)
	}
	for name, override := range configured {
		network := mergeNetwork(networks[name], override)
		network.Name = name
		if err := network.Validate(); err != nil {
			return nil, err
		}
		for _, u := range []string{network.FaucetEndpoint, network.FundingURL} {
			if u == "" {
				continue
			}
			if err := utils.ValidateURLFormat(u); err != nil {
				return nil, fmt.Errorf("network %s: invalid url %q: %w", name, u, err)
			}
		}
		networks[name] = network
	}
	return networks, nil
}

// GetNetwork resolves name, or the default network when name is empty.
func (c *Config) GetNetwork(name string) (models.Network, error) {
	if name == "" {
		name = c.DefaultNetwork()
	}
	networks, err := c.Networks()
	if err != nil {
		return models.UndefinedNetwork, err
	}
	network, ok := networks[name]
	if !ok {
		return models.UndefinedNetwork, fmt.Errorf(
			"%w %q, known networks: %s",
			clierrors.ErrUnknownNetwork, name, strings.Join(NetworkNames(networks), ", "),
		)
	}
	return network, nil
}

func NetworkNames(networks map[string]models.Network) []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func mergeNetwork(base models.Network, override models.Network) models.Network {
	if override.RPCURL != "" {
		base.RPCURL = override.RPCURL
	}
	if override.ChainID != 0 {
		base.ChainID = override.ChainID
	}
	if override.FaucetEndpoint != "" {
		base.FaucetEndpoint = override.FaucetEndpoint
	}
	if override.FundingURL != "" {
		base.FundingURL = override.FundingURL
	}
	return base
}
