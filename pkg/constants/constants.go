// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package constants

import "time"

const (
	DefaultPerms755        = 0o755
	WriteReadReadPerms     = 0o644
	WriteReadUserOnlyPerms = 0o600

	BaseDirName   = ".fhe-deployer"
	LogDir        = "logs"
	LogFileName   = "deployer.log"
	ConfigFile    = "config.json"
	ProjectConfig = "deployer.json"
	DotEnvFile    = ".env"

	ArtifactsDir   = "artifacts"
	DeploymentsDir = "deployments"
	JSONSuffix     = ".json"

	MaxLogFileSize   = 4 // MB
	MaxNumOfLogFiles = 5
	RetainOldFiles   = 0 // days; 0 keeps everything

	APIRequestTimeout           = 30 * time.Second
	APIRequestLargeTimeout      = 2 * time.Minute
	DefaultConfirmationTimeout  = 5 * time.Minute
	DefaultConfirmationInterval = time.Second

	// LocalTestNetworkName is the only network on which the faucet is used.
	LocalTestNetworkName    = "localfhenix"
	LocalTestNetworkRPCURL  = "http://127.0.0.1:42069"
	LocalTestNetworkChainID = 412346
	LocalFaucetEndpoint     = "http://localhost:42000"
	FaucetPath              = "/faucet"

	TestnetNetworkName    = "testnet"
	TestnetNetworkRPCURL  = "https://api.helium.fhenix.zone"
	TestnetNetworkChainID = 8008135

	DefaultFundingURL = "https://faucet.fhenix.zone"

	PrivateKeyEnvVar = "PRIVATE_KEY"
	EnvPrefix        = "DEPLOYER"

	// config keys
	ConfigNetworksKey            = "networks"
	ConfigDefaultNetworkKey      = "default-network"
	ConfigConfirmationTimeoutKey = "confirmation-timeout"
	ConfigArtifactsDirKey        = "artifacts-dir"
	ConfigDeploymentsDirKey      = "deployments-dir"
	ConfigPrivateKeyKey          = "private-key"
)
