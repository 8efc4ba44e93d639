// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"fmt"

	"github.com/fhe-devkit/deployer/pkg/constants"
)

// Network is the target a deploy or task runs against. It is passed explicitly
// to every component that needs it.
type Network struct {
	Name           string `json:"name" mapstructure:"name"`
	RPCURL         string `json:"rpcUrl" mapstructure:"rpc-url"`
	ChainID        int64  `json:"chainId" mapstructure:"chain-id"`
	FaucetEndpoint string `json:"faucetEndpoint,omitempty" mapstructure:"faucet-endpoint"`
	FundingURL     string `json:"fundingUrl,omitempty" mapstructure:"funding-url"`
}

var UndefinedNetwork = Network{}

func NewLocalTestNetwork() Network {
	return Network{
		Name:           constants.LocalTestNetworkName,
		RPCURL:         constants.LocalTestNetworkRPCURL,
		ChainID:        constants.LocalTestNetworkChainID,
		FaucetEndpoint: constants.LocalFaucetEndpoint,
	}
}

func NewTestnetNetwork() Network {
	return Network{
		Name:       constants.TestnetNetworkName,
		RPCURL:     constants.TestnetNetworkRPCURL,
		ChainID:    constants.TestnetNetworkChainID,
		FundingURL: constants.DefaultFundingURL,
	}
}

// DefaultNetworks are available without any configuration file.
func DefaultNetworks() map[string]Network {
	local := NewLocalTestNetwork()
	testnet := NewTestnetNetwork()
	return map[string]Network{
		local.Name:   local,
		testnet.Name: testnet,
	}
}

// IsLocalTest reports whether the faucet may be used to fund the deployer.
func (n Network) IsLocalTest() bool {
	return n.Name == constants.LocalTestNetworkName
}

// RemediationURL is where an operator can obtain funds for this network.
func (n Network) RemediationURL() string {
	if n.FundingURL != "" {
		return n.FundingURL
	}
	return constants.DefaultFundingURL
}

func (n Network) String() string {
	if n.ChainID == 0 {
		return n.Name
	}
	return fmt.Sprintf("%s (chain %d)", n.Name, n.ChainID)
}

func (n Network) Validate() error {
	if n.Name == "" {
		return fmt.Errorf("network name is empty")
	}
	if n.RPCURL == "" {
		return fmt.Errorf("network %s has no rpc url", n.Name)
	}
	return nil
}
