// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"fmt"
	"math/big"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

// EthClient is the subset of the go-ethereum client used here. Both
// *ethclient.Client and the simulated backend client satisfy it.
type EthClient interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// used to mock the connection function
var ethclientDialContext = func(ctx context.Context, rawurl string) (EthClient, error) {
	return ethclient.DialContext(ctx, rawurl)
}

// Client wraps an EthClient with the calls needed for deploying and reading
// contracts. Calls are made once; failures are returned to the caller.
type Client struct {
	EthClient EthClient
	URL       string
}

// indicates if the given rpc url has schema or not
func HasScheme(rpcURL string) (bool, error) {
	if parsedURL, err := url.Parse(rpcURL); err != nil {
		if !strings.Contains(err.Error(), "first path segment in URL cannot contain colon") {
			return false, err
		}
		return false, nil
	} else {
		return strings.Contains(rpcURL, "://") && parsedURL.Scheme != "", nil
	}
}

// GetClient connects to rpcURL. A url without scheme is assumed to be http.
func GetClient(ctx context.Context, rpcURL string) (*Client, error) {
	hasScheme, err := HasScheme(rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failure determining the scheme of url %s: %w", rpcURL, err)
	}
	if !hasScheme {
		rpcURL = "http://" + rpcURL
	}
	ethClient, err := ethclientDialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("failure connecting to %s: %w", rpcURL, err)
	}
	return NewClient(ethClient, rpcURL), nil
}

func NewClient(ethClient EthClient, rpcURL string) *Client {
	return &Client{EthClient: ethClient, URL: rpcURL}
}

// closes underlying ethclient connection
func (client *Client) Close() {
	if closer, ok := client.EthClient.(interface{ Close() }); ok {
		closer.Close()
	}
}

func (client *Client) Balance(ctx context.Context, address common.Address) (*big.Int, error) {
	balance, err := client.EthClient.BalanceAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failure obtaining balance for %s on %s: %w", address.Hex(), client.URL, err)
	}
	return balance, nil
}

func (client *Client) ChainID(ctx context.Context) (*big.Int, error) {
	chainID, err := client.EthClient.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failure getting chain id from %s: %w", client.URL, err)
	}
	return chainID, nil
}

// Call performs a read only eth_call against the latest block.
func (client *Client) Call(ctx context.Context, to common.Address, data []byte) ([]byte, error) {
	msg := ethereum.CallMsg{
		To:   &to,
		Data: data,
	}
	out, err := client.EthClient.CallContract(ctx, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("failure calling %s on %s: %w", to.Hex(), client.URL, err)
	}
	return out, nil
}

// ContractAlreadyDeployed indicates wether there is code at address.
func (client *Client) ContractAlreadyDeployed(ctx context.Context, address common.Address) (bool, error) {
	code, err := client.EthClient.CodeAt(ctx, address, nil)
	if err != nil {
		return false, fmt.Errorf("failure obtaining code for %s on %s: %w", address.Hex(), client.URL, err)
	}
	return len(code) != 0, nil
}
