// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package faucet

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/utils"
)

// Client requests test funds from the local network faucet.
type Client struct {
	endpoint string
}

func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = constants.LocalFaucetEndpoint
	}
	return &Client{endpoint: strings.TrimSuffix(endpoint, "/")}
}

// Fund asks the faucet to credit address. A single request is made; a non-200
// answer is a failure.
func (c *Client) Fund(ctx context.Context, address common.Address) error {
	u, err := url.Parse(c.endpoint + constants.FaucetPath)
	if err != nil {
		return fmt.Errorf("invalid faucet endpoint %s: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("address", address.Hex())
	u.RawQuery = q.Encode()
	if body, err := utils.MakeGetRequest(ctx, u.String()); err != nil {
		if len(body) > 0 {
			return fmt.Errorf("faucet request for %s failed: %w: %s", address.Hex(), err, strings.TrimSpace(string(body)))
		}
		return fmt.Errorf("faucet request for %s failed: %w", address.Hex(), err)
	}
	return nil
}
