// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"strings"
	"testing"

	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/stretchr/testify/require"
)

func TestNetworksTable(t *testing.T) {
	require := require.New(t)
	rendered := NetworksTable(models.DefaultNetworks(), "testnet").Render()

	require.Contains(rendered, "localfhenix")
	require.Contains(rendered, "faucet http://localhost:42000")
	require.Contains(rendered, "https://api.helium.fhenix.zone")
	require.Contains(rendered, "https://faucet.fhenix.zone")
	require.Contains(rendered, "412346")
	// localfhenix sorts before testnet
	require.Less(strings.Index(rendered, "localfhenix"), strings.Index(rendered, "https://api.helium.fhenix.zone"))
}

