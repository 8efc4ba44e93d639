// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the known networks",
		RunE:  listNetworks,
		Args:  cobrautils.ExactArgs(0),
	}
}

func listNetworks(*cobra.Command, []string) error {
	networks, err := app.Conf.Networks()
	if err != nil {
		return err
	}
	ux.Logger.PrintTable(NetworksTable(networks, app.Conf.DefaultNetwork()))
	return nil
}

func NetworksTable(networks map[string]models.Network, defaultNetwork string) table.Writer {
	t := ux.DefaultTable("Networks", table.Row{"Name", "RPC URL", "Chain ID", "Funding", "Default"})
	for _, name := range config.NetworkNames(networks) {
		network := networks[name]
		funding := "faucet " + network.FaucetEndpoint
		if !network.IsLocalTest() {
			funding = network.RemediationURL()
		}
		isDefault := ""
		if name == defaultNetwork {
			isDefault = "*"
		}
		t.AppendRow(table.Row{name, network.RPCURL, network.ChainID, funding, isDefault})
	}
	return t
}
