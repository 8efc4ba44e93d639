// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploymentscmd

import (
	"fmt"

	"github.com/fhe-devkit/deployer/cmd/flags"
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	app *application.Deployer

	networkFlags flags.NetworkFlags
)

// deployer deployments
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "Inspects and clears recorded deployments",
		Long: `The deployments command suite shows what deployer deploy recorded for a
network, and lets you forget it so the next run starts from scratch.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
		Args: cobrautils.ExactArgs(0),
	}
	flags.AddPersistentNetworkFlagsToCmd(cmd, &networkFlags)
	// deployer deployments list
	cmd.AddCommand(newListCmd())
	// deployer deployments clear
	cmd.AddCommand(newClearCmd())
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the deployments recorded for a network",
		RunE:  listDeployments,
		Args:  cobrautils.ExactArgs(0),
	}
}

func newClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Forgets the deployments recorded for a network",
		Long: `The deployments clear command removes the records of a network. Contracts stay
on chain; they are only forgotten locally.`,
		RunE: clearDeployments,
		Args: cobrautils.ExactArgs(0),
	}
}

func listDeployments(*cobra.Command, []string) error {
	networkName, err := networkFlags.NetworkName()
	if err != nil {
		return err
	}
	network, err := app.Conf.GetNetwork(networkName)
	if err != nil {
		return err
	}
	records, err := app.Registry().List(network.Name)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		ux.Logger.PrintToUser("No deployments recorded for %s", network.Name)
		return nil
	}
	t := ux.DefaultTable(fmt.Sprintf("Deployments on %s", network.Name), table.Row{"Contract", "Address", "Block", "Transaction"})
	for _, r := range records {
		t.AppendRow(table.Row{r.Name, r.Address.Hex(), r.BlockNumber, r.TransactionHash.Hex()})
	}
	ux.Logger.PrintTable(t)
	return nil
}

func clearDeployments(*cobra.Command, []string) error {
	networkName, err := networkFlags.NetworkName()
	if err != nil {
		return err
	}
	network, err := app.Conf.GetNetwork(networkName)
	if err != nil {
		return err
	}
	if err := app.Registry().Clear(network.Name); err != nil {
		return err
	}
	ux.Logger.GreenCheckmarkToUser("Cleared deployments recorded for %s", network.Name)
	return nil
}
