// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package networkcmd

import (
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Deployer

// deployer network
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "network",
		Short: "Shows the networks deployer can target",
		Long: `The network command suite describes the networks known to deployer. The local
test network and testnet are built in; more can be added, or the built in ones
adjusted, under "networks" in the config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
		Args: cobrautils.ExactArgs(0),
	}
	// network list
	cmd.AddCommand(newListCmd())
	return cmd
}
