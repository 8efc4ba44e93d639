// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/spf13/cobra"
)

var app *application.Deployer

func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Modify configuration for deployer",
		Long:  `Customize configuration for deployer. Values are written to the user config file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
	}
	app = injectedApp
	cmd.AddCommand(newDefaultNetworkCmd())
	cmd.AddCommand(newConfirmationTimeoutCmd())
	return cmd
}
