// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package configcmd

import (
	"fmt"
	"time"

	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/spf13/cobra"
)

// deployer config default-network
func newDefaultNetworkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "default-network [name]",
		Short: "set the network used when no network flag is given",
		RunE: func(_ *cobra.Command, args []string) error {
			network, err := app.Conf.GetNetwork(args[0])
			if err != nil {
				return err
			}
			if err := app.Conf.SetConfigValue(constants.ConfigDefaultNetworkKey, network.Name); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Default network set to %s", network.Name)
			return nil
		},
		Args: cobrautils.ExactArgs(1),
	}
}

// deployer config confirmation-timeout
func newConfirmationTimeoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "confirmation-timeout [duration]",
		Short: "set how long to wait for a deployment to be mined (ex: 90s, 5m)",
		RunE: func(_ *cobra.Command, args []string) error {
			timeout, err := time.ParseDuration(args[0])
			if err != nil {
				return fmt.Errorf("invalid duration %q: %w", args[0], err)
			}
			if timeout <= 0 {
				return fmt.Errorf("confirmation timeout must be positive")
			}
			if err := app.Conf.SetConfigValue(constants.ConfigConfirmationTimeoutKey, timeout.String()); err != nil {
				return err
			}
			ux.Logger.GreenCheckmarkToUser("Confirmation timeout set to %s", timeout)
			return nil
		},
		Args: cobrautils.ExactArgs(1),
	}
}
