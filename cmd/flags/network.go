// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"fmt"

	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	networkFlag = "network"
	localFlag   = "local"
	testnetFlag = "testnet"
)

type NetworkFlags struct {
	Name       string
	UseLocal   bool
	UseTestnet bool
}

func AddNetworkFlagsToCmd(cmd *cobra.Command, networkFlags *NetworkFlags) {
	addNetworkFlags(cmd.Flags(), networkFlags)
}

// AddPersistentNetworkFlagsToCmd makes the network flags available to every
// subcommand of cmd.
func AddPersistentNetworkFlagsToCmd(cmd *cobra.Command, networkFlags *NetworkFlags) {
	addNetworkFlags(cmd.PersistentFlags(), networkFlags)
}

func addNetworkFlags(set *pflag.FlagSet, networkFlags *NetworkFlags) {
	set.StringVar(&networkFlags.Name, networkFlag, "", "operate on the given network (defaults to the configured default-network)")
	set.BoolVarP(&networkFlags.UseLocal, localFlag, "l", false, "operate on the local test network")
	set.BoolVar(&networkFlags.UseTestnet, testnetFlag, false, "operate on testnet")
}

// NetworkName returns the network selected by the flags. An empty name means
// none was given and the configured default applies.
func (f NetworkFlags) NetworkName() (string, error) {
	if !EnsureMutuallyExclusive([]bool{f.Name != "", f.UseLocal, f.UseTestnet}) {
		return "", fmt.Errorf("--%s, --%s and --%s are mutually exclusive", networkFlag, localFlag, testnetFlag)
	}
	switch {
	case f.UseLocal:
		return constants.LocalTestNetworkName, nil
	case f.UseTestnet:
		return constants.TestnetNetworkName, nil
	}
	return f.Name, nil
}

func EnsureMutuallyExclusive(flags []bool) bool {
	set := 0
	for _, f := range flags {
		if f {
			set++
		}
	}
	return set <= 1
}
