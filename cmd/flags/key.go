// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package flags

import (
	"strings"

	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/spf13/cobra"
)

const privateKeyFlag = "private-key"

type KeyFlags struct {
	PrivateKey string
}

func AddKeyFlagsToCmd(cmd *cobra.Command, keyFlags *KeyFlags) {
	cmd.Flags().StringVar(&keyFlags.PrivateKey, privateKeyFlag, "", "hex private key of the deployer account (defaults to $"+constants.PrivateKeyEnvVar+")")
}

// GetPrivateKey prefers the flag over the key found by conf.
func (f KeyFlags) GetPrivateKey(conf *config.Config) (string, error) {
	key := strings.TrimSpace(f.PrivateKey)
	if key == "" {
		key = conf.PrivateKey()
	}
	if key == "" {
		return "", clierrors.ErrNoDeployerKey
	}
	return key, nil
}
