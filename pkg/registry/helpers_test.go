// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registry_test

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/pkg/models"
)

func registrytestRecord() models.DeploymentRecord {
	return models.DeploymentRecord{
		Name:    "Counter",
		Address: common.HexToAddress("0x01"),
		Args:    []interface{}{},
	}
}
