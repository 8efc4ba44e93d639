// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package models

import (
	"encoding/json"

	"github.com/ethereum/go-ethereum/common"
)

// DeploymentUnit is one contract of a deployment plan.
type DeploymentUnit struct {
	Name                  string
	ConstructorArgs       []interface{}
	SkipIfAlreadyDeployed bool
}

// DeploymentRecord is what the registry keeps for a deployed unit on a network.
type DeploymentRecord struct {
	Name            string          `json:"name"`
	Address         common.Address  `json:"address"`
	Args            []interface{}   `json:"args"`
	TransactionHash common.Hash     `json:"transactionHash"`
	BlockHash       common.Hash     `json:"blockHash"`
	BlockNumber     uint64          `json:"blockNumber"`
	ABI             json.RawMessage `json:"abi,omitempty"`
}

// DeployResult is returned by the chain once a creation transaction is confirmed.
type DeployResult struct {
	Address         common.Address
	TransactionHash common.Hash
	BlockHash       common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	ABI             json.RawMessage
}

func (r DeployResult) Record(name string, args []interface{}) DeploymentRecord {
	if args == nil {
		args = []interface{}{}
	}
	return DeploymentRecord{
		Name:            name,
		Address:         r.Address,
		Args:            args,
		TransactionHash: r.TransactionHash,
		BlockHash:       r.BlockHash,
		BlockNumber:     r.BlockNumber,
		ABI:             r.ABI,
	}
}

type DeployerAccount struct {
	Address common.Address
}
