// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

func GenerateEthAddrs(count int) ([]common.Address, error) {
	addrs := make([]common.Address, count)
	for i := 0; i < count; i++ {
		pk, err := crypto.GenerateKey()
		if err != nil {
			return nil, err
		}
		addrs[i] = crypto.PubkeyToAddress(pk.PublicKey)
	}
	return addrs, nil
}

// Address returns a deterministic address derived from n.
func Address(n int64) common.Address {
	return common.BigToAddress(big.NewInt(n))
}

// Hash returns a deterministic hash derived from n.
func Hash(n int64) common.Hash {
	return common.BigToHash(big.NewInt(n))
}
