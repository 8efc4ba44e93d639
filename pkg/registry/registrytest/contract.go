// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package registrytest provides contract tests for registry.Registry
// implementations.
package registrytest

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/registry"
	"github.com/stretchr/testify/require"
)

// Factory creates a fresh registry for each test.
type Factory func(t *testing.T) registry.Registry

func record(name string, addr string) models.DeploymentRecord {
	return models.DeploymentRecord{
		Name:            name,
		Address:         common.HexToAddress(addr),
		Args:            []interface{}{"Test Token", "TST"},
		TransactionHash: common.HexToHash("0xaa"),
		BlockHash:       common.HexToHash("0xbb"),
		BlockNumber:     7,
	}
}

// Run exercises the registry.Registry contract.
func Run(t *testing.T, factory Factory) {
	t.Run("SaveAndGet", func(t *testing.T) {
		reg := factory(t)
		want := record("WrappingERC20", "0x01")
		require.NoError(t, reg.Save("localfhenix", want))

		got, err := reg.Get("localfhenix", "WrappingERC20")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("GetNotFound", func(t *testing.T) {
		reg := factory(t)
		_, err := reg.Get("localfhenix", "Counter")
		require.ErrorIs(t, err, registry.ErrNotFound)
	})

	t.Run("SaveOverwrites", func(t *testing.T) {
		reg := factory(t)
		require.NoError(t, reg.Save("localfhenix", record("Counter", "0x01")))
		require.NoError(t, reg.Save("localfhenix", record("Counter", "0x02")))

		got, err := reg.Get("localfhenix", "Counter")
		require.NoError(t, err)
		require.Equal(t, common.HexToAddress("0x02"), got.Address)

		all, err := reg.List("localfhenix")
		require.NoError(t, err)
		require.Len(t, all, 1)
	})

	t.Run("NetworkScoped", func(t *testing.T) {
		reg := factory(t)
		require.NoError(t, reg.Save("localfhenix", record("Counter", "0x01")))

		_, err := reg.Get("testnet", "Counter")
		require.ErrorIs(t, err, registry.ErrNotFound)

		all, err := reg.List("testnet")
		require.NoError(t, err)
		require.Empty(t, all)
	})

	t.Run("ListSortedByName", func(t *testing.T) {
		reg := factory(t)
		require.NoError(t, reg.Save("localfhenix", record("VickreyAuction", "0x03")))
		require.NoError(t, reg.Save("localfhenix", record("Counter", "0x01")))
		require.NoError(t, reg.Save("localfhenix", record("WrappingERC20", "0x02")))

		all, err := reg.List("localfhenix")
		require.NoError(t, err)
		names := []string{}
		for _, r := range all {
			names = append(names, r.Name)
		}
		require.Equal(t, []string{"Counter", "VickreyAuction", "WrappingERC20"}, names)
	})

	t.Run("Clear", func(t *testing.T) {
		reg := factory(t)
		require.NoError(t, reg.Save("localfhenix", record("Counter", "0x01")))
		require.NoError(t, reg.Save("testnet", record("Counter", "0x09")))
		require.NoError(t, reg.Clear("localfhenix"))

		_, err := reg.Get("localfhenix", "Counter")
		require.ErrorIs(t, err, registry.ErrNotFound)
		_, err = reg.Get("testnet", "Counter")
		require.NoError(t, err)
		// clearing twice is not an error
		require.NoError(t, reg.Clear("localfhenix"))
	})

	t.Run("SaveWithoutName", func(t *testing.T) {
		reg := factory(t)
		require.Error(t, reg.Save("localfhenix", models.DeploymentRecord{}))
	})
}
