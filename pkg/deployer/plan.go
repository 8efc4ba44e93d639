// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import "github.com/fhe-devkit/deployer/pkg/models"

// DefaultPlan is the fixed, ordered list of contracts deployed by
// 'deployer deploy'. Units have no dependencies on each other.
func DefaultPlan() []models.DeploymentUnit {
	return []models.DeploymentUnit{
		{
			Name:                  "Counter",
			ConstructorArgs:       []interface{}{},
			SkipIfAlreadyDeployed: false,
		},
		{
			Name:                  "WrappingERC20",
			ConstructorArgs:       []interface{}{"Test Token", "TST"},
			SkipIfAlreadyDeployed: false,
		},
		// Vault is disabled and deliberately not part of the plan.
		{
			Name:                  "VickreyAuction",
			ConstructorArgs:       []interface{}{},
			SkipIfAlreadyDeployed: false,
		},
	}
}

// Filter keeps the units whose name is in names, preserving plan order. An
// empty names keeps the whole plan.
func Filter(units []models.DeploymentUnit, names []string) []models.DeploymentUnit {
	if len(names) == 0 {
		return units
	}
	wanted := map[string]struct{}{}
	for _, n := range names {
		wanted[n] = struct{}{}
	}
	filtered := []models.DeploymentUnit{}
	for _, u := range units {
		if _, ok := wanted[u.Name]; ok {
			filtered = append(filtered, u)
		}
	}
	return filtered
}
