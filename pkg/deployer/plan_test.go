// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"testing"

	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/stretchr/testify/assert"
)

func names(units []models.DeploymentUnit) []string {
	out := make([]string, 0, len(units))
	for _, u := range units {
		out = append(out, u.Name)
	}
	return out
}

func TestDefaultPlan(t *testing.T) {
	assert := assert.New(t)
	plan := DefaultPlan()
	assert.Equal([]string{"Counter", "WrappingERC20", "VickreyAuction"}, names(plan))
	assert.Equal([]interface{}{"Test Token", "TST"}, plan[1].ConstructorArgs)
	for _, u := range plan {
		assert.False(u.SkipIfAlreadyDeployed, u.Name)
	}
	assert.NotContains(names(plan), "Vault")
}

func TestFilter(t *testing.T) {
	assert := assert.New(t)
	plan := DefaultPlan()
	assert.Equal(plan, Filter(plan, nil))
	// plan order wins over the order of names
	assert.Equal([]string{"Counter", "VickreyAuction"}, names(Filter(plan, []string{"VickreyAuction", "Counter"})))
	assert.Empty(Filter(plan, []string{"Vault"}))
}
