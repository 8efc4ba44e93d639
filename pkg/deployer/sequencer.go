// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deployer

import (
	"context"
	"errors"
	"fmt"

	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/registry"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"go.uber.org/zap"
)

// ContractDeployer submits a creation transaction and returns once it is
// confirmed on chain.
type ContractDeployer interface {
	Deploy(ctx context.Context, name string, args []interface{}) (models.DeployResult, error)
}

// DeploymentError tags a failure with the unit that caused it.
type DeploymentError struct {
	Unit string
	Err  error
}

func (e *DeploymentError) Error() string {
	return fmt.Sprintf("failed deploying %s: %s", e.Unit, e.Err)
}

func (e *DeploymentError) Unwrap() error {
	return e.Err
}

type Sequencer struct {
	deployer ContractDeployer
	registry registry.Registry
	out      *ux.UserLog
	log      *zap.Logger
}

func NewSequencer(deployer ContractDeployer, reg registry.Registry, out *ux.UserLog, log *zap.Logger) *Sequencer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Sequencer{
		deployer: deployer,
		registry: reg,
		out:      out,
		log:      log,
	}
}

// DeployAll deploys units one after the other, in order, and returns a record
// per unit. It stops at the first failure; units deployed before it stay
// deployed and recorded.
func (s *Sequencer) DeployAll(
	ctx context.Context,
	network models.Network,
	units []models.DeploymentUnit,
	account models.DeployerAccount,
) ([]models.DeploymentRecord, error) {
	if err := checkUniqueNames(units); err != nil {
		return nil, err
	}
	records := make([]models.DeploymentRecord, 0, len(units))
	for _, unit := range units {
		record, err := s.deploy(ctx, network, unit, account)
		if err != nil {
			return records, &DeploymentError{Unit: unit.Name, Err: err}
		}
		records = append(records, record)
		s.out.PrintToUser("%s contract: %s", unit.Name, record.Address.Hex())
	}
	return records, nil
}

func (s *Sequencer) deploy(
	ctx context.Context,
	network models.Network,
	unit models.DeploymentUnit,
	account models.DeployerAccount,
) (models.DeploymentRecord, error) {
	if unit.SkipIfAlreadyDeployed {
		existing, err := s.registry.Get(network.Name, unit.Name)
		switch {
		case err == nil:
			s.log.Info("reusing deployment",
				zap.String("contract", unit.Name),
				zap.String("address", existing.Address.Hex()),
				zap.String("network", network.Name),
			)
			return existing, nil
		case !errors.Is(err, registry.ErrNotFound):
			return models.DeploymentRecord{}, err
		}
	}
	s.log.Info("deploying",
		zap.String("contract", unit.Name),
		zap.String("from", account.Address.Hex()),
		zap.String("network", network.Name),
		zap.Int("args", len(unit.ConstructorArgs)),
	)
	result, err := s.deployer.Deploy(ctx, unit.Name, unit.ConstructorArgs)
	if err != nil {
		return models.DeploymentRecord{}, err
	}
	record := result.Record(unit.Name, unit.ConstructorArgs)
	if err := s.registry.Save(network.Name, record); err != nil {
		return models.DeploymentRecord{}, fmt.Errorf("deployed at %s but failed recording it: %w", result.Address.Hex(), err)
	}
	return record, nil
}

func checkUniqueNames(units []models.DeploymentUnit) error {
	seen := map[string]struct{}{}
	for _, unit := range units {
		if unit.Name == "" {
			return fmt.Errorf("deployment unit without name")
		}
		if _, ok := seen[unit.Name]; ok {
			return fmt.Errorf("deployment unit %s listed twice", unit.Name)
		}
		seen[unit.Name] = struct{}{}
	}
	return nil
}
