// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/fhe-devkit/deployer/pkg/artifacts"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/models"
	"go.uber.org/zap"
)

const revertedMessage = "execution reverted"

// ArtifactSource resolves a contract name to its compiled artifact.
type ArtifactSource interface {
	Get(name string) (*artifacts.Artifact, error)
}

// Deployer creates contracts from artifacts and waits for their receipts.
type Deployer struct {
	client              *Client
	signer              *Signer
	chainID             *big.Int
	artifacts           ArtifactSource
	confirmationTimeout time.Duration
	log                 *zap.Logger
}

func NewDeployer(
	client *Client,
	signer *Signer,
	chainID *big.Int,
	source ArtifactSource,
	confirmationTimeout time.Duration,
	log *zap.Logger,
) *Deployer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Deployer{
		client:              client,
		signer:              signer,
		chainID:             chainID,
		artifacts:           source,
		confirmationTimeout: confirmationTimeout,
		log:                 log,
	}
}

// Deploy submits the creation transaction for name with args and blocks until
// it is mined. Chain failures match clierrors.ErrTransactionFailed,
// clierrors.ErrConfirmationTimeout or clierrors.ErrReverted.
func (d *Deployer) Deploy(ctx context.Context, name string, args []interface{}) (models.DeployResult, error) {
	artifact, err := d.artifacts.Get(name)
	if err != nil {
		return models.DeployResult{}, err
	}
	if !artifact.Deployable() {
		return models.DeployResult{}, fmt.Errorf("artifact %s has no bytecode, is it abstract or an interface?", name)
	}
	opts, err := d.signer.TransactOpts(ctx, d.chainID)
	if err != nil {
		return models.DeployResult{}, err
	}
	address, tx, _, err := bind.DeployContract(opts, artifact.ABI, artifact.Bytecode, d.client.EthClient, args...)
	if err != nil {
		return models.DeployResult{}, classifySubmitError(err)
	}
	d.log.Info("deployment transaction sent",
		zap.String("contract", name),
		zap.String("tx", tx.Hash().Hex()),
		zap.String("address", address.Hex()),
	)
	receipt, err := d.waitMined(ctx, tx)
	if err != nil {
		return models.DeployResult{}, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return models.DeployResult{}, fmt.Errorf("%w: creation tx %s", clierrors.ErrReverted, tx.Hash().Hex())
	}
	blockNumber := uint64(0)
	if receipt.BlockNumber != nil {
		blockNumber = receipt.BlockNumber.Uint64()
	}
	d.log.Info("deployment confirmed",
		zap.String("contract", name),
		zap.Uint64("block", blockNumber),
		zap.Uint64("gasUsed", receipt.GasUsed),
	)
	return models.DeployResult{
		Address:         address,
		TransactionHash: tx.Hash(),
		BlockHash:       receipt.BlockHash,
		BlockNumber:     blockNumber,
		GasUsed:         receipt.GasUsed,
		ABI:             artifact.RawABI,
	}, nil
}

func (d *Deployer) waitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	if d.confirmationTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.confirmationTimeout)
		defer cancel()
	}
	receipt, err := bind.WaitMined(ctx, d.client.EthClient, tx)
	switch {
	case err == nil:
		return receipt, nil
	case errors.Is(err, context.DeadlineExceeded):
		return nil, fmt.Errorf("%w: tx %s after %s", clierrors.ErrConfirmationTimeout, tx.Hash().Hex(), d.confirmationTimeout)
	default:
		return nil, fmt.Errorf("%w: waiting for tx %s: %w", clierrors.ErrTransactionFailed, tx.Hash().Hex(), err)
	}
}

// constructor reverts surface while estimating gas, before anything is sent
func classifySubmitError(err error) error {
	if strings.Contains(err.Error(), revertedMessage) {
		return fmt.Errorf("%w: %w", clierrors.ErrReverted, err)
	}
	return fmt.Errorf("%w: %w", clierrors.ErrTransactionFailed, err)
}
