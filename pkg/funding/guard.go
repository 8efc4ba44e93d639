// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package funding

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/models"
	"go.uber.org/zap"
)

type BalanceReader interface {
	Balance(ctx context.Context, address common.Address) (*big.Int, error)
}

type Faucet interface {
	Fund(ctx context.Context, address common.Address) error
}

// InsufficientFundsError is returned when the deployer has no balance on a
// network without faucet.
type InsufficientFundsError struct {
	Address    common.Address
	Network    string
	FundingURL string
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("account %s has no funds on %s", e.Address.Hex(), e.Network)
}

func (e *InsufficientFundsError) Unwrap() error {
	return clierrors.ErrInsufficientFunds
}

// Remediation is the message shown to the operator.
func (e *InsufficientFundsError) Remediation() string {
	return fmt.Sprintf("Please fund your account with testnet FHE from %s", e.FundingURL)
}

type Guard struct {
	balances BalanceReader
	faucet   Faucet
	log      *zap.Logger
}

func NewGuard(balances BalanceReader, faucet Faucet, log *zap.Logger) *Guard {
	if log == nil {
		log = zap.NewNop()
	}
	return &Guard{
		balances: balances,
		faucet:   faucet,
		log:      log,
	}
}

// EnsureFunded makes sure account can pay for deployments on network. On the
// local test network an empty account is funded once through the faucet and
// the faucet answer is trusted; elsewhere an empty account is an error.
func (g *Guard) EnsureFunded(ctx context.Context, account models.DeployerAccount, network models.Network) error {
	balance, err := g.balances.Balance(ctx, account.Address)
	if err != nil {
		return err
	}
	if balance != nil && balance.Sign() > 0 {
		g.log.Info("deployer funded",
			zap.String("address", account.Address.Hex()),
			zap.String("balance", balance.String()),
		)
		return nil
	}
	if !network.IsLocalTest() {
		return &InsufficientFundsError{
			Address:    account.Address,
			Network:    network.Name,
			FundingURL: network.RemediationURL(),
		}
	}
	if g.faucet == nil {
		return fmt.Errorf("no faucet configured for %s", network.Name)
	}
	g.log.Info("requesting funds from faucet", zap.String("address", account.Address.Hex()))
	if err := g.faucet.Fund(ctx, account.Address); err != nil {
		return err
	}
	return nil
}
