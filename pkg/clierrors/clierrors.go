// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package clierrors

import "errors"

var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrTransactionFailed   = errors.New("transaction failed")
	ErrConfirmationTimeout = errors.New("timed out waiting for transaction confirmation")
	ErrReverted            = errors.New("transaction reverted")

	ErrNotDeployed  = errors.New("contract not deployed on this network, run 'deployer deploy' first")
	ErrCallFailed   = errors.New("contract call failed")
	ErrDecodeFailed = errors.New("failed to decode contract call result")

	ErrNoDeployerKey    = errors.New("no deployer key configured: set PRIVATE_KEY in .env or use --private-key")
	ErrUnknownNetwork   = errors.New("unknown network")
	ErrArtifactNotFound = errors.New("contract artifact not found, compile the contracts first")
)
