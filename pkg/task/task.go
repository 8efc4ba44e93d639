// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package task

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/fhe-devkit/deployer/pkg/artifacts"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/registry"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"go.uber.org/zap"
)

// Caller performs read only calls.
type Caller interface {
	Call(ctx context.Context, to common.Address, data []byte) ([]byte, error)
	ContractAlreadyDeployed(ctx context.Context, address common.Address) (bool, error)
}

type ABISource interface {
	Get(name string) (*artifacts.Artifact, error)
}

// TaskError tags a failure with the task and contract it happened on.
type TaskError struct {
	Task     string
	Contract string
	Err      error
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("task %s on %s: %s", e.Task, e.Contract, e.Err)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

type Invoker struct {
	registry registry.Registry
	abis     ABISource
	caller   Caller
	out      *ux.UserLog
	log      *zap.Logger
}

func NewInvoker(reg registry.Registry, abis ABISource, caller Caller, out *ux.UserLog, log *zap.Logger) *Invoker {
	if log == nil {
		log = zap.NewNop()
	}
	return &Invoker{
		registry: reg,
		abis:     abis,
		caller:   caller,
		out:      out,
		log:      log,
	}
}

// Run resolves t's contract on network, calls its read method and returns
// the decoded result as text. Nothing is sent to the chain when the contract
// was never deployed.
func (i *Invoker) Run(ctx context.Context, network models.Network, t Task) (string, error) {
	wrap := func(err error) error {
		return &TaskError{Task: t.Name, Contract: t.Contract, Err: err}
	}
	record, err := i.registry.Get(network.Name, t.Contract)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return "", wrap(fmt.Errorf("%w: %s on %s", clierrors.ErrNotDeployed, t.Contract, network.Name))
		}
		return "", wrap(err)
	}
	i.out.PrintToUser("Running %s, targeting contract at: %s", t.Name, record.Address.Hex())

	contractABI, err := i.contractABI(t.Contract, record)
	if err != nil {
		return "", wrap(err)
	}
	method, ok := contractABI.Methods[t.Method]
	if !ok {
		return "", wrap(fmt.Errorf("%s has no method %s", t.Contract, t.Method))
	}
	if len(method.Inputs) != 0 {
		return "", wrap(fmt.Errorf("method %s expects %d arguments, tasks only call zero argument methods", method.Sig, len(method.Inputs)))
	}
	// packing, calling and decoding are separate steps so call and decode
	// failures keep distinct errors
	input, err := contractABI.Pack(t.Method)
	if err != nil {
		return "", wrap(err)
	}
	i.log.Info("calling contract",
		zap.String("task", t.Name),
		zap.String("contract", t.Contract),
		zap.String("address", record.Address.Hex()),
		zap.String("method", method.Sig),
	)
	output, err := i.caller.Call(ctx, record.Address, input)
	if err != nil {
		return "", wrap(fmt.Errorf("%w: %w", clierrors.ErrCallFailed, err))
	}
	if len(output) == 0 {
		return "", wrap(i.emptyResponseError(ctx, network, record))
	}
	values, err := contractABI.Unpack(t.Method, output)
	if err != nil {
		return "", wrap(fmt.Errorf("%w: %w", clierrors.ErrDecodeFailed, err))
	}
	result := FormatValues(values)
	i.out.PrintToUser("got : %s", result)
	return result, nil
}

func (i *Invoker) emptyResponseError(ctx context.Context, network models.Network, record models.DeploymentRecord) error {
	deployed, err := i.caller.ContractAlreadyDeployed(ctx, record.Address)
	switch {
	case err != nil:
		i.log.Info("failed checking contract code", zap.String("address", record.Address.Hex()), zap.Error(err))
	case !deployed:
		return fmt.Errorf(
			"%w: no code at %s on %s, the recorded deployment belongs to another chain or was reset, run 'deployer deploy' again",
			clierrors.ErrDecodeFailed, record.Address.Hex(), network.Name,
		)
	}
	return fmt.Errorf("%w: empty response from %s", clierrors.ErrDecodeFailed, record.Address.Hex())
}

// contractABI prefers the compiled artifact and falls back to the abi stored
// with the deployment.
func (i *Invoker) contractABI(contract string, record models.DeploymentRecord) (abi.ABI, error) {
	artifact, err := i.abis.Get(contract)
	if err == nil {
		return artifact.ABI, nil
	}
	if len(record.ABI) == 0 {
		return abi.ABI{}, err
	}
	i.log.Info("using abi stored with the deployment", zap.String("contract", contract), zap.Error(err))
	parsed, parseErr := abi.JSON(bytes.NewReader(record.ABI))
	if parseErr != nil {
		return abi.ABI{}, fmt.Errorf("invalid abi stored for %s: %w", contract, parseErr)
	}
	return parsed, nil
}

func FormatValues(values []interface{}) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, formatValue(v))
	}
	return strings.Join(parts, ", ")
}

func formatValue(v interface{}) string {
	switch value := v.(type) {
	case common.Address:
		return value.Hex()
	case *big.Int:
		return value.String()
	case []byte:
		return hexutil.Encode(value)
	case [32]byte:
		return hexutil.Encode(value[:])
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(v)
	}
}
