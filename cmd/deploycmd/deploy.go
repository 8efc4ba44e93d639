// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package deploycmd

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/fhe-devkit/deployer/cmd/flags"
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/deployer"
	"github.com/fhe-devkit/deployer/pkg/evm"
	"github.com/fhe-devkit/deployer/pkg/faucet"
	"github.com/fhe-devkit/deployer/pkg/funding"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/fhe-devkit/deployer/pkg/utils"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/exp/slices"
)

var (
	app *application.Deployer

	networkFlags flags.NetworkFlags
	keyFlags     flags.KeyFlags
	reset        bool
	contracts    []string
)

// deployer deploy
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "deploy",
		Short: "Deploys the project contracts",
		Long: `The deploy command deploys the contracts of the deployment plan, in order,
to the selected network.

Before deploying, the deployer account balance is checked. On the local test
network an empty account is funded once from the faucet. On any other network
an empty account aborts the deployment with instructions on where to get funds.

Every deployed contract is printed as "<name> contract: <address>" and recorded
under deployments/<network>/. The first failure stops the run; contracts
deployed before it stay deployed and recorded.`,
		RunE: deploy,
		Args: cobrautils.ExactArgs(0),
	}
	flags.AddNetworkFlagsToCmd(cmd, &networkFlags)
	flags.AddKeyFlagsToCmd(cmd, &keyFlags)
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the network's recorded deployments before deploying")
	cmd.Flags().StringSliceVar(&contracts, "contracts", nil, "only deploy these contracts of the plan, in plan order")
	return cmd
}

func deploy(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	networkName, err := networkFlags.NetworkName()
	if err != nil {
		return err
	}
	network, err := app.Conf.GetNetwork(networkName)
	if err != nil {
		return err
	}
	units, err := SelectUnits(deployer.DefaultPlan(), contracts)
	if err != nil {
		return err
	}
	if !utils.DirectoryExists(app.Fs, app.GetArtifactsDir()) {
		return fmt.Errorf("%w: no artifacts directory at %s", clierrors.ErrArtifactNotFound, app.GetArtifactsDir())
	}
	privateKey, err := keyFlags.GetPrivateKey(app.Conf)
	if err != nil {
		return err
	}
	signer, err := evm.NewSignerFromHex(privateKey)
	if err != nil {
		return err
	}
	account := models.DeployerAccount{Address: signer.Address()}

	client, err := evm.GetClient(ctx, network.RPCURL)
	if err != nil {
		return err
	}
	defer client.Close()
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return err
	}
	if err := checkChainID(network, chainID); err != nil {
		return err
	}

	reg := app.Registry()
	if reset {
		if err := reg.Clear(network.Name); err != nil {
			return fmt.Errorf("failed clearing deployments of %s: %w", network.Name, err)
		}
		app.Log.Info("cleared recorded deployments", zap.String("network", network.Name))
	}
	if err := reg.EnsureChainID(network.Name, chainID); err != nil {
		return err
	}

	app.Log.Info("starting deployment",
		zap.String("network", network.String()),
		zap.String("deployer", account.Address.Hex()),
		zap.Strings("contracts", unitNames(units)),
	)
	var fundsSource funding.Faucet
	if network.IsLocalTest() {
		fundsSource = faucet.New(network.FaucetEndpoint)
	}
	guard := funding.NewGuard(client, fundsSource, app.Log)
	if err := guard.EnsureFunded(ctx, account, network); err != nil {
		printRemediation(ux.Logger, err)
		return err
	}

	contractDeployer := evm.NewDeployer(client, signer, chainID, app.Artifacts(), app.Conf.ConfirmationTimeout(), app.Log)
	sequencer := deployer.NewSequencer(contractDeployer, reg, ux.Logger, app.Log)
	_, err = sequencer.DeployAll(ctx, network, units, account)
	return err
}

// printRemediation tells the operator where to get funds when err is an
// insufficient funds error.
func printRemediation(out *ux.UserLog, err error) {
	var fundsErr *funding.InsufficientFundsError
	if errors.As(err, &fundsErr) {
		out.RedToUser("%s", fundsErr.Remediation())
	}
}

// SelectUnits narrows plan down to names. Every name must be part of the plan.
func SelectUnits(plan []models.DeploymentUnit, names []string) ([]models.DeploymentUnit, error) {
	known := unitNames(plan)
	for _, name := range names {
		if !slices.Contains(known, name) {
			return nil, fmt.Errorf("contract %q is not part of the deployment plan, valid contracts: %s", name, strings.Join(known, ", "))
		}
	}
	return deployer.Filter(plan, names), nil
}

func checkChainID(network models.Network, chainID *big.Int) error {
	if network.ChainID == 0 || chainID.Cmp(big.NewInt(network.ChainID)) == 0 {
		return nil
	}
	return fmt.Errorf("rpc %s reports chain id %s but network %s expects %d", network.RPCURL, chainID, network.Name, network.ChainID)
}

func unitNames(units []models.DeploymentUnit) []string {
	names := make([]string, 0, len(units))
	for _, u := range units {
		names = append(names, u.Name)
	}
	return names
}
