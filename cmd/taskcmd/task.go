// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package taskcmd

import (
	"github.com/fhe-devkit/deployer/cmd/flags"
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/evm"
	"github.com/fhe-devkit/deployer/pkg/task"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var (
	app *application.Deployer

	networkFlags flags.NetworkFlags
)

// deployer task
func NewCmd(injectedApp *application.Deployer) *cobra.Command {
	app = injectedApp
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Runs tasks against deployed contracts",
		Long: `The task command suite runs read only calls against contracts recorded by
deployer deploy on the selected network. Tasks never send transactions.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cobrautils.CommandSuiteUsage(cmd, args)
		},
		Args: cobrautils.ExactArgs(0),
	}
	flags.AddPersistentNetworkFlagsToCmd(cmd, &networkFlags)
	// deployer task list
	cmd.AddCommand(newListCmd())
	for _, t := range task.Registered {
		cmd.AddCommand(newTaskCmd(t))
	}
	return cmd
}

func newTaskCmd(t task.Task) *cobra.Command {
	return &cobra.Command{
		Use:     t.Name,
		Aliases: []string{t.ID()},
		Short:   t.Description,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTask(cmd, t)
		},
		Args: cobrautils.ExactArgs(0),
	}
}

func runTask(cmd *cobra.Command, t task.Task) error {
	ctx := cmd.Context()
	networkName, err := networkFlags.NetworkName()
	if err != nil {
		return err
	}
	network, err := app.Conf.GetNetwork(networkName)
	if err != nil {
		return err
	}
	client, err := evm.GetClient(ctx, network.RPCURL)
	if err != nil {
		return err
	}
	defer client.Close()
	invoker := task.NewInvoker(app.Registry(), app.Artifacts(), client, ux.Logger, app.Log)
	_, err = invoker.Run(ctx, network, t)
	return err
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists the available tasks",
		RunE: func(*cobra.Command, []string) error {
			t := ux.DefaultTable("Tasks", table.Row{"Task", "Contract", "Method", "Description"})
			for _, registered := range task.Registered {
				t.AppendRow(table.Row{registered.Name, registered.Contract, registered.Method + "()", registered.Description})
			}
			ux.Logger.PrintTable(t)
			return nil
		},
		Args: cobrautils.ExactArgs(0),
	}
}
