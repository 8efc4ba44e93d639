// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package cmd

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/fhe-devkit/deployer/cmd/configcmd"
	"github.com/fhe-devkit/deployer/cmd/deploycmd"
	"github.com/fhe-devkit/deployer/cmd/deploymentscmd"
	"github.com/fhe-devkit/deployer/cmd/networkcmd"
	"github.com/fhe-devkit/deployer/cmd/taskcmd"
	"github.com/fhe-devkit/deployer/pkg/application"
	"github.com/fhe-devkit/deployer/pkg/cobrautils"
	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/utils"
	"github.com/fhe-devkit/deployer/pkg/ux"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	app *application.Deployer

	logLevel   string
	projectDir string

	Version = ""
)

func NewRootCmd() *cobra.Command {
	// rootCmd represents the base command when called without any subcommands
	rootCmd := &cobra.Command{
		Use: "deployer",
		Long: `deployer deploys a project's compiled contracts to an FHE enabled EVM network
and runs read only tasks against them.

A deployment makes sure the deployer account can pay for gas, topping it up
from the faucet on the local test network, then deploys the contracts of the
plan one after the other and records every address under deployments/.

To get started, compile your contracts, set PRIVATE_KEY in the project .env
file and run deployer deploy --local.`,
		PersistentPreRunE: createApp,
		Version:           Version,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Disable printing the completion command
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "ERROR", "log level shown on the console, the log file always gets INFO and above")
	rootCmd.PersistentFlags().StringVar(&projectDir, "project-dir", "", "project holding artifacts/, deployments/ and .env (defaults to the working dir)")
	cobrautils.ConfigureRootCmd(rootCmd)

	// add sub commands
	rootCmd.AddCommand(deploycmd.NewCmd(app))
	rootCmd.AddCommand(taskcmd.NewCmd(app))
	rootCmd.AddCommand(deploymentscmd.NewCmd(app))
	rootCmd.AddCommand(networkcmd.NewCmd(app))
	rootCmd.AddCommand(configcmd.NewCmd(app))
	return rootCmd
}

func createApp(*cobra.Command, []string) error {
	baseDir, err := setupEnv()
	if err != nil {
		return err
	}
	log, err := setupLogging(baseDir)
	if err != nil {
		return err
	}
	if projectDir == "" {
		projectDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed getting the working dir: %w", err)
		}
	}
	projectDir, err = filepath.Abs(utils.ExpandHome(projectDir))
	if err != nil {
		return err
	}
	fs := afero.NewOsFs()
	cf := config.New(fs)
	app.Setup(baseDir, projectDir, log, cf, fs)
	initConfig()
	return loadDotEnv()
}

func setupEnv() (string, error) {
	// Set base dir
	usr, err := user.Current()
	if err != nil {
		// no logger here yet
		fmt.Printf("unable to get system user %s\n", err)
		return "", err
	}
	baseDir := filepath.Join(usr.HomeDir, constants.BaseDirName)

	// Create base dir if it doesn't exist
	if err := os.MkdirAll(baseDir, constants.DefaultPerms755); err != nil {
		// no logger here yet
		fmt.Printf("failed creating the basedir %s: %s\n", baseDir, err)
		return "", err
	}
	return baseDir, nil
}

func setupLogging(baseDir string) (*zap.Logger, error) {
	displayLevel, err := zapcore.ParseLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level configured: %s", logLevel)
	}
	logDir := filepath.Join(baseDir, constants.LogDir)
	if err := os.MkdirAll(logDir, constants.DefaultPerms755); err != nil {
		return nil, fmt.Errorf("failed creating log directory: %w", err)
	}

	// some logging config params
	fileWriter := zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(logDir, constants.LogFileName),
		MaxSize:    constants.MaxLogFileSize,
		MaxBackups: constants.MaxNumOfLogFiles,
		MaxAge:     constants.RetainOldFiles,
	})
	fileEncoder := zap.NewProductionEncoderConfig()
	fileEncoder.EncodeTime = zapcore.ISO8601TimeEncoder
	displayEncoder := zap.NewDevelopmentEncoderConfig()
	displayEncoder.EncodeLevel = zapcore.CapitalColorLevelEncoder

	log := zap.New(zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(fileEncoder), fileWriter, zapcore.InfoLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(displayEncoder), zapcore.Lock(os.Stderr), displayLevel),
	)).Named("deployer")

	// create the user facing logger as a global var
	ux.NewUserLog(log, os.Stdout)
	return log, nil
}

// initConfig reads the user config file and merges the project one on top.
func initConfig() {
	app.Conf.SetConfig(app.Log, app.GetConfigPath())
	app.Conf.MergeConfig(app.Log, app.GetProjectConfigPath())
}

// loadDotEnv exports the project .env file. Variables already set in the
// environment win.
func loadDotEnv() error {
	path := app.GetDotEnvPath()
	if !utils.FileExists(app.Fs, path) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed loading %s: %w", path, err)
	}
	app.Log.Info("loaded environment file", zap.String("path", path))
	return nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	app = application.New()
	rootCmd := NewRootCmd()
	err := rootCmd.Execute()
	if app.Log != nil {
		_ = app.Log.Sync()
	}
	cobrautils.HandleErrors(err)
}
