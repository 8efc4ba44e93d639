// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"path/filepath"

	"github.com/fhe-devkit/deployer/pkg/artifacts"
	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/registry"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Deployer carries what every command needs: where state lives, the logger,
// the configuration and the filesystem all storage goes through.
type Deployer struct {
	Log        *zap.Logger
	Conf       *config.Config
	Fs         afero.Fs
	baseDir    string
	projectDir string
}

func New() *Deployer {
	return &Deployer{}
}

func (app *Deployer) Setup(baseDir string, projectDir string, log *zap.Logger, conf *config.Config, fs afero.Fs) {
	app.baseDir = baseDir
	app.projectDir = projectDir
	app.Log = log
	app.Conf = conf
	app.Fs = fs
}

func (app *Deployer) GetBaseDir() string {
	return app.baseDir
}

func (app *Deployer) GetProjectDir() string {
	return app.projectDir
}

func (app *Deployer) GetLogDir() string {
	return filepath.Join(app.baseDir, constants.LogDir)
}

func (app *Deployer) GetConfigPath() string {
	return filepath.Join(app.baseDir, constants.ConfigFile)
}

func (app *Deployer) GetProjectConfigPath() string {
	return filepath.Join(app.projectDir, constants.ProjectConfig)
}

func (app *Deployer) GetDotEnvPath() string {
	return filepath.Join(app.projectDir, constants.DotEnvFile)
}

// GetArtifactsDir resolves the configured artifacts dir against the project dir.
func (app *Deployer) GetArtifactsDir() string {
	return app.projectPath(app.Conf.ArtifactsDir())
}

func (app *Deployer) GetDeploymentsDir() string {
	return app.projectPath(app.Conf.DeploymentsDir())
}

func (app *Deployer) projectPath(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(app.projectDir, dir)
}

func (app *Deployer) Registry() *registry.FileRegistry {
	return registry.NewFileRegistry(app.Fs, app.GetDeploymentsDir())
}

func (app *Deployer) Artifacts() *artifacts.Store {
	return artifacts.NewStore(app.Fs, app.GetArtifactsDir())
}
