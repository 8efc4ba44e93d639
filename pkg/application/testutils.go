// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"testing"

	"github.com/fhe-devkit/deployer/pkg/config"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// NewTestApp returns an app over an in-memory filesystem.
func NewTestApp(t *testing.T) *Deployer {
	fs := afero.NewMemMapFs()
	app := New()
	conf := config.New(fs)
	app.Setup("/home/test/.fhe-deployer", "/work/project", zap.NewNop(), conf, fs)
	conf.SetConfig(app.Log, app.GetConfigPath())
	return app
}
