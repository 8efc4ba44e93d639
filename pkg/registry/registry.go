// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/fhe-devkit/deployer/pkg/models"
	"github.com/spf13/afero"
)

const chainIDFile = ".chainId"

var (
	ErrNotFound        = errors.New("deployment not found")
	ErrChainIDMismatch = errors.New("chain id mismatch")
)

// Registry maps (network, name) to the last deployment of that name.
type Registry interface {
	Get(network string, name string) (models.DeploymentRecord, error)
	Save(network string, record models.DeploymentRecord) error
	List(network string) ([]models.DeploymentRecord, error)
	Clear(network string) error
}

// FileRegistry keeps one JSON file per deployment under <root>/<network>/.
type FileRegistry struct {
	fs   afero.Fs
	root string
}

func NewFileRegistry(fs afero.Fs, root string) *FileRegistry {
	return &FileRegistry{fs: fs, root: root}
}

func (r *FileRegistry) networkDir(network string) string {
	return filepath.Join(r.root, network)
}

func (r *FileRegistry) recordPath(network string, name string) string {
	return filepath.Join(r.networkDir(network), name+constants.JSONSuffix)
}

func (r *FileRegistry) Get(network string, name string) (models.DeploymentRecord, error) {
	path := r.recordPath(network, name)
	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.DeploymentRecord{}, fmt.Errorf("%w: %s on %s", ErrNotFound, name, network)
		}
		return models.DeploymentRecord{}, fmt.Errorf("failed reading %s: %w", path, err)
	}
	var record models.DeploymentRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return models.DeploymentRecord{}, fmt.Errorf("failed decoding %s: %w", path, err)
	}
	if record.Name == "" {
		record.Name = name
	}
	return record, nil
}

// Save writes record, replacing whatever was stored for the same name.
func (r *FileRegistry) Save(network string, record models.DeploymentRecord) error {
	if record.Name == "" {
		return fmt.Errorf("cannot save a deployment without a name")
	}
	if err := r.fs.MkdirAll(r.networkDir(network), constants.DefaultPerms755); err != nil {
		return fmt.Errorf("failed creating deployments dir for %s: %w", network, err)
	}
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return err
	}
	path := r.recordPath(network, record.Name)
	if err := afero.WriteFile(r.fs, path, data, constants.WriteReadReadPerms); err != nil {
		return fmt.Errorf("failed writing %s: %w", path, err)
	}
	return nil
}

// List returns the network's deployments sorted by name.
func (r *FileRegistry) List(network string) ([]models.DeploymentRecord, error) {
	entries, err := afero.ReadDir(r.fs, r.networkDir(network))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	names := []string{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), constants.JSONSuffix) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), constants.JSONSuffix))
	}
	sort.Strings(names)
	records := make([]models.DeploymentRecord, 0, len(names))
	for _, name := range names {
		record, err := r.Get(network, name)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Clear forgets every deployment made on network.
func (r *FileRegistry) Clear(network string) error {
	return r.fs.RemoveAll(r.networkDir(network))
}

// EnsureChainID pins network to chainID on first use and rejects a registry
// that was populated against a different chain.
func (r *FileRegistry) EnsureChainID(network string, chainID *big.Int) error {
	path := filepath.Join(r.networkDir(network), chainIDFile)
	data, err := afero.ReadFile(r.fs, path)
	switch {
	case err == nil:
		stored := strings.TrimSpace(string(data))
		if stored != chainID.String() {
			return fmt.Errorf(
				"%w: deployments for %s were made on chain %s but the rpc reports %s, use --reset to start over",
				ErrChainIDMismatch, network, stored, chainID,
			)
		}
		return nil
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("failed reading %s: %w", path, err)
	}
	if err := r.fs.MkdirAll(r.networkDir(network), constants.DefaultPerms755); err != nil {
		return err
	}
	return afero.WriteFile(r.fs, path, []byte(chainID.String()), constants.WriteReadReadPerms)
}
