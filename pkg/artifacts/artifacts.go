// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package artifacts

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fhe-devkit/deployer/pkg/clierrors"
	"github.com/fhe-devkit/deployer/pkg/constants"
	"github.com/spf13/afero"
)

const (
	debugSuffix  = ".dbg.json"
	buildInfoDir = "build-info"
)

// Artifact is a compiled contract as emitted by the Hardhat toolchain.
type Artifact struct {
	Name       string
	SourceName string
	RawABI     json.RawMessage
	ABI        abi.ABI
	Bytecode   []byte
}

type artifactFile struct {
	Format       string          `json:"_format"`
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     string          `json:"bytecode"`
}

// Store finds artifacts by contract name under a root directory.
type Store struct {
	fs   afero.Fs
	root string
}

func NewStore(fs afero.Fs, root string) *Store {
	return &Store{fs: fs, root: root}
}

func (s *Store) Root() string {
	return s.root
}

// Get loads the artifact for contract name. The first <name>.json found while
// walking the root wins; debug files and build info are ignored.
func (s *Store) Get(name string) (*Artifact, error) {
	path, err := s.find(name)
	if err != nil {
		return nil, err
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("failed reading artifact %s: %w", path, err)
	}
	return Parse(data)
}

func (s *Store) find(name string) (string, error) {
	target := name + constants.JSONSuffix
	found := ""
	errFound := errors.New("found")
	err := afero.Walk(s.fs, s.root, func(path string, info fs.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == buildInfoDir {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(info.Name(), debugSuffix) {
			return nil
		}
		if info.Name() == target {
			found = path
			return errFound
		}
		return nil
	})
	switch {
	case errors.Is(err, errFound):
		return found, nil
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return "", fmt.Errorf("failed searching artifacts in %s: %w", s.root, err)
	}
	return "", fmt.Errorf("%w: %s in %s", clierrors.ErrArtifactNotFound, name, s.root)
}

// Parse decodes a Hardhat artifact file.
func Parse(data []byte) (*Artifact, error) {
	var f artifactFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("invalid artifact: %w", err)
	}
	if f.ContractName == "" {
		return nil, fmt.Errorf("invalid artifact: missing contractName")
	}
	if len(f.ABI) == 0 {
		return nil, fmt.Errorf("invalid artifact %s: missing abi", f.ContractName)
	}
	parsed, err := abi.JSON(bytes.NewReader(f.ABI))
	if err != nil {
		return nil, fmt.Errorf("invalid abi for %s: %w", f.ContractName, err)
	}
	return &Artifact{
		Name:       f.ContractName,
		SourceName: f.SourceName,
		RawABI:     f.ABI,
		ABI:        parsed,
		Bytecode:   common.FromHex(f.Bytecode),
	}, nil
}

// Deployable reports whether the artifact carries creation bytecode. Interfaces
// and abstract contracts do not.
func (a *Artifact) Deployable() bool {
	return len(a.Bytecode) > 0
}
