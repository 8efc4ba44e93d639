// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package testutils

import (
	"encoding/json"
	"path"

	"github.com/spf13/afero"
)

const (
	CounterABI = `[
  {"inputs":[],"stateMutability":"nonpayable","type":"constructor"},
  {"inputs":[],"name":"getCounter","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"add","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`
	WrappingERC20ABI = `[
  {"inputs":[{"internalType":"string","name":"name","type":"string"},{"internalType":"string","name":"symbol","type":"string"}],"stateMutability":"nonpayable","type":"constructor"},
  {"inputs":[],"name":"name","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"symbol","outputs":[{"internalType":"string","name":"","type":"string"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"totalSupply","outputs":[{"internalType":"uint256","name":"","type":"uint256"}],"stateMutability":"view","type":"function"},
  {"inputs":[],"name":"owner","outputs":[{"internalType":"address","name":"","type":"address"}],"stateMutability":"view","type":"function"}
]`
	// minimal init code; never executed by unit tests
	DummyBytecode = "0x6080604052348015600f57600080fd5b50603f80601d6000396000f3fe"
)

// WriteArtifact stores a Hardhat style artifact for name under root.
func WriteArtifact(fs afero.Fs, root string, name string, abiJSON string, bytecode string) error {
	content, err := json.MarshalIndent(map[string]interface{}{
		"_format":      "hh-sol-artifact-1",
		"contractName": name,
		"sourceName":   "contracts/" + name + ".sol",
		"abi":          json.RawMessage(abiJSON),
		"bytecode":     bytecode,
	}, "", "  ")
	if err != nil {
		return err
	}
	dir := path.Join(root, "contracts", name+".sol")
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return afero.WriteFile(fs, path.Join(dir, name+".json"), content, 0o644)
}

const (
	// StaticNameBytecode deploys a contract answering every call with the abi
	// encoding of the string "Test Token". Constructor arguments are ignored.
	StaticNameBytecode = "0x606c600c600039606c6000f36060600c60003960606000f3" +
		"0000000000000000000000000000000000000000000000000000000000000020" +
		"000000000000000000000000000000000000000000000000000000000000000a" +
		"5465737420546f6b656e00000000000000000000000000000000000000000000"
	// RevertingBytecode reverts in its constructor.
	RevertingBytecode = "0x60006000fd"
	// EmptyBytecode deploys a contract without runtime code.
	EmptyBytecode = "0x60006000f3"
)
