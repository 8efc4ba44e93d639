// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package task

import "strings"

const prefix = "task:"

// Task calls one zero argument read method on a deployed contract.
type Task struct {
	Name        string
	Description string
	Contract    string
	Method      string
}

// Registered lists the tasks known to 'deployer task'. New tasks are added here.
var Registered = []Task{
	{
		Name:        "getName",
		Description: "Print the name of the deployed WrappingERC20 token",
		Contract:    "WrappingERC20",
		Method:      "name",
	},
}

// Lookup finds a registered task, with or without the "task:" prefix.
func Lookup(name string) (Task, bool) {
	name = strings.TrimPrefix(name, prefix)
	for _, t := range Registered {
		if t.Name == name {
			return t, true
		}
	}
	return Task{}, false
}

// ID is the qualified task name, as accepted on the command line.
func (t Task) ID() string {
	return prefix + t.Name
}
