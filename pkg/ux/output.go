// Copyright (C) 2022, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"go.uber.org/zap"
)

var Logger *UserLog

// UserLog writes operator facing messages and mirrors them into the log file.
type UserLog struct {
	log    *zap.Logger
	Writer io.Writer
}

func New(log *zap.Logger, userwriter io.Writer) *UserLog {
	if log == nil {
		log = zap.NewNop()
	}
	if userwriter == nil {
		userwriter = os.Stdout
	}
	return &UserLog{
		log:    log,
		Writer: userwriter,
	}
}

// NewUserLog sets the global user logger. Only the first call has effect.
func NewUserLog(log *zap.Logger, userwriter io.Writer) {
	if Logger == nil {
		Logger = New(log, userwriter)
	}
}

// PrintToUser prints msg directly on the screen, but also to log file
func (ul *UserLog) PrintToUser(msg string, args ...interface{}) {
	ul.print(fmt.Sprintf(msg, args...) + "\n")
}

func (ul *UserLog) print(msg string) {
	if ul != nil {
		fmt.Fprint(ul.Writer, msg)
		ul.log.Info(strings.TrimSuffix(msg, "\n"))
	} else {
		fmt.Print(msg)
	}
}

// Error prints to the log file
func (ul *UserLog) Error(msg string, fields ...zap.Field) {
	if ul == nil {
		return
	}
	ul.log.Error(msg, fields...)
}

// GreenCheckmarkToUser prints a green checkmark to the user before the message
func (ul *UserLog) GreenCheckmarkToUser(msg string, args ...interface{}) {
	checkmark := "✓" // Unicode for checkmark symbol
	green := color.New(color.FgHiGreen).SprintFunc()
	ul.PrintToUser(green(checkmark)+" "+msg, args...)
}

func (ul *UserLog) RedXToUser(msg string, args ...interface{}) {
	xmark := "✗" // Unicode for X symbol
	red := color.New(color.FgHiRed).SprintFunc()
	ul.PrintToUser(red(xmark)+" "+msg, args...)
}

// RedToUser prints the whole message in red.
func (ul *UserLog) RedToUser(msg string, args ...interface{}) {
	red := color.New(color.FgRed).SprintFunc()
	ul.PrintToUser("%s", red(fmt.Sprintf(msg, args...)))
}
