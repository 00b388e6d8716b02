// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tests

import (
	"os"

	"github.com/cspr-tools/cctlnet/utils/logging"
)

func NewDefaultLogger(prefix string) logging.Logger {
	log, err := LoggerForFormat(prefix, logging.AutoString, logging.Debug.String())
	if err != nil {
		// This should never happen since auto and debug are valid values
		panic(err)
	}
	return log
}

func LoggerForFormat(prefix string, rawLogFormat string, rawLogLevel string) (logging.Logger, error) {
	writeCloser := os.Stdout
	logFormat, err := logging.ToFormat(rawLogFormat, writeCloser.Fd())
	if err != nil {
		return nil, err
	}
	level, err := logging.ToLevel(rawLogLevel)
	if err != nil {
		return nil, err
	}
	return logging.NewLogger(prefix, logging.NewWrappedCore(level, writeCloser, logFormat.ConsoleEncoder())), nil
}
