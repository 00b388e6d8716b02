// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package tests

import (
	"fmt"
	"io"

	"github.com/onsi/ginkgo/v2/formatter"
)

// Outf writes a colorized message to stdout.
//
// Examples:
//
//   - Outf("{{green}}started network in %q{{/}}\n", dir)
//   - Outf("{{magenta}}{{bold}}sidecar{{/}} {{cyan}}%s{{/}}\n", uri)
//
// See https://github.com/onsi/ginkgo/blob/v2.0.0/formatter/formatter.go#L52-L73
// for an exhaustive list of color options.
func Outf(format string, args ...interface{}) {
	Foutf(formatter.ColorableStdOut, format, args...)
}

// Foutf writes a colorized message to [w].
func Foutf(w io.Writer, format string, args ...interface{}) {
	_, _ = fmt.Fprint(w, formatter.F(format, args...))
}
