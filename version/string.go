// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package version

import "fmt"

func String(commit string) string {
	format := "%s"
	args := []interface{}{
		Current,
	}

	if commit != "" {
		format += " [commit=%s]"
		args = append(args, commit)
	}
	return fmt.Sprintf(format, args...)
}
