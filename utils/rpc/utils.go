// Copyright (C) 2019-2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "net/url"

func stripPassword(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	return u.Redacted()
}
