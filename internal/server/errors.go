// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when the config
	// names no transport address, so no server could be built.
	errNoServersAreCreated = errors.New("no servers are created")
)
