// Copyright (c) 2025 Mockauth
// Licensed under the MIT License. See LICENSE file in the project root for details.

package authstore

import "sync"

// Process-wide store instance
var (
	defaultStore *Store
	defaultMu    sync.Mutex
)

// Default returns the process-wide store, creating it on first call.
// Every call returns the same instance. There is no teardown.
//
// Prefer passing a *Store explicitly; Default exists for the composition root.
func Default() *Store {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultStore == nil {
		defaultStore = New()
	}
	return defaultStore
}
