// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

// UI is the subset of ui.UI used when writing output.
type UI interface {
	Printf(string, ...interface{})
	Debugf(string, ...interface{})
}
