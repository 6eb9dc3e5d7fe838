// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package ui is the tool's logging surface: results go to stdout, warnings and
debug output (only with --debug) go to stderr.
*/
package ui
