// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package cmd is home to the full set of autogen-tpl's "commands" -- instances
of cobra.Command (not to be confused with ./cmd which contains the
bootstrapping for executing autogen-tpl in various environments).

For a list of commands run:

	$ autogen-tpl help

The default command is "preprocess".
*/
package cmd
