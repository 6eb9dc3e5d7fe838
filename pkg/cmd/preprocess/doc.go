// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package preprocess implements the "preprocess" command (not to be confused
with "pkg/preprocess", home of the preprocessing itself).

Options holds the settings parsed from the command line and runs the command.
Flags are bound through CmdFlags, so this package does not depend on Cobra.
RunWithFiles does not touch process streams; the website and tests call it
directly.
*/
package preprocess
