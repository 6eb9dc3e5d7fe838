// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package files provides primitives for enumerating and loading template files
from various file or file-like Source's and for writing preprocessed output to
filesystem files and directories.

Files of TypeTemplate (".soy") are preprocessed; every other file is carried
to the output unchanged.
*/
package files
