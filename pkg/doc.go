// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package pkg is the collection of packages that make up the implementation of
autogen-tpl.

Packages are layered; each one depends on the others only as far as needed.
In the inventory below, individual packages are named alongside their coupling
with the other packages in the codebase.

	(# of dependents) => <package name> => (# of dependencies)

# Entry Point

autogen-tpl is built into three executable formats:

	./cmd/autogen-tpl                  // a command-line tool
	./cmd/autogen-tpl-lambda-website   // an AWS Lambda function
	./cmd/autogen-tpl-wasm             // a WebAssembly module

The website serves bulk preprocessing over HTTP along with a few examples.

	(1) => pkg/website => (0)

# Commands

	(2) => pkg/cmd => (4)
	(2) => pkg/cmd/preprocess => (5)
	(3) => pkg/cmd/ui => (0)

pkg/cmd holds the cobra commands; pkg/cmd/preprocess holds the options and
logic of the "preprocess" command without depending on cobra.

# Preprocessing

Every template file goes through a single pure function before it is handed
to the host template compiler:

	(3) => pkg/preprocess => (0)

It runs four stages in order: comment stripping, collapsing of multi-line host
commands along with escaping of embedded Jinja delimiters, per-line
classification, and removal of preprocessor directives.

Registering files with a compiler, and checking the Jinja that is left once
the host compiler has run, are separate concerns:

	(1) => pkg/fileset => (2)
	(1) => pkg/embedded => (1)

# Files

	(2) => pkg/files => (0)
	(2) => pkg/version => (0)

pkg/files loads sources (local paths, directories, HTTP URLs, stdin) and
writes output directories. Only ".soy" files are templates; everything else
passes through unchanged.
*/
package pkg
