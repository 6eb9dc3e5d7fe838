// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdpp "github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/preprocess"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/version"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

func NewDefaultAutogenTplCmd() *cobra.Command {
	cmd := NewPreprocessCmd(cmdpp.NewOptions())

	cmd.Use = "autogen-tpl"
	cmd.Aliases = nil
	cmd.Version = version.Version
	cmd.Short = "autogen-tpl prepares layered host/Jinja templates for the host template compiler"
	cmd.Long = `autogen-tpl prepares layered host/Jinja templates for the host template compiler.

It strips host comments, collapses multi-line host commands, escapes embedded
Jinja delimiters and marks lines whose whitespace must survive compilation.
Only files ending in .soy are changed; other files are copied unchanged.`

	// Affects children as well
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	// Disable docs header
	cmd.DisableAutoGenTag = true

	cmd.AddCommand(NewVersionCmd(NewVersionOptions()))
	cmd.AddCommand(NewPreprocessCmd(cmdpp.NewOptions()))
	cmd.AddCommand(NewWebsiteCmd(NewWebsiteOptions()))

	// Reconfigure Commands
	cobrautil.VisitCommands(cmd, cobrautil.ReconfigureCmdWithSubcmd,
		cobrautil.DisallowExtraArgs, cobrautil.WrapRunEForCmd(cobrautil.ResolveFlagsForCmd))

	return cmd
}
