// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	cmdpp "github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/preprocess"
	"github.com/cppforlife/cobrautil"
	"github.com/spf13/cobra"
)

// NewPreprocessCmd lives here so that pkg/cmd/preprocess carries no
// dependency on cobra.
func NewPreprocessCmd(o *cmdpp.Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "preprocess",
		Aliases: []string{"pp"},
		Short:   "Preprocess templates for the host template compiler",
		RunE:    func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	o.BindFlags(cmd.Flags())
	o.FlagChanged = cmd.Flags().Changed

	cmd.SetUsageTemplate(cobrautil.FlagHelpSectionsUsageTemplate([]cobrautil.FlagHelpSection{
		{Title: "Input Flags:", ExactMatch: []string{"file", "recursive", "filter-template-file", "bulk-in", "config"}},
		{Title: "Output Flags:", ExactMatch: []string{"output-files", "bulk-out", "diff"}},
		{Title: "Common Flags:", NoneMatch: true},
	}))
	return cmd
}
