// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"io"

	cmdpp "github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/preprocess"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/ui"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/website"
	"github.com/spf13/cobra"
)

type WebsiteOptions struct {
	ListenAddr      string
	RedirectToHTTPS bool
	CheckEmbedded   bool
}

func NewWebsiteOptions() *WebsiteOptions {
	return &WebsiteOptions{}
}

func NewWebsiteCmd(o *WebsiteOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "website",
		Short: "Starts website HTTP server",
		RunE:  func(_ *cobra.Command, _ []string) error { return o.Run() },
	}
	cmd.Flags().StringVar(&o.ListenAddr, "listen-addr", "localhost:8080", "Listen address")
	cmd.Flags().BoolVar(&o.RedirectToHTTPS, "redirect-to-https", true, "Redirect to HTTPs address")
	cmd.Flags().BoolVar(&o.CheckEmbedded, "check-embedded", false, "Log malformed embedded Jinja syntax")
	return cmd
}

func (o *WebsiteOptions) Server() *website.Server {
	opts := website.ServerOpts{
		ListenAddr:      o.ListenAddr,
		RedirectToHTTPS: o.RedirectToHTTPS,
		PreprocessFunc:  o.preprocessBulk,
		ErrorFunc:       o.bulkOutErr,
	}
	return website.NewServer(opts)
}

func (o *WebsiteOptions) Run() error {
	return o.Server().Run()
}

// Preprocessing is a pure text transformation, so requests are served in
// process.
func (o *WebsiteOptions) preprocessBulk(data []byte) ([]byte, error) {
	ppOpts := cmdpp.NewOptions()
	ppOpts.CheckEmbedded = o.CheckEmbedded
	return ppOpts.RunBulk(data, ui.NewCustomWriterTTY(false, io.Discard, nil))
}

func (*WebsiteOptions) bulkOutErr(err error) ([]byte, error) {
	return cmdpp.BulkFiles{Errors: err.Error()}.AsBytes()
}
