// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"strings"
	"time"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/ui"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/embedded"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/fileset"
	"github.com/k14s/difflib"
)

type Options struct {
	Debug         bool
	Recursive     bool
	CheckEmbedded bool
	Diff          bool
	ConfigPath    string

	BulkFilesSourceOpts    BulkFilesSourceOpts
	RegularFilesSourceOpts RegularFilesSourceOpts

	// FlagChanged reports whether a flag was given on the command line.
	// When nil, values from the config file apply to every flag.
	FlagChanged func(name string) bool
}

type Input struct {
	Files []*files.File
}

type Output struct {
	Files []files.OutputFile
	Err   error
}

type FileSource interface {
	HasInput() bool
	HasOutput() bool
	Input() (Input, error)
	Output(Output) error
}

var _ []FileSource = []FileSource{&BulkFilesSource{}, &RegularFilesSource{}}

func NewOptions() *Options {
	return &Options{}
}

func (o *Options) BindFlags(cmdFlags CmdFlags) {
	cmdFlags.BoolVar(&o.Debug, "debug", false, "Enable debug output")
	cmdFlags.BoolVarP(&o.Recursive, "recursive", "r", false, "Interpret file as directory")
	cmdFlags.BoolVar(&o.CheckEmbedded, "check-embedded", false, "Warn about malformed embedded Jinja syntax")
	cmdFlags.BoolVar(&o.Diff, "diff", false, "Print differences between templates and their preprocessed form")
	cmdFlags.StringVar(&o.ConfigPath, "config", "", "TOML file with default flag values")
	o.BulkFilesSourceOpts.Set(cmdFlags)
	o.RegularFilesSourceOpts.Set(cmdFlags)
}

func (o *Options) Run() error {
	ui := ui.NewTTY(o.Debug)
	t1 := time.Now()

	defer func() {
		ui.Debugf("total: %s\n", time.Since(t1))
	}()

	if len(o.ConfigPath) > 0 {
		config, err := NewConfigFromFile(o.ConfigPath)
		if err != nil {
			return err
		}

		err = config.Apply(o, o.FlagChanged)
		if err != nil {
			return err
		}
	}

	srcs := []FileSource{
		NewBulkFilesSource(o.BulkFilesSourceOpts, ui),
		NewRegularFilesSource(o.RegularFilesSourceOpts, o.Recursive, ui),
	}

	in, err := o.pickSource(srcs, func(s FileSource) bool { return s.HasInput() }).Input()
	if err != nil {
		return err
	}

	out := o.RunWithFiles(in, ui)

	return o.pickSource(srcs, func(s FileSource) bool { return s.HasOutput() }).Output(out)
}

// RunWithFiles preprocesses template files and passes every other file
// through. With Diff set, each template's output is replaced by a diff
// against its source.
func (o *Options) RunWithFiles(in Input, ui ui.UI) Output {
	collector := fileset.NewOutputFiles()
	builder := fileset.NewBuilder(collector)

	for _, file := range in.Files {
		ui.Debugf("### preprocessing %s (template: %t)\n", file.RelativePath(), file.IsTemplate())

		err := builder.AddFile(file)
		if err != nil {
			return Output{Err: err}
		}
	}

	result := collector.Files()

	for i, file := range in.Files {
		if !file.IsTemplate() {
			continue
		}

		if o.CheckEmbedded {
			err := embedded.Check(file.RelativePath(), string(result[i].Bytes()))
			if err != nil {
				ui.Warnf("Warning: %s\n", err)
			}
		}

		if o.Diff {
			src, err := file.Bytes()
			if err != nil {
				return Output{Err: err}
			}
			diff := difflib.PPDiff(strings.Split(string(src), "\n"), strings.Split(string(result[i].Bytes()), "\n"))
			result[i] = files.NewOutputFile(result[i].RelativePath(), []byte(diff))
		}
	}

	return Output{Files: result}
}

func (o *Options) pickSource(srcs []FileSource, pickFunc func(FileSource) bool) FileSource {
	for _, src := range srcs {
		if pickFunc(src) {
			return src
		}
	}
	return srcs[len(srcs)-1]
}
