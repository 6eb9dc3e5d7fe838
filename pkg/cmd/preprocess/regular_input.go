// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/ui"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
)

// SplitHeader precedes each file when several files are printed to stdout.
const SplitHeader = "__autogen_tpl_split__"

type RegularFilesSourceOpts struct {
	files               []string
	filterTemplateFiles []string
	outputFiles         string
}

func (s *RegularFilesSourceOpts) Set(cmdFlags CmdFlags) {
	cmdFlags.StringSliceVarP(&s.files, "file", "f", nil, "File (ie local path, HTTP URL, -) (can be specified multiple times)")
	cmdFlags.StringSliceVar(&s.filterTemplateFiles, "filter-template-file", nil,
		"Specify which file to preprocess; all others pass through unchanged (can be specified multiple times)")
	cmdFlags.StringVar(&s.outputFiles, "output-files", "", "Directory for output files (removed and recreated)")
}

type RegularFilesSource struct {
	opts      RegularFilesSourceOpts
	recursive bool
	ui        ui.UI
}

func NewRegularFilesSource(opts RegularFilesSourceOpts, recursive bool, ui ui.UI) *RegularFilesSource {
	return &RegularFilesSource{opts, recursive, ui}
}

func (s *RegularFilesSource) HasInput() bool  { return len(s.opts.files) > 0 }
func (s *RegularFilesSource) HasOutput() bool { return true }

func (s *RegularFilesSource) Input() (Input, error) {
	if len(s.opts.files) == 0 {
		return Input{}, fmt.Errorf("Expected at least one file to be given via --file (-f)")
	}

	filesToProcess, err := files.NewSortedFilesFromPaths(s.opts.files, s.recursive)
	if err != nil {
		return Input{}, err
	}

	if len(s.opts.filterTemplateFiles) > 0 {
		for _, file := range filesToProcess {
			var isTemplate bool
			for _, filteredFile := range s.opts.filterTemplateFiles {
				if filteredFile == file.RelativePath() {
					isTemplate = true
					break
				}
			}
			if !isTemplate {
				file.MarkNonTemplate()
			}
		}
	}

	return Input{Files: filesToProcess}, nil
}

func (s *RegularFilesSource) Output(out Output) error {
	if out.Err != nil {
		return out.Err
	}

	if len(s.opts.outputFiles) > 0 {
		return files.NewOutputDirectory(s.opts.outputFiles, out.Files, s.ui).Write()
	}

	s.ui.Debugf("### result\n")

	for _, file := range out.Files {
		if len(out.Files) > 1 {
			s.ui.Printf("%s %s\n", SplitHeader, file.RelativePath())
		}
		s.ui.Printf("%s\n", file.Bytes())
	}

	return nil
}
