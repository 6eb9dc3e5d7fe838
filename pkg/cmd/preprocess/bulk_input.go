// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"encoding/json"
	"fmt"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/ui"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
)

type BulkFilesSourceOpts struct {
	bulkIn  string
	bulkOut bool
}

func (s *BulkFilesSourceOpts) Set(cmdFlags CmdFlags) {
	cmdFlags.StringVar(&s.bulkIn, "bulk-in", "", "Accept files in bulk format")
	cmdFlags.BoolVar(&s.bulkOut, "bulk-out", false, "Output files in bulk format")
}

type BulkFilesSource struct {
	opts BulkFilesSourceOpts
	ui   ui.UI
}

type BulkFiles struct {
	Files  []BulkFile `json:"files,omitempty"`
	Errors string     `json:"errors,omitempty"`
}

type BulkFile struct {
	Name string `json:"name"`
	Data string `json:"data"`
}

func NewBulkFilesSource(opts BulkFilesSourceOpts, ui ui.UI) *BulkFilesSource {
	return &BulkFilesSource{opts, ui}
}

func (s *BulkFilesSource) HasInput() bool  { return len(s.opts.bulkIn) > 0 }
func (s *BulkFilesSource) HasOutput() bool { return s.opts.bulkOut }

// Input keeps the order of files given in the request.
func (s *BulkFilesSource) Input() (Input, error) {
	return NewBulkInput([]byte(s.opts.bulkIn))
}

func (s *BulkFilesSource) Output(out Output) error {
	resultBytes, err := NewBulkFiles(out).AsBytes()
	if err != nil {
		return err
	}

	s.ui.Debugf("### result\n")
	s.ui.Printf("%s", resultBytes)

	return nil
}

func NewBulkInput(data []byte) (Input, error) {
	var fs BulkFiles

	err := json.Unmarshal(data, &fs)
	if err != nil {
		return Input{}, fmt.Errorf("Unmarshaling bulk files: %s", err)
	}

	var result []*files.File

	for _, f := range fs.Files {
		file, err := files.NewFileFromSource(files.NewBytesSource(f.Name, []byte(f.Data)))
		if err != nil {
			return Input{}, err
		}
		result = append(result, file)
	}

	return Input{Files: result}, nil
}

func NewBulkFiles(out Output) BulkFiles {
	fs := BulkFiles{}

	if out.Err != nil {
		fs.Errors = out.Err.Error()
		return fs
	}

	for _, outputFile := range out.Files {
		fs.Files = append(fs.Files, BulkFile{
			Name: outputFile.RelativePath(),
			Data: string(outputFile.Bytes()),
		})
	}

	return fs
}

func (fs BulkFiles) AsBytes() ([]byte, error) {
	return json.Marshal(fs)
}

// RunBulk preprocesses a bulk request and returns the bulk response.
func (o *Options) RunBulk(data []byte, ui ui.UI) ([]byte, error) {
	in, err := NewBulkInput(data)
	if err != nil {
		return nil, err
	}
	return NewBulkFiles(o.RunWithFiles(in, ui)).AsBytes()
}
