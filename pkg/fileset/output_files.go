// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package fileset

import (
	"fmt"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
)

// OutputFiles is a Compiler that keeps every registered file, in order.
type OutputFiles struct {
	files []files.OutputFile
	names map[string]struct{}
}

var _ Compiler = &OutputFiles{}

func NewOutputFiles() *OutputFiles {
	return &OutputFiles{names: map[string]struct{}{}}
}

func (o *OutputFiles) AddFile(name string, text []byte) error {
	if _, found := o.names[name]; found {
		return fmt.Errorf("Expected file name '%s' to be unique", name)
	}
	o.names[name] = struct{}{}
	o.files = append(o.files, files.NewOutputFile(name, text))
	return nil
}

func (o *OutputFiles) Files() []files.OutputFile { return o.files }
