// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package fileset registers template sources with a host template compiler,
preprocessing each template on the way in.
*/
package fileset

import (
	"fmt"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/files"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/preprocess"
)

// Compiler accepts named template sources. Implementations must not assume
// anything about the order in which files are added.
type Compiler interface {
	AddFile(name string, text []byte) error
}

type Builder struct {
	compiler Compiler
}

func NewBuilder(compiler Compiler) *Builder {
	return &Builder{compiler}
}

// Add preprocesses content and registers it under name.
func (b *Builder) Add(name string, content []byte) error {
	result := preprocess.Preprocess(string(content))

	err := b.compiler.AddFile(name, []byte(result))
	if err != nil {
		return fmt.Errorf("Adding file '%s': %s", name, err)
	}
	return nil
}

// AddFile preprocesses template files; other files are registered verbatim.
func (b *Builder) AddFile(file *files.File) error {
	content, err := file.Bytes()
	if err != nil {
		return fmt.Errorf("Reading %s: %s", file.Description(), err)
	}

	if file.IsTemplate() {
		return b.Add(file.RelativePath(), content)
	}

	err = b.compiler.AddFile(file.RelativePath(), content)
	if err != nil {
		return fmt.Errorf("Adding file '%s': %s", file.RelativePath(), err)
	}
	return nil
}

func (b *Builder) AddSource(src files.Source) error {
	file, err := files.NewFileFromSource(src)
	if err != nil {
		return err
	}
	return b.AddFile(file)
}

func (b *Builder) AddFiles(fs []*files.File) error {
	for _, file := range fs {
		err := b.AddFile(file)
		if err != nil {
			return err
		}
	}
	return nil
}
