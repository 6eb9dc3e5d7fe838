// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/version"
)

// Config supplies defaults for flags that were not given on the command line.
type Config struct {
	MinVersion          string   `toml:"min_version"`
	Files               []string `toml:"files"`
	Recursive           *bool    `toml:"recursive"`
	CheckEmbedded       *bool    `toml:"check_embedded"`
	FilterTemplateFiles []string `toml:"filter_template_files"`
	OutputFiles         string   `toml:"output_files"`
}

func NewConfigFromFile(path string) (Config, error) {
	var config Config

	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return Config{}, fmt.Errorf("Reading config '%s': %s", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		var keys []string
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return Config{}, fmt.Errorf("Reading config '%s': unknown keys '%s'", path, strings.Join(keys, "', '"))
	}

	return config, nil
}

// Apply checks the minimum version and copies values into o for every flag
// for which changed reports false. A nil changed treats all flags as unset.
func (c Config) Apply(o *Options, changed func(name string) bool) error {
	if len(c.MinVersion) > 0 {
		err := version.Check(c.MinVersion)
		if err != nil {
			return err
		}
	}

	unset := func(name string) bool { return changed == nil || !changed(name) }

	if len(c.Files) > 0 && unset("file") {
		o.RegularFilesSourceOpts.files = c.Files
	}
	if c.Recursive != nil && unset("recursive") {
		o.Recursive = *c.Recursive
	}
	if c.CheckEmbedded != nil && unset("check-embedded") {
		o.CheckEmbedded = *c.CheckEmbedded
	}
	if len(c.FilterTemplateFiles) > 0 && unset("filter-template-file") {
		o.RegularFilesSourceOpts.filterTemplateFiles = c.FilterTemplateFiles
	}
	if len(c.OutputFiles) > 0 && unset("output-files") {
		o.RegularFilesSourceOpts.outputFiles = c.OutputFiles
	}

	return nil
}
