// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess_test

import (
	"os"
	"path/filepath"
	"testing"

	cmdpp "github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd/preprocess"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/version"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "autogen-tpl.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
min_version = "0.1.0"
files = ["templates/"]
recursive = true
check_embedded = true
filter_template_files = ["vm.soy"]
output_files = "out"
`)

	config, err := cmdpp.NewConfigFromFile(path)
	require.NoError(t, err)
	require.Equal(t, "0.1.0", config.MinVersion)
	require.Equal(t, []string{"templates/"}, config.Files)
	require.True(t, *config.Recursive)
	require.True(t, *config.CheckEmbedded)
	require.Equal(t, []string{"vm.soy"}, config.FilterTemplateFiles)
	require.Equal(t, "out", config.OutputFiles)
}

func TestConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "recursiv = true\n")

	_, err := cmdpp.NewConfigFromFile(path)
	require.EqualError(t, err, "Reading config '"+path+"': unknown keys 'recursiv'")
}

func TestConfigFlagOverridesConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.soy"), []byte("  a"), 0600))

	path := writeConfig(t, `output_files = "/"
files = ["missing.soy"]
`)

	outDir := filepath.Join(dir, "out")
	opts := newFlagOptions(t, "--config", path, "-f", filepath.Join(dir, "a.soy"), "--output-files", outDir)
	require.NoError(t, opts.Run())

	_, err := os.Stat(filepath.Join(outDir, "a.soy"))
	require.NoError(t, err)
}

func TestConfigApplyKeepsFlagsSetByUser(t *testing.T) {
	yes := true
	config := cmdpp.Config{Recursive: &yes, CheckEmbedded: &yes}

	opts := cmdpp.NewOptions()
	err := config.Apply(opts, func(name string) bool { return name == "recursive" })
	require.NoError(t, err)
	require.False(t, opts.Recursive)
	require.True(t, opts.CheckEmbedded)
}

func TestConfigApplyChecksMinVersion(t *testing.T) {
	prev := version.Version
	version.Version = "0.2.0"
	defer func() { version.Version = prev }()

	err := cmdpp.Config{MinVersion: "0.3.0"}.Apply(cmdpp.NewOptions(), nil)
	require.EqualError(t, err, "autogen-tpl version 0.2.0 does not meet the minimum required version 0.3.0")

	require.NoError(t, cmdpp.Config{MinVersion: "0.1.0"}.Apply(cmdpp.NewOptions(), nil))
}

func TestRunWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.soy"), []byte("  a\n"), 0600))
	outDir := filepath.Join(dir, "out")

	path := writeConfig(t, `files = ["`+filepath.ToSlash(filepath.Join(dir, "a.soy"))+`"]
output_files = "`+filepath.ToSlash(outDir)+`"
`)

	require.NoError(t, newFlagOptions(t, "--config", path).Run())

	result, err := os.ReadFile(filepath.Join(outDir, "a.soy"))
	require.NoError(t, err)
	require.Equal(t, `{nil}  a{\n}`, string(result))
}
