// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/cmd"
	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/version"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	command := cmd.NewDefaultAutogenTplCmd()
	out := bytes.NewBufferString("")
	command.SetOut(out)
	command.SetErr(out)
	command.SetArgs(args)
	err := command.Execute()
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	prev := version.Version
	version.Version = "1.2.3"
	defer func() { version.Version = prev }()

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "autogen-tpl version 1.2.3\n", out)
}

func TestPreprocessSubcommandAndRoot(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.soy")
	require.NoError(t, os.WriteFile(src, []byte("{template .a}\n  a // note\n{/template}\n"), 0600))

	for _, args := range [][]string{{}, {"preprocess"}, {"pp"}} {
		outDir := filepath.Join(dir, "out")
		args = append(args, "-f", src, "--output-files", outDir)

		_, err := execute(t, args...)
		require.NoError(t, err, "args: %v", args)

		result, err := os.ReadFile(filepath.Join(outDir, "a.soy"))
		require.NoError(t, err)
		require.Equal(t, "{template .a}\n{nil}  a{\\n}\n{/template}", string(result))
	}
}

func TestExtraArgsAreRejected(t *testing.T) {
	_, err := execute(t, "version", "extra")
	require.EqualError(t, err, "command 'autogen-tpl version' does not accept extra arguments 'extra'")
}

func TestPreprocessHelpGroupsFlags(t *testing.T) {
	out, err := execute(t, "preprocess", "--help")
	require.NoError(t, err)
	require.Contains(t, out, "Input Flags:")
	require.Contains(t, out, "Output Flags:")
	require.Contains(t, out, "--check-embedded")
}
