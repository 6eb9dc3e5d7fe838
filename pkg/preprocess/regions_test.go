// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess_test

import (
	"strings"
	"testing"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/preprocess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmentRecognizesCommands(t *testing.T) {
	commands := []string{
		`{template .abc kind="text"}`,
		`{if $a > $b}`,
		`{/for}`,
		`{@param $a: string}`,
		`{@param? $a: string}`,
		`{param $p: 'abc'/}`,
		`{print $a |capitalized}`,
		`{sp}`,
		`{lb}`,
		`{$param}`,
		`{ $param }`,
		`{'abc'}`,
		`{'}'}`,
	}
	for _, cmd := range commands {
		assert.Equal(t, []preprocess.Region{
			{Kind: preprocess.RegionLiteral, Text: ""},
			{Kind: preprocess.RegionCommand, Text: cmd},
			{Kind: preprocess.RegionLiteral, Text: ""},
		}, preprocess.Segment(cmd), "command: %s", cmd)
	}
}

func TestSegmentLeavesJinjaAsLiteral(t *testing.T) {
	literals := []string{
		"some text",
		"{{ jinja_variable }}",
		"{{ jinja_variable -}}",
		"{{- jinja_variable }}",
		"{{- jinja_variable -}}",
		"{% if jinja_boolean %}",
		"{% if jinja_boolean -%}",
		"{%- if jinja_boolean %}",
		"{%- if jinja_boolean -%}",
		"{# jinja comment #}",
		"{# jinja comment -#}",
		"{#- jinja comment #}",
		"{#- jinja comment -#}",
		"<head>",
		"{}",
		"{",
		"{if 'unterminated}",
	}
	for _, literal := range literals {
		assert.Equal(t, []preprocess.Region{
			{Kind: preprocess.RegionLiteral, Text: literal},
		}, preprocess.Segment(literal), "literal: %s", literal)
	}
}

func TestSegmentCoversInput(t *testing.T) {
	src := "a: {$a}\n{if $b}{{ b }}{/if} {%- raw %}{sp}"
	regions := preprocess.Segment(src)

	var sb strings.Builder
	var commands []string
	for _, region := range regions {
		sb.WriteString(region.Text)
		if region.Kind == preprocess.RegionCommand {
			commands = append(commands, region.Text)
		}
	}
	require.Equal(t, src, sb.String())
	require.Equal(t, []string{"{$a}", "{if $b}", "{/if}", "{sp}"}, commands)
}

func TestCollapseCommands(t *testing.T) {
	cases := []struct {
		desc     string
		src      string
		expected string
	}{
		{"single line command", "{if a = b}", "{if a = b}"},
		{"trailing and leading spaces around break", lines("{if a  ", "   = b}"), "{if a = b}"},
		{"bare break", lines("{if", "a = b}"), "{if a = b}"},
		{"spaces on both sides", lines("{if  ", "  a = b}"), "{if a = b}"},
		{"expression", lines("{($a ", " + $b) * 3", "}"), "{($a + $b) * 3 }"},
		{"quoted start", lines("{'abc'", " + $a}"), "{'abc' + $a}"},
		{"print shorthand", lines("{$a ", "  |directive}"), "{$a |directive}"},
		{"print shorthand with space", lines("{ $a ", "  |directive}"), "{ $a |directive}"},
		{"multi-line jinja comment stays multi-line",
			lines("{#  ", "  jinja", "  comment #}"),
			lines("{lb}#  ", "  jinja", "  comment #{rb}")},
		{"jinja statements and expressions",
			"{% if a > b %}{{ a }}{% endif %}",
			"{lb}% if a > b %{rb}{lb}{lb} a {rb}{rb}{lb}% endif %{rb}"},
		{"jinja whitespace control",
			"{%- if a > b -%}{{- a -}}{%- endif -%}",
			"{lb}%- if a > b -%{rb}{lb}{lb}- a -{rb}{rb}{lb}%- endif -%{rb}"},
		{"jinja inside host commands",
			"{if supportA}{{ a }}{/if}",
			"{if supportA}{lb}{lb} a {rb}{rb}{/if}"},
		{"jinja comment", "abc: {# comment here #}", "abc: {lb}# comment here #{rb}"},
		{"quoted jinja inside a multi-line command",
			lines("{if $a == ", "'{{ test }}'}{{ no_test }}{/if}"),
			"{if $a == '{{ test }}'}{lb}{lb} no_test {rb}{rb}{/if}"},
	}
	for _, tc := range cases {
		t.Run(tc.desc, func(t *testing.T) {
			require.Equal(t, tc.expected, preprocess.CollapseCommands(tc.src))
		})
	}
}

func TestEscapeDelimitersDecodesBack(t *testing.T) {
	srcs := []string{
		"{% if a > b %}{{ a }}{% endif %}",
		"{%- if a > b -%}{{- a -}}{%- endif -%}",
		"key: {# note #} {{ value|default('x') }}",
	}
	for _, src := range srcs {
		escaped := preprocess.EscapeDelimiters(src)
		require.NotContains(t, escaped, "{{")
		require.Equal(t, src, preprocess.DecodeEscapes(escaped))
	}
}
