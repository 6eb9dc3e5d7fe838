// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"regexp"
)

type delimiterReplacement struct {
	regexp      *regexp.Regexp
	replacement string
}

// Applied in order. The optional '-' is Jinja's whitespace control modifier
// and stays next to the delimiter.
var delimiterReplacements = []delimiterReplacement{
	{regexp.MustCompile(`\{%(-)?`), "{lb}%${1}"},
	{regexp.MustCompile(`(-)?%\}`), "${1}%{rb}"},
	{regexp.MustCompile(`\{\{(-)?`), "{lb}{lb}${1}"},
	{regexp.MustCompile(`(-)?\}\}`), "${1}{rb}{rb}"},
	{regexp.MustCompile(`\{#(-)?`), "{lb}#${1}"},
	{regexp.MustCompile(`(-)?#\}`), "${1}#{rb}"},
}

// EscapeDelimiters rewrites Jinja delimiters into host brace literals, eg
// "{{- x }}" becomes "{lb}{lb}- x {rb}{rb}".
func EscapeDelimiters(literal string) string {
	for _, r := range delimiterReplacements {
		literal = r.regexp.ReplaceAllString(literal, r.replacement)
	}
	return literal
}
