// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package preprocess rewrites template source so that it can be handed to the host
template compiler without losing YAML structure or embedded Jinja syntax.

A template file mixes two syntaxes: host commands ({if ...}, {for ...},
{template ...}, {$x}, {sp}, ...) and embedded Jinja delimiters ({% %}, {{ }},
{# #}) that must reach the rendered output untouched. Preprocess runs four
stages over the whole file:

 1. StripComments removes host line and block comments.
 2. CollapseCommands joins multi-line host commands onto a single line and
    escapes Jinja delimiters found outside of host commands ({{ -> {lb}{lb}).
 3. TransformLine wraps every line with literal content in {nil} ... {\n} so the
    host compiler keeps its indentation and line break.
 4. RemoveDirectives drops preprocessor-only directives such as {plsp}.

Matching is lexical. Neither syntax is parsed; malformed input passes through
and is reported by the host compiler.
*/
package preprocess
