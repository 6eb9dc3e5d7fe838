// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"regexp"
	"strings"
)

// Escape tokens understood by the host compiler.
const (
	TokenSpace          = "{sp}"
	TokenNil            = "{nil}"
	TokenNewline        = `{\n}`
	TokenCarriageReturn = `{\r}`
	TokenTab            = `{\t}`
	TokenLeftBrace      = "{lb}"
	TokenRightBrace     = "{rb}"
)

// DirectivePreserveLeading keeps a line's leading whitespace without forcing
// a trailing line break. It never reaches the host compiler.
const DirectivePreserveLeading = "{plsp}"

var (
	// Presence of any of these on a line means the author controls its whitespace.
	// {lb} and {rb} are intentionally absent.
	escapeRegexp = regexp.MustCompile(`\{(sp|nil|\\r|\\n|\\t)\}`)

	escapeDecoder = strings.NewReplacer(
		TokenSpace, " ",
		TokenNil, "",
		TokenNewline, "\n",
		TokenCarriageReturn, "\r",
		TokenTab, "\t",
		TokenLeftBrace, "{",
		TokenRightBrace, "}",
	)
)

// DecodeEscapes replaces every escape token with the text the host compiler
// prints for it. Tokens are decoded in a single left-to-right pass, so
// "{lb}sp}" decodes to "{sp}" and not to a space.
func DecodeEscapes(text string) string {
	return escapeDecoder.Replace(text)
}
