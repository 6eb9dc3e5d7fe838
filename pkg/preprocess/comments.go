// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"regexp"
)

var (
	// "//" only starts a comment at the beginning of a line or after a space,
	// so that "http://..." survives. Spaces before "//" belong to the comment.
	// Line ends are the ones SplitLines knows; group 1 keeps a bare separator.
	singleLineCommentRegexp = regexp.MustCompile(
		`(?m)(?:(^|[\r\x{2028}\x{2029}\x{85}]) *| +)//[^\r\n\x{2028}\x{2029}\x{85}]*`)

	// Spaces before "/*" belong to the comment.
	blockCommentRegexp = regexp.MustCompile(`(?s) */\*.*?\*/`)
)

// StripComments removes host single-line and block comments. Lines that only
// held a comment are left empty, so the number of lines is unchanged unless a
// block comment spans several of them.
func StripComments(text string) string {
	for {
		stripped := singleLineCommentRegexp.ReplaceAllString(text, "${1}")
		stripped = blockCommentRegexp.ReplaceAllLiteralString(stripped, "")
		if stripped == text {
			return stripped
		}
		// Deleting a block comment may join text into a new comment
		// (eg "/*x*///y"), hence another pass.
		text = stripped
	}
}
