// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"strings"
)

// Preprocess returns the text to register with the host compiler in place of
// a template file's content. It is safe for concurrent use.
func Preprocess(text string) string {
	text = CollapseCommands(StripComments(text))

	lines := SplitLines(text)
	for i, line := range lines {
		lines[i] = TransformLine(line)
	}

	return strings.Join(lines, "\n")
}
