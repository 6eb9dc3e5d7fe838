// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	lineSeparatorRegexp = regexp.MustCompile("\r\n|[\n\r\u2028\u2029\u0085]")

	// A host command written on a single line, with surrounding whitespace.
	// Short print forms ({$x}, {'abc'}) do not match.
	lineCommandRegexp = regexp.MustCompile(space + `*(\{[/@]?[a-z?]+(?:` + space + `+` + commandContent + `)?\})` + space + `*`)

	// Commands that print something and therefore count as line content.
	outputCommandRegexp = regexp.MustCompile(`^\{(sp|nil|\\r|\\n|\\t|lb|rb|print` + space + `+.*)\}$`)
)

// LineClass is the wrapping a line needs to survive host line joining.
type LineClass int

const (
	// LineSkip lines are left exactly as written.
	LineSkip LineClass = iota
	// LinePreserveLeading lines only get a {nil} prefix.
	LinePreserveLeading
	// LineForceLiteral lines get a {nil} prefix and a {\n} suffix.
	LineForceLiteral
)

func (c LineClass) String() string {
	switch c {
	case LineSkip:
		return "skip"
	case LinePreserveLeading:
		return "preserve-leading"
	case LineForceLiteral:
		return "force-literal"
	default:
		panic(fmt.Sprintf("Unknown line class %d", int(c)))
	}
}

// SplitLines splits text into lines. A trailing line terminator does not
// start another line, and empty text has no lines.
func SplitLines(text string) []string {
	lines := lineSeparatorRegexp.Split(text, -1)
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// TrimLine removes leading and trailing spaces and control characters.
func TrimLine(line string) string {
	return strings.TrimFunc(line, func(r rune) bool { return r <= ' ' })
}

// Classify decides how a trimmed line has to be wrapped so that the host
// compiler reproduces it. It only looks at the line itself.
func Classify(trimmed string) LineClass {
	switch {
	case strings.Contains(trimmed, DirectivePreserveLeading):
		return LinePreserveLeading
	case trimmed == "", HasOnlyCommands(trimmed), HasEscapes(trimmed):
		return LineSkip
	default:
		return LineForceLiteral
	}
}

// HasOnlyCommands reports whether trimmed consists of host commands that
// print nothing, so the host's own line joining cannot damage it.
func HasOnlyCommands(trimmed string) bool {
	prevEnd := 0
	for _, loc := range lineCommandRegexp.FindAllStringSubmatchIndex(trimmed, -1) {
		if loc[0] != prevEnd {
			return false
		}
		if outputCommandRegexp.MatchString(trimmed[loc[2]:loc[3]]) {
			return false
		}
		prevEnd = loc[1]
	}
	return prevEnd == len(trimmed)
}

// HasEscapes reports whether trimmed contains {sp}, {nil}, {\r}, {\n} or {\t}.
func HasEscapes(trimmed string) bool {
	return escapeRegexp.MatchString(trimmed)
}

// TransformLine wraps a single line according to its class and removes
// preprocessor directives from it.
func TransformLine(line string) string {
	switch Classify(TrimLine(line)) {
	case LineForceLiteral:
		line = TokenNil + line + TokenNewline
	case LinePreserveLeading:
		line = TokenNil + line
	case LineSkip:
	}
	return RemoveDirectives(line)
}

// RemoveDirectives deletes every preprocessor directive from line.
func RemoveDirectives(line string) string {
	for strings.Contains(line, DirectivePreserveLeading) {
		line = strings.ReplaceAll(line, DirectivePreserveLeading, "")
	}
	return line
}
