// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess

import (
	"fmt"
	"regexp"
	"strings"
)

// commandContent is the body of a host command: anything but '}' or a single
// quoted string (which may contain '}' and escaped quotes).
const commandContent = `(?:(?:[^}']+)|(?:'(?:[^']|\\')*'))+`

// Whitespace as seen by the host compiler (includes vertical tab).
const space = `[\t\n\v\f\r ]`

var (
	// Anchored at the character right after an opening brace.
	commandBodyRegexp = regexp.MustCompile(`^` + commandContent + `\}`)

	lineBreakInCommandRegexp = regexp.MustCompile(space + `*\n` + space + `*`)
)

// RegionKind tells host command regions apart from literal text.
type RegionKind int

const (
	RegionLiteral RegionKind = iota
	RegionCommand
)

func (k RegionKind) String() string {
	switch k {
	case RegionLiteral:
		return "literal"
	case RegionCommand:
		return "command"
	default:
		panic(fmt.Sprintf("Unknown region kind %d", int(k)))
	}
}

// Region is a span of template text. Regions returned by Segment cover the
// whole input in order.
type Region struct {
	Kind RegionKind
	Text string
}

// Segment splits text into alternating literal and command regions. Command
// regions include short print forms ({$x}, {'abc'}) and may span lines.
//
// An opening brace starts a command unless it directly follows another '{', or
// is followed by '%', '#' or '{', an optional '-', and whitespace. Jinja
// delimiters are always separated from their content by whitespace, so
// "{{ x }}" and "{%- if x %}" stay literal.
func Segment(text string) []Region {
	var regions []Region
	literalStart := 0

	for i := 0; i < len(text); {
		end := commandEnd(text, i)
		if end < 0 {
			i++
			continue
		}
		// Splitting on the command pattern always yields a literal before each
		// command, even an empty one.
		regions = append(regions,
			Region{RegionLiteral, text[literalStart:i]},
			Region{RegionCommand, text[i:end]})
		literalStart = end
		i = end
	}

	return append(regions, Region{RegionLiteral, text[literalStart:]})
}

// commandEnd returns the end offset of the command starting at offset i, or -1.
func commandEnd(text string, i int) int {
	if text[i] != '{' {
		return -1
	}
	if i > 0 && text[i-1] == '{' {
		return -1
	}
	if looksLikeJinjaOpening(text[i+1:]) {
		return -1
	}
	loc := commandBodyRegexp.FindStringIndex(text[i+1:])
	if loc == nil {
		return -1
	}
	return i + 1 + loc[1]
}

// looksLikeJinjaOpening reports whether rest (the text after a '{') starts
// with '%', '#' or '{', then an optional '-', then whitespace.
func looksLikeJinjaOpening(rest string) bool {
	if len(rest) < 2 || !strings.ContainsRune("%#{", rune(rest[0])) {
		return false
	}
	if isCommandSpace(rest[1]) {
		return true
	}
	return rest[1] == '-' && len(rest) > 2 && isCommandSpace(rest[2])
}

func isCommandSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

// CollapseCommands joins multi-line host commands into one line and escapes
// Jinja delimiters found outside of them. Delimiters inside a command (eg in
// a quoted argument) are left alone.
func CollapseCommands(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	for _, region := range Segment(text) {
		switch region.Kind {
		case RegionLiteral:
			sb.WriteString(EscapeDelimiters(region.Text))
		case RegionCommand:
			sb.WriteString(lineBreakInCommandRegexp.ReplaceAllLiteralString(region.Text, " "))
		default:
			panic(fmt.Sprintf("Unknown region kind %s", region.Kind))
		}
	}

	return sb.String()
}
