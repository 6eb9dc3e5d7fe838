// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

/*
Package embedded checks the Jinja syntax carried inside preprocessed
templates. Host commands are plain text to Jinja, so only the embedded
{% %}, {{ }} and {# #} constructs are parsed.
*/
package embedded

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/preprocess"
	"github.com/flosch/pongo2/v6"
)

type CheckError struct {
	Name   string
	Line   int
	Column int
	Err    error
}

func (e *CheckError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("Checking embedded syntax in '%s' (line %d, col %d): %s", e.Name, e.Line, e.Column, e.Err)
	}
	return fmt.Sprintf("Checking embedded syntax in '%s': %s", e.Name, e.Err)
}

func (e *CheckError) Unwrap() error { return e.Err }

// Check parses the Jinja text a host compiler would print for the
// preprocessed template. Reported lines match the source lines.
func Check(name string, preprocessed string) error {
	_, err := pongo2.FromString(Decode(preprocessed))
	if err == nil {
		return nil
	}

	checkErr := &CheckError{Name: name, Err: err}

	var pongoErr *pongo2.Error
	if errors.As(err, &pongoErr) {
		checkErr.Line = pongoErr.Line
		checkErr.Column = pongoErr.Column
		if pongoErr.OrigError != nil {
			checkErr.Err = pongoErr.OrigError
		}
	}

	return checkErr
}

// Decode turns each preprocessed line back into the text the host prints for
// it, keeping one output line per input line.
func Decode(preprocessed string) string {
	lines := strings.Split(preprocessed, "\n")
	for i, line := range lines {
		line = strings.TrimPrefix(line, preprocess.TokenNil)
		line = strings.TrimSuffix(line, preprocess.TokenNewline)
		lines[i] = preprocess.DecodeEscapes(line)
	}
	return strings.Join(lines, "\n")
}
