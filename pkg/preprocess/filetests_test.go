// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package preprocess_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GoogleCloudPlatform/marketplace-autogen/pkg/preprocess"
	"github.com/k14s/difflib"
)

var (
	// Example usage:
	//   go test ./pkg/preprocess -run TestFileTests -args TestFileTests.filetest=jinja
	selectedFileTestPath = kvArg("TestFileTests.filetest")
)

// Each file in ./filetests holds a template, a "+++" separator line, a blank
// line and the expected preprocessed text.
func TestFileTests(t *testing.T) {
	var files []string

	err := filepath.Walk("filetests", func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to enumerate filetests: %s", err)
	}

	for _, filePath := range files {
		if len(selectedFileTestPath) > 0 && !strings.Contains(filePath, selectedFileTestPath) {
			continue
		}

		t.Run(filePath, func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)
			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}

			resultStr := preprocess.Preprocess(pieces[0])
			expectedStr := strings.TrimSuffix(pieces[1], "\n")

			if err := expectEquals(resultStr, expectedStr); err != nil {
				t.Fatalf("%s", err)
			}
		})
	}
}

func expectEquals(resultStr, expectedStr string) error {
	if resultStr != expectedStr {
		diff := difflib.PPDiff(strings.Split(expectedStr, "\n"), strings.Split(resultStr, "\n"))
		return fmt.Errorf("Not equal; diff expected...actual:\n%v", diff)
	}
	return nil
}

func kvArg(name string) string {
	name += "="
	for _, arg := range os.Args {
		if strings.HasPrefix(arg, name) {
			return strings.TrimPrefix(arg, name)
		}
	}
	return ""
}
