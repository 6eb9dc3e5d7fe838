// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	templateExts = []string{".soy"}
)

type Type int

const (
	TypeUnknown Type = iota
	TypeTemplate
)

type File struct {
	src         Source
	relPath     string
	nonTemplate bool
}

// NewSortedFilesFromPaths loads files from local paths, directories (when
// recursive), HTTP URLs and stdin ("-"). Files found in a directory are sorted
// by path; otherwise the order of paths is kept.
func NewSortedFilesFromPaths(paths []string, recursive bool) ([]*File, error) {
	var fileSrcs []Source

	for _, path := range paths {
		switch {
		case path == "-":
			fileSrcs = append(fileSrcs, NewStdinSource())

		case strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://"):
			fileSrcs = append(fileSrcs, NewHTTPSource(path))

		default:
			fileInfo, err := os.Stat(path)
			if err != nil {
				return nil, fmt.Errorf("Checking file '%s': %s", path, err)
			}

			if !fileInfo.IsDir() {
				fileSrcs = append(fileSrcs, NewLocalSource(path, ""))
				continue
			}

			if !recursive {
				return nil, fmt.Errorf("Expected file '%s' to not be a directory", path)
			}

			var selectedPaths []string

			err = filepath.Walk(path, func(walkedPath string, fi os.FileInfo, err error) error {
				if err != nil || fi.IsDir() {
					return err
				}
				selectedPaths = append(selectedPaths, walkedPath)
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("Listing files '%s': %s", path, err)
			}

			sort.Strings(selectedPaths)

			for _, selectedPath := range selectedPaths {
				fileSrcs = append(fileSrcs, NewLocalSource(selectedPath, path))
			}
		}
	}

	var files []*File

	for _, fileSrc := range fileSrcs {
		file, err := NewFileFromSource(NewCachedSource(fileSrc))
		if err != nil {
			return nil, err
		}
		files = append(files, file)
	}

	return files, nil
}

func NewFileFromSource(fileSrc Source) (*File, error) {
	relPath, err := fileSrc.RelativePath()
	if err != nil {
		return nil, fmt.Errorf("Calculating relative path for '%s': %s", fileSrc.Description(), err)
	}

	return &File{src: fileSrc, relPath: filepath.ToSlash(relPath)}, nil
}

func MustNewFileFromSource(fileSrc Source) *File {
	file, err := NewFileFromSource(fileSrc)
	if err != nil {
		panic(err)
	}
	return file
}

func (r *File) Description() string    { return r.src.Description() }
func (r *File) RelativePath() string   { return r.relPath }
func (r *File) Bytes() ([]byte, error) { return r.src.Bytes() }

func (r *File) Type() Type {
	if r.matchesExt(templateExts) {
		return TypeTemplate
	}
	return TypeUnknown
}

// MarkNonTemplate makes the file pass through unchanged.
func (r *File) MarkNonTemplate() { r.nonTemplate = true }

func (r *File) IsTemplate() bool {
	return !r.nonTemplate && r.Type() == TypeTemplate
}

func (r *File) matchesExt(exts []string) bool {
	filename := filepath.Base(r.RelativePath())
	for _, ext := range exts {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}
