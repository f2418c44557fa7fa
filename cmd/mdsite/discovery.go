package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/alnah/go-mdsite/internal/fileutil"
)

// ErrInvalidExtension is returned when convert is given a non-Markdown file.
var ErrInvalidExtension = errors.New("file must have .md or .markdown extension")

// siteFile is one file of a source tree and its place in the output tree.
type siteFile struct {
	InputPath  string
	OutputPath string
	Page       bool // rendered to HTML; copied as-is otherwise
}

// discoverFiles maps every file below root to the same relative path below
// outputDir. With pages set, Markdown files become .html pages.
// Results are in lexical order.
func discoverFiles(root, outputDir string, pages bool) ([]siteFile, error) {
	var files []siteFile
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		f := siteFile{InputPath: path, OutputPath: filepath.Join(outputDir, rel)}
		if pages && fileutil.IsMarkdown(path) {
			f.Page = true
			f.OutputPath = fileutil.HTMLPath(f.OutputPath)
		}
		files = append(files, f)
		return nil
	})
	return files, err
}

// countPages returns how many files are rendered pages.
func countPages(files []siteFile) int {
	n := 0
	for _, f := range files {
		if f.Page {
			n++
		}
	}
	return n
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	if !fileutil.IsMarkdown(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}
