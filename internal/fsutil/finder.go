// Package fsutil provides file system utility functions.
package fsutil

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FindFilesByExtension recursively searches the given root path for all files ending
// with the specified extension. It returns a slice of their full paths in lexical
// walk order.
func FindFilesByExtension(rootPath string, extension string) ([]string, error) {
	if extension == "" {
		panic("extension must not be empty")
	}

	var files []string
	err := filepath.WalkDir(rootPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), extension) {
			files = append(files, path)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

// ExpandPaths resolves a mix of file and directory paths into a flat,
// de-duplicated list of files. Directories are searched recursively for files
// with the given extension; plain files are kept as given, whatever their
// extension. Every returned path is cleaned.
func ExpandPaths(extension string, paths ...string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		p = filepath.Clean(p)
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || !info.IsDir() {
			// Missing files are passed through so the caller reports them
			// alongside other load failures.
			add(path)
			continue
		}

		found, err := FindFilesByExtension(path, extension)
		if err != nil {
			return nil, fmt.Errorf("failed to search %s: %w", path, err)
		}
		for _, f := range found {
			add(f)
		}
	}
	return files, nil
}
