// Package fsutil provides file system utility functions.
package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// ErrEmptyExtension is returned when no file extension is given.
var ErrEmptyExtension = errors.New("fsutil: empty file extension")

// FindFilesByExtension lists the regular files directly inside dir whose
// extension matches ext, ignoring case. Subdirectories are not searched.
// The result is sorted by path.
func FindFilesByExtension(dir, ext string) ([]string, error) {
	if ext == "" {
		return nil, ErrEmptyExtension
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ext) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	slices.Sort(files)
	return files, nil
}

// FirstDirWithFiles returns the first candidate directory that holds at
// least one file with extension ext, together with those files. Missing
// candidates are skipped. ok is false when no candidate has any.
func FirstDirWithFiles(candidates []string, ext string) (dir string, files []string, ok bool, err error) {
	for _, c := range candidates {
		files, err := FindFilesByExtension(c, ext)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) || isNotDir(err) {
				continue
			}
			return "", nil, false, err
		}
		if len(files) > 0 {
			return c, files, true, nil
		}
	}
	return "", nil, false, nil
}

func isNotDir(err error) bool {
	var pe *fs.PathError
	if !errors.As(err, &pe) {
		return false
	}
	fi, serr := os.Stat(pe.Path)
	return serr == nil && !fi.IsDir()
}
