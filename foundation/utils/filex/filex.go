// File: filex.go
// Title: Filesystem Helper Functions
// Description: Small filesystem helpers shared by the executor and the
//              snapshot command: existence and type checks, writability
//              probing, empty file creation, and path expansion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation

package filex

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Exists checks if a path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if a path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if a path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsWritable checks if a directory accepts new entries by probing with a
// temporary file
func IsWritable(path string) bool {
	probe, err := os.CreateTemp(path, ".treegen-probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	probe.Close()
	os.Remove(name)
	return true
}

// Touch creates an empty file at the given path, creating parent
// directories as needed. Existing files are left untouched.
func Touch(path string, fileMode, dirMode os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, fileMode)
	if err != nil {
		if os.IsExist(err) {
			return nil
		}
		return err
	}
	return f.Close()
}

// ExpandPath expands a leading ~ to the user home directory and converts
// the result to an absolute path
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return filepath.Abs(path)
}

// ListDirNames returns the entry names of a directory, directories first,
// each group sorted case-insensitively. This matches the ordering the
// snapshot renderer presents.
func ListDirNames(path string) (dirs, files []string, err error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		} else {
			files = append(files, entry.Name())
		}
	}

	sortFold(dirs)
	sortFold(files)
	return dirs, files, nil
}

// sortFold sorts strings case-insensitively, falling back to case-sensitive
// comparison for ties
func sortFold(values []string) {
	sort.Slice(values, func(i, j int) bool {
		li, lj := strings.ToLower(values[i]), strings.ToLower(values[j])
		if li != lj {
			return li < lj
		}
		return values[i] < values[j]
	})
}
