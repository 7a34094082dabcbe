// Package rootdir locates a project root by upward marker search.
//
// Given a starting directory, the search walks ancestor directories toward
// the filesystem root. At each level the markers are checked in list order;
// the first directory containing any marker wins, so a marker found nearer
// the start always beats one found higher up, regardless of its position
// in the list. List order only breaks ties between markers present in the
// same directory.
package rootdir

import (
	"os"
	"path/filepath"
)

// Result describes a resolved project root.
type Result struct {
	// Root is the resolved project root directory.
	Root string

	// Marker is the marker name that matched, or empty when the search
	// fell back to the fallback directory.
	Marker string
}

// Find resolves the project root for startDir using the given markers.
// If no marker is found up to the filesystem root, fallback is returned
// with an empty Marker. When fallback is empty, the process working
// directory is used.
func Find(startDir string, markers []string, fallback string) (Result, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return Result{}, err
	}

	for {
		for _, marker := range markers {
			if marker == "" {
				continue
			}
			if entryExists(filepath.Join(dir, marker)) {
				return Result{Root: dir, Marker: marker}, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	if fallback == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Result{}, err
		}
		fallback = cwd
	}

	abs, err := filepath.Abs(fallback)
	if err != nil {
		return Result{}, err
	}
	return Result{Root: abs}, nil
}

// FindForFile resolves the project root for a file path, starting the
// search from the file's directory.
func FindForFile(path string, markers []string, fallback string) (Result, error) {
	return Find(filepath.Dir(path), markers, fallback)
}

// entryExists reports whether a file or directory exists.
func entryExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
