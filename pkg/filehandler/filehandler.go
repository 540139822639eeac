// Package filehandler resolves the scan targets given on the command line
// into a flat list of readable files. Directories are expanded, optionally
// recursively, and an include pattern narrows the selection by filename.
package filehandler

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
)

// MaxFileSize caps how much of a single file is loaded for analysis.
// Static analysis on the first chunk of a huge file is still meaningful;
// loading multi-gigabyte inputs whole is not.
const MaxFileSize = 256 << 20

// Options controls target expansion.
type Options struct {
	Recursive bool
	// Include is a glob matched against the base filename, e.g. "*.png".
	// Empty means every file.
	Include string
}

// Collect expands the given paths into concrete file paths. A path that is a
// plain file is always included regardless of the include pattern; the
// pattern filters directory contents only.
func Collect(paths []string, opts Options) ([]string, error) {
	var include glob.Glob
	if opts.Include != "" {
		g, err := glob.Compile(strings.ToLower(opts.Include))
		if err != nil {
			return nil, fmt.Errorf("bad include pattern %q: %w", opts.Include, err)
		}
		include = g
	}

	var files []string
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if !info.IsDir() {
			files = append(files, path)
			continue
		}
		expanded, err := expandDir(path, include, opts.Recursive)
		if err != nil {
			return nil, err
		}
		files = append(files, expanded...)
	}
	return files, nil
}

func expandDir(dir string, include glob.Glob, recursive bool) ([]string, error) {
	var files []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if include == nil || include.Match(strings.ToLower(d.Name())) {
				files = append(files, path)
			}
			return nil
		})
		return files, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if include == nil || include.Match(strings.ToLower(entry.Name())) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

// ReadCapped reads a file, truncating at MaxFileSize.
func ReadCapped(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() <= MaxFileSize {
		return os.ReadFile(path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, MaxFileSize))
}
