// Package fixture provides fixture discovery for the conformance harness.
package fixture

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Maazi-78/parsecheck/internal/errors"
)

// Discover lists the fixture directory and returns the path of every
// regular file whose name contains ext. The match is a substring match,
// not a suffix match: "a.dcf.orig" is a fixture when ext is ".dcf".
//
// The returned order is the underlying directory enumeration order,
// which is filesystem-dependent and not sorted. Subdirectories are not
// recursed into. Entries may disappear or change between discovery and
// use; that race is tolerated, not guarded.
//
// If the directory cannot be opened or read, a discovery error is
// returned. That is fatal for a run: no fixtures can be processed.
func Discover(dir, ext string) ([]string, error) {
	d, err := os.Open(dir)
	if err != nil {
		return nil, errors.Discovery(fmt.Sprintf("cannot open fixture directory %q: %v", dir, err), err)
	}
	defer func() { _ = d.Close() }()

	var fixtures []string
	for {
		// Readdirnames preserves the raw directory enumeration order;
		// os.ReadDir would sort it.
		names, err := d.Readdirnames(64)
		for _, name := range names {
			if !strings.Contains(name, ext) {
				continue
			}
			path := filepath.Join(dir, name)
			fi, statErr := os.Stat(path)
			if statErr != nil || !fi.Mode().IsRegular() {
				// Directories, sockets, or entries deleted mid-listing
				// are not fixtures.
				continue
			}
			fixtures = append(fixtures, path)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Discovery(fmt.Sprintf("cannot read fixture directory %q: %v", dir, err), err)
		}
	}

	return fixtures, nil
}
