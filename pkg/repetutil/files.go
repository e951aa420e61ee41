// Package repetutil holds small filesystem helpers shared by the
// command-line tooling around the repet library.
package repetutil

import "os"

// MakeDir creates a directory with all parent directories.
func MakeDir(path string) error {
	return os.MkdirAll(path, 0o755)
}
