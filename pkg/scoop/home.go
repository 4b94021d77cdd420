package scoop

import (
	"os"
	"path/filepath"

	"github.com/matzehuels/scoopfind/pkg/errors"
)

const (
	// EnvHome names the variable holding one or more candidate Scoop roots.
	EnvHome = "SCOOP"

	// envProfile is the Windows user profile directory.
	envProfile = "USERPROFILE"

	bucketsDir = "buckets"
)

// Home returns the Scoop installation root.
//
// $SCOOP is treated as a path list; the first entry that is an existing
// directory wins. Otherwise <profile>/scoop is tried, where profile is
// $USERPROFILE or, when unset, the user's home directory.
func Home() (string, error) {
	if v := os.Getenv(EnvHome); v != "" {
		for _, dir := range filepath.SplitList(v) {
			if isDir(dir) {
				return dir, nil
			}
		}
	}

	profile := os.Getenv(envProfile)
	if profile == "" {
		profile, _ = os.UserHomeDir()
	}
	if profile != "" {
		dir := filepath.Join(profile, "scoop")
		if isDir(dir) {
			return dir, nil
		}
	}

	return "", errors.New(errors.ErrCodeHomeNotFound, "scoop home not found (set $%s)", EnvHome)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
