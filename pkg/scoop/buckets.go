package scoop

import (
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/matzehuels/scoopfind/pkg/errors"
)

// Bucket is an installed bucket directory.
type Bucket struct {
	Name string // Directory name, e.g. "main"
	Path string // Absolute or home-relative bucket directory
}

// DisplayName returns the bucket name for output. Names that are not valid
// UTF-8 cannot be shown and indicate a damaged installation.
func (b Bucket) DisplayName() (string, error) {
	if b.Name == "" || !utf8.ValidString(b.Name) {
		return "", errors.New(errors.ErrCodeBadInstall, "unreadable bucket name in %s", b.Path)
	}
	return b.Name, nil
}

// ManifestDir returns the directory holding the bucket's manifests:
// the bucket/ subdirectory when present, otherwise the bucket root.
func (b Bucket) ManifestDir() string {
	if dir := filepath.Join(b.Path, "bucket"); isDir(dir) {
		return dir
	}
	return b.Path
}

// ListBuckets returns every bucket directory under home/buckets in
// directory order. A missing buckets directory means Scoop is not installed
// correctly.
func ListBuckets(home string) ([]Bucket, error) {
	root := filepath.Join(home, bucketsDir)
	if !isDir(root) {
		return nil, errors.New(errors.ErrCodeBadInstall, "scoop not installed correctly: %s is not a directory", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadInstall, err, "read %s", root)
	}

	var buckets []Bucket
	for _, e := range entries {
		path := filepath.Join(root, e.Name())
		if !isDir(path) {
			continue
		}
		buckets = append(buckets, Bucket{Name: e.Name(), Path: path})
	}
	return buckets, nil
}

// Installed reports whether a bucket called name is among buckets.
func Installed(buckets []Bucket, name string) bool {
	for _, b := range buckets {
		if b.Name == name {
			return true
		}
	}
	return false
}
