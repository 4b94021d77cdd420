package search

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/manifest"
	"github.com/matzehuels/scoopfind/pkg/observability"
	"github.com/matzehuels/scoopfind/pkg/scoop"
)

// BucketResult holds the local matches of one installed bucket.
type BucketResult struct {
	Bucket  string           `json:"bucket"`
	Matches []manifest.Match `json:"matches"`
}

// ScanBucket matches every manifest of the bucket at path against query,
// which must already be lowercased. Manifests are read from path/bucket,
// or from path itself when that subdirectory does not exist.
//
// A manifest that cannot be read or parsed aborts the scan: a broken
// manifest means a broken bucket. Matches are sorted by [manifest.SortKey];
// ties keep file name order.
func ScanBucket(path, query string) ([]manifest.Match, error) {
	dir := scoop.Bucket{Path: path}.ManifestDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeBadInstall, err, "read bucket %s", dir)
	}

	var matches []manifest.Match
	for _, e := range entries {
		if manifest.NameFromFile(e.Name()) == "" || !isFile(dir, e) {
			continue
		}
		m, err := manifest.Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		if match, ok := manifest.Find(m, query); ok {
			matches = append(matches, match)
		}
	}

	slices.SortStableFunc(matches, func(a, b manifest.Match) int {
		return strings.Compare(manifest.SortKey(a.Name), manifest.SortKey(b.Name))
	})
	return matches, nil
}

// isFile reports whether e is a regular file, following symlinks.
func isFile(dir string, e os.DirEntry) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, e.Name()))
	return err == nil && info.Mode().IsRegular()
}

// Local scans all buckets concurrently and returns the non-empty results
// sorted by bucket name. Any bucket failing to scan fails the whole search.
func Local(ctx context.Context, buckets []scoop.Bucket, query string, opts Options) ([]BucketResult, error) {
	opts = opts.WithDefaults()
	agg := &aggregate[BucketResult]{}
	g := opts.group()

	for _, b := range buckets {
		g.Go(agg.worker(func() (BucketResult, bool, error) {
			start := time.Now()
			matches, err := ScanBucket(b.Path, query)
			observability.Search().OnBucketScanned(ctx, b.Name, len(matches), time.Since(start), err)
			if err != nil || len(matches) == 0 {
				return BucketResult{}, false, err
			}

			name, err := b.DisplayName()
			if err != nil {
				return BucketResult{}, false, err
			}
			return BucketResult{Bucket: name, Matches: matches}, true, nil
		}))
	}

	if err := g.Wait(); err != nil {
		return nil, agg.failure(err)
	}
	results, err := agg.results()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b BucketResult) int {
		return strings.Compare(a.Bucket, b.Bucket)
	})
	opts.Logger("local search matched %d bucket(s)", len(results))
	return results, nil
}
