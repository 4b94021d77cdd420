package search

import (
	"context"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/observability"
	"github.com/matzehuels/scoopfind/pkg/scoop"
)

// TreeFetcher retrieves the raw text of a repository tree listing.
type TreeFetcher interface {
	TreeText(ctx context.Context, uri string) (string, error)
}

// RemoteResult holds the candidate manifest names found in one known bucket.
type RemoteResult struct {
	Bucket string   `json:"bucket"`
	Apps   []string `json:"apps"`
}

// remotePattern matches quoted "bucket/<name>.json" paths whose name
// contains query. The query is not escaped.
func remotePattern(query string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(`"bucket/(.*` + query + `.*)\.json"`)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPattern, err, "query %q", query)
	}
	return re, nil
}

// FindRemote fetches the tree listing at uri and returns every manifest
// name matching query, in order of appearance. Duplicates are kept.
func FindRemote(ctx context.Context, f TreeFetcher, uri, query string) ([]string, error) {
	re, err := remotePattern(query)
	if err != nil {
		return nil, err
	}

	body, err := f.TreeText(ctx, uri)
	if err != nil {
		return nil, err
	}

	var apps []string
	for _, m := range re.FindAllStringSubmatch(body, -1) {
		apps = append(apps, m[1])
	}
	return apps, nil
}

// Remote searches every known bucket that is not installed and returns
// the buckets with at least one candidate, sorted by name.
func Remote(ctx context.Context, f TreeFetcher, known scoop.KnownBuckets, installed []scoop.Bucket, query string, opts Options) ([]RemoteResult, error) {
	opts = opts.WithDefaults()
	agg := &aggregate[RemoteResult]{}
	g := opts.group()

	for _, kb := range known.All() {
		if scoop.Installed(installed, kb.Name) {
			opts.Logger("skipping installed bucket %s", kb.Name)
			continue
		}
		g.Go(agg.worker(func() (RemoteResult, bool, error) {
			start := time.Now()
			apps, err := FindRemote(ctx, f, kb.URI, query)
			observability.Search().OnRemoteFetched(ctx, kb.Name, len(apps), time.Since(start), err)
			if err != nil || len(apps) == 0 {
				return RemoteResult{}, false, err
			}
			return RemoteResult{Bucket: kb.Name, Apps: apps}, true, nil
		}))
	}

	if err := g.Wait(); err != nil {
		return nil, agg.failure(err)
	}
	results, err := agg.results()
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b RemoteResult) int {
		return strings.Compare(a.Bucket, b.Bucket)
	})
	opts.Logger("remote search matched %d bucket(s)", len(results))
	return results, nil
}
