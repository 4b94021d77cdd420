package search

import (
	"context"

	"github.com/matzehuels/scoopfind/pkg/manifest"
	"github.com/matzehuels/scoopfind/pkg/observability"
	"github.com/matzehuels/scoopfind/pkg/scoop"
)

// RemoteSource is the remote side of a search: a quota check plus tree
// listings. *github.Client implements it.
type RemoteSource interface {
	TreeFetcher
	RateLimitReached(ctx context.Context) (bool, error)
}

// Searcher runs the local phase and, when it finds nothing, the remote
// fallback.
type Searcher struct {
	Buckets []scoop.Bucket     // Installed buckets
	Known   scoop.KnownBuckets // Remote fallback table
	Remote  RemoteSource       // nil disables the remote fallback
	Options Options
}

// Report is the outcome of one search.
type Report struct {
	Query       string         `json:"query"`
	Local       []BucketResult `json:"local"`
	Remote      []RemoteResult `json:"remote"`
	RateLimited bool           `json:"rate_limited"`
}

// Empty reports whether neither phase found anything.
func (r *Report) Empty() bool {
	return len(r.Local) == 0 && len(r.Remote) == 0
}

// Run searches for query. Local matching is case-insensitive: the query
// is lowercased for it and the report carries the lowercased form. The
// remote pattern is built from query as given, so regex escapes such as
// \D keep their meaning.
//
// The remote phase only starts after the local phase has finished with no
// matches, and only if the rate limit check reports quota left.
func (s *Searcher) Run(ctx context.Context, query string) (*Report, error) {
	opts := s.Options.WithDefaults()
	lowered := manifest.Lower(query)
	report := &Report{Query: lowered}

	local, err := Local(ctx, s.Buckets, lowered, opts)
	if err != nil {
		return nil, err
	}
	if len(local) > 0 {
		report.Local = local
		return report, nil
	}

	if s.Remote == nil {
		opts.Logger("no local matches; remote search disabled")
		return report, nil
	}

	reached, err := s.Remote.RateLimitReached(ctx)
	observability.Search().OnRateLimit(ctx, reached, err)
	if err != nil {
		return nil, err
	}
	if reached {
		opts.Logger("no local matches; GitHub rate limit reached, skipping remote search")
		report.RateLimited = true
		return report, nil
	}

	opts.Logger("no local matches; searching %d known bucket(s)", s.Known.Len())
	remote, err := Remote(ctx, s.Remote, s.Known, s.Buckets, query, opts)
	if err != nil {
		return nil, err
	}
	report.Remote = remote
	return report, nil
}
