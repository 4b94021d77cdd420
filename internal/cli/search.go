package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/matzehuels/scoopfind/pkg/config"
	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/integrations/github"
	"github.com/matzehuels/scoopfind/pkg/scoop"
	"github.com/matzehuels/scoopfind/pkg/search"
)

// searchOptions holds the root command's flags.
type searchOptions struct {
	json       bool
	noRemote   bool
	configPath string
	workers    int
	workersSet bool
}

// runSearch loads the configuration, discovers the installed buckets and
// prints the outcome of one search to c.Out.
func (c *CLI) runSearch(ctx context.Context, query string, opts searchOptions) error {
	logger := loggerFromContext(ctx)
	registerDebugHooks(logger)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	known, err := cfg.KnownBuckets()
	if err != nil {
		return err
	}

	workers := cfg.Workers
	if opts.workersSet {
		workers = opts.workers
	}
	if workers < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "--workers must not be negative: %d", workers)
	}

	home, err := scoop.Home()
	if err != nil {
		return err
	}
	buckets, err := scoop.ListBuckets(home)
	if err != nil {
		return err
	}
	logger.Debug("found scoop installation", "home", home, "buckets", len(buckets))

	s := &search.Searcher{
		Buckets: buckets,
		Known:   known,
		Options: search.Options{Workers: workers, Logger: logger.Debugf},
	}
	if !opts.noRemote && !cfg.NoRemote {
		s.Remote = github.NewClient(github.Options{
			BaseURL:   cfg.APIURL,
			Token:     cfg.GitHubToken,
			UserAgent: cfg.UserAgent,
			Timeout:   cfg.Timeout.Duration,
		})
	}

	p := newProgress(logger)
	spin := newSpinner(ctx, os.Stderr, "Searching buckets...")
	if logger.GetLevel() > LogDebug {
		spin.Start()
	}
	report, err := s.Run(ctx, query)
	spin.Stop()
	if err != nil {
		return err
	}
	p.done(fmt.Sprintf("search for %q finished", report.Query))

	out := newPresenter(c.Out)
	if opts.json {
		return out.json(report)
	}
	if report.RateLimited {
		logger.Warn("GitHub API rate limit reached; remote buckets were not searched")
	}
	return out.text(report)
}
