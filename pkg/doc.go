// Package pkg provides the libraries behind scoopfind, a search tool for
// Scoop application manifests.
//
// # Overview
//
// scoopfind looks for applications in the manifests of locally installed
// Scoop buckets. When nothing matches, it falls back to the manifest
// listings of well-known buckets that are not installed, fetched from the
// GitHub API.
//
//  1. [scoop] - Installation discovery and the known bucket table
//  2. [manifest] - Manifest decoding and the matching rules
//  3. [search] - Concurrent local and remote search phases
//  4. [integrations] - HTTP client and the GitHub API
//  5. [config] - Optional TOML configuration
//
// # Architecture
//
//	$SCOOP/buckets/*/bucket/*.json
//	         ↓
//	    [search.Local] (one worker per bucket)
//	         ↓ no matches
//	    [github.Client.RateLimitReached]
//	         ↓ quota left
//	    [search.Remote] (one worker per known bucket)
//	         ↓
//	    text or JSON report
//
// # Quick Start
//
//	home, _ := scoop.Home()
//	buckets, _ := scoop.ListBuckets(home)
//	s := &search.Searcher{
//	    Buckets: buckets,
//	    Known:   scoop.DefaultBuckets(),
//	    Remote:  github.NewClient(github.Options{}),
//	}
//	report, err := s.Run(ctx, "git")
package pkg
