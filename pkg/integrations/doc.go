// Package integrations provides the HTTP layer for remote bucket lookups.
//
// # Client Pattern
//
// [Client] wraps net/http with the request headers every call needs (the
// fixed User-Agent, GitHub's Accept header, an optional token) and reports
// each request through the [observability] HTTP hooks. API-specific clients
// embed it:
//
//	client := github.NewClient(github.Options{Token: token})
//	reached, err := client.RateLimitReached(ctx)
//
// Requests are single attempts with no retry or response cache. An error
// status is not an error: [Client.Fetch] returns the status and body and
// the API client decides. Transport failures wrap [ErrNetwork].
//
// [observability]: github.com/matzehuels/scoopfind/pkg/observability
package integrations
