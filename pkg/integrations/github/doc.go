// Package github provides the GitHub API calls used by the remote search:
// the rate-limit status check and raw tree listings of bucket repositories.
//
// Unauthenticated clients get 60 requests per hour; a token raises this to
// 5000. The rate-limit endpoint itself does not count against the quota.
package github
