// Package search implements the two-phase bucket search.
//
// # Local Phase
//
// [Local] scans every installed bucket concurrently with [ScanBucket]. Each
// worker scans on its own and only takes the shared lock to append a
// non-empty [BucketResult]. Results are sorted by bucket name once all
// workers have joined.
//
// # Remote Phase
//
// When the local phase finds nothing, [Searcher] checks the GitHub rate
// limit and, if quota remains, runs [Remote] over the known buckets that are
// not installed. [FindRemote] greps each bucket's raw tree listing for
// "bucket/<name>.json" paths containing the query.
//
// The query is inserted into the remote pattern verbatim and with its
// original case, so regular expression metacharacters keep their meaning
// there:
//
//	scoopfind 'py.*3'   // matches bucket/python3.json remotely
//
// # Failure Model
//
// Every failure is fatal to its phase. An HTTP error status is not a
// failure: a missing repository simply lists no manifests. The first worker error poisons the
// phase's result aggregate; workers that finish afterwards cannot publish
// into it, and the coordinator returns the original error once every worker
// has finished. Workers are never cancelled by a peer's failure.
package search
