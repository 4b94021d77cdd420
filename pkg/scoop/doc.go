// Package scoop locates a Scoop installation and describes its buckets.
//
// # Installation Layout
//
//	$SCOOP/
//	└── buckets/
//	    ├── main/
//	    │   └── bucket/
//	    │       ├── git.json
//	    │       └── 7zip.json
//	    └── extras/
//	        └── bucket/
//	            └── ...
//
// Older buckets keep manifests directly in the bucket root instead of a
// bucket/ subdirectory; [Bucket.ManifestDir] handles both.
//
// # Known Buckets
//
// [KnownBuckets] is the table of popular remote buckets that can be searched
// when nothing is installed locally. It is built once at startup from
// the built-in [DefaultBuckets] plus any user-configured additions and is read-only
// afterwards, so it can be shared freely between goroutines.
package scoop
