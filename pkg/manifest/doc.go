// Package manifest reads Scoop application manifests and matches them
// against search queries.
//
// # Manifest Shape
//
// A manifest is one JSON document per application, named after the
// application (git.json describes "git"). Only two fields matter here:
//
//	{
//	    "version": "2.40.0",
//	    "bin": ["bin\\git.exe", ["bin\\bash.exe", "gitbash"]]
//	}
//
// "bin" may be a single path string, or an array whose elements are path
// strings or [path, alias, args...] arrays.
//
// # Matching
//
// [Find] checks the application name first and then the declared
// executables. Matching is a case-insensitive substring test using ASCII
// lowercasing; the query must already be lowercased with [Lower].
//
//	m, _ := manifest.Load("buckets/main/bucket/git.json")
//	if match, ok := manifest.Find(m, manifest.Lower("bash")); ok {
//	    fmt.Println(match.Bin) // bash.exe
//	}
package manifest
