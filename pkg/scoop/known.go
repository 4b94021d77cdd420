package scoop

import (
	"maps"
	"slices"
	"strings"

	"github.com/matzehuels/scoopfind/pkg/errors"
)

// treeURL builds the recursive tree listing endpoint for a GitHub repository.
func treeURL(repo string) string {
	return "https://api.github.com/repos/" + repo + "/git/trees/HEAD?recursive=1"
}

// defaultBuckets maps well-known bucket names to their GitHub tree listings.
var defaultBuckets = map[string]string{
	"main":        treeURL("ScoopInstaller/Main"),
	"extras":      treeURL("ScoopInstaller/Extras"),
	"versions":    treeURL("ScoopInstaller/Versions"),
	"nirsoft":     treeURL("kodybrown/scoop-nirsoft"),
	"php":         treeURL("ScoopInstaller/PHP"),
	"nerd-fonts":  treeURL("matthewjberger/scoop-nerd-fonts"),
	"nonportable": treeURL("TheRandomLabs/scoop-nonportable"),
	"java":        treeURL("ScoopInstaller/Java"),
	"games":       treeURL("Calinou/scoop-games"),
}

// KnownBucket is one entry of the known bucket table.
type KnownBucket struct {
	Name string
	URI  string
}

// KnownBuckets is an immutable name → tree listing table.
// The zero value is an empty table.
type KnownBuckets struct {
	entries []KnownBucket // sorted by name
}

// DefaultBuckets returns the built-in known bucket table.
func DefaultBuckets() KnownBuckets {
	return TableOf(defaultBuckets)
}

// NewKnownBuckets builds a table from the built-in buckets with extra
// merged on top; an entry in extra replaces the default of the same name.
func NewKnownBuckets(extra map[string]string) (KnownBuckets, error) {
	all := maps.Clone(defaultBuckets)
	for name, uri := range extra {
		if err := errors.ValidateBucketName(name); err != nil {
			return KnownBuckets{}, err
		}
		if err := errors.ValidateURL(uri); err != nil {
			return KnownBuckets{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "bucket %s", name)
		}
		all[name] = uri
	}
	return TableOf(all), nil
}

// TableOf builds a table from m without validation or defaults.
func TableOf(m map[string]string) KnownBuckets {
	entries := make([]KnownBucket, 0, len(m))
	for _, name := range slices.Sorted(maps.Keys(m)) {
		entries = append(entries, KnownBucket{Name: name, URI: m[name]})
	}
	return KnownBuckets{entries: entries}
}

// All returns a copy of the table's entries sorted by name.
func (k KnownBuckets) All() []KnownBucket {
	return slices.Clone(k.entries)
}

// Len returns the number of known buckets.
func (k KnownBuckets) Len() int { return len(k.entries) }

// URI returns the tree listing for name.
func (k KnownBuckets) URI(name string) (string, bool) {
	i, ok := slices.BinarySearchFunc(k.entries, name, func(e KnownBucket, n string) int {
		return strings.Compare(e.Name, n)
	})
	if !ok {
		return "", false
	}
	return k.entries[i].URI, true
}
