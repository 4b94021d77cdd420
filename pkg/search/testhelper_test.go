package search

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/matzehuels/scoopfind/pkg/scoop"
)

// writeManifest writes a manifest file under dir, creating dir as needed.
func writeManifest(t *testing.T, dir, file, data string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, file), []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

// newBucket creates home/buckets/name/bucket with the given manifests.
func newBucket(t *testing.T, home, name string, manifests map[string]string) scoop.Bucket {
	t.Helper()
	path := filepath.Join(home, "buckets", name)
	for file, data := range manifests {
		writeManifest(t, filepath.Join(path, "bucket"), file, data)
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatal(err)
	}
	return scoop.Bucket{Name: name, Path: path}
}

// treeBody renders a tree listing the way the GitHub API pretty-prints it.
func treeBody(paths ...string) string {
	var b strings.Builder
	b.WriteString("{\n  \"tree\": [\n")
	for i, p := range paths {
		fmt.Fprintf(&b, "    {\n      \"path\": %q,\n      \"type\": \"blob\"\n    }", p)
		if i < len(paths)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}
	b.WriteString("  ]\n}\n")
	return b.String()
}

// fakeSource is an in-memory RemoteSource.
type fakeSource struct {
	mu      sync.Mutex
	bodies  map[string]string
	errs    map[string]error
	reached bool
	rateErr error

	rateCalls int
	fetched   []string
}

func (f *fakeSource) RateLimitReached(context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rateCalls++
	return f.reached, f.rateErr
}

func (f *fakeSource) TreeText(_ context.Context, uri string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched = append(f.fetched, uri)
	if err := f.errs[uri]; err != nil {
		return "", err
	}
	return f.bodies[uri], nil
}

func (f *fakeSource) fetchCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.fetched)
}
