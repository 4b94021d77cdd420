package search

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/scoopfind/pkg/errors"
	"github.com/matzehuels/scoopfind/pkg/scoop"
)

func TestScanBucket(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{
		"foobaz.json":    `{"version":"1.0"}`,
		"Foo-Bar.json":   `{"version":"2.0"}`,
		"other.json":     `{"version":"3.0","bin":"foo-tool.exe"}`,
		"noversion.json": `{"bin":"foo.exe"}`,
		"README.md":      `# foo`,
	})

	matches, err := ScanBucket(b.Path, "foo")
	if err != nil {
		t.Fatalf("ScanBucket() error: %v", err)
	}

	want := []struct{ name, bin string }{
		{"Foo-Bar", ""},
		{"foobaz", ""},
		{"other", "foo-tool.exe"},
	}
	if len(matches) != len(want) {
		t.Fatalf("got %d matches, want %d: %+v", len(matches), len(want), matches)
	}
	for i, w := range want {
		if matches[i].Name != w.name || matches[i].Bin != w.bin {
			t.Errorf("matches[%d] = %+v, want name=%s bin=%s", i, matches[i], w.name, w.bin)
		}
	}
}

func TestScanBucketSortIsStable(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{
		"a-b.json": `{"version":"1"}`,
		"ab.json":  `{"version":"1"}`,
		"A-B.json": `{"version":"1"}`,
	})

	matches, err := ScanBucket(b.Path, "")
	if err != nil {
		t.Fatalf("ScanBucket() error: %v", err)
	}
	// All share the key "ab"; directory order (byte order) is kept.
	want := []string{"A-B", "a-b", "ab"}
	for i, name := range want {
		if matches[i].Name != name {
			t.Errorf("matches[%d] = %s, want %s", i, matches[i].Name, name)
		}
	}
}

func TestScanBucketRootFallback(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "legacy")
	writeManifest(t, dir, "git.json", `{"version":"2.40.0"}`)

	matches, err := ScanBucket(dir, "git")
	if err != nil {
		t.Fatalf("ScanBucket() error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "git" {
		t.Errorf("matches = %+v, want git", matches)
	}
}

func TestScanBucketSkipsNonFiles(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{
		"git.json": `{"version":"2.40.0"}`,
		".json":    `not json at all`,
	})
	if err := os.MkdirAll(filepath.Join(b.Path, "bucket", "dir.json"), 0o755); err != nil {
		t.Fatal(err)
	}

	matches, err := ScanBucket(b.Path, "")
	if err != nil {
		t.Fatalf("ScanBucket() error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "git" {
		t.Errorf("matches = %+v, want only git", matches)
	}
}

func TestScanBucketFollowsSymlinks(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", nil)
	target := filepath.Join(home, "real.json")
	writeManifest(t, home, "real.json", `{"version":"1.0"}`)
	if err := os.MkdirAll(filepath.Join(b.Path, "bucket"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(target, filepath.Join(b.Path, "bucket", "linked.json")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	matches, err := ScanBucket(b.Path, "linked")
	if err != nil {
		t.Fatalf("ScanBucket() error: %v", err)
	}
	if len(matches) != 1 || matches[0].Name != "linked" {
		t.Errorf("matches = %+v, want linked", matches)
	}
}

func TestScanBucketMalformedManifest(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{
		"git.json":    `{"version":"2.40.0"}`,
		"broken.json": `{"version":`,
	})

	_, err := ScanBucket(b.Path, "git")
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("ScanBucket() error = %v, want INVALID_MANIFEST", err)
	}
}

func TestScanBucketMissing(t *testing.T) {
	_, err := ScanBucket(filepath.Join(t.TempDir(), "missing"), "")
	if !errors.Is(err, errors.ErrCodeBadInstall) {
		t.Errorf("ScanBucket() error = %v, want BAD_INSTALL", err)
	}
}

func TestLocal(t *testing.T) {
	home := t.TempDir()
	buckets := []scoop.Bucket{
		newBucket(t, home, "versions", map[string]string{"git-lfs.json": `{"version":"3.0"}`}),
		newBucket(t, home, "main", map[string]string{
			"git.json":  `{"version":"2.40.0","bin":"git.exe"}`,
			"7zip.json": `{"version":"23.01"}`,
		}),
		newBucket(t, home, "games", map[string]string{"doom.json": `{"version":"1"}`}),
		newBucket(t, home, "extras", map[string]string{"gitui.json": `{"version":"0.24.3"}`}),
	}

	for _, workers := range []int{0, 1, 2} {
		results, err := Local(context.Background(), buckets, "git", Options{Workers: workers})
		if err != nil {
			t.Fatalf("Local(workers=%d) error: %v", workers, err)
		}

		want := []string{"extras", "main", "versions"}
		if len(results) != len(want) {
			t.Fatalf("Local(workers=%d) got %d buckets, want %d: %+v", workers, len(results), len(want), results)
		}
		for i, name := range want {
			if results[i].Bucket != name {
				t.Errorf("results[%d].Bucket = %s, want %s", i, results[i].Bucket, name)
			}
			if len(results[i].Matches) == 0 {
				t.Errorf("results[%d] has no matches", i)
			}
		}
	}
}

func TestLocalNoBuckets(t *testing.T) {
	results, err := Local(context.Background(), nil, "git", Options{})
	if err != nil {
		t.Fatalf("Local() error: %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Local() = %+v, want empty", results)
	}
}

func TestLocalBrokenBucketFailsSearch(t *testing.T) {
	home := t.TempDir()
	buckets := []scoop.Bucket{
		newBucket(t, home, "main", map[string]string{"git.json": `{"version":"2.40.0"}`}),
		newBucket(t, home, "broken", map[string]string{"bad.json": `[`}),
		newBucket(t, home, "extras", map[string]string{"gitui.json": `{"version":"0.24.3"}`}),
	}

	results, err := Local(context.Background(), buckets, "git", Options{})
	if err == nil {
		t.Fatalf("Local() = %+v, want error", results)
	}
	if !errors.Is(err, errors.ErrCodeInvalidManifest) {
		t.Errorf("Local() error = %v, want INVALID_MANIFEST", err)
	}
}

func TestLocalUnreadableBucketName(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{"git.json": `{"version":"2.40.0"}`})
	b.Name = "bad\xff"

	_, err := Local(context.Background(), []scoop.Bucket{b}, "git", Options{})
	if !errors.Is(err, errors.ErrCodeBadInstall) {
		t.Errorf("Local() error = %v, want BAD_INSTALL", err)
	}
}

func TestLocalLogs(t *testing.T) {
	home := t.TempDir()
	b := newBucket(t, home, "main", map[string]string{"git.json": `{"version":"2.40.0"}`})

	var logged []string
	opts := Options{Logger: func(format string, args ...any) { logged = append(logged, format) }}
	if _, err := Local(context.Background(), []scoop.Bucket{b}, "git", opts); err != nil {
		t.Fatalf("Local() error: %v", err)
	}
	if len(logged) == 0 {
		t.Error("expected a progress log line")
	}
}
