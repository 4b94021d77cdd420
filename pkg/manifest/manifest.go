package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/scoopfind/pkg/errors"
)

// Ext is the file extension of manifest files.
const Ext = ".json"

// Manifest holds the fields of an application manifest used for searching.
type Manifest struct {
	Name    string // Application name (file stem)
	Version string // Empty when missing or not a string
	Bin     any    // Raw decoded "bin" value; nil when missing
}

// Match is a manifest that satisfied a query.
type Match struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Bin     string `json:"bin,omitempty"` // Matched executable file name; empty for name matches
}

// Load reads and decodes the manifest at path.
// The application name is taken from the file name without the .json suffix.
// Malformed JSON is reported as an INVALID_MANIFEST error.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "read %s", path)
	}
	m, err := Parse(NameFromFile(filepath.Base(path)), data)
	if err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return m, nil
}

// Parse decodes manifest JSON for the application called name.
// Any JSON value is accepted; documents that are not objects, or whose
// "version" is not a string, yield a Manifest with an empty Version.
func Parse(name string, data []byte) (Manifest, error) {
	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return Manifest{}, err
	}

	m := Manifest{Name: name}
	obj, ok := root.(map[string]any)
	if !ok {
		return m, nil
	}
	if v, ok := obj["version"].(string); ok {
		m.Version = v
	}
	m.Bin = obj["bin"]
	return m, nil
}

// NameFromFile returns the application name for a manifest file name,
// or "" if the name is not a manifest file.
func NameFromFile(filename string) string {
	if !strings.HasSuffix(filename, Ext) {
		return ""
	}
	return strings.TrimSuffix(filename, Ext)
}
