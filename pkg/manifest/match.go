package manifest

import "strings"

// aliasEntries is how many entries of a nested bin array are executable
// paths; the rest are shim arguments.
const aliasEntries = 2

// Lower lowercases ASCII letters only. Non-ASCII bytes are left untouched
// so matching does not depend on locale-aware case folding.
func Lower(s string) string {
	for i := 0; i < len(s); i++ {
		if c := s[i]; 'A' <= c && c <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// SortKey returns the ordering key for an application name:
// lowercased with hyphens removed, so "Foo-Bar" sorts as "foobar".
func SortKey(name string) string {
	return strings.ReplaceAll(Lower(name), "-", "")
}

// Find reports whether m satisfies query, which must already be lowercased.
//
// The application name is checked first; a name match leaves Match.Bin
// empty. Otherwise the "bin" field is searched in order and the first
// executable whose stem contains query is reported by its file name.
// Manifests without a version never match.
func Find(m Manifest, query string) (Match, bool) {
	if m.Version == "" || m.Name == "" {
		return Match{}, false
	}

	if strings.Contains(Lower(m.Name), query) {
		return Match{Name: m.Name, Version: m.Version}, true
	}

	if bin, ok := matchBin(m.Bin, query); ok {
		return Match{Name: m.Name, Version: m.Version, Bin: bin}, true
	}
	return Match{}, false
}

func matchBin(bin any, query string) (string, bool) {
	switch v := bin.(type) {
	case string:
		return matchPath(v, query)
	case []any:
		for _, entry := range v {
			switch e := entry.(type) {
			case string:
				if name, ok := matchPath(e, query); ok {
					return name, true
				}
			case []any:
				for _, alias := range e[:min(len(e), aliasEntries)] {
					if name, ok := matchPath(alias, query); ok {
						return name, true
					}
				}
			}
		}
	}
	return "", false
}

// matchPath returns the file name of path if its stem contains query.
func matchPath(path any, query string) (string, bool) {
	s, ok := path.(string)
	if !ok {
		return "", false
	}
	name := fileName(s)
	if name == "" {
		return "", false
	}
	if !strings.Contains(Lower(fileStem(name)), query) {
		return "", false
	}
	return name, true
}

// fileName returns the last element of a Windows or POSIX path.
func fileName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if i := strings.LastIndexAny(path, `/\`); i >= 0 {
		path = path[i+1:]
	}
	if path == "." || path == ".." {
		return ""
	}
	return path
}

// fileStem strips the final extension. A leading dot does not start an
// extension, so ".hidden" is its own stem.
func fileStem(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[:i]
	}
	return name
}
