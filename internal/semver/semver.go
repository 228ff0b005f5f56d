// Package semver implements the subset of semantic versioning used by plugin
// manifests: MAJOR.MINOR.PATCH with an optional hyphenated pre-release suffix
// (e.g. "0.8.0-snapshot.1").
package semver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version represents a parsed semantic version.
type Version struct {
	Major int
	Minor int
	Patch int

	// Pre holds the dot-separated pre-release identifiers, empty for a
	// release version. "0.8.0-snapshot.1" parses to ["snapshot", "1"].
	Pre []string
}

// Parse parses a version string in "MAJOR.MINOR.PATCH[-PRERELEASE]" format.
// A leading "v" is tolerated since release tags commonly carry one.
func Parse(version string) (Version, error) {
	core := strings.TrimPrefix(version, "v")

	var pre []string
	if idx := strings.IndexByte(core, '-'); idx >= 0 {
		preStr := core[idx+1:]
		core = core[:idx]
		if preStr == "" {
			return Version{}, fmt.Errorf("invalid pre-release suffix in version: %s", version)
		}
		pre = strings.Split(preStr, ".")
		for _, id := range pre {
			if !validIdentifier(id) {
				return Version{}, fmt.Errorf("invalid pre-release identifier %q in version: %s", id, version)
			}
		}
	}

	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return Version{}, fmt.Errorf("invalid version format: %s (expected MAJOR.MINOR.PATCH)", version)
	}

	major, err := parseNumber(parts[0])
	if err != nil {
		return Version{}, fmt.Errorf("invalid major version: %s", parts[0])
	}

	minor, err := parseNumber(parts[1])
	if err != nil {
		return Version{}, fmt.Errorf("invalid minor version: %s", parts[1])
	}

	patch, err := parseNumber(parts[2])
	if err != nil {
		return Version{}, fmt.Errorf("invalid patch version: %s", parts[2])
	}

	return Version{Major: major, Minor: minor, Patch: patch, Pre: pre}, nil
}

// parseNumber parses a non-negative numeric component.
func parseNumber(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("empty component")
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a non-negative integer: %s", s)
	}
	return n, nil
}

// validIdentifier reports whether s is a legal pre-release identifier:
// non-empty ASCII alphanumerics and hyphens.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '-':
		default:
			return false
		}
	}
	return true
}

// String returns the string representation of the version.
func (v Version) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if len(v.Pre) > 0 {
		s += "-" + strings.Join(v.Pre, ".")
	}
	return s
}

// IsPreRelease reports whether the version carries a pre-release suffix.
func (v Version) IsPreRelease() bool {
	return len(v.Pre) > 0
}

// Compare returns 1 if v > other, -1 if v < other, and 0 if they are equal.
// Numeric components are compared numerically; a pre-release version orders
// before its corresponding release ("0.8.0-snapshot.1" < "0.8.0").
func (v Version) Compare(other Version) int {
	if c := compareInt(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareInt(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareInt(v.Patch, other.Patch); c != 0 {
		return c
	}
	return comparePre(v.Pre, other.Pre)
}

func compareInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// comparePre compares pre-release identifier lists per semver rules:
// a release (no identifiers) orders after any pre-release; numeric
// identifiers compare numerically and order before alphanumeric ones;
// a shorter identifier list orders before a longer one with equal prefix.
func comparePre(a, b []string) int {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}
	if len(a) == 0 {
		return 1
	}
	if len(b) == 0 {
		return -1
	}

	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareIdentifier(a[i], b[i]); c != 0 {
			return c
		}
	}

	switch {
	case len(a) > len(b):
		return 1
	case len(a) < len(b):
		return -1
	default:
		return 0
	}
}

func compareIdentifier(a, b string) int {
	aNum, aErr := strconv.Atoi(a)
	bNum, bErr := strconv.Atoi(b)

	switch {
	case aErr == nil && bErr == nil:
		return compareInt(aNum, bNum)
	case aErr == nil:
		// Numeric identifiers order before alphanumeric ones.
		return -1
	case bErr == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// CompareStrings parses and compares two version strings.
func CompareStrings(a, b string) (int, error) {
	va, err := Parse(a)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %q: %w", a, err)
	}
	vb, err := Parse(b)
	if err != nil {
		return 0, fmt.Errorf("failed to parse version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}
