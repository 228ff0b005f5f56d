package semver

import (
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		version     string
		expectError bool
		major       int
		minor       int
		patch       int
		pre         string
	}{
		{"0.0.1", false, 0, 0, 1, ""},
		{"1.0.0", false, 1, 0, 0, ""},
		{"2.5.3", false, 2, 5, 3, ""},
		{"10.99.42", false, 10, 99, 42, ""},
		{"v1.2.3", false, 1, 2, 3, ""},
		{"0.8.0-snapshot.1", false, 0, 8, 0, "snapshot.1"},
		{"1.0.0-alpha", false, 1, 0, 0, "alpha"},
		{"1.0.0-rc.2", false, 1, 0, 0, "rc.2"},
		{"invalid", true, 0, 0, 0, ""},
		{"1", true, 0, 0, 0, ""},
		{"1.2", true, 0, 0, 0, ""},
		{"1.2.3.4", true, 0, 0, 0, ""},
		{"1.2.x", true, 0, 0, 0, ""},
		{"1.0.0-", true, 0, 0, 0, ""},
		{"1.0.0-snap shot", true, 0, 0, 0, ""},
		{"", true, 0, 0, 0, ""},
	}

	for _, tt := range tests {
		v, err := Parse(tt.version)
		if tt.expectError {
			if err == nil {
				t.Errorf("Parse(%q) expected error but got none", tt.version)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tt.version, err)
			continue
		}
		if v.Major != tt.major || v.Minor != tt.minor || v.Patch != tt.patch {
			t.Errorf("Parse(%q) = %d.%d.%d, want %d.%d.%d",
				tt.version, v.Major, v.Minor, v.Patch, tt.major, tt.minor, tt.patch)
		}
		if got := strings.Join(v.Pre, "."); got != tt.pre {
			t.Errorf("Parse(%q) pre-release = %q, want %q", tt.version, got, tt.pre)
		}
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.1.0", "1.0.9", 1},
		{"2.0.0", "1.9.9", 1},
		{"0.7.0", "0.8.0", -1},

		// A pre-release orders before its corresponding release.
		{"0.8.0-snapshot.1", "0.8.0", -1},
		{"0.8.0", "0.8.0-snapshot.1", 1},

		// Pre-release identifier ordering.
		{"1.0.0-alpha", "1.0.0-beta", -1},
		{"1.0.0-alpha.1", "1.0.0-alpha", 1},
		{"1.0.0-rc.1", "1.0.0-rc.2", -1},
		{"1.0.0-1", "1.0.0-alpha", -1},
		{"1.0.0-snapshot.2", "1.0.0-snapshot.10", -1},
	}

	for _, tt := range tests {
		got, err := CompareStrings(tt.a, tt.b)
		if err != nil {
			t.Errorf("CompareStrings(%q, %q) unexpected error: %v", tt.a, tt.b, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CompareStrings(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestString(t *testing.T) {
	for _, s := range []string{"0.0.1", "1.5.3", "0.8.0-snapshot.1", "2.0.0-rc.1"} {
		v, err := Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", s, err)
		}
		if v.String() != s {
			t.Errorf("Version.String() = %q, want %q", v.String(), s)
		}
	}
}

func TestIsPreRelease(t *testing.T) {
	v, err := Parse("0.8.0-snapshot.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !v.IsPreRelease() {
		t.Error("expected 0.8.0-snapshot.1 to be a pre-release")
	}

	v, err = Parse("0.8.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.IsPreRelease() {
		t.Error("expected 0.8.0 to not be a pre-release")
	}
}
