package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

// fullManifest returns a manifest that passes every error-severity check.
func fullManifest() *Manifest {
	return &Manifest{
		ManifestVersion: ManifestVersion,
		Name:            "example_template_plugin",
		Version:         "1.0.0",
		Description:     "Template plugin demonstrating actions and commands",
		Author:          Author{Name: "pluginkit authors", URL: "https://example.com"},
		Keywords:        []string{"template", "example"},
		Categories:      []string{"utility"},
		DefaultLocale:   "en",
		HostApplication: HostApplication{
			Name:       "MaiBot",
			MinVersion: "0.8.0",
			MaxVersion: "1.0.0",
		},
		PluginInfo: &PluginInfo{
			PluginType: "general",
			Components: []Component{
				{Type: ComponentTypeAction, Name: "greeting_action", Description: "Responds to greetings"},
				{Type: ComponentTypeCommand, Name: "help_command", Description: "Shows help"},
			},
		},
	}
}

func TestValidate_FullManifest(t *testing.T) {
	report := Validate(fullManifest())
	if !report.Valid() {
		t.Fatalf("expected manifest to be valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) != 0 {
		t.Errorf("expected no warnings, got: %v", report.Warnings)
	}
}

func TestValidate_MissingRequiredFields(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*Manifest)
	}{
		{"name", func(m *Manifest) { m.Name = "" }},
		{"version", func(m *Manifest) { m.Version = "" }},
		{"description", func(m *Manifest) { m.Description = "  " }},
		{"author.name", func(m *Manifest) { m.Author.Name = "" }},
		{"host_application.min_version", func(m *Manifest) { m.HostApplication.MinVersion = "" }},
	}

	for _, tt := range tests {
		m := fullManifest()
		tt.mutate(m)

		report := Validate(m)
		if report.Valid() {
			t.Errorf("expected manifest with missing %s to be invalid", tt.field)
			continue
		}
		if len(report.Errors) != 1 {
			t.Errorf("missing %s: expected exactly one error, got %v", tt.field, report.Errors)
			continue
		}
		if report.Errors[0].Field != tt.field {
			t.Errorf("missing %s: error reported against %q", tt.field, report.Errors[0].Field)
		}
	}
}

func TestValidate_VersionGrammar(t *testing.T) {
	tests := []struct {
		version string
		valid   bool
	}{
		{"1.0.0", true},
		{"0.8.0-snapshot.1", true},
		{"1.0", false},
		{"1.0.0.0", false},
		{"one.two.three", false},
	}

	for _, tt := range tests {
		m := fullManifest()
		m.Version = tt.version

		report := Validate(m)
		if report.Valid() != tt.valid {
			t.Errorf("version %q: valid = %v, want %v (errors: %v)",
				tt.version, report.Valid(), tt.valid, report.Errors)
		}
	}
}

func TestValidate_HostVersionRange(t *testing.T) {
	// max below min is an inconsistency error.
	m := fullManifest()
	m.HostApplication.MinVersion = "0.8.0"
	m.HostApplication.MaxVersion = "0.7.0"

	report := Validate(m)
	if report.Valid() {
		t.Fatal("expected max < min to be invalid")
	}

	found := false
	for _, issue := range report.Errors {
		if issue.Field == "host_application.max_version" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected error on host_application.max_version, got: %v", report.Errors)
	}

	// A pre-release minimum is satisfied by its release as maximum.
	m = fullManifest()
	m.HostApplication.MinVersion = "0.8.0-snapshot.1"
	m.HostApplication.MaxVersion = "0.8.0"
	if report := Validate(m); !report.Valid() {
		t.Errorf("expected pre-release min below release max to be valid, got: %v", report.Errors)
	}

	// Equal bounds are allowed.
	m = fullManifest()
	m.HostApplication.MinVersion = "1.0.0"
	m.HostApplication.MaxVersion = "1.0.0"
	if report := Validate(m); !report.Valid() {
		t.Errorf("expected min == max to be valid, got: %v", report.Errors)
	}
}

// TestValidate_MinimalManifest checks the documented minimal manifest: an
// empty max_version means "no upper bound" and unset optional metadata only
// produces warnings.
func TestValidate_MinimalManifest(t *testing.T) {
	m := &Manifest{
		Name:        "demo",
		Version:     "1.0.0",
		Description: "x",
		Author:      Author{Name: "a"},
		HostApplication: HostApplication{
			Name:       "MaiBot",
			MinVersion: "0.8.0",
			MaxVersion: "",
		},
	}

	report := Validate(m)
	if !report.Valid() {
		t.Fatalf("expected minimal manifest to be valid, got errors: %v", report.Errors)
	}
	if len(report.Warnings) == 0 {
		t.Error("expected advisory warnings for unset optional metadata")
	}
}

func TestValidate_ComponentDeclarations(t *testing.T) {
	m := fullManifest()
	m.PluginInfo.Components = []Component{
		{Type: "widget", Name: "bad_component"},
		{Type: ComponentTypeCommand, Name: ""},
	}

	report := Validate(m)
	if report.Valid() {
		t.Fatal("expected invalid component declarations to fail validation")
	}
	if len(report.Errors) != 2 {
		t.Errorf("expected two errors, got: %v", report.Errors)
	}
}

func TestValidate_ManifestVersionMismatch(t *testing.T) {
	m := fullManifest()
	m.ManifestVersion = 2

	report := Validate(m)
	if report.Valid() {
		t.Fatal("expected manifest_version 2 to be invalid")
	}

	// Omitted manifest_version is only advisory.
	m = fullManifest()
	m.ManifestVersion = 0
	if report := Validate(m); !report.Valid() {
		t.Errorf("expected omitted manifest_version to be valid, got: %v", report.Errors)
	}
}

func TestValidateFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, DefaultFileName)

	m := fullManifest()
	if err := m.Save(path); err != nil {
		t.Fatalf("unexpected error saving manifest: %v", err)
	}

	loaded, report := ValidateFile(path)
	if loaded == nil {
		t.Fatal("expected manifest to load")
	}
	if !report.Valid() {
		t.Errorf("expected valid report, got errors: %v", report.Errors)
	}
	if loaded.Name != m.Name || loaded.HostApplication.MinVersion != m.HostApplication.MinVersion {
		t.Error("loaded manifest does not match saved manifest")
	}

	// A missing file is reported through the issue list, not a fatal error.
	_, report = ValidateFile(filepath.Join(tmpDir, "nope.json"))
	if report.Valid() {
		t.Error("expected missing manifest file to produce an error issue")
	}

	// Malformed JSON likewise.
	badPath := filepath.Join(tmpDir, "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, report = ValidateFile(badPath)
	if report.Valid() {
		t.Error("expected malformed manifest to produce an error issue")
	}
}
