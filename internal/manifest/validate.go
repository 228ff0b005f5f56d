package manifest

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/maibot-go/pluginkit/internal/semver"
)

// Issue describes a single violated constraint.
type Issue struct {
	Field  string
	Reason string
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Field, i.Reason)
}

// Report holds the outcome of a validation run. Errors make the manifest
// invalid; warnings are advisory and never affect validity.
type Report struct {
	Errors   []Issue
	Warnings []Issue
}

// Valid reports whether the manifest passed all error-severity checks.
func (r *Report) Valid() bool {
	return len(r.Errors) == 0
}

func (r *Report) addError(field, format string, args ...any) {
	r.Errors = append(r.Errors, Issue{Field: field, Reason: fmt.Sprintf(format, args...)})
}

func (r *Report) addWarning(field, format string, args ...any) {
	r.Warnings = append(r.Warnings, Issue{Field: field, Reason: fmt.Sprintf(format, args...)})
}

var (
	urlPattern    = regexp.MustCompile(`^https?://[^\s]+$`)
	localePattern = regexp.MustCompile(`^[a-z]{2}(-[A-Z]{2})?$`)
)

// recommendedPluginTypes are the plugin_type values the host catalogues.
var recommendedPluginTypes = []string{
	"general", "game", "utility", "entertainment", "social", "productivity",
}

// Validate runs all structural and semantic checks against the manifest and
// returns a report. It is a pure check: no side effects, never fatal.
func Validate(m *Manifest) *Report {
	r := &Report{}

	// A zero manifest_version means the field was omitted; the host assumes
	// the current revision. Any other mismatch is a hard error.
	if m.ManifestVersion == 0 {
		r.addWarning("manifest_version", "missing, assuming %d", ManifestVersion)
	} else if m.ManifestVersion != ManifestVersion {
		r.addError("manifest_version", "must be %d, got %d", ManifestVersion, m.ManifestVersion)
	}

	validateRequiredString(r, "name", m.Name)
	validateRequiredString(r, "description", m.Description)

	if validateRequiredString(r, "version", m.Version) {
		if _, err := semver.Parse(m.Version); err != nil {
			r.addError("version", "not a valid semantic version: %v", err)
		}
	}

	validateAuthor(r, m.Author)
	validateURLField(r, "homepage_url", m.HomepageURL)
	validateURLField(r, "repository_url", m.RepositoryURL)

	if len(m.Keywords) == 0 {
		r.addWarning("keywords", "adding keywords improves plugin discoverability")
	}
	if len(m.Categories) == 0 {
		r.addWarning("categories", "adding categories helps the host catalogue the plugin")
	}

	if m.DefaultLocale != "" && !localePattern.MatchString(m.DefaultLocale) {
		r.addWarning("default_locale", "expected 'xx' or 'xx-XX' format, got %q", m.DefaultLocale)
	}

	validateHostApplication(r, m.HostApplication)
	validatePluginInfo(r, m.PluginInfo)

	return r
}

// validateRequiredString reports an error when a required field is missing or
// blank. Returns true when the field is present.
func validateRequiredString(r *Report, field, value string) bool {
	if strings.TrimSpace(value) == "" {
		r.addError(field, "is required and must be non-empty")
		return false
	}
	return true
}

func validateAuthor(r *Report, a Author) {
	validateRequiredString(r, "author.name", a.Name)
	validateURLField(r, "author.url", a.URL)
}

func validateURLField(r *Report, field, url string) {
	if url != "" && !urlPattern.MatchString(url) {
		r.addWarning(field, "does not look like a valid http(s) URL: %q", url)
	}
}

// validateHostApplication checks the host compatibility range: the minimum is
// required and both bounds must parse as semantic versions. An empty maximum
// means no upper bound; when both are given, min must not exceed max.
func validateHostApplication(r *Report, h HostApplication) {
	minOK := false
	var minVer semver.Version

	if validateRequiredString(r, "host_application.min_version", h.MinVersion) {
		v, err := semver.Parse(h.MinVersion)
		if err != nil {
			r.addError("host_application.min_version", "not a valid semantic version: %v", err)
		} else {
			minVer = v
			minOK = true
		}
	}

	if h.MaxVersion == "" {
		return
	}

	maxVer, err := semver.Parse(h.MaxVersion)
	if err != nil {
		r.addError("host_application.max_version", "not a valid semantic version: %v", err)
		return
	}

	if minOK && maxVer.Compare(minVer) < 0 {
		r.addError("host_application.max_version",
			"max_version %s is lower than min_version %s", h.MaxVersion, h.MinVersion)
	}
}

func validatePluginInfo(r *Report, info *PluginInfo) {
	if info == nil {
		r.addWarning("plugin_info", "missing; the host cannot catalogue the plugin's components")
		return
	}

	if info.PluginType != "" && !contains(recommendedPluginTypes, info.PluginType) {
		r.addWarning("plugin_info.plugin_type",
			"%q is not a recognised plugin type (known: %s)",
			info.PluginType, strings.Join(recommendedPluginTypes, ", "))
	}

	if len(info.Components) == 0 {
		r.addWarning("plugin_info.components", "plugin declares no components")
	}

	for i, c := range info.Components {
		field := fmt.Sprintf("plugin_info.components[%d]", i)

		switch c.Type {
		case ComponentTypeAction, ComponentTypeCommand, ComponentTypeTool:
		default:
			r.addError(field+".type", "invalid component type %q (must be action, command or tool)", c.Type)
		}

		if strings.TrimSpace(c.Name) == "" {
			r.addError(field+".name", "is required and must be non-empty")
		}
		if strings.TrimSpace(c.Description) == "" {
			r.addWarning(field+".description", "adding a description is recommended")
		}
	}
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// ValidateFile loads the manifest at path and validates it. Read and parse
// failures are reported through the returned report rather than as a fatal
// error, so callers that only want the issue list always get one.
func ValidateFile(path string) (*Manifest, *Report) {
	m, err := Load(path)
	if err != nil {
		r := &Report{}
		r.addError("manifest", "%v", err)
		return nil, r
	}
	return m, Validate(m)
}
