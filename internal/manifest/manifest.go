// Package manifest provides plugin manifest loading, saving and validation.
package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// ManifestVersion is the manifest schema revision this tooling understands.
const ManifestVersion = 3

// DefaultFileName is the manifest file name inside a plugin directory.
const DefaultFileName = "_manifest.json"

// Manifest describes a plugin's identity and host compatibility.
// It is authored once per plugin, read by the host at load time and never
// mutated at runtime by the plugin itself.
type Manifest struct {
	ManifestVersion int    `json:"manifest_version"`
	Name            string `json:"name"`
	Version         string `json:"version"`
	Description     string `json:"description"`

	Author Author `json:"author"`

	HomepageURL   string   `json:"homepage_url,omitempty"`
	RepositoryURL string   `json:"repository_url,omitempty"`
	Keywords      []string `json:"keywords,omitempty"`
	Categories    []string `json:"categories,omitempty"`
	DefaultLocale string   `json:"default_locale,omitempty"`

	HostApplication HostApplication `json:"host_application"`

	PluginInfo *PluginInfo `json:"plugin_info,omitempty"`
}

// Author identifies the plugin author.
type Author struct {
	Name string `json:"name"`
	URL  string `json:"url,omitempty"`
}

// HostApplication declares the host version range the plugin supports.
// An empty MaxVersion means no upper bound.
type HostApplication struct {
	Name       string `json:"name,omitempty"`
	MinVersion string `json:"min_version"`
	MaxVersion string `json:"max_version,omitempty"`
}

// PluginInfo holds host-facing metadata about the plugin's components.
type PluginInfo struct {
	IsBuiltIn  bool        `json:"is_built_in"`
	PluginType string      `json:"plugin_type,omitempty"`
	Components []Component `json:"components,omitempty"`
}

// Component is a declarative component registration record consumed by the
// host: the plugin never owns invocation.
type Component struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Component types understood by the host.
const (
	ComponentTypeAction  = "action"
	ComponentTypeCommand = "command"
	ComponentTypeTool    = "tool"
)

// Load reads and parses a manifest from disk.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	return &m, nil
}

// Save writes the manifest to disk.
func (m *Manifest) Save(path string) error {
	// SetEscapeHTML(false) keeps URLs and version constraints readable.
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(m); err != nil {
		return fmt.Errorf("failed to marshal manifest: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	return nil
}
