// Package docgen renders human-readable reference documentation for a
// plugin from its manifest and component registration records.
package docgen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maibot-go/pluginkit/internal/manifest"
	"github.com/maibot-go/pluginkit/pkg/plugin"
)

// Render produces a markdown reference document. set may be nil, in which
// case only the declarative component list from the manifest is documented.
func Render(m *manifest.Manifest, set *plugin.ComponentSet) []byte {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}

	fmt.Fprintf(&b, "- Version: %s\n", m.Version)
	if m.Author.Name != "" {
		author := m.Author.Name
		if m.Author.URL != "" {
			author = fmt.Sprintf("[%s](%s)", m.Author.Name, m.Author.URL)
		}
		fmt.Fprintf(&b, "- Author: %s\n", author)
	}
	b.WriteString("- Host compatibility: " + hostRange(m.HostApplication) + "\n")
	if len(m.Keywords) > 0 {
		fmt.Fprintf(&b, "- Keywords: %s\n", strings.Join(m.Keywords, ", "))
	}

	if set != nil {
		renderComponentSet(&b, *set)
	} else if m.PluginInfo != nil {
		renderDeclaredComponents(&b, m.PluginInfo.Components)
	}

	return []byte(b.String())
}

func hostRange(h manifest.HostApplication) string {
	name := h.Name
	if name == "" {
		name = "host"
	}
	if h.MaxVersion == "" {
		return fmt.Sprintf("%s >= %s", name, h.MinVersion)
	}
	return fmt.Sprintf("%s %s to %s", name, h.MinVersion, h.MaxVersion)
}

func renderComponentSet(b *strings.Builder, set plugin.ComponentSet) {
	if len(set.Actions) > 0 {
		b.WriteString("\n## Actions\n")
		b.WriteString("\nReactive components; the host decides invocation through its two-stage activation process.\n")
		for _, a := range set.Actions {
			renderAction(b, a)
		}
	}

	if len(set.Commands) > 0 {
		b.WriteString("\n## Commands\n")
		b.WriteString("\nInvoked when user input matches the registered pattern, consulted in registration order.\n")
		for _, c := range set.Commands {
			renderCommand(b, c)
		}
	}
}

func renderAction(b *strings.Builder, a plugin.ActionInfo) {
	fmt.Fprintf(b, "\n### %s\n\n", a.Name)
	if a.Description != "" {
		fmt.Fprintf(b, "%s\n\n", a.Description)
	}

	fmt.Fprintf(b, "- Activation (normal mode): %s\n", a.NormalActivation)
	fmt.Fprintf(b, "- Activation (focus mode): %s\n", a.FocusActivation)
	if len(a.ActivationKeywords) > 0 {
		fmt.Fprintf(b, "- Keywords: %s\n", strings.Join(a.ActivationKeywords, ", "))
	}
	if a.RandomProbability > 0 {
		fmt.Fprintf(b, "- Random activation probability: %.2f\n", a.RandomProbability)
	}

	if len(a.Parameters) > 0 {
		b.WriteString("\nParameters:\n\n")
		keys := make([]string, 0, len(a.Parameters))
		for k := range a.Parameters {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(b, "- `%s`: %s\n", k, a.Parameters[k])
		}
	}

	if len(a.Require) > 0 {
		b.WriteString("\nWhen to use:\n\n")
		for _, r := range a.Require {
			fmt.Fprintf(b, "- %s\n", r)
		}
	}
}

func renderCommand(b *strings.Builder, c plugin.CommandInfo) {
	fmt.Fprintf(b, "\n### %s\n\n", c.Name)
	if c.Description != "" {
		fmt.Fprintf(b, "%s\n\n", c.Description)
	}

	fmt.Fprintf(b, "- Pattern: `%s`\n", c.Pattern)
	fmt.Fprintf(b, "- Intercepts further handling: %t\n", c.Intercept)

	if len(c.Examples) > 0 {
		b.WriteString("\nExamples:\n\n")
		for _, e := range c.Examples {
			fmt.Fprintf(b, "- `%s`\n", e)
		}
	}
}

func renderDeclaredComponents(b *strings.Builder, components []manifest.Component) {
	if len(components) == 0 {
		return
	}

	byType := map[string][]manifest.Component{}
	for _, c := range components {
		byType[c.Type] = append(byType[c.Type], c)
	}

	for _, section := range []struct {
		componentType string
		heading       string
	}{
		{manifest.ComponentTypeAction, "Actions"},
		{manifest.ComponentTypeCommand, "Commands"},
		{manifest.ComponentTypeTool, "Tools"},
	} {
		list := byType[section.componentType]
		if len(list) == 0 {
			continue
		}
		fmt.Fprintf(b, "\n## %s\n", section.heading)
		for _, c := range list {
			fmt.Fprintf(b, "\n### %s\n", c.Name)
			if c.Description != "" {
				fmt.Fprintf(b, "\n%s\n", c.Description)
			}
		}
	}
}
