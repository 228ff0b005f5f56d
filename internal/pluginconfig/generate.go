package pluginconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Generate renders the schema into a commented TOML document with every
// field at its default. Output is deterministic: sections and fields appear
// in declaration order.
func (s *Schema) Generate() []byte {
	var b strings.Builder

	b.WriteString("# Generated configuration - do not edit by hand.\n")
	b.WriteString("# Regenerate with the plugin's --generate-config flag.\n")

	for _, sec := range s.Sections {
		b.WriteString("\n")
		if sec.Description != "" {
			fmt.Fprintf(&b, "# %s\n", sec.Description)
		}
		fmt.Fprintf(&b, "[%s]\n", sec.Name)

		for _, f := range sec.Fields {
			if f.Description != "" {
				fmt.Fprintf(&b, "# %s\n", f.Description)
			}
			if len(f.Choices) > 0 {
				fmt.Fprintf(&b, "# Choices: %s\n", strings.Join(f.Choices, ", "))
			}

			value := f.Default
			if sec.Name+"."+f.Key == VersionKey && s.Version != "" {
				value = s.Version
			}
			fmt.Fprintf(&b, "%s = %s\n", f.Key, renderValue(f.Type, value))
		}
	}

	return []byte(b.String())
}

// renderValue renders a Go value as a TOML literal.
func renderValue(t FieldType, value any) string {
	switch t {
	case TypeBool:
		if v, ok := value.(bool); ok {
			return strconv.FormatBool(v)
		}
		return "false"
	case TypeInt:
		switch v := value.(type) {
		case int:
			return strconv.Itoa(v)
		case int64:
			return strconv.FormatInt(v, 10)
		}
		return "0"
	case TypeFloat:
		switch v := value.(type) {
		case float64:
			return formatFloat(v)
		case int:
			return formatFloat(float64(v))
		}
		return "0.0"
	case TypeStringList:
		var items []string
		switch v := value.(type) {
		case []string:
			items = v
		case []any:
			for _, item := range v {
				if s, ok := item.(string); ok {
					items = append(items, s)
				}
			}
		}
		quoted := make([]string, len(items))
		for i, item := range items {
			quoted[i] = strconv.Quote(item)
		}
		return "[" + strings.Join(quoted, ", ") + "]"
	default:
		if v, ok := value.(string); ok {
			return strconv.Quote(v)
		}
		return `""`
	}
}

// formatFloat keeps a decimal point so TOML reads the value back as a float.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
