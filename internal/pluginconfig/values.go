package pluginconfig

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Values holds loaded configuration data with dotted-key access and typed
// lookups that fall back to a caller-supplied default.
type Values struct {
	data map[string]map[string]any
}

// Defaults builds a Values populated from the schema's default values.
func (s *Schema) Defaults() *Values {
	data := make(map[string]map[string]any, len(s.Sections))
	for _, sec := range s.Sections {
		fields := make(map[string]any, len(sec.Fields))
		for _, f := range sec.Fields {
			fields[f.Key] = f.Default
		}
		data[sec.Name] = fields
	}

	v := &Values{data: data}
	if s.Version != "" {
		v.set(VersionKey, s.Version)
	}
	return v
}

// Load reads a generated TOML config file and checks its version marker
// against the schema. A version mismatch is an error telling the operator to
// regenerate rather than hand-edit.
func (s *Schema) Load(path string) (*Values, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	values := &Values{data: make(map[string]map[string]any, len(raw))}
	for section, content := range raw {
		fields, ok := content.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("config section %q is not a table", section)
		}
		values.data[section] = fields
	}

	if s.Version != "" {
		got := values.GetString(VersionKey, "")
		if got != s.Version {
			return nil, fmt.Errorf(
				"config version %q does not match schema version %q: regenerate the config file",
				got, s.Version)
		}
	}

	return values, nil
}

// Set stores a value at a dotted "section.key" path, creating the section
// when needed. Keys without a separator are ignored.
func (v *Values) Set(dottedKey string, value any) {
	v.set(dottedKey, value)
}

func (v *Values) set(dottedKey string, value any) {
	section, key, ok := splitKey(dottedKey)
	if !ok {
		return
	}
	if v.data[section] == nil {
		v.data[section] = make(map[string]any)
	}
	v.data[section][key] = value
}

// Get looks up a raw value by dotted "section.key" path.
func (v *Values) Get(dottedKey string) (any, bool) {
	section, key, ok := splitKey(dottedKey)
	if !ok {
		return nil, false
	}
	fields, ok := v.data[section]
	if !ok {
		return nil, false
	}
	value, ok := fields[key]
	return value, ok
}

// GetBool returns the bool at key, or def when absent or mistyped.
func (v *Values) GetBool(key string, def bool) bool {
	if raw, ok := v.Get(key); ok {
		if b, ok := raw.(bool); ok {
			return b
		}
	}
	return def
}

// GetString returns the string at key, or def when absent or mistyped.
func (v *Values) GetString(key, def string) string {
	if raw, ok := v.Get(key); ok {
		if s, ok := raw.(string); ok {
			return s
		}
	}
	return def
}

// GetInt returns the int at key, or def when absent or mistyped.
func (v *Values) GetInt(key string, def int) int {
	if raw, ok := v.Get(key); ok {
		switch n := raw.(type) {
		case int:
			return n
		case int64:
			return int(n)
		}
	}
	return def
}

// GetFloat returns the float at key, or def when absent or mistyped.
func (v *Values) GetFloat(key string, def float64) float64 {
	if raw, ok := v.Get(key); ok {
		switch n := raw.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		case int64:
			return float64(n)
		}
	}
	return def
}

// GetStringList returns the string list at key, or def when absent or
// mistyped.
func (v *Values) GetStringList(key string, def []string) []string {
	raw, ok := v.Get(key)
	if !ok {
		return def
	}
	switch list := raw.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				return def
			}
			out = append(out, s)
		}
		return out
	}
	return def
}

// Convert coerces a user-supplied string (e.g. from a "/config set" command)
// into the field's declared type.
func (f Field) Convert(raw string) (any, error) {
	switch f.Type {
	case TypeBool:
		switch strings.ToLower(raw) {
		case "true", "1", "yes", "on", "enabled":
			return true, nil
		case "false", "0", "no", "off", "disabled":
			return false, nil
		}
		return nil, fmt.Errorf("cannot convert %q to bool", raw)
	case TypeInt:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int", raw)
		}
		return n, nil
	case TypeFloat:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float", raw)
		}
		return n, nil
	case TypeStringList:
		trimmed := strings.TrimSpace(raw)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "["), "]")
			if strings.TrimSpace(inner) == "" {
				return []string{}, nil
			}
			parts := strings.Split(inner, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				out = append(out, strings.Trim(strings.TrimSpace(p), `"'`))
			}
			return out, nil
		}
		return []string{raw}, nil
	default:
		return raw, nil
	}
}
