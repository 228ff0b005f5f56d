// Package pluginconfig implements the schema-driven configuration system for
// plugins: config files are generated from a declared schema and regenerated
// by tooling, never written by hand.
package pluginconfig

import (
	"fmt"
	"strings"
)

// FieldType enumerates the value types a config field can declare.
type FieldType string

const (
	TypeBool       FieldType = "bool"
	TypeString     FieldType = "string"
	TypeInt        FieldType = "int"
	TypeFloat      FieldType = "float"
	TypeStringList FieldType = "string_list"
)

// Field declares a single configuration value: its type, default and the
// description emitted as a comment in the generated file.
type Field struct {
	Type        FieldType
	Default     any
	Description string

	// Choices restricts a string field to a fixed set of values.
	Choices []string
}

// FieldDef pairs a key with its field declaration. Order inside a section is
// the order fields appear in the generated file.
type FieldDef struct {
	Key string
	Field
}

// Section is a named group of fields with a description comment.
type Section struct {
	Name        string
	Description string
	Fields      []FieldDef
}

// Schema is the full configuration schema for a plugin. Sections are emitted
// in declaration order so generation is deterministic.
type Schema struct {
	// Version is the config revision; it is written to the generated file
	// under VersionKey and checked at load time.
	Version  string
	Sections []Section
}

// VersionKey is the dotted key holding the config revision marker.
const VersionKey = "plugin.config_version"

// Lookup finds a field declaration by dotted "section.key" path.
func (s *Schema) Lookup(dottedKey string) (Field, bool) {
	section, key, ok := splitKey(dottedKey)
	if !ok {
		return Field{}, false
	}
	for _, sec := range s.Sections {
		if sec.Name != section {
			continue
		}
		for _, f := range sec.Fields {
			if f.Key == key {
				return f.Field, true
			}
		}
	}
	return Field{}, false
}

func splitKey(dottedKey string) (section, key string, ok bool) {
	idx := strings.IndexByte(dottedKey, '.')
	if idx <= 0 || idx == len(dottedKey)-1 {
		return "", "", false
	}
	return dottedKey[:idx], dottedKey[idx+1:], true
}

// Validate checks that a value is acceptable for the field: right Go type
// and, for restricted string fields, one of the declared choices.
func (f Field) Validate(value any) error {
	switch f.Type {
	case TypeBool:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected bool, got %T", value)
		}
	case TypeString:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string, got %T", value)
		}
		if len(f.Choices) > 0 && !containsString(f.Choices, s) {
			return fmt.Errorf("value %q not in allowed choices: %s", s, strings.Join(f.Choices, ", "))
		}
	case TypeInt:
		switch value.(type) {
		case int, int64:
		default:
			return fmt.Errorf("expected int, got %T", value)
		}
	case TypeFloat:
		switch value.(type) {
		case float64, int, int64:
		default:
			return fmt.Errorf("expected float, got %T", value)
		}
	case TypeStringList:
		switch v := value.(type) {
		case []string:
		case []any:
			for _, item := range v {
				if _, ok := item.(string); !ok {
					return fmt.Errorf("expected string list, found %T element", item)
				}
			}
		default:
			return fmt.Errorf("expected string list, got %T", value)
		}
	default:
		return fmt.Errorf("unknown field type %q", f.Type)
	}
	return nil
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
