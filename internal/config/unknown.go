package config

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadWithWarnings parses config data and returns unknown-field warnings.
// Unknown keys are tolerated (typos should not break a run) but surfaced
// so they do not silently do nothing.
func LoadWithWarnings(data []byte) (*Config, []string, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &cfg, detectUnknownFields(data), nil
}

// detectUnknownFields compares raw document keys with known struct fields.
func detectUnknownFields(data []byte) []string {
	var raw map[string]interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		// The data already parsed into Config, so a failure here indicates
		// an unexpected internal inconsistency. Surface it as a warning
		// rather than silently ignoring the condition.
		return []string{"internal: failed to re-parse config for unknown field detection"}
	}

	known := yamlFields(reflect.TypeOf(Config{}))

	var warnings []string
	for key := range raw {
		if !known[key] {
			warnings = append(warnings, fmt.Sprintf("unknown field %q (ignored)", key))
		}
	}
	sort.Strings(warnings)
	return warnings
}

// yamlFields returns the set of yaml tag names declared on a struct type.
func yamlFields(t reflect.Type) map[string]bool {
	fields := make(map[string]bool)
	for i := 0; i < t.NumField(); i++ {
		tag := t.Field(i).Tag.Get("yaml")
		if tag == "" || tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")
		fields[name] = true
	}
	return fields
}
