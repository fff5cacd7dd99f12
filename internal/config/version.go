package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/riordanpawley/pomolight/internal/domain"
)

// CurrentVersion is the current config schema version
const CurrentVersion = 1

// Migration represents a config migration function
type Migration struct {
	FromVersion int
	ToVersion   int
	Migrate     func(data map[string]any) (map[string]any, error)
}

// migrations is the list of migrations in order
var migrations = []Migration{
	// Migration 0 -> 1: flat brightness/driver keys move under "light"
	{
		FromVersion: 0,
		ToVersion:   1,
		Migrate: func(data map[string]any) (map[string]any, error) {
			light, _ := data["light"].(map[string]any)
			if light == nil {
				light = make(map[string]any)
			}
			for _, key := range []string{"brightness", "driver"} {
				if v, ok := data[key]; ok {
					if _, set := light[key]; !set {
						light[key] = v
					}
					delete(data, key)
				}
			}
			if len(light) > 0 {
				data["light"] = light
			}
			data["version"] = 1
			return data, nil
		},
	},
}

// ParseVersioned parses YAML config data and migrates it to CurrentVersion
func ParseVersioned(data []byte) (map[string]any, error) {
	raw := make(map[string]any)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	if raw == nil {
		raw = make(map[string]any)
	}

	// Detect version (0 if not present = legacy config)
	version := 0
	if v, ok := raw["version"].(int); ok {
		version = v
	}

	if version > CurrentVersion {
		return nil, fmt.Errorf("%w: %d is newer than %d", domain.ErrUnsupportedVersion, version, CurrentVersion)
	}

	if version < CurrentVersion {
		var err error
		raw, err = ApplyMigrations(raw, version)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate config: %w", err)
		}
	}

	return raw, nil
}

// ApplyMigrations applies all migrations from the given version to CurrentVersion
func ApplyMigrations(data map[string]any, fromVersion int) (map[string]any, error) {
	for _, migration := range migrations {
		if migration.FromVersion == fromVersion {
			var err error
			data, err = migration.Migrate(data)
			if err != nil {
				return nil, fmt.Errorf("migration %d -> %d failed: %w",
					migration.FromVersion, migration.ToVersion, err)
			}
			fromVersion = migration.ToVersion
		}
	}

	if fromVersion < CurrentVersion {
		return nil, fmt.Errorf("no migration path from version %d to %d", fromVersion, CurrentVersion)
	}

	return data, nil
}
