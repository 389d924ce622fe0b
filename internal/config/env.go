package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EnvPrefix is the prefix of environment variables read as settings.
const EnvPrefix = "REGSTORE_"

// defaultEnvMapping returns the explicit environment variable mappings.
func defaultEnvMapping() map[string]string {
	return map[string]string{
		"REGSTORE_USE_SYS_CLIPBOARD": "use_sys_clipboard",
		"REGSTORE_LOG_LEVEL":         "logging.level",
		"REGSTORE_SESSION":           "session.path",
		"REGSTORE_SAVE_DELAY":        "session.save_delay",
		"REGSTORE_CLIPBOARD":         "clipboard.backend",
		"REGSTORE_HISTORY_SIZE":      "clipboard.history_size",
	}
}

// LookupFunc looks up an environment variable.
type LookupFunc func(key string) (string, bool)

// loadEnv returns the settings found in the environment.
// Unmapped REGSTORE_* variables map REGSTORE_SECTION_SOME_KEY to section.some_key.
func loadEnv(lookup LookupFunc, environ []string) map[string]any {
	config := make(map[string]any)
	mapping := defaultEnvMapping()

	for env, path := range mapping {
		if val, ok := lookup(env); ok {
			setByPath(config, path, parseValue(val))
		}
	}

	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, EnvPrefix) {
			continue
		}
		if _, mapped := mapping[name]; mapped {
			continue
		}
		setByPath(config, envToPath(name), parseValue(value))
	}

	return config
}

// envToPath converts REGSTORE_CLIPBOARD_HISTORY_SIZE to clipboard.history_size.
func envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, EnvPrefix))
	section, rest, ok := strings.Cut(name, "_")
	if !ok {
		return name
	}
	return section + "." + rest
}

// parseValue attempts to parse the string value into an appropriate type.
func parseValue(s string) any {
	if s == "" {
		return s
	}

	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	case "false", "no", "off":
		return false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}

	// Only treat as float with a decimal point, so ints stay ints.
	if strings.Contains(s, ".") {
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}

	if d, err := time.ParseDuration(s); err == nil {
		return d
	}

	return s
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}

// getByPath returns the value at a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}

	v, ok := current[parts[len(parts)-1]]
	return v, ok
}

// merge copies src into dst, descending into nested tables.
func merge(dst, src map[string]any) {
	for k, v := range src {
		if sv, ok := v.(map[string]any); ok {
			if dv, ok := dst[k].(map[string]any); ok {
				merge(dv, sv)
				continue
			}
			copied := make(map[string]any, len(sv))
			merge(copied, sv)
			dst[k] = copied
			continue
		}
		dst[k] = v
	}
}

func osLookup(key string) (string, bool) {
	return os.LookupEnv(key)
}
