package loader

import (
	"os"
	"sort"
	"strings"
)

// EnvLoader reads configuration overrides from environment variables.
type EnvLoader struct {
	prefix  string            // Environment variable prefix (e.g., "DVIM_")
	mapping map[string]string // Env var -> config path
}

// NewEnvLoader creates a new environment variable loader.
// The prefix should include the trailing underscore (e.g., "DVIM_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
	}
}

// NewEnvLoaderWithMapping creates a loader with custom environment variable mappings.
func NewEnvLoaderWithMapping(prefix string, mapping map[string]string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: mapping,
	}
}

// defaultEnvMapping returns the default environment variable mappings.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL":    "log.level",
		prefix + "LOG_FILE":     "log.file",
		prefix + "MAX_COUNT":    "editor.max_count",
		prefix + "TAB_WIDTH":    "editor.tab_width",
		prefix + "LINE_NUMBERS": "layout.line_numbers",
	}
}

// Override is one configuration value taken from the environment.
type Override struct {
	Env   string
	Path  string
	Value string
}

// Load returns the overrides of every mapped variable that is set, sorted
// by config path. Empty values are valid values, not unset.
func (l *EnvLoader) Load() []Override {
	var out []Override
	for env, path := range l.mapping {
		if val, ok := os.LookupEnv(env); ok {
			out = append(out, Override{Env: env, Path: path, Value: val})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	if l.mapping == nil {
		l.mapping = make(map[string]string)
	}
	l.mapping[envVar] = configPath
}

// RemoveMapping removes an environment variable mapping.
func (l *EnvLoader) RemoveMapping(envVar string) {
	delete(l.mapping, envVar)
}

// envToPath converts DVIM_EDITOR_TAB_WIDTH to editor.tab_width.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok {
		return name
	}
	return section + "." + key
}

// Scan returns overrides for prefixed variables that have no mapping,
// named by section and key (DVIM_THEME_GUTTER is theme.gutter).
func (l *EnvLoader) Scan() []Override {
	var out []Override
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}
		if _, mapped := l.mapping[name]; mapped {
			continue
		}
		out = append(out, Override{Env: name, Path: l.envToPath(name), Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
