// Package userconfig loads the optional per-user configuration file. The rc
// supplies default context values that overlay every resolved template
// context, plus the directory where the user keeps local templates.
package userconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"

	"github.com/goliatone/go-scaffold/pkg/vars"
)

// Config mirrors the rc file layout.
type Config struct {
	// DefaultContext values overwrite same-named keys in any loaded template
	// context (shallow, per key).
	DefaultContext map[string]any `toml:"default_context"`

	// TemplatesDir is where bare template names are resolved from.
	TemplatesDir string `toml:"templates_dir"`
}

// DefaultPath returns the conventional rc location under the user's XDG
// config home.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "scaffold", "config.toml")
}

// Load reads the rc at path. An empty path means the conventional location,
// and a missing file there is not an error: the zero config applies. An
// explicitly named file that is missing or malformed is reported.
func Load(path string) (*Config, error) {
	usingDefault := path == ""
	if usingDefault {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if usingDefault && os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("userconfig: read %s: %w", path, err)
	}

	cfg := &Config{}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("userconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// ContextOverlay converts the default context into an ordered overlay.
// TOML tables decode into unordered maps, so keys are sorted to keep the
// overlay deterministic.
func (c *Config) ContextOverlay() *vars.Context {
	overlay := vars.New()
	if c == nil || len(c.DefaultContext) == 0 {
		return overlay
	}
	keys := make([]string, 0, len(c.DefaultContext))
	for key := range c.DefaultContext {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		overlay.Set(key, c.DefaultContext[key])
	}
	return overlay
}
