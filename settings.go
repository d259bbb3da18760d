package sceneedit

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is the environment variable prefix read by ApplyEnv, e.g.
// SCENEEDIT_GRID_SPACING.
const EnvPrefix = "SCENEEDIT"

const (
	defaultGridSpacing   = 32.0
	defaultGridThickness = 1.0
	defaultDragThreshold = 1.0
	defaultTickRate      = 60.0
)

// Settings holds the user-tunable editor options.
type Settings struct {
	// GridSpacing is the grid cell size in world units. Clamped to MinGridSpacing.
	GridSpacing float64 `yaml:"grid_spacing" toml:"grid_spacing" split_words:"true"`
	// GridThickness is the grid line width in pixels. Zero hides the grid.
	GridThickness float64 `yaml:"grid_thickness" toml:"grid_thickness" split_words:"true"`
	// SnapToGrid quantizes selection moves to whole grid cells.
	SnapToGrid bool `yaml:"snap_to_grid" toml:"snap_to_grid" split_words:"true"`
	// DragThreshold is how far, in pixels, the cursor must travel from the
	// press point before a left drag becomes a drag-box gesture.
	DragThreshold float64 `yaml:"drag_threshold" toml:"drag_threshold" split_words:"true"`
	// TickRate is the number of Update calls per second, used to advance
	// camera animations.
	TickRate float64 `yaml:"tick_rate" toml:"tick_rate" split_words:"true"`
	// Debug enables per-frame hit-test logging.
	Debug bool `yaml:"debug" toml:"debug"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() Settings {
	return Settings{
		GridSpacing:   defaultGridSpacing,
		GridThickness: defaultGridThickness,
		DragThreshold: defaultDragThreshold,
		TickRate:      defaultTickRate,
	}
}

// Normalized clamps every field into its valid domain.
func (s Settings) Normalized() Settings {
	s.GridSpacing = GridSpacing(s.GridSpacing)
	if !(s.GridThickness > 0) {
		s.GridThickness = 0
	}
	if !(s.DragThreshold >= 0) {
		s.DragThreshold = 0
	}
	if !(s.TickRate > 0) {
		s.TickRate = defaultTickRate
	}
	return s
}

// ApplyEnv overrides fields from EnvPrefix_* environment variables.
func (s *Settings) ApplyEnv() error {
	if err := envconfig.Process(EnvPrefix, s); err != nil {
		return fmt.Errorf("settings env: %w", err)
	}
	return nil
}

// LoadSettings reads a YAML (.yaml, .yml) or TOML (.toml) settings file on top
// of DefaultSettings, applies environment overrides and normalizes the result.
func LoadSettings(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	s, err := ParseSettings(data, filepath.Ext(path))
	if err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	if err := s.ApplyEnv(); err != nil {
		return Settings{}, fmt.Errorf("load settings %s: %w", path, err)
	}
	return s.Normalized(), nil
}

// ParseSettings decodes settings in the format named by ext (".yaml", ".yml"
// or ".toml") on top of DefaultSettings. The result is not normalized.
func ParseSettings(data []byte, ext string) (Settings, error) {
	s := DefaultSettings()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &s); err != nil {
			return Settings{}, fmt.Errorf("parse toml: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%q: %w", ext, ErrSettingsFormat)
	}
	return s, nil
}
