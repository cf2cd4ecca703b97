package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/geektoshi/nebula-harvest/internal/common"
)

// Default locations, relative to the project root.
const (
	DefaultSourceDir     = "vendor/void-packages/srcpkgs"
	DefaultOverridesPath = "data/category_overrides.toml"
	DefaultOutputPath    = "data/generated/category_suggestions.json"
	DefaultDatabasePath  = "data/generated/harvest.db"
)

// EnvPrefix prefixes environment overrides, e.g. NEBULA_HARVEST_WORKERS.
const EnvPrefix = "NEBULA"

// Config holds the resolved harvest settings. Paths are absolute or anchored
// at Root after Load.
type Config struct {
	Root          string `mapstructure:"root" validate:"required"`
	SourceDir     string `mapstructure:"source_dir" validate:"required"`
	OverridesPath string `mapstructure:"overrides_path" validate:"required"`
	OutputPath    string `mapstructure:"output_path" validate:"required"`
	DatabasePath  string `mapstructure:"database_path" validate:"required"`
	Workers       int    `mapstructure:"workers" validate:"gte=0,lte=256"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return f.Tag.Get("mapstructure")
	})
	return v
}

// SetDefaults registers the harvest defaults and environment binding on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("harvest.root", ".")
	v.SetDefault("harvest.source_dir", DefaultSourceDir)
	v.SetDefault("harvest.overrides_path", DefaultOverridesPath)
	v.SetDefault("harvest.output_path", DefaultOutputPath)
	v.SetDefault("harvest.database_path", DefaultDatabasePath)
	v.SetDefault("harvest.workers", 0)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads the harvest section from v, validates it and resolves every
// path against Root.
func Load(v *viper.Viper) (*Config, error) {
	// Read keys individually: UnmarshalKey skips AutomaticEnv values for
	// nested keys.
	cfg := Config{
		Root:          v.GetString("harvest.root"),
		SourceDir:     v.GetString("harvest.source_dir"),
		OverridesPath: v.GetString("harvest.overrides_path"),
		OutputPath:    v.GetString("harvest.output_path"),
		DatabasePath:  v.GetString("harvest.database_path"),
		Workers:       v.GetInt("harvest.workers"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cfg.Root = ExpandPath(cfg.Root)
	cfg.SourceDir = resolvePath(cfg.Root, cfg.SourceDir)
	cfg.OverridesPath = resolvePath(cfg.Root, cfg.OverridesPath)
	cfg.OutputPath = resolvePath(cfg.Root, cfg.OutputPath)
	cfg.DatabasePath = resolvePath(cfg.Root, cfg.DatabasePath)
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("%w: harvest.%s fails %q (got %v)",
				common.ErrInvalidConfig, fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}
	return nil
}
