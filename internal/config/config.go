// Package config loads and validates application configuration from file and
// environment via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config holds the full application configuration.
type Config struct {
	Filter    FilterConfig    `yaml:"filter" mapstructure:"filter"`
	Stabilize StabilizeConfig `yaml:"stabilize" mapstructure:"stabilize"`
	Grid      GridConfig      `yaml:"grid" mapstructure:"grid"`
	Smooth    SmoothConfig    `yaml:"smooth" mapstructure:"smooth"`
	Clamp     ClampConfig     `yaml:"clamp" mapstructure:"clamp"`
	Region    RegionConfig    `yaml:"region" mapstructure:"region"`
	Store     StoreConfig     `yaml:"store" mapstructure:"store"`
	Server    ServerConfig    `yaml:"server" mapstructure:"server"`
	Log       LogConfig       `yaml:"log" mapstructure:"log"`
}

// FilterConfig selects the statistical cohort from raw listings.
type FilterConfig struct {
	Beds          int      `yaml:"beds" mapstructure:"beds"`
	MinRent       float64  `yaml:"min_rent" mapstructure:"min_rent"`
	MaxRent       float64  `yaml:"max_rent" mapstructure:"max_rent"`
	ExcludedTypes []string `yaml:"excluded_types" mapstructure:"excluded_types"`
}

// StabilizeConfig configures the rent-stabilization filter. Each rule is
// independently switchable; a listing is excluded if any enabled rule fires.
type StabilizeConfig struct {
	RatioEnabled   bool    `yaml:"ratio_enabled" mapstructure:"ratio_enabled"`
	RatioThreshold float64 `yaml:"ratio_threshold" mapstructure:"ratio_threshold"`
	DigitEnabled   bool    `yaml:"digit_enabled" mapstructure:"digit_enabled"`
	DigitCeiling   float64 `yaml:"digit_ceiling" mapstructure:"digit_ceiling"`
	DigitStep      int     `yaml:"digit_step" mapstructure:"digit_step"`
	IndexGridSize  float64 `yaml:"index_grid_size" mapstructure:"index_grid_size"`
	IndexMinSample int     `yaml:"index_min_sample" mapstructure:"index_min_sample"`
}

// BBox is a geographic bounding box with exclusive bounds.
type BBox struct {
	MinLat float64 `yaml:"min_lat" mapstructure:"min_lat"`
	MaxLat float64 `yaml:"max_lat" mapstructure:"max_lat"`
	MinLng float64 `yaml:"min_lng" mapstructure:"min_lng"`
	MaxLng float64 `yaml:"max_lng" mapstructure:"max_lng"`
}

// Contains reports whether the point falls strictly inside the box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat > b.MinLat && lat < b.MaxLat && lng > b.MinLng && lng < b.MaxLng
}

// GridConfig configures adaptive grid aggregation.
type GridConfig struct {
	BaseCellSize  float64 `yaml:"base_cell_size" mapstructure:"base_cell_size"`
	DenseCellSize float64 `yaml:"dense_cell_size" mapstructure:"dense_cell_size"`
	DenseZones    []BBox  `yaml:"dense_zones" mapstructure:"dense_zones"`
	MinCellCount  int     `yaml:"min_cell_count" mapstructure:"min_cell_count"`
	ValuePolicy   string  `yaml:"value_policy" mapstructure:"value_policy"`
}

// Value policies for GridConfig.ValuePolicy.
const (
	PolicyMedian    = "median"
	PolicyNhoodMean = "nhood_mean"
)

// SmoothConfig configures the kernel smoothing pass.
type SmoothConfig struct {
	Radius      float64 `yaml:"radius" mapstructure:"radius"`
	Anisotropic bool    `yaml:"anisotropic" mapstructure:"anisotropic"`
	Sigma       float64 `yaml:"sigma" mapstructure:"sigma"`
	SelfWeight  float64 `yaml:"self_weight" mapstructure:"self_weight"`
}

// ClampConfig configures the outlier clamping pass.
type ClampConfig struct {
	Radius    float64 `yaml:"radius" mapstructure:"radius"`
	Threshold float64 `yaml:"threshold" mapstructure:"threshold"`
	MaxCount  int     `yaml:"max_count" mapstructure:"max_count"`
}

// RegionConfig selects the region classifier. Table names a built-in table
// ("borough" or "nine"); TableFile overrides it with a JSON table on disk.
type RegionConfig struct {
	Table     string `yaml:"table" mapstructure:"table"`
	TableFile string `yaml:"table_file" mapstructure:"table_file"`
}

// StoreConfig configures the persistence backend.
type StoreConfig struct {
	Driver      string `yaml:"driver" mapstructure:"driver"`
	DatabaseURL string `yaml:"database_url" mapstructure:"database_url"`
}

// ServerConfig configures the read-only HTTP API.
type ServerConfig struct {
	Port           int     `yaml:"port" mapstructure:"port"`
	EstimateRadius float64 `yaml:"estimate_radius" mapstructure:"estimate_radius"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// DefaultDenseZones returns the built-in high-density zones that get the
// finer grid size: the Manhattan core south of 96th St, and brownstone
// Brooklyn through Long Island City.
func DefaultDenseZones() []BBox {
	return []BBox{
		{MinLat: -90, MaxLat: 40.786, MinLng: -74.02, MaxLng: -73.93},
		{MinLat: 40.68, MaxLat: 40.73, MinLng: -73.99, MaxLng: -73.93},
	}
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("RENTMAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("filter.beds", 1)
	v.SetDefault("filter.min_rent", 500.0)
	v.SetDefault("filter.max_rent", 25000.0)
	v.SetDefault("filter.excluded_types", []string{
		"TWOFAMILY", "THREEFAMILY", "FOURFAMILY", "MULTIFAMILY",
		"MIXED_USE", "TOWNHOUSE", "COMMERCIAL", "LAND",
	})
	v.SetDefault("stabilize.ratio_enabled", true)
	v.SetDefault("stabilize.ratio_threshold", 0.50)
	v.SetDefault("stabilize.digit_enabled", false)
	v.SetDefault("stabilize.digit_ceiling", 2500.0)
	v.SetDefault("stabilize.digit_step", 5)
	v.SetDefault("stabilize.index_grid_size", 0.01)
	v.SetDefault("stabilize.index_min_sample", 3)
	v.SetDefault("grid.base_cell_size", 0.003)
	v.SetDefault("grid.dense_cell_size", 0.002)
	v.SetDefault("grid.min_cell_count", 2)
	v.SetDefault("grid.value_policy", PolicyMedian)
	v.SetDefault("smooth.radius", 0.008)
	v.SetDefault("smooth.anisotropic", false)
	v.SetDefault("smooth.sigma", 1500.0)
	v.SetDefault("smooth.self_weight", 2.0)
	v.SetDefault("clamp.radius", 0.015)
	v.SetDefault("clamp.threshold", 1.50)
	v.SetDefault("clamp.max_count", 10)
	v.SetDefault("region.table", "borough")
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.database_url", "rentmap.db")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.estimate_radius", 0.02)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	if len(cfg.Grid.DenseZones) == 0 {
		cfg.Grid.DenseZones = DefaultDenseZones()
	}

	return &cfg, nil
}

// Validate checks for configuration states the pipeline cannot run under.
func (c *Config) Validate() error {
	var errs []string

	if c.Filter.MinRent < 0 {
		errs = append(errs, "filter.min_rent must be >= 0")
	}
	if c.Filter.MaxRent <= c.Filter.MinRent {
		errs = append(errs, "filter.max_rent must be > filter.min_rent")
	}
	if c.Stabilize.RatioEnabled && (c.Stabilize.RatioThreshold <= 0 || c.Stabilize.RatioThreshold >= 1) {
		errs = append(errs, "stabilize.ratio_threshold must be in (0, 1)")
	}
	if c.Stabilize.DigitEnabled && c.Stabilize.DigitStep <= 0 {
		errs = append(errs, "stabilize.digit_step must be positive")
	}
	if c.Stabilize.IndexGridSize <= 0 {
		errs = append(errs, "stabilize.index_grid_size must be positive")
	}
	if c.Stabilize.IndexMinSample < 1 {
		errs = append(errs, "stabilize.index_min_sample must be >= 1")
	}
	if c.Grid.BaseCellSize <= 0 {
		errs = append(errs, "grid.base_cell_size must be positive")
	}
	if c.Grid.DenseCellSize <= 0 {
		errs = append(errs, "grid.dense_cell_size must be positive")
	}
	if c.Grid.MinCellCount < 1 {
		errs = append(errs, "grid.min_cell_count must be >= 1")
	}
	if c.Grid.ValuePolicy != PolicyMedian && c.Grid.ValuePolicy != PolicyNhoodMean {
		errs = append(errs, fmt.Sprintf("grid.value_policy must be %q or %q", PolicyMedian, PolicyNhoodMean))
	}
	if c.Smooth.Radius < 0 {
		errs = append(errs, "smooth.radius must be >= 0")
	}
	if c.Smooth.Anisotropic && c.Smooth.Sigma <= 0 {
		errs = append(errs, "smooth.sigma must be positive when anisotropic smoothing is enabled")
	}
	if c.Smooth.SelfWeight <= 0 {
		errs = append(errs, "smooth.self_weight must be positive")
	}
	if c.Clamp.Radius <= 0 {
		errs = append(errs, "clamp.radius must be positive")
	}
	if c.Clamp.Threshold <= 0 {
		errs = append(errs, "clamp.threshold must be positive")
	}
	if c.Clamp.MaxCount < 1 {
		errs = append(errs, "clamp.max_count must be >= 1")
	}

	if len(errs) > 0 {
		return eris.Errorf("config: validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}
