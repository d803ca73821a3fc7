package types

import "errors"

// Config holds the settings a desksort pass is built from. Cell and padding
// sizes are base pixels before display scaling.
type Config struct {
	IconSize        int    `json:"icon_size" yaml:"icon_size"`
	Padding         int    `json:"padding" yaml:"padding"`
	ApplyScaling    bool   `json:"apply_scaling" yaml:"apply_scaling"`
	SkipSystemItems bool   `json:"skip_system_items" yaml:"skip_system_items"`
	ScreenWidth     int    `json:"screen_width" yaml:"screen_width"`
	ScreenHeight    int    `json:"screen_height" yaml:"screen_height"`
	ScalePercent    int    `json:"scale_percent" yaml:"scale_percent"`
	LexiconBackend  string `json:"lexicon_backend" yaml:"lexicon_backend"`
	LexiconPath     string `json:"lexicon_path" yaml:"lexicon_path"`
}

// Supported lexicon backends.
const (
	LexiconBackendText   = "text"
	LexiconBackendSQLite = "sqlite"
)

// Defaults used when no configuration overrides them.
const (
	DefaultIconSize     = 75
	DefaultPadding      = 10
	DefaultScalePercent = 100
)

// DefaultConfig returns the configuration desksort runs with when no
// config.yaml is present.
func DefaultConfig() Config {
	return Config{
		IconSize:        DefaultIconSize,
		Padding:         DefaultPadding,
		SkipSystemItems: true,
		ScalePercent:    DefaultScalePercent,
		LexiconBackend:  LexiconBackendText,
	}
}

// Config validation errors.
var (
	ErrIconSizeInvalid       = errors.New("icon size must be positive")
	ErrPaddingInvalid        = errors.New("padding must not be negative")
	ErrScreenSizeInvalid     = errors.New("invalid screen size")
	ErrScalePercentInvalid   = errors.New("scale percent must not be negative")
	ErrLexiconBackendUnknown = errors.New("unknown lexicon backend")
)

// Other errors shared across packages.
var (
	ErrBucketUnknown    = errors.New("unknown bucket")
	ErrSnapshotNotFound = errors.New("snapshot not found")
)

var knownLexiconBackends = map[string]bool{
	LexiconBackendText:   true,
	LexiconBackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel error
// from this package on failure. Zero screen dimensions are allowed and mean
// "ask the screen provider".
func (c Config) Validate() error {
	if c.IconSize <= 0 {
		return ErrIconSizeInvalid
	}
	if c.Padding < 0 {
		return ErrPaddingInvalid
	}
	if c.ScreenWidth < 0 || c.ScreenHeight < 0 {
		return ErrScreenSizeInvalid
	}
	if c.ScalePercent < 0 {
		return ErrScalePercentInvalid
	}
	if !knownLexiconBackends[c.LexiconBackend] {
		return ErrLexiconBackendUnknown
	}
	return nil
}

// Geometry returns the base cell geometry described by c.
func (c Config) Geometry() Geometry {
	return Geometry{CellWidth: c.IconSize, CellHeight: c.IconSize, Padding: c.Padding}
}
