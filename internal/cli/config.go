package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/desksort/internal/logging"
	"github.com/mesh-intelligence/desksort/internal/paths"
	"github.com/mesh-intelligence/desksort/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "DESKSORT"
)

// Config keys.
const (
	keyDataDir         = "data_dir"
	keyIconSize        = "icon_size"
	keyPadding         = "padding"
	keyApplyScaling    = "apply_scaling"
	keySkipSystemItems = "skip_system_items"
	keyScreenWidth     = "screen.width"
	keyScreenHeight    = "screen.height"
	keyScalePercent    = "screen.scale_percent"
	keyLexiconBackend  = "lexicon.backend"
	keyLexiconPath     = "lexicon.path"
	keyLogLevel        = "log.level"
	keyLogFormat       = "log.format"
)

// Screen used when neither config nor flags name one.
const (
	defaultScreenWidth  = 1920
	defaultScreenHeight = 1080
)

// flagKeys binds command flags to config keys; a flag set on the command
// line overrides config.yaml and the environment.
var flagKeys = map[string]string{
	"icon-size":         keyIconSize,
	"padding":           keyPadding,
	"apply-scaling":     keyApplyScaling,
	"skip-system-items": keySkipSystemItems,
	"width":             keyScreenWidth,
	"height":            keyScreenHeight,
	"scale":             keyScalePercent,
	"lexicon":           keyLexiconPath,
	"lexicon-backend":   keyLexiconBackend,
}

// configFile is the structure written to config.yaml by init.
type configFile struct {
	DataDir         string        `yaml:"data_dir,omitempty"`
	IconSize        int           `yaml:"icon_size"`
	Padding         int           `yaml:"padding"`
	ApplyScaling    bool          `yaml:"apply_scaling"`
	SkipSystemItems bool          `yaml:"skip_system_items"`
	Screen          screenSection `yaml:"screen"`
	Lexicon         lexSection    `yaml:"lexicon"`
	Log             logSection    `yaml:"log"`
}

type screenSection struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	ScalePercent int `yaml:"scale_percent"`
}

type lexSection struct {
	Backend string `yaml:"backend"`
	Path    string `yaml:"path,omitempty"`
}

type logSection struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func defaultConfigFile(dataDir string) configFile {
	cfg := types.DefaultConfig()
	logCfg := logging.DefaultConfig()
	return configFile{
		DataDir:         dataDir,
		IconSize:        cfg.IconSize,
		Padding:         cfg.Padding,
		ApplyScaling:    cfg.ApplyScaling,
		SkipSystemItems: cfg.SkipSystemItems,
		Screen: screenSection{
			Width:        defaultScreenWidth,
			Height:       defaultScreenHeight,
			ScalePercent: cfg.ScalePercent,
		},
		Lexicon: lexSection{Backend: cfg.LexiconBackend},
		Log:     logSection{Level: logCfg.Level, Format: logCfg.Format},
	}
}

// loadConfig reads config.yaml from configDir with DESKSORT_ environment
// overrides. A missing config.yaml is not an error.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()

	def := defaultConfigFile("")
	v.SetDefault(keyIconSize, def.IconSize)
	v.SetDefault(keyPadding, def.Padding)
	v.SetDefault(keyApplyScaling, def.ApplyScaling)
	v.SetDefault(keySkipSystemItems, def.SkipSystemItems)
	v.SetDefault(keyScreenWidth, def.Screen.Width)
	v.SetDefault(keyScreenHeight, def.Screen.Height)
	v.SetDefault(keyScalePercent, def.Screen.ScalePercent)
	v.SetDefault(keyLexiconBackend, def.Lexicon.Backend)
	v.SetDefault(keyLexiconPath, "")
	v.SetDefault(keyDataDir, "")
	v.SetDefault(keyLogLevel, def.Log.Level)
	v.SetDefault(keyLogFormat, def.Log.Format)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// bindFlags binds the flags cmd defines to their config keys.
func bindFlags(v *viper.Viper, cmd *cobra.Command) error {
	var err error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok || err != nil {
			return
		}
		err = v.BindPFlag(key, f)
	})
	return err
}

func configFromViper(v *viper.Viper) types.Config {
	return types.Config{
		IconSize:        v.GetInt(keyIconSize),
		Padding:         v.GetInt(keyPadding),
		ApplyScaling:    v.GetBool(keyApplyScaling),
		SkipSystemItems: v.GetBool(keySkipSystemItems),
		ScreenWidth:     v.GetInt(keyScreenWidth),
		ScreenHeight:    v.GetInt(keyScreenHeight),
		ScalePercent:    v.GetInt(keyScalePercent),
		LexiconBackend:  v.GetString(keyLexiconBackend),
		LexiconPath:     v.GetString(keyLexiconPath),
	}
}

func loggingFromViper(v *viper.Viper) logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = v.GetString(keyLogLevel)
	cfg.Format = v.GetString(keyLogFormat)
	return cfg
}

// writeConfigIfMissing creates config.yaml with default values. An existing
// file is left untouched. It reports whether the file was written.
func writeConfigIfMissing(configDir, dataDir string) (bool, error) {
	path := filepath.Join(configDir, paths.ConfigFile)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(defaultConfigFile(dataDir))
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	header := "# desksort configuration. Every key can be overridden with a\n" +
		"# DESKSORT_ environment variable, e.g. DESKSORT_SCREEN_WIDTH.\n"
	if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
