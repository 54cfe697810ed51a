package core

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/signatory-io/visiprint/crypto"
	"github.com/signatory-io/visiprint/logger"
	"github.com/signatory-io/visiprint/randomart"
	"github.com/signatory-io/visiprint/ui"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type Config struct {
	BasePath   string            `yaml:"-"`
	LogLevel   logger.Level      `yaml:"log_level"`
	Hash       crypto.HashName   `yaml:"hash"`
	Levels     int               `yaml:"levels"`
	Width      int               `yaml:"width"`
	Height     int               `yaml:"height"`
	Characters string            `yaml:"characters"`
	Colors     []randomart.Color `yaml:"colors,omitempty"` // empty selects the default palette
	Scale      float64           `yaml:"scale"`
	ColorMode  ui.ColorMode      `yaml:"color"`
}

const (
	DefaultConfigFile = "config.yaml"
	DefaultBaseDir    = ".visiprint"
	DefaultScale      = 8
)

func (c *Config) GetBasePath() string { return c.BasePath }

func (c *Config) Default() {
	*c = Config{
		BasePath:   defaultBaseDir(),
		LogLevel:   logger.LevelInfo,
		Hash:       crypto.HashName{Hash: crypto.SHA256},
		Levels:     randomart.DefaultLevels,
		Width:      randomart.DefaultWidth,
		Height:     randomart.DefaultHeight,
		Characters: randomart.DefaultCharacters,
		Scale:      DefaultScale,
		ColorMode:  ui.ColorAuto,
	}
}

func defaultBaseDir() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return DefaultBaseDir
	}
	return filepath.Join(dir, DefaultBaseDir)
}

func LoadConfig[T any](conf T, path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(buf, conf)
}

func (conf *Config) Marshal() ([]byte, error) { return yaml.Marshal(conf) }

func (conf *Config) RegisterFlags(f *pflag.FlagSet, cmd *cobra.Command) {
	f.StringP("base-dir", "b", conf.BasePath, "Base directory")
	f.StringP("config-file", "c", DefaultConfigFile, "Configuration file path (absolute or relative to the base directory)")
	f.TextVarP(&conf.LogLevel, "log-level", "l", conf.LogLevel, "Log level: [error, warn, info, debug, trace]")
	f.TextVarP(&conf.Hash, "hash", "H", conf.Hash, "Digest algorithm used to hash the input")
	f.IntVarP(&conf.Levels, "levels", "n", conf.Levels, "Number of levels, cells saturate at levels-2")
	f.IntVarP(&conf.Width, "width", "x", conf.Width, "Grid width")
	f.IntVarP(&conf.Height, "height", "y", conf.Height, "Grid height")
	f.StringVar(&conf.Characters, "characters", conf.Characters, "Character palette used for text output, one character per level")
	f.Float64VarP(&conf.Scale, "scale", "s", conf.Scale, "Image scale factor")
	f.TextVar(&conf.ColorMode, "color", conf.ColorMode, "Colored terminal output: [auto, always, never]")

	cmd.MarkFlagFilename("config-file")
	cmd.MarkFlagDirname("base-dir")
}

var overridable = []string{"log-level", "hash", "levels", "width", "height", "characters", "scale", "color"}

// FromCmdline loads the configuration file and applies the flags that were
// set explicitly on top of it. A missing configuration file is only an error
// if its path was given explicitly.
func (conf *Config) FromCmdline(loadFromFile bool, f *pflag.FlagSet) error {
	// snapshot the flag values before the file overwrites the bound fields
	flagged := *conf
	baseDir, err := f.GetString("base-dir")
	if err != nil {
		panic(err)
	}
	if loadFromFile {
		confPath, err := f.GetString("config-file")
		if err != nil {
			panic(err)
		}
		if !filepath.IsAbs(confPath) {
			confPath = filepath.Join(baseDir, confPath)
		}
		err = LoadConfig(conf, confPath)
		if err != nil && !(errors.Is(err, os.ErrNotExist) && !f.Changed("config-file")) {
			return fmt.Errorf("%s: %w", confPath, err)
		}
	}
	conf.BasePath = baseDir

	for _, name := range overridable {
		if !f.Changed(name) {
			continue
		}
		switch name {
		case "log-level":
			conf.LogLevel = flagged.LogLevel
		case "hash":
			conf.Hash = flagged.Hash
		case "levels":
			conf.Levels = flagged.Levels
		case "width":
			conf.Width = flagged.Width
		case "height":
			conf.Height = flagged.Height
		case "characters":
			conf.Characters = flagged.Characters
		case "scale":
			conf.Scale = flagged.Scale
		case "color":
			conf.ColorMode = flagged.ColorMode
		}
	}
	if conf.Hash.Hash == nil {
		conf.Hash.Hash = crypto.SHA256
	}
	return nil
}
