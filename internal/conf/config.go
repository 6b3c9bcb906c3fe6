package conf

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"

	"github.com/gostonefire/mchashbrowns/internal/hash"
)

// Config - All configuration options of the command file filesystem
type Config struct {
	HashAlgorithm    string `json:"hash_algorithm,omitempty"`
	MinBuckets       int    `json:"min_buckets,omitempty"`
	MaxBuckets       int    `json:"max_buckets,omitempty"`
	ResultBufferSize int    `json:"result_buffer_size,omitempty"`
	DiagnosticPrefix string `json:"diagnostic_prefix,omitempty"`
	FSName           string `json:"fs_name,omitempty"`
	AllowOther       bool   `json:"allow_other,omitempty"`

	// Sources tracks which config files were loaded
	Sources ConfigSources `json:"-"`
}

// ConfigSources - Paths of the config files that were loaded, empty if not loaded
type ConfigSources struct {
	Global  string // Path to global config if loaded, empty otherwise
	Project string // Path to project config if loaded, empty otherwise
}

// DefaultConfig - Returns the configuration used when no file or flag says otherwise
func DefaultConfig() Config {
	return Config{
		HashAlgorithm:    hash.Knuth,
		MinBuckets:       DefaultMinBuckets,
		MaxBuckets:       DefaultMaxBuckets,
		ResultBufferSize: MinResultBufferSize,
		DiagnosticPrefix: DefaultDiagnosticPrefix,
		FSName:           DefaultFSName,
	}
}

// LoadConfigInput - Inputs of LoadConfig
//   - WorkDir is where the project config is looked for, empty means the current directory
//   - ConfigPath is the -c/--config flag value, the file must exist if given
//   - Overrides are CLI flag values, zero fields do not override
//   - Env holds environment variables used to find the global config
type LoadConfigInput struct {
	WorkDir    string
	ConfigPath string
	Overrides  Config
	Env        map[string]string
}

// LoadConfig - Loads and validates the configuration. Later sources win over earlier ones:
//   - defaults, see DefaultConfig
//   - global user config ($XDG_CONFIG_HOME/mcfrier/config.json or ~/.config/mcfrier/config.json)
//   - project config .mcfrier.json in the working directory if it exists, or the explicit ConfigPath file
//   - CLI overrides
//
// It returns an error wrapping ErrConfigInvalid if the result does not validate.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()

	if globalPath := getGlobalConfigPath(input.Env); globalPath != "" {
		globalCfg, loaded, err := loadConfigFile(globalPath, false)
		if err != nil {
			return Config{}, err
		}

		if loaded {
			cfg.Sources.Global = globalPath
			cfg = mergeConfig(cfg, globalCfg)
		}
	}

	projectPath, mustExist := filepath.Join(workDir, ConfigFileName), false
	if input.ConfigPath != "" {
		projectPath, mustExist = input.ConfigPath, true
		if !filepath.IsAbs(projectPath) {
			projectPath = filepath.Join(workDir, projectPath)
		}
	}

	projectCfg, loaded, err := loadConfigFile(projectPath, mustExist)
	if err != nil {
		return Config{}, err
	}

	if loaded {
		cfg.Sources.Project = projectPath
		cfg = mergeConfig(cfg, projectCfg)
	}

	cfg = mergeConfig(cfg, input.Overrides)

	if err := validateConfig(cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}

	return cfg, nil
}

// getGlobalConfigPath - Returns the path of the global config file, empty if no home directory is known
func getGlobalConfigPath(env map[string]string) string {
	if xdgConfig := env["XDG_CONFIG_HOME"]; xdgConfig != "" {
		return filepath.Join(xdgConfig, "mcfrier", "config.json")
	}

	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "mcfrier", "config.json")
	}

	return ""
}

// loadConfigFile - Loads a config file. A missing file gives a zero config unless mustExist is set.
// It returns the config, whether the file was loaded and any error.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	var cfg Config

	if err := json.Unmarshal(standardized, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func mergeConfig(base, overlay Config) Config {
	if overlay.HashAlgorithm != "" {
		base.HashAlgorithm = overlay.HashAlgorithm
	}

	if overlay.MinBuckets != 0 {
		base.MinBuckets = overlay.MinBuckets
	}

	if overlay.MaxBuckets != 0 {
		base.MaxBuckets = overlay.MaxBuckets
	}

	if overlay.ResultBufferSize != 0 {
		base.ResultBufferSize = overlay.ResultBufferSize
	}

	if overlay.DiagnosticPrefix != "" {
		base.DiagnosticPrefix = overlay.DiagnosticPrefix
	}

	if overlay.FSName != "" {
		base.FSName = overlay.FSName
	}

	if overlay.AllowOther {
		base.AllowOther = true
	}

	return base
}

func validateConfig(cfg Config) error {
	if _, err := hash.ByName(cfg.HashAlgorithm, 1); err != nil {
		return err
	}

	if cfg.MinBuckets < 1 {
		return ErrMinBuckets
	}

	if cfg.MaxBuckets < cfg.MinBuckets || cfg.MaxBuckets > DefaultMaxBuckets {
		return ErrMaxBuckets
	}

	if cfg.ResultBufferSize < MinResultBufferSize {
		return ErrResultBufferSize
	}

	return nil
}
