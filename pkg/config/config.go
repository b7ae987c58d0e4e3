/*
Package config manages TOML config for PuzzleKit tools.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/ferrisbain/puzzlekit/internal/utils"
)

// Config holds the entire config structure
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Data   DataConfig   `toml:"data"`
	CLI    CliConfig    `toml:"cli"`
}

// SolverConfig has guessing-game solver options.
type SolverConfig struct {
	WordLength      int `toml:"word_length"`
	MaxGuesses      int `toml:"max_guesses"`
	Recommendations int `toml:"recommendations"`
}

// DataConfig holds dictionary data locations.
type DataConfig struct {
	WordsFile       string `toml:"words_file"`
	FrequenciesFile string `toml:"frequencies_file"`
}

// CliConfig holds interactive interface options.
type CliConfig struct {
	ShowScores   bool `toml:"show_scores"`
	Color        bool `toml:"color"`
	JumbleRounds int  `toml:"jumble_rounds"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/puzzlekit
// 2. Current executable dir
// 3. builtin defaults
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "puzzlekit")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/puzzlekit/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Solver: SolverConfig{
			WordLength:      5,
			MaxGuesses:      6,
			Recommendations: 5,
		},
		Data: DataConfig{
			WordsFile:       "data/valid_words.txt",
			FrequenciesFile: "data/frequencies.bin",
		},
		CLI: CliConfig{
			ShowScores:   false,
			Color:        true,
			JumbleRounds: 4,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file section by section, keeping
// defaults for anything it cannot read.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if solverSection, ok := utils.ExtractSection(tempConfig, "solver"); ok {
		extractSolverConfig(solverSection, &config.Solver)
	}
	if dataSection, ok := utils.ExtractSection(tempConfig, "data"); ok {
		extractDataConfig(dataSection, &config.Data)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

// extractSolverConfig extracts solver configuration from a map
func extractSolverConfig(data map[string]any, solver *SolverConfig) {
	if val, ok := utils.ExtractInt64(data, "word_length"); ok {
		solver.WordLength = val
	}
	if val, ok := utils.ExtractInt64(data, "max_guesses"); ok {
		solver.MaxGuesses = val
	}
	if val, ok := utils.ExtractInt64(data, "recommendations"); ok {
		solver.Recommendations = val
	}
}

// extractDataConfig extracts data file configuration from a map
func extractDataConfig(data map[string]any, dataCfg *DataConfig) {
	if val, ok := utils.ExtractString(data, "words_file"); ok {
		dataCfg.WordsFile = val
	}
	if val, ok := utils.ExtractString(data, "frequencies_file"); ok {
		dataCfg.FrequenciesFile = val
	}
}

// extractCliConfig extracts CLI config from a map
func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractBool(data, "show_scores"); ok {
		cli.ShowScores = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		cli.Color = val
	}
	if val, ok := utils.ExtractInt64(data, "jumble_rounds"); ok {
		cli.JumbleRounds = val
	}
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
