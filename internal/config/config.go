// Copyright (c) 2025 Orafly Authors. All rights reserved.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	go_ora "github.com/sijms/go-ora/v2"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the export tool.
type Config struct {
	// Oracle Connection
	OracleHost     string
	OraclePort     int
	OracleService  string
	OracleUser     string
	OraclePassword string

	// Export Options
	ExportFolder         string // Default: "."
	MillisecondPrecision bool   // Millisecond suffix on versioned migration timestamps

	// Logging
	LogDir    string // Default: <home>/orafly (resolved by the log package)
	Debug     bool
	LogStdout bool
}

// Load loads configuration from a YAML file and environment variables.
// Priority: environment variables > YAML file > defaults. CLI flags are
// applied on top by the command layer, keeping the overall order
// flags > env > YAML > defaults.
func Load(configFile string) (*Config, error) {
	cfg := &Config{}

	// Load from YAML file if it exists
	if configFile != "" {
		if err := loadFromYAML(cfg, configFile); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	// Override with environment variables
	loadFromEnv(cfg)

	// Set defaults
	if cfg.OraclePort == 0 {
		cfg.OraclePort = 1521
	}
	if cfg.ExportFolder == "" {
		cfg.ExportFolder = "."
	}

	return cfg, nil
}

// ValidateOracle checks the fields required for a database connection.
// Commands that never touch Oracle skip this.
func (c *Config) ValidateOracle() error {
	if c.OracleHost == "" {
		return fmt.Errorf("oracle-host is required")
	}
	if c.OracleService == "" {
		return fmt.Errorf("oracle-service is required")
	}
	if c.OracleUser == "" {
		return fmt.Errorf("oracle-user is required")
	}
	if c.OraclePassword == "" {
		return fmt.Errorf("oracle-password is required")
	}
	return nil
}

// loadFromYAML loads configuration from a YAML file.
func loadFromYAML(cfg *Config, filepath string) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}

	var yamlCfg struct {
		OracleHost           string `yaml:"oracle_host"`
		OraclePort           int    `yaml:"oracle_port"`
		OracleService        string `yaml:"oracle_service"`
		OracleUser           string `yaml:"oracle_user"`
		OraclePassword       string `yaml:"oracle_password"`
		ExportFolder         string `yaml:"export_folder"`
		MillisecondPrecision bool   `yaml:"millisecond_precision"`
		LogDir               string `yaml:"log_dir"`
		Debug                bool   `yaml:"debug"`
		LogStdout            bool   `yaml:"log_stdout"`
	}

	if err := yaml.Unmarshal(data, &yamlCfg); err != nil {
		return err
	}

	if yamlCfg.OracleHost != "" {
		cfg.OracleHost = yamlCfg.OracleHost
	}
	if yamlCfg.OraclePort > 0 {
		cfg.OraclePort = yamlCfg.OraclePort
	}
	if yamlCfg.OracleService != "" {
		cfg.OracleService = yamlCfg.OracleService
	}
	if yamlCfg.OracleUser != "" {
		cfg.OracleUser = yamlCfg.OracleUser
	}
	if yamlCfg.OraclePassword != "" {
		cfg.OraclePassword = yamlCfg.OraclePassword
	}
	if yamlCfg.ExportFolder != "" {
		cfg.ExportFolder = yamlCfg.ExportFolder
	}
	cfg.MillisecondPrecision = yamlCfg.MillisecondPrecision
	if yamlCfg.LogDir != "" {
		cfg.LogDir = yamlCfg.LogDir
	}
	cfg.Debug = cfg.Debug || yamlCfg.Debug
	cfg.LogStdout = cfg.LogStdout || yamlCfg.LogStdout

	return nil
}

// loadFromEnv loads configuration from environment variables.
func loadFromEnv(cfg *Config) {
	if val := os.Getenv("ORAFLY_ORACLE_HOST"); val != "" {
		cfg.OracleHost = val
	}
	if val := os.Getenv("ORAFLY_ORACLE_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			cfg.OraclePort = port
		}
	}
	if val := os.Getenv("ORAFLY_ORACLE_SERVICE"); val != "" {
		cfg.OracleService = val
	}
	if val := os.Getenv("ORAFLY_ORACLE_USER"); val != "" {
		cfg.OracleUser = val
	}
	if val := os.Getenv("ORAFLY_ORACLE_PASSWORD"); val != "" {
		cfg.OraclePassword = val
	}
	if val := os.Getenv("ORAFLY_ORACLE_AUTH"); val != "" {
		// Errors here are ignored on purpose: an auth file named only in the
		// environment must not make commands fail that never touch Oracle.
		_ = cfg.ReadOracleAuth(val)
	}
	if val := os.Getenv("ORAFLY_EXPORT_FOLDER"); val != "" {
		cfg.ExportFolder = val
	}
	if val := os.Getenv("ORAFLY_MILLISECOND_PRECISION"); val != "" {
		cfg.MillisecondPrecision = (val == "true" || val == "1")
	}
	if val := os.Getenv("ORAFLY_LOG_DIR"); val != "" {
		cfg.LogDir = val
	}
	if val := os.Getenv("ORAFLY_DEBUG"); val != "" {
		cfg.Debug = (val == "true" || val == "1")
	}
	if val := os.Getenv("ORAFLY_LOG_STDOUT"); val != "" {
		cfg.LogStdout = (val == "true" || val == "1")
	}
}

// GetOracleDSN returns the Oracle connection string.
func (c *Config) GetOracleDSN() string {
	return go_ora.BuildUrl(c.OracleHost, c.OraclePort, c.OracleService,
		c.OracleUser, c.OraclePassword, nil)
}

// ReadOracleAuth reads Oracle credentials from an auth file (JSON format).
func (c *Config) ReadOracleAuth(authFile string) error {
	if authFile == "" {
		return nil
	}

	data, err := os.ReadFile(authFile)
	if err != nil {
		return fmt.Errorf("failed to read auth file: %w", err)
	}

	var auth struct {
		User     string `json:"user"`
		Password string `json:"password"`
	}

	if err := json.Unmarshal(data, &auth); err != nil {
		return fmt.Errorf("failed to parse auth file: %w", err)
	}

	c.OracleUser = auth.User
	c.OraclePassword = auth.Password
	return nil
}
