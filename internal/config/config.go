package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// valid log formats and levels
var (
	validLogFormats = []string{"text", "json"}
	validLogLevels  = []string{"debug", "info", "warn", "error"}
)

type Config struct {
	GitHubToken         string
	GitLabBaseURL       string
	GitLabSkipSSLVerify bool
	GitLabToken         string
	HTTPTimeoutSeconds  int
	LogFormat           string
	LogLevel            string
	DiffLimits          DiffLimits
}

// DiffLimits holds the default volume budgets applied to pull request diffs
// when a tool call does not set its own. Zero means unlimited.
type DiffLimits struct {
	MaxFiles        int // Maximum number of files kept by the filter stage
	MaxTotalLines   int // Maximum cumulative content lines kept by the filter stage
	MaxLinesPerFile int // Per-file content-line budget for the truncation stage
}

// fileConfig is the YAML shape of the optional config file referenced by
// PRMCP_CONFIG_FILE. Environment variables override file values.
type fileConfig struct {
	GitHub struct {
		Token string `yaml:"token"`
	} `yaml:"github"`
	GitLab struct {
		Token         string `yaml:"token"`
		BaseURL       string `yaml:"base_url"`
		SkipSSLVerify bool   `yaml:"skip_ssl_verify"`
	} `yaml:"gitlab"`
	HTTP struct {
		TimeoutSeconds int `yaml:"timeout_seconds"`
	} `yaml:"http"`
	Log struct {
		Format string `yaml:"format"`
		Level  string `yaml:"level"`
	} `yaml:"log"`
	DiffLimits struct {
		MaxFiles        int `yaml:"max_files"`
		MaxTotalLines   int `yaml:"max_total_lines"`
		MaxLinesPerFile int `yaml:"max_lines_per_file"`
	} `yaml:"diff_limits"`
}

// Load creates a new Config instance from the optional YAML config file and
// environment variables, then validates it. Environment variables always win
// over file values.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPTimeoutSeconds: 30,
	}

	// Apply the optional config file first so env vars can override it
	if path := os.Getenv("PRMCP_CONFIG_FILE"); path != "" {
		if err := applyConfigFile(cfg, path); err != nil {
			return nil, err
		}
	}

	// Git platform configuration
	cfg.GitHubToken = getEnvOrDefault("PRMCP_GITHUB_TOKEN", cfg.GitHubToken)
	cfg.GitLabToken = getEnvOrDefault("PRMCP_GITLAB_TOKEN", cfg.GitLabToken)
	cfg.GitLabBaseURL = getEnvOrDefault("PRMCP_GITLAB_BASE_URL", cfg.GitLabBaseURL)

	gitLabSkipSSL, err := parseBoolEnvOrDefault("PRMCP_GITLAB_SKIP_SSL_VERIFY", cfg.GitLabSkipSSLVerify)
	if err != nil {
		return nil, err
	}
	cfg.GitLabSkipSSLVerify = gitLabSkipSSL

	// HTTP configuration
	cfg.HTTPTimeoutSeconds, err = parseIntEnvOrDefault("PRMCP_HTTP_TIMEOUT_SECONDS", cfg.HTTPTimeoutSeconds, 1, 3600)
	if err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.LogFormat = getEnvOrDefault("PRMCP_LOG_FORMAT", cfg.LogFormat)
	cfg.LogLevel = getEnvOrDefault("PRMCP_LOG_LEVEL", cfg.LogLevel)

	// Default diff limits; zero leaves a stage disabled
	cfg.DiffLimits.MaxFiles, err = parseIntEnvOrDefault("PRMCP_DIFF_MAX_FILES", cfg.DiffLimits.MaxFiles, 0, 1000000000)
	if err != nil {
		return nil, err
	}
	cfg.DiffLimits.MaxTotalLines, err = parseIntEnvOrDefault("PRMCP_DIFF_MAX_TOTAL_LINES", cfg.DiffLimits.MaxTotalLines, 0, 1000000000)
	if err != nil {
		return nil, err
	}
	cfg.DiffLimits.MaxLinesPerFile, err = parseIntEnvOrDefault("PRMCP_DIFF_MAX_LINES_PER_FILE", cfg.DiffLimits.MaxLinesPerFile, 0, 1000000000)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyConfigFile merges the YAML config file at path into cfg
func applyConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	cfg.GitHubToken = fc.GitHub.Token
	cfg.GitLabToken = fc.GitLab.Token
	cfg.GitLabBaseURL = fc.GitLab.BaseURL
	cfg.GitLabSkipSSLVerify = fc.GitLab.SkipSSLVerify
	if fc.HTTP.TimeoutSeconds > 0 {
		cfg.HTTPTimeoutSeconds = fc.HTTP.TimeoutSeconds
	}
	cfg.LogFormat = fc.Log.Format
	cfg.LogLevel = fc.Log.Level
	cfg.DiffLimits.MaxFiles = fc.DiffLimits.MaxFiles
	cfg.DiffLimits.MaxTotalLines = fc.DiffLimits.MaxTotalLines
	cfg.DiffLimits.MaxLinesPerFile = fc.DiffLimits.MaxLinesPerFile

	return nil
}

// getEnvOrDefault returns the environment variable value or a default if not set
func getEnvOrDefault(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return defaultVal
}

// parseIntEnvOrDefault parses an integer environment variable with range validation or returns a default value if not set
func parseIntEnvOrDefault(key string, defaultVal, min, max int) (int, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}

	val, err := strconv.Atoi(str)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer, got: %s", key, str)
	}

	if val < min || val > max {
		return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, val)
	}

	return val, nil
}

// parseBoolEnvOrDefault parses a boolean environment variable or returns a default value if not set
func parseBoolEnvOrDefault(key string, defaultVal bool) (bool, error) {
	str, ok := os.LookupEnv(key)
	if !ok {
		return defaultVal, nil
	}

	val, err := strconv.ParseBool(str)
	if err != nil {
		return false, fmt.Errorf("%s must be a valid boolean, got: %s", key, str)
	}

	return val, nil
}

// validateConfig performs all validation on the loaded configuration
func validateConfig(cfg *Config) error {

	// At least one platform must be usable
	if cfg.GitHubToken == "" && cfg.GitLabToken == "" {
		return fmt.Errorf("at least one of PRMCP_GITHUB_TOKEN or PRMCP_GITLAB_TOKEN is required")
	}
	if cfg.GitLabToken != "" && cfg.GitLabBaseURL == "" {
		return fmt.Errorf("PRMCP_GITLAB_BASE_URL environment variable is required when PRMCP_GITLAB_TOKEN is provided")
	}

	// Validate logging configuration
	if cfg.LogFormat != "" {
		if !slices.Contains(validLogFormats, strings.ToLower(cfg.LogFormat)) {
			return fmt.Errorf("PRMCP_LOG_FORMAT must be one of: %v; got: %s", validLogFormats, cfg.LogFormat)
		}
	}
	if cfg.LogLevel != "" {
		if !slices.Contains(validLogLevels, strings.ToLower(cfg.LogLevel)) {
			return fmt.Errorf("PRMCP_LOG_LEVEL must be one of: %v; got: %s", validLogLevels, cfg.LogLevel)
		}
	}

	return nil
}
