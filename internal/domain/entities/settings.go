package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Backend names accepted by the "backend" setting.
const (
	BackendLocal  = "local"
	BackendHosted = "hosted"
)

const (
	defaultBuildScript = "build"
	// DefaultBuildLogFile is where a failed build's output is saved.
	DefaultBuildLogFile = "build_errors.log"
	defaultLocalModel   = "codellama:7b"
	defaultHostedModel  = "gemini-1.5-flash"
	defaultMaxTokens    = 100
	defaultTemperature  = 0.1
	defaultTopP         = 0.9
)

// ErrMissingAPIKey is returned when the hosted backend has no credential.
var ErrMissingAPIKey = errors.New("hosted backend requires an API key (set GEMINI_API_KEY or hosted.api_key)")

// Settings is the runtime configuration, built once at startup.
type Settings struct {
	Backend string          `yaml:"backend"` // "local" or "hosted"
	Build   BuildSettings   `yaml:"build"`
	Upgrade UpgradeSettings `yaml:"upgrade"`
	Local   LocalSettings   `yaml:"local"`
	Hosted  HostedSettings  `yaml:"hosted"`
	Logging LoggingSettings `yaml:"logging"`
}

// BuildSettings configures the build runner.
type BuildSettings struct {
	Script  string `yaml:"script"`   // package.json script to run
	LogFile string `yaml:"log_file"` // relative to the project directory
}

// UpgradeSettings configures the dependency upgrader.
type UpgradeSettings struct {
	StrictInstall        bool `yaml:"strict_install"`
	RequireCleanWorktree bool `yaml:"require_clean_worktree"`
	Changelog            bool `yaml:"changelog"`
}

// GenerationSettings are the sampling parameters shared by both backends.
type GenerationSettings struct {
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	TopP        float64 `yaml:"top_p"`
}

// LocalSettings configures the locally served model.
type LocalSettings struct {
	Host               string `yaml:"host"` // empty: OLLAMA_HOST or the Ollama default
	Model              string `yaml:"model"`
	GenerationSettings `yaml:",inline"`
}

// HostedSettings configures the hosted generative API.
type HostedSettings struct {
	APIKey             string `yaml:"api_key"`  // inline, ${ENV_VAR}, or file path
	BaseURL            string `yaml:"base_url"` // empty: the public endpoint
	Model              string `yaml:"model"`
	GenerationSettings `yaml:",inline"`
}

// LoggingSettings configures logrus.
type LoggingSettings struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "text" or "json"
	File   string `yaml:"file"`   // optional rotating log file
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the configuration used when no file is found.
func DefaultSettings() *Settings {
	generation := GenerationSettings{
		MaxTokens:   defaultMaxTokens,
		Temperature: defaultTemperature,
		TopP:        defaultTopP,
	}
	return &Settings{
		Backend: BackendHosted,
		Build: BuildSettings{
			Script:  defaultBuildScript,
			LogFile: DefaultBuildLogFile,
		},
		Upgrade: UpgradeSettings{StrictInstall: true},
		Local: LocalSettings{
			Model:              defaultLocalModel,
			GenerationSettings: generation,
		},
		Hosted: HostedSettings{
			APIKey:             "${GEMINI_API_KEY}",
			Model:              defaultHostedModel,
			GenerationSettings: generation,
		},
		Logging: LoggingSettings{Level: "info", Format: "text"},
	}
}

// NewSettings reads a YAML configuration file on top of the defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	locations := []string{".", ".config", "configs"}
	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".upgrademe.yaml",
		".upgrademe.yml",
		"upgrademe.yaml",
		"upgrademe.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// Validate checks the values that cannot be defaulted.
func (s *Settings) Validate() error {
	if s.Backend != BackendLocal && s.Backend != BackendHosted {
		return fmt.Errorf("backend must be %q or %q, got %q", BackendLocal, BackendHosted, s.Backend)
	}
	if strings.TrimSpace(s.Build.Script) == "" {
		return errors.New("build.script is required")
	}
	if strings.TrimSpace(s.Build.LogFile) == "" {
		return errors.New("build.log_file is required")
	}
	if filepath.IsAbs(s.Build.LogFile) {
		return fmt.Errorf("build.log_file must be relative to the project, got %q", s.Build.LogFile)
	}
	if s.Local.MaxTokens <= 0 || s.Hosted.MaxTokens <= 0 {
		return errors.New("max_tokens must be positive")
	}
	return nil
}

// HostedAPIKey resolves the hosted credential from the environment or a file.
func (s *Settings) HostedAPIKey() string {
	return ResolveSecret(s.Hosted.APIKey)
}

// ResolveSecret expands ${VAR} references and, if the result names an
// existing file, reads the secret from it.
func ResolveSecret(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Debugf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}
	if info, statErr := os.Stat(resolved); statErr == nil && !info.IsDir() {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read secret file %q: %v", resolved, readErr)
			return resolved
		}
		return strings.TrimSpace(string(data))
	}
	return resolved
}
