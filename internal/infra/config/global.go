// Where: cli/internal/infra/config/global.go
// What: Global config load/save.
// Why: Manage ~/.<brand>/config.yaml consistently.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/poruru/credctl/cli/internal/constants"
	"github.com/poruru/credctl/cli/internal/infra/envutil"
	"github.com/poruru/credctl/cli/internal/infra/fileops"
	"github.com/poruru/credctl/cli/internal/meta"
	"gopkg.in/yaml.v3"
)

const (
	DefaultRegion           = "us-east-1"
	DefaultCredentialsTable = "credctl-android-credentials"
	DefaultBuildsTable      = "credctl-builds"
	DefaultKeystoreBucket   = "credctl-keystores"
	DefaultWebsiteURL       = "https://expo.dev"
	DefaultLogsURLTemplate  = `{{ .BaseURL | trimSuffix "/" }}/accounts/{{ .Username | urlquery }}/builds/{{ .BuildID }}`

	maxRecentExperiences = 10
)

// GlobalConfig represents ~/.<brand>/config.yaml.
type GlobalConfig struct {
	Version           int      `yaml:"version"`
	Account           string   `yaml:"account,omitempty"`
	Region            string   `yaml:"region,omitempty"`
	Endpoint          string   `yaml:"endpoint,omitempty"`
	CredentialsTable  string   `yaml:"credentials_table,omitempty"`
	BuildsTable       string   `yaml:"builds_table,omitempty"`
	KeystoreBucket    string   `yaml:"keystore_bucket,omitempty"`
	WebsiteURL        string   `yaml:"website_url,omitempty"`
	LogsURLTemplate   string   `yaml:"logs_url_template,omitempty"`
	RecentExperiences []string `yaml:"recent_experiences,omitempty"`
}

// DefaultGlobalConfig returns an initialized GlobalConfig with version set.
func DefaultGlobalConfig() GlobalConfig {
	return GlobalConfig{
		Version:           1,
		Region:            DefaultRegion,
		CredentialsTable:  DefaultCredentialsTable,
		BuildsTable:       DefaultBuildsTable,
		KeystoreBucket:    DefaultKeystoreBucket,
		WebsiteURL:        DefaultWebsiteURL,
		LogsURLTemplate:   DefaultLogsURLTemplate,
		RecentExperiences: []string{},
	}
}

// GlobalConfigPath resolves the config file path.
// Priority: CREDCTL_CONFIG, then CREDCTL_HOME/config.yaml, then ~/.credctl/config.yaml.
func GlobalConfigPath() (string, error) {
	if path := envutil.GetHostEnv(constants.HostSuffixConfig); path != "" {
		return path, nil
	}
	if home := envutil.GetHostEnv(constants.HostSuffixHome); home != "" {
		return filepath.Join(home, meta.ConfigFilename), nil
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(userHome, meta.HomeDir, meta.ConfigFilename), nil
}

// LoadGlobalConfig reads, validates and parses the global configuration file.
// Empty fields are filled from DefaultGlobalConfig.
func LoadGlobalConfig(path string) (GlobalConfig, error) {
	payload, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("read global config: %w", err)
	}
	if err := ValidateGlobalConfig(payload); err != nil {
		return GlobalConfig{}, fmt.Errorf("validate global config %s: %w", path, err)
	}

	var cfg GlobalConfig
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return GlobalConfig{}, fmt.Errorf("decode global config: %w", err)
	}
	return withDefaults(cfg), nil
}

// LoadGlobalConfigOrDefault returns the default config when the file does not exist.
func LoadGlobalConfigOrDefault(path string) (GlobalConfig, error) {
	cfg, err := LoadGlobalConfig(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultGlobalConfig(), nil
		}
		return GlobalConfig{}, err
	}
	return cfg, nil
}

// SaveGlobalConfig writes a GlobalConfig to the specified path.
func SaveGlobalConfig(path string, cfg GlobalConfig) error {
	payload, err := yaml.Marshal(&cfg)
	if err != nil {
		return fmt.Errorf("encode global config: %w", err)
	}

	if err := fileops.WriteAtomic(path, payload); err != nil {
		return fmt.Errorf("write global config: %w", err)
	}
	return nil
}

// ApplyEnv overlays CREDCTL_* environment overrides onto cfg.
func ApplyEnv(cfg GlobalConfig) GlobalConfig {
	if value := envutil.GetHostEnv(constants.HostSuffixAccount); value != "" {
		cfg.Account = value
	}
	if value := envutil.GetHostEnv(constants.HostSuffixRegion); value != "" {
		cfg.Region = value
	}
	if value := envutil.GetHostEnv(constants.HostSuffixEndpoint); value != "" {
		cfg.Endpoint = value
	}
	return cfg
}

// RememberExperience moves name to the front of the recent list.
func RememberExperience(cfg GlobalConfig, name string) GlobalConfig {
	name = strings.TrimSpace(name)
	if name == "" {
		return cfg
	}
	recent := []string{name}
	for _, existing := range cfg.RecentExperiences {
		if existing == name {
			continue
		}
		recent = append(recent, existing)
	}
	if len(recent) > maxRecentExperiences {
		recent = recent[:maxRecentExperiences]
	}
	cfg.RecentExperiences = recent
	return cfg
}

func withDefaults(cfg GlobalConfig) GlobalConfig {
	defaults := DefaultGlobalConfig()
	if cfg.Version == 0 {
		cfg.Version = defaults.Version
	}
	if cfg.Region == "" {
		cfg.Region = defaults.Region
	}
	if cfg.CredentialsTable == "" {
		cfg.CredentialsTable = defaults.CredentialsTable
	}
	if cfg.BuildsTable == "" {
		cfg.BuildsTable = defaults.BuildsTable
	}
	if cfg.KeystoreBucket == "" {
		cfg.KeystoreBucket = defaults.KeystoreBucket
	}
	if cfg.WebsiteURL == "" {
		cfg.WebsiteURL = defaults.WebsiteURL
	}
	if cfg.LogsURLTemplate == "" {
		cfg.LogsURLTemplate = defaults.LogsURLTemplate
	}
	if cfg.RecentExperiences == nil {
		cfg.RecentExperiences = []string{}
	}
	return cfg
}
