package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Repository backends.
const (
	BackendLocal  = "local"
	BackendGitHub = "github"
)

// Default branch patterns.
const (
	DefaultHotfixPattern  = "hotfix/*"
	DefaultFeaturePattern = "feature/*"
)

// Config carries everything one evaluation needs. It is read from the
// GitHub-Actions-style environment, optionally overlaid with a YAML file
// checked into the repository; explicit environment inputs win over file
// values.
type Config struct {
	Workflow       []string `env:"INPUT_WORKFLOW" envSeparator:","`
	HotfixPattern  string   `env:"INPUT_HOTFIX_PATTERN"`
	FeaturePattern string   `env:"INPUT_FEATURE_PATTERN"`

	SourceBranch string `env:"GITHUB_HEAD_REF"`
	TargetBranch string `env:"GITHUB_BASE_REF"`

	Backend     string `env:"INPUT_BACKEND" envDefault:"local"`
	RepoPath    string `env:"GITHUB_WORKSPACE" envDefault:"."`
	Repository  string `env:"GITHUB_REPOSITORY"`
	GithubToken string `env:"GITHUB_TOKEN"`

	ConfigFile string `env:"INPUT_CONFIG_FILE"`
}

// fileConfig is the optional YAML file form of the policy inputs.
type fileConfig struct {
	Workflow       []string `yaml:"workflow"`
	HotfixPattern  string   `yaml:"hotfix_pattern"`
	FeaturePattern string   `yaml:"feature_pattern"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}

	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
	}

	cfg.applyDefaults()
	cfg.normalize()

	return &cfg, nil
}

// applyFile fills in policy inputs the environment left empty.
func (c *Config) applyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}

	if len(c.Workflow) == 0 {
		c.Workflow = fc.Workflow
	}
	if c.HotfixPattern == "" {
		c.HotfixPattern = fc.HotfixPattern
	}
	if c.FeaturePattern == "" {
		c.FeaturePattern = fc.FeaturePattern
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.HotfixPattern == "" {
		c.HotfixPattern = DefaultHotfixPattern
	}
	if c.FeaturePattern == "" {
		c.FeaturePattern = DefaultFeaturePattern
	}
}

func (c *Config) normalize() {
	stages := make([]string, 0, len(c.Workflow))
	for _, stage := range c.Workflow {
		stage = strings.TrimSpace(stage)
		if stage != "" {
			stages = append(stages, stage)
		}
	}
	c.Workflow = stages
}

// SplitRepository splits GITHUB_REPOSITORY into owner and name.
func (c *Config) SplitRepository() (string, string, error) {
	owner, name, ok := strings.Cut(c.Repository, "/")
	if !ok || owner == "" || name == "" {
		return "", "", fmt.Errorf("repository must be owner/name, got %q", c.Repository)
	}
	return owner, name, nil
}
