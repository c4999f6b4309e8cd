package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	defaultWordPressPath = "."
	defaultWPCLIBinary   = "wp"
)

// Settings is the tool configuration. It only feeds infrastructure
// (where WordPress lives, which binary to run, where license keys come from);
// the update engine itself reads RunContext.
type Settings struct {
	Path     string            `yaml:"path"`
	WPCLI    string            `yaml:"wp_cli"`
	Licenses map[string]string `yaml:"licenses"` // premium handler name -> env var
	Git      GitSettings       `yaml:"git"`
}

// GitSettings overrides the commit author. Empty values fall back to the
// repository's git config.
type GitSettings struct {
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewSettings returns the default settings.
func NewSettings() *Settings {
	return &Settings{
		Path:     defaultWordPressPath,
		WPCLI:    defaultWPCLIBinary,
		Licenses: map[string]string{},
	}
}

// Load reads a configuration file on top of the current values, expanding
// ${ENV_VAR} references in string fields.
func (s *Settings) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var loaded Settings
	if unmarshalErr := yaml.Unmarshal(data, &loaded); unmarshalErr != nil {
		return fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if loaded.Path != "" {
		s.Path = expandEnv(loaded.Path)
	}
	if loaded.WPCLI != "" {
		s.WPCLI = expandEnv(loaded.WPCLI)
	}
	for name, envVar := range loaded.Licenses {
		if s.Licenses == nil {
			s.Licenses = map[string]string{}
		}
		s.Licenses[name] = envVar
	}
	if loaded.Git.AuthorName != "" {
		s.Git.AuthorName = expandEnv(loaded.Git.AuthorName)
	}
	if loaded.Git.AuthorEmail != "" {
		s.Git.AuthorEmail = expandEnv(loaded.Git.AuthorEmail)
	}

	return s.validate()
}

// LicenseEnv returns the environment variable holding the license key of a
// premium handler, honouring configured overrides.
func (s *Settings) LicenseEnv(handler, fallback string) string {
	if envVar, ok := s.Licenses[handler]; ok && envVar != "" {
		return envVar
	}
	return fallback
}

// VersionFilePath returns the path of wp-includes/version.php.
func (s *Settings) VersionFilePath() string {
	return filepath.Join(s.Path, "wp-includes", "version.php")
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".wpupdate.yaml",
		".wpupdate.yml",
		"wpupdate.yaml",
		"wpupdate.yml",
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

func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}

func (s *Settings) validate() error {
	if s.Path == "" {
		return errors.New("path must not be empty")
	}
	if s.WPCLI == "" {
		return errors.New("wp_cli must not be empty")
	}
	for name, envVar := range s.Licenses {
		if envVar == "" {
			return fmt.Errorf("licenses.%s must name an environment variable", name)
		}
	}
	return nil
}
