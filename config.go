package langkit

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultFormat is the language file format used when none is configured.
const DefaultFormat = "json"

// LanguageConfiguration carries the settings a Manager is built from.
// Values are typically sourced once at process startup, either from the
// environment or from a YAML file.
type LanguageConfiguration struct {
	LanguageDirectory string `envDefault:"resources" env:"LANGUAGE_DIRECTORY" yaml:"language_directory"`
	LanguageCodeValue string `envDefault:"en"        env:"LANGUAGE_CODE"      yaml:"language_code"`
	LanguageFormat    string `envDefault:"json"      env:"LANGUAGE_FORMAT"    yaml:"language_format"`

	AllowEndUserModificationValue bool `envDefault:"false" env:"LANGUAGE_ALLOW_END_USER_MODIFICATION" yaml:"allow_end_user_modification"`

	LogLevel string `envDefault:"info" env:"LOG_LEVEL" yaml:"log_level"`
}

func (c *LanguageConfiguration) Directory() string {
	return c.LanguageDirectory
}

func (c *LanguageConfiguration) LanguageCode() string {
	return c.LanguageCodeValue
}

func (c *LanguageConfiguration) Format() string {
	if c.LanguageFormat == "" {
		return DefaultFormat
	}
	return c.LanguageFormat
}

func (c *LanguageConfiguration) AllowEndUserModification() bool {
	return c.AllowEndUserModificationValue
}

func (c *LanguageConfiguration) LoggingLevel() string {
	return c.LogLevel
}

// ConfigFromEnv convenience method to process configuration from the environment.
func ConfigFromEnv() (LanguageConfiguration, error) {
	return env.ParseAs[LanguageConfiguration]()
}

// ConfigFromFile loads configuration from a YAML file at the supplied path.
// Environment defaults are applied first so the file only needs to override
// what differs.
func ConfigFromFile(path string) (LanguageConfiguration, error) {
	cfg, err := ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read configuration file %s: %w", path, err)
	}

	if err = yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parse configuration file %s: %w", path, err)
	}

	return cfg, nil
}
