package langkit_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/basaltmc/langkit"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestConfigFromEnvDefaults() {
	cfg, err := langkit.ConfigFromEnv()
	s.Require().NoError(err)

	s.Equal("resources", cfg.Directory())
	s.Equal("en", cfg.LanguageCode())
	s.Equal("json", cfg.Format())
	s.False(cfg.AllowEndUserModification())
	s.Equal("info", cfg.LoggingLevel())
}

func (s *ConfigTestSuite) TestConfigFromEnvOverrides() {
	s.T().Setenv("LANGUAGE_DIRECTORY", "/srv/app")
	s.T().Setenv("LANGUAGE_CODE", "sw")
	s.T().Setenv("LANGUAGE_FORMAT", "toml")
	s.T().Setenv("LANGUAGE_ALLOW_END_USER_MODIFICATION", "true")

	cfg, err := langkit.ConfigFromEnv()
	s.Require().NoError(err)

	s.Equal("/srv/app", cfg.Directory())
	s.Equal("sw", cfg.LanguageCode())
	s.Equal("toml", cfg.Format())
	s.True(cfg.AllowEndUserModification())
}

func (s *ConfigTestSuite) TestConfigFromFile() {
	dir := s.T().TempDir()
	path := filepath.Join(dir, "langkit.yaml")

	content := "language_directory: /srv/lang\nlanguage_code: de\nallow_end_user_modification: true\n"
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))

	cfg, err := langkit.ConfigFromFile(path)
	s.Require().NoError(err)

	s.Equal("/srv/lang", cfg.Directory())
	s.Equal("de", cfg.LanguageCode())
	s.True(cfg.AllowEndUserModification())
	// Unset file values keep their environment defaults.
	s.Equal("json", cfg.Format())
}

func (s *ConfigTestSuite) TestConfigFromFileErrors() {
	dir := s.T().TempDir()

	_, err := langkit.ConfigFromFile(filepath.Join(dir, "missing.yaml"))
	s.Error(err)

	bad := filepath.Join(dir, "bad.yaml")
	s.Require().NoError(os.WriteFile(bad, []byte("language_code: [..."), 0o644))

	_, err = langkit.ConfigFromFile(bad)
	s.Error(err)
}

func (s *ConfigTestSuite) TestEmptyFormatFallsBack() {
	cfg := &langkit.LanguageConfiguration{}
	s.Equal("json", cfg.Format())
}
