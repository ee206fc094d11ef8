package langkit

import (
	"context"

	"github.com/pitabwire/util"
	"golang.org/x/text/language"
)

// Manager owns the active language code, the base directory holding language
// files, and the policy flag deciding whether end users may edit extracted
// files. It is not safe for concurrent mutation; once handed to a resolver
// its values are snapshotted and further changes do not propagate.
type Manager struct {
	directory    string
	languageCode string
	format       string

	allowEndUserModification bool

	logger *util.LogEntry
}

// NewManager creates a Manager, applying any supplied options. Without
// options the Manager is unconfigured and must be set up before use.
func NewManager(ctx context.Context, opts ...Option) *Manager {
	m := &Manager{
		format: DefaultFormat,
		logger: util.Log(ctx),
	}

	for _, opt := range opts {
		opt(ctx, m)
	}

	return m
}

// NewManagerFromConfig creates a Manager whose directory, language code,
// format and modification policy come from the supplied configuration.
func NewManagerFromConfig(ctx context.Context, cfg *LanguageConfiguration, opts ...Option) *Manager {
	baseOpts := []Option{
		WithDirectory(cfg.Directory()),
		WithLanguageCode(cfg.LanguageCode()),
		WithFormat(cfg.Format()),
		WithAllowEndUserModification(cfg.AllowEndUserModification()),
	}

	return NewManager(ctx, append(baseOpts, opts...)...)
}

// Setup overwrites the directory, language code and end-user modification
// policy in one call. It performs no validation of the supplied path and is
// safe to call repeatedly; the last call wins.
func (m *Manager) Setup(allowEndUserModification bool, directory, languageCode string) {
	m.allowEndUserModification = allowEndUserModification
	m.directory = directory
	m.setLanguage(languageCode)
}

// ChangeLanguage sets the active language code, overriding any previously
// set value. It never fails; an unparseable BCP 47 tag only produces a
// diagnostic since language files are free to use any naming scheme.
func (m *Manager) ChangeLanguage(languageCode string) {
	m.setLanguage(languageCode)
}

func (m *Manager) setLanguage(languageCode string) {
	if _, err := language.Parse(languageCode); err != nil {
		m.log(context.Background()).WithField("language", languageCode).
			Debug("language code is not a well formed BCP 47 tag")
	}

	m.languageCode = languageCode
}

func (m *Manager) log(ctx context.Context) *util.LogEntry {
	if m.logger == nil {
		return util.Log(ctx)
	}
	return m.logger.WithContext(ctx)
}

// Directory returns the base directory where language files are stored.
func (m *Manager) Directory() string {
	return m.directory
}

// LanguageCode returns the currently active language code.
func (m *Manager) LanguageCode() string {
	return m.languageCode
}

// Format returns the configured language file format extension.
func (m *Manager) Format() string {
	return m.format
}

// AllowEndUserModification reports whether extracted language files may be
// edited by end users, which makes extraction preserve existing files.
func (m *Manager) AllowEndUserModification() bool {
	return m.allowEndUserModification
}
