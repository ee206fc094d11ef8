package langkit

import (
	"context"

	"github.com/pitabwire/util"
)

// Option configures a Manager during construction.
type Option func(ctx context.Context, m *Manager)

// WithDirectory sets the base directory where language files are stored.
func WithDirectory(directory string) Option {
	return func(_ context.Context, m *Manager) {
		m.directory = directory
	}
}

// WithLanguageCode sets the initially active language code.
func WithLanguageCode(languageCode string) Option {
	return func(_ context.Context, m *Manager) {
		m.setLanguage(languageCode)
	}
}

// WithFormat sets the language file format extension, e.g. "json", "toml"
// or "yaml".
func WithFormat(format string) Option {
	return func(_ context.Context, m *Manager) {
		if format == "" {
			format = DefaultFormat
		}
		m.format = format
	}
}

// WithAllowEndUserModification decides whether extraction preserves files
// already present on disk so end-user edits survive.
func WithAllowEndUserModification(allow bool) Option {
	return func(_ context.Context, m *Manager) {
		m.allowEndUserModification = allow
	}
}

// WithLogger overrides the logger used by the Manager.
func WithLogger(opts ...util.Option) Option {
	return func(ctx context.Context, m *Manager) {
		m.logger = util.NewLogger(ctx, opts...)
	}
}
