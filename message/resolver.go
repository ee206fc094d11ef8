// Package message resolves and formats localized messages. A Resolver
// snapshots its language code and directory at construction time and loads
// the language file fresh on every lookup, so there is never stale data and
// never a cache to invalidate.
package message

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// Settings supplies the values a Resolver snapshots at construction.
// *langkit.Manager satisfies it.
type Settings interface {
	Directory() string
	LanguageCode() string
	Format() string
}

// Replacement pairs a regular expression pattern with its replacement text.
// A slice of these gives callers a deterministic application order, which
// matters whenever patterns could overlap after partial substitution.
type Replacement struct {
	Pattern string
	Value   string
}

// Resolver looks up messages from the language file of a single language.
// It is immutable after construction and safe for concurrent use; later
// changes on the Manager it was built from do not propagate.
type Resolver struct {
	languageCode string
	directory    string
	format       string
}

// Option configures a Resolver during construction.
type Option func(r *Resolver)

// WithFormat overrides the language file format extension.
func WithFormat(format string) Option {
	return func(r *Resolver) {
		r.format = format
	}
}

// NewResolver creates a Resolver from the supplied settings, copying the
// directory, language code and format.
func NewResolver(settings Settings, opts ...Option) *Resolver {
	r := &Resolver{
		languageCode: settings.LanguageCode(),
		directory:    settings.Directory(),
		format:       settings.Format(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// NewResolverFor creates a Resolver with explicit language code and
// directory values.
func NewResolverFor(languageCode, directory string, opts ...Option) *Resolver {
	r := &Resolver{
		languageCode: languageCode,
		directory:    directory,
		format:       FormatJSON,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Get loads the language table and returns the text stored under key.
func (r *Resolver) Get(ctx context.Context, key string) (string, error) {
	table, err := loadTable(ctx, r.directory, r.languageCode, r.format)
	if err != nil {
		return "", err
	}

	text, ok := table[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrMessageNotFound, key)
	}

	return text, nil
}

// GetWithReplacement returns the text stored under key after one global
// regular expression substitution. The pattern is a full regular
// expression; use GetWithValues when literal matching is wanted.
func (r *Resolver) GetWithReplacement(ctx context.Context, key, pattern, replacement string) (string, error) {
	text, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}

	return substitute(text, pattern, replacement)
}

// GetWithReplacements returns the text stored under key after applying
// every entry of replacements as a global regular expression substitution,
// each operating on the cumulative result of the previous ones. Map
// iteration order is unspecified, so patterns that overlap after partial
// substitution need GetWithOrderedReplacements instead.
func (r *Resolver) GetWithReplacements(ctx context.Context, key string, replacements map[string]string) (string, error) {
	text, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}

	for pattern, replacement := range replacements {
		text, err = substitute(text, pattern, replacement)
		if err != nil {
			return "", err
		}
	}

	return text, nil
}

// GetWithOrderedReplacements behaves like GetWithReplacements but applies
// the replacements in slice order.
func (r *Resolver) GetWithOrderedReplacements(ctx context.Context, key string, replacements []Replacement) (string, error) {
	text, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}

	for _, entry := range replacements {
		text, err = substitute(text, entry.Pattern, entry.Value)
		if err != nil {
			return "", err
		}
	}

	return text, nil
}

// GetWithValues returns the text stored under key after replacing every
// occurrence of each map key with its value, treating both as literals.
// All replacements happen in a single pass, so results never feed back into
// other placeholders.
func (r *Resolver) GetWithValues(ctx context.Context, key string, values map[string]string) (string, error) {
	text, err := r.Get(ctx, key)
	if err != nil {
		return "", err
	}

	pairs := make([]string, 0, len(values)*2)
	for placeholder, value := range values {
		pairs = append(pairs, placeholder, value)
	}

	return strings.NewReplacer(pairs...).Replace(text), nil
}

func substitute(text, pattern, replacement string) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("compile replacement pattern %q: %w", pattern, err)
	}

	return re.ReplaceAllString(text, replacement), nil
}
