// Package langkit manages per-language message files and runtime language
// switching. A Manager owns the active language code and the directory that
// holds language files, and can extract bundled language resources from a
// zip archive. Message lookup and formatting lives in the message subpackage.
package langkit

import (
	"context"
	"strings"
)

type contextKey string

func (c contextKey) String() string {
	return "langkit/" + string(c)
}

const ctxKeyLanguage = contextKey("languageKey")

// LanguageToContext adds a language code to the current supplied context.
func LanguageToContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, ctxKeyLanguage, lang)
}

// LanguageFromContext extracts a language code from the supplied context if any exist.
func LanguageFromContext(ctx context.Context) string {
	lang, ok := ctx.Value(ctxKeyLanguage).(string)
	if !ok {
		return ""
	}

	return lang
}

func LanguageToMap(m map[string]string, lang string) map[string]string {
	m["lang"] = lang
	return m
}

func LanguageFromMap(m map[string]string) string {
	lang, ok := m["lang"]
	if !ok {
		return ""
	}
	return strings.TrimSpace(lang)
}
