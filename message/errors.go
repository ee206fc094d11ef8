package message

import "errors"

var (
	// ErrNotConfigured indicates a resolver was asked to look up a message
	// before it had both a directory and a language code.
	ErrNotConfigured = errors.New("language directory and language code must be configured")

	// ErrLanguageFileNotFound indicates the language file at the resolved
	// path is missing or unreadable.
	ErrLanguageFileNotFound = errors.New("language file not found")

	// ErrLanguageFileInvalid indicates the language file could not be parsed
	// in the configured format.
	ErrLanguageFileInvalid = errors.New("language file is not valid")

	// ErrMessageNotFound indicates the requested key is absent from an
	// otherwise valid language table.
	ErrMessageNotFound = errors.New("message not found")

	// ErrUnknownFormat indicates the configured language file format has no
	// registered codec.
	ErrUnknownFormat = errors.New("unknown language file format")
)
