package message

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pitabwire/util"
	"gopkg.in/yaml.v3"
)

// Supported language file formats. The format doubles as the file extension.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
	FormatYAML = "yaml"
)

// languageSubdirectory is the fixed subdirectory holding language files.
const languageSubdirectory = "lang"

// loadTable reads and parses the language file for the supplied directory,
// language code and format into a flat key to text mapping. The file is read
// fresh on every call so edits on disk are picked up immediately.
func loadTable(ctx context.Context, directory, languageCode, format string) (map[string]string, error) {
	if directory == "" || languageCode == "" {
		return nil, fmt.Errorf("%w: directory=%q language=%q", ErrNotConfigured, directory, languageCode)
	}

	if format == "" {
		format = FormatJSON
	}

	path := filepath.Join(directory, languageSubdirectory, languageCode+"."+format)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLanguageFileNotFound, path, err)
	}
	defer util.CloseAndLogOnError(ctx, file)

	raw, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLanguageFileNotFound, path, err)
	}

	entries, err := decode(format, raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrLanguageFileInvalid, path, err)
	}

	table := make(map[string]string, len(entries))
	for key, value := range entries {
		table[key] = stringify(value)
	}

	return table, nil
}

func decode(format string, raw []byte) (map[string]any, error) {
	var entries map[string]any

	switch format {
	case FormatJSON:
		if err := json.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
	case FormatTOML:
		if err := toml.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
	case FormatYAML, "yml":
		if err := yaml.Unmarshal(raw, &entries); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	return entries, nil
}

// stringify renders a parsed value as message text. Strings pass through
// untouched; scalars and nested structures render as their compact
// structural encoding. Only top level keys are addressable, nested values
// are never resolved further.
func stringify(value any) string {
	text, ok := value.(string)
	if ok {
		return text
	}

	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}

	return string(raw)
}
