package langkit

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pitabwire/util"
)

// languagePrefix is the archive entry prefix that marks bundled language files.
const languagePrefix = "lang/"

// archiveExtension is appended to the archive name when resolving the file to open.
const archiveExtension = ".zip"

// ErrUnsafeArchivePath flags archive entries whose name would escape the
// extraction directory.
var ErrUnsafeArchivePath = errors.New("archive entry path escapes the extraction directory")

// ExtractLanguages copies every language file bundled in the archive at
// path + archiveName + ".zip" into the directory at path, preserving the
// lang/ layout. Entries outside the lang/ prefix and directory entries are
// skipped.
//
// When end-user modification is allowed, files already present on disk are
// left untouched so user edits survive repeated extraction. Otherwise every
// file is overwritten with the bundled content. Any other failure aborts the
// extraction; entries copied before the failure remain on disk.
func (m *Manager) ExtractLanguages(ctx context.Context, path, archiveName string) error {
	archivePath := path + archiveName + archiveExtension

	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("open language archive %s: %w", archivePath, err)
	}
	defer util.CloseAndLogOnError(ctx, reader)

	log := m.log(ctx).WithField("archive", archivePath)

	for _, entry := range reader.File {
		if !strings.HasPrefix(entry.Name, languagePrefix) || entry.FileInfo().IsDir() {
			continue
		}

		if err = m.extractEntry(ctx, path, entry); err != nil {
			return err
		}
	}

	log.Debug("language archive extracted")

	return nil
}

func (m *Manager) extractEntry(ctx context.Context, path string, entry *zip.File) error {
	if !filepath.IsLocal(filepath.FromSlash(entry.Name)) {
		return fmt.Errorf("%w: %s", ErrUnsafeArchivePath, entry.Name)
	}

	target := filepath.Join(path, filepath.FromSlash(entry.Name))

	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", target, err)
	}

	out, err := m.createTarget(target)
	if err != nil {
		// An end-user modified copy stays as is; the attempt-then-skip keeps
		// the check and the create atomic.
		if m.allowEndUserModification && errors.Is(err, fs.ErrExist) {
			m.log(ctx).WithField("file", target).Debug("language file already present, keeping it")
			return nil
		}
		return fmt.Errorf("create language file %s: %w", target, err)
	}
	defer util.CloseAndLogOnError(ctx, out)

	in, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer util.CloseAndLogOnError(ctx, in)

	if _, err = io.Copy(out, in); err != nil {
		return fmt.Errorf("copy archive entry %s: %w", entry.Name, err)
	}

	return nil
}

func (m *Manager) createTarget(target string) (*os.File, error) {
	if m.allowEndUserModification {
		return os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	}

	return os.Create(target)
}
