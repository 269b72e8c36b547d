package dump

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/harrison/srcdump/internal/filelock"
	"github.com/harrison/srcdump/internal/models"
)

// ReadRecord reads the file at root/relPath and returns it as a Record.
// Failures come back as *models.ReadError. The file handle is always closed
// before ReadRecord returns. With lock set, the read happens under a shared
// advisory lock on the file.
func ReadRecord(root, relPath string, lock bool) (models.Record, error) {
	path := filepath.Join(root, relPath)

	if !lock {
		return readRecord(path, relPath)
	}

	var rec models.Record
	err := filelock.WithReadLock(path, func() error {
		var readErr error
		rec, readErr = readRecord(path, relPath)
		return readErr
	})
	if err != nil {
		var readErr *models.ReadError
		if errors.As(err, &readErr) {
			return models.Record{}, readErr
		}
		return models.Record{}, &models.ReadError{RelPath: relPath, Kind: models.ReadErrorLock, Err: err}
	}
	return rec, nil
}

func readRecord(path, relPath string) (models.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return models.Record{}, &models.ReadError{RelPath: relPath, Kind: models.ReadErrorOpen, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return models.Record{}, &models.ReadError{RelPath: relPath, Kind: models.ReadErrorRead, Err: err}
	}

	if !utf8.Valid(data) {
		return models.Record{}, &models.ReadError{
			RelPath: relPath,
			Kind:    models.ReadErrorDecode,
			Err:     fmt.Errorf("invalid UTF-8 at byte %d", invalidOffset(data)),
		}
	}

	return models.Record{RelPath: relPath, Content: string(data)}, nil
}

// invalidOffset returns the index of the first byte that does not start a
// valid UTF-8 sequence, or -1 if data is valid.
func invalidOffset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
