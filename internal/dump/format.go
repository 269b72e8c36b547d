package dump

import (
	"fmt"
	"io"
	"strings"

	"github.com/harrison/srcdump/internal/models"
)

// HeaderLabel precedes every file path. It is a fixed label, not a counter.
const HeaderLabel = "1. filename: "

// Separator closes every block.
var Separator = strings.Repeat("-", 40)

// WriteBlock writes the complete output block for rec: the header line and a
// blank line, the content, a blank line, 40 hyphens and a final blank line.
func WriteBlock(w io.Writer, rec models.Record) error {
	if err := writeHeader(w, rec.RelPath); err != nil {
		return err
	}
	return writeBody(w, rec.Content)
}

func writeHeader(w io.Writer, relPath string) error {
	if _, err := fmt.Fprintf(w, "%s%s\n\n", HeaderLabel, relPath); err != nil {
		return fmt.Errorf("failed to write header for %s: %w", relPath, err)
	}
	return nil
}

// writeBody writes the content followed by a blank line, the separator and
// a trailing blank line.
func writeBody(w io.Writer, content string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n%s\n\n", content, Separator); err != nil {
		return fmt.Errorf("failed to write content: %w", err)
	}
	return nil
}

// diagnostic is printed in place of content when a file could not be read
// and the run continues past it.
func diagnostic(err error) string {
	return fmt.Sprintf("[read error] %v", err)
}
