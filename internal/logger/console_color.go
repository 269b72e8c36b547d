package logger

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harrison/srcdump/internal/models"
)

// colorScheme defines consistent colors for summary fields.
// Green: files dumped
// Red: files that failed
// Cyan: labels
type colorScheme struct {
	success *color.Color
	fail    *color.Color
	label   *color.Color
}

// newColorScheme creates the standard color scheme for summaries.
func newColorScheme() *colorScheme {
	return &colorScheme{
		success: color.New(color.FgGreen),
		fail:    color.New(color.FgRed),
		label:   color.New(color.FgCyan),
	}
}

// formatColorizedSummary renders "Dumped <n>/<m> files (<f> failed) in <d>".
// The failed count is only colored red when it is non-zero.
func formatColorizedSummary(summary models.Summary, scheme *colorScheme) string {
	label := scheme.label.Sprint("Dumped")
	counts := scheme.success.Sprintf("%d/%d", summary.Dumped, summary.Matched)

	failed := fmt.Sprintf("%d failed", summary.Failed)
	if summary.Failed > 0 {
		failed = scheme.fail.Sprint(failed)
	}

	return fmt.Sprintf("%s %s files (%s) in %s", label, counts, failed, formatDuration(summary.Duration))
}
