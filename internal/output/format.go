// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"ftask/internal/task"
)

const separatorWidth = 75

// FormatTable renders tasks as a fixed-width table with a header row:
// ID (6 wide), Status (12 wide), Title (30 wide), Notes. Long titles
// overflow their column rather than being truncated.
func FormatTable(w io.Writer, tasks []task.Task) {
	fmt.Fprintf(w, "%-6s%-12s%-30s%s\n", "ID", "Status", "Title", "Notes")
	fmt.Fprintln(w, strings.Repeat("=", separatorWidth))
	for _, t := range tasks {
		FormatTask(w, t)
	}
}

// FormatTask formats a single task row.
func FormatTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "%-6d%-12s%-30s%s\n", t.ID, StatusWord(t.Completed), normalizeTitle(t.Title), t.Notes)
}

// StatusWord returns the display word for a completion flag.
func StatusWord(completed bool) string {
	if completed {
		return "Complete"
	}
	return "Open"
}

// normalizeTitle normalizes a task title for display.
// - Empty or whitespace-only titles become "(untitled)"
// - Newlines are replaced with spaces
func normalizeTitle(title string) string {
	title = strings.ReplaceAll(title, "\r", " ")
	title = strings.ReplaceAll(title, "\n", " ")

	if strings.TrimSpace(title) == "" {
		return "(untitled)"
	}
	return title
}
