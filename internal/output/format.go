// Package output provides plain-text formatters for rendered pages.
package output

import (
	"fmt"
	"io"
	"strings"

	"pintask/internal/task"
	"pintask/internal/view"
)

const (
	// SectionSeparator frames section headers.
	SectionSeparator = "------------"

	// PinnedTitle and TasksTitle head the two views.
	PinnedTitle = "Pinned"
	TasksTitle  = "Tasks"
)

// FormatPage writes the pinned view followed by the unpinned view.
func FormatPage(w io.Writer, snap view.Snapshot) {
	FormatSection(w, PinnedTitle, snap.Pinned)
	FormatSection(w, TasksTitle, snap.Unpinned)
}

// FormatSection writes a framed header and the region contents.
func FormatSection(w io.Writer, title string, region view.RegionSnapshot) {
	fmt.Fprintln(w, SectionSeparator)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, SectionSeparator)
	if region.Placeholder != "" {
		fmt.Fprintf(w, "    %s\n", region.Placeholder)
		return
	}
	for _, row := range region.Rows {
		FormatRow(w, row)
	}
}

// FormatRow writes one row.
// Format: "    [{LABEL}] {NAME}\n", or "    {NAME}\n" for rows without a toggle.
func FormatRow(w io.Writer, row view.Row) {
	name := normalizeName(row.Name)
	if row.Toggle == nil {
		fmt.Fprintf(w, "    %s\n", name)
		return
	}
	fmt.Fprintf(w, "    [%s] %s\n", row.Toggle.Label, name)
}

// FormatNames writes one task name per line.
func FormatNames(w io.Writer, tasks []task.Task) {
	for _, t := range tasks {
		fmt.Fprintln(w, normalizeName(t.Name))
	}
}

// FormatError writes the error slot contents as an error line.
func FormatError(w io.Writer, message string) {
	fmt.Fprintf(w, "error: %s\n", message)
}

// normalizeName keeps each row on a single line.
func normalizeName(name string) string {
	name = strings.ReplaceAll(name, "\r", " ")
	return strings.ReplaceAll(name, "\n", " ")
}
