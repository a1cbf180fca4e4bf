// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"taskdash/internal/calendar"
	"taskdash/internal/service"
)

const (
	// Separator is the separator line for dashboard sections.
	Separator = "------------"

	// progressCells is the width of the progress bar.
	progressCells = 20
)

// FormatTask formats a numbered task line.
// Format: "{N:>4}  [x| ] {TITLE}\n"
func FormatTask(w io.Writer, num int, task service.Task) {
	box := " "
	if task.Completed {
		box = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", num, box, normalizeTitle(task.Title))
}

// FormatSummary prints the completed/total line under a task listing.
func FormatSummary(w io.Writer, completed, total int) {
	fmt.Fprintf(w, "\n%d/%d completed\n", completed, total)
}

// FormatStats prints the progress overview panel.
func FormatStats(w io.Writer, total, completed int, percent float64) {
	fmt.Fprintln(w, Separator)
	fmt.Fprintf(w, "Total      %4d\n", total)
	fmt.Fprintf(w, "Completed  %4d\n", completed)
	fmt.Fprintf(w, "Remaining  %4d\n", total-completed)
	fmt.Fprintln(w, Separator)
	FormatProgress(w, percent)
}

// FormatProgress renders the progress bar with the rounded percentage.
func FormatProgress(w io.Writer, percent float64) {
	filled := int(percent) * progressCells / 100
	if filled > progressCells {
		filled = progressCells
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", progressCells-filled)
	fmt.Fprintf(w, "[%s] %d%%\n", bar, int(math.Round(percent)))
}

// FormatMonth prints a month grid. today is the day number to mark with a
// trailing asterisk, or 0 for none.
func FormatMonth(w io.Writer, year int, month time.Month, today int) {
	fmt.Fprintf(w, "%s %d\n", month.String(), year)
	fmt.Fprintln(w, "Su Mo Tu We Th Fr Sa")
	for _, week := range calendar.MonthGrid(year, month) {
		var b strings.Builder
		for _, day := range week {
			switch {
			case day == 0:
				b.WriteString("   ")
			case day == today:
				fmt.Fprintf(&b, "%2d*", day)
			default:
				fmt.Fprintf(&b, "%2d ", day)
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	}
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
