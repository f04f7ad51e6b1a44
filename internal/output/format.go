// Package output provides formatters for CLI output.
package output

import (
	"fmt"
	"io"
	"strings"

	"tarefas/internal/view"
)

// FormatCard formats a task card for the list.
// Format: "{ID:>4}  [x] {TITLE}\n" followed by the description indented
// under the title. The box is checked for completed tasks.
func FormatCard(w io.Writer, card view.Card) {
	mark := " "
	if card.Done {
		mark = "x"
	}
	fmt.Fprintf(w, "%4d  [%s] %s\n", card.ID, mark, normalizeTitle(card.Title))
	fmt.Fprintf(w, "          %s\n", normalizeTitle(card.Description))
}

// FormatDetail formats a single card with labelled fields.
func FormatDetail(w io.Writer, card view.Card) {
	fmt.Fprintf(w, "ID:          %d\n", card.ID)
	fmt.Fprintf(w, "Title:       %s\n", normalizeTitle(card.Title))
	fmt.Fprintf(w, "Description: %s\n", normalizeTitle(card.Description))
	fmt.Fprintf(w, "Status:      %s\n", card.Status)
}

// FormatPage writes the task container: one card per task, or the
// placeholder when there are none.
func FormatPage(w io.Writer, page view.Page) {
	if len(page.Cards) == 0 {
		if page.Placeholder != "" {
			fmt.Fprintln(w, page.Placeholder)
		}
		return
	}
	for _, card := range page.Cards {
		FormatCard(w, card)
	}
}

// FormatError writes an error line.
func FormatError(w io.Writer, msg string) {
	fmt.Fprintf(w, "error: %s\n", msg)
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
