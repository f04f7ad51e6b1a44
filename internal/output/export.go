package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"tarefas/internal/service"
	"tarefas/internal/view"
)

// Export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// Export writes tasks to w in the given format. Tasks are written in the
// order given.
func Export(w io.Writer, format string, tasks []service.Task) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		if tasks == nil {
			tasks = []service.Task{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)
	case FormatCSV:
		return exportCSV(w, tasks)
	case FormatPDF:
		return exportPDF(w, tasks)
	}
	return fmt.Errorf("unknown export format: %s", format)
}

func exportCSV(w io.Writer, tasks []service.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"id", "titulo", "descricao", "concluida"}); err != nil {
		return err
	}
	for _, t := range tasks {
		row := []string{strconv.Itoa(t.ID), t.Title, t.Description, strconv.FormatBool(t.Done)}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func exportPDF(w io.Writer, tasks []service.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle("Tasks", true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(12)

	if len(tasks) == 0 {
		pdf.SetFont("Arial", "I", 10)
		pdf.Cell(0, 6, view.PlaceholderEmpty)
	}
	for _, t := range tasks {
		card := view.CardFor(t)
		pdf.SetFont("Arial", "B", 11)
		pdf.MultiCell(0, 6, tr(fmt.Sprintf("#%d  %s", card.ID, normalizeTitle(card.Title))), "0", "L", false)
		pdf.SetFont("Arial", "", 10)
		pdf.MultiCell(0, 5, tr(normalizeTitle(card.Description)), "0", "L", false)
		pdf.SetFont("Arial", "I", 9)
		pdf.MultiCell(0, 5, "Status: "+card.Status, "0", "L", false)
		pdf.Ln(3)
	}
	return pdf.Output(w)
}
