// Package export writes task lists as CSV, YAML or PDF documents.
package export

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"gopkg.in/yaml.v3"

	"task-manager/internal/domain"
	apperrors "task-manager/internal/errors"
	"task-manager/internal/services"
)

// Supported formats
const (
	FormatCSV  = "csv"
	FormatYAML = "yaml"
	FormatPDF  = "pdf"
)

var header = []string{"ID", "Title", "Due Date", "Priority", "Completed"}

// record is the document form of a task
type record struct {
	ID        int64  `yaml:"id"`
	Title     string `yaml:"title"`
	DueDate   string `yaml:"due_date"`
	Priority  int    `yaml:"priority"`
	Completed bool   `yaml:"completed"`
}

func toRecord(task *domain.Task) record {
	return record{
		ID:        task.ID,
		Title:     task.Title,
		DueDate:   domain.FormatDate(task.DueDate),
		Priority:  int(task.Priority),
		Completed: task.Completed,
	}
}

// Exporter writes every stored task in a chosen format
type Exporter struct {
	tasks services.TaskService
}

// NewExporter creates an exporter reading from tasks
func NewExporter(tasks services.TaskService) *Exporter {
	return &Exporter{tasks: tasks}
}

// Export writes all tasks, ordered as listed by the service, to w
func (e *Exporter) Export(ctx context.Context, w io.Writer, format string) error {
	tasks, err := e.tasks.ViewAllTasks(ctx)
	if err != nil {
		return err
	}
	return Write(w, format, tasks)
}

// Write encodes tasks to w in format
func Write(w io.Writer, format string, tasks []*domain.Task) error {
	switch strings.ToLower(format) {
	case FormatCSV:
		return writeCSV(w, tasks)
	case FormatYAML:
		return writeYAML(w, tasks)
	case FormatPDF:
		return writePDF(w, tasks)
	default:
		return apperrors.NewInvalidInputError("format", format, "must be one of csv, yaml or pdf")
	}
}

func writeCSV(w io.Writer, tasks []*domain.Task) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, task := range tasks {
		r := toRecord(task)
		row := []string{
			strconv.FormatInt(r.ID, 10),
			r.Title,
			r.DueDate,
			strconv.Itoa(r.Priority),
			strconv.FormatBool(r.Completed),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeYAML(w io.Writer, tasks []*domain.Task) error {
	records := make([]record, 0, len(tasks))
	for _, task := range tasks {
		records = append(records, toRecord(task))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(map[string][]record{"tasks": records}); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return enc.Close()
}

var pdfColumnWidths = []float64{15, 85, 30, 25, 25}

func writePDF(w io.Writer, tasks []*domain.Task) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Tasks")
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 10)
	for i, title := range header {
		pdf.CellFormat(pdfColumnWidths[i], 7, title, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 10)
	for _, task := range tasks {
		cells := []string{
			strconv.FormatInt(task.ID, 10),
			tr(task.Title),
			domain.FormatDate(task.DueDate),
			task.Priority.String(),
			strconv.FormatBool(task.Completed),
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColumnWidths[i], 6, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
